package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvseries/cmd/lvseries/commands"
)

func main() {
	root := commands.NewRootCmd()
	root.AddCommand(
		commands.NewMulCmd(),
		commands.NewPowCmd(),
		commands.NewInfoCmd(),
		commands.NewSpectrumCmd(),
		commands.NewBenchCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lvseries:", err)
		stop()
		os.Exit(1)
	}
}
