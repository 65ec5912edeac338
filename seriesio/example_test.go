package seriesio_test

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/seriesio"
	"github.com/katalvlaran/lvseries/truncate"
)

// ExampleRead squares a series read from text and writes the result back.
func ExampleRead() {
	s, skipped, err := seriesio.ReadString("@poly x\n@coeff rational\n1|0\n1/2|1\n")
	if err != nil || len(skipped) > 0 {
		fmt.Println("read failed")
		return
	}
	sq, _ := series.Multiply(context.Background(), s, s, truncate.None())
	_ = seriesio.Write(os.Stdout, sq)

	// Output:
	// @poly x
	// @key monomial
	// @coeff rational
	// 1|0
	// 1|1
	// 1/4|2
}
