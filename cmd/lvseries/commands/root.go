package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	cfg "github.com/katalvlaran/lvseries/cmd/lvseries/config"
)

// EnvPrefix prefixes the environment variables read by the CLI.
const EnvPrefix = "LVSERIES"

type configKey struct{}

// flag name -> viper key
var flagKeys = map[string]string{
	"algorithm":       "algorithm",
	"threads":         "threads",
	"memory-limit":    "memory_limit",
	"epsilon":         "epsilon",
	"verbosity":       "verbosity",
	"separator":       "separator",
	"places":          "places",
	"degree":          "truncate.degree",
	"partial-symbols": "truncate.partial_symbols",
	"norm":            "truncate.norm",
}

// NewRootCmd returns the lvseries root command with its persistent flags.
// Subcommands are added by the caller.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:           "lvseries",
		Short:         "Sparse multivariate polynomial and Poisson series arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig(v, configFile)
			if err != nil {
				return err
			}
			log, err := newLogger(c.Verbosity)
			if err != nil {
				return err
			}
			ctx := logr.NewContext(cmd.Context(), log.WithName("lvseries"))
			cmd.SetContext(context.WithValue(ctx, configKey{}, c))
			return nil
		},
	}
	AddRootFlags(cmd.PersistentFlags(), &configFile)
	for name, k := range flagKeys {
		if err := v.BindPFlag(k, cmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return cmd
}

// AddRootFlags declares the flags shared by every subcommand on f.
func AddRootFlags(f *pflag.FlagSet, configFile *string) {
	d := cfg.DefaultConfig()
	f.StringVar(configFile, "config", "", "YAML/TOML/JSON configuration file")
	f.String("algorithm", d.Algorithm, "multiplication algorithm (automatic | plain | vector_coded | hash_coded)")
	f.Int("threads", d.Threads, "number of multiplication workers")
	f.Int64("memory-limit", d.MemoryLimit, "dense accumulator budget in bytes (0 = automatic)")
	f.Float64("epsilon", d.Epsilon, "numerical zero for double coefficients")
	f.IntP("verbosity", "v", d.Verbosity, "log verbosity (0 = info only)")
	f.String("separator", d.Separator, "key element separator of the text format")
	f.Int32("places", d.Places, "write exact coefficients with this many decimal places (-1 = exact)")
	f.Int("degree", d.Truncate.Degree, "truncate terms of degree >= this limit (-1 = no degree truncation)")
	f.StringSlice("partial-symbols", d.Truncate.PartialSymbols, "restrict the degree limit to these symbols")
	f.Float64("norm", d.Truncate.Norm, "discard products whose coefficient norm is below this threshold (0 = off)")
}

func loadConfig(v *viper.Viper, file string) (*cfg.Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	c := cfg.DefaultConfig()
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// newLogger returns a development zap logger on stderr behind logr.
// logr V(n) maps to zap level -n, so verbosity n enables V(0)..V(n).
func newLogger(verbosity int) (logr.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	zc.OutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	zl, err := zc.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("build logger: %w", err)
	}

	return zapr.NewLogger(zl), nil
}

func configFrom(ctx context.Context) *cfg.Config {
	if c, ok := ctx.Value(configKey{}).(*cfg.Config); ok {
		return c
	}

	return cfg.DefaultConfig()
}
