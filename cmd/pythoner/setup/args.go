package setup

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "PYTHONER"

type ContextKey string

const ContextArgs ContextKey = "args"

// Args holds the settings shared by every command.
type Args struct {
	ConfigPath     string
	VerbosityCount int
	// Config resolves flags, PYTHONER_* variables and the config file, in
	// that order of precedence.
	Config *viper.Viper
}

func WrapArgs(ctx context.Context, args *Args) context.Context {
	return context.WithValue(ctx, ContextArgs, args)
}

func UnwrapArgs(ctx context.Context) *Args {
	return ctx.Value(ContextArgs).(*Args)
}

// UnwrapConfig returns the resolved configuration of the running command.
func UnwrapConfig(ctx context.Context) *viper.Viper {
	return UnwrapArgs(ctx).Config
}

func AddArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to a yaml or toml file with default flag values. Optional.")
	cmd.PersistentFlags().CountP("verbose", "v", "Set verbosity.")
}

// ArgsFromCmd binds the flags of cmd, its parents included, to a fresh viper
// instance and reads the optional config file.
func ArgsFromCmd(cmd *cobra.Command) (*Args, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	configPath := v.GetString("config")
	if configPath != "" {
		v.SetConfigFile(configPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configPath, err)
		}
	}

	return &Args{
		ConfigPath:     configPath,
		VerbosityCount: v.GetInt("verbose"),
		Config:         v,
	}, nil
}

func ConfigureLogger(args *Args, out io.Writer) {
	logrus.SetOutput(out)

	if args.VerbosityCount == 0 {
		logrus.SetLevel(logrus.WarnLevel)
	}
	if args.VerbosityCount == 1 {
		logrus.SetLevel(logrus.InfoLevel)
	}
	if args.VerbosityCount == 2 {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if args.VerbosityCount >= 3 {
		logrus.SetLevel(logrus.TraceLevel)
	}
}
