package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.Default()}
	root := &cobra.Command{
		Use:          "bitonic",
		Short:        "Sort power-of-two sized sequences with a bitonic sorting network",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, json, or toml)")
	flags.String("log-level", "info", "log level: debug, info, warn, or error")
	root.AddCommand(
		newSortCommand(a),
		newNetworkCommand(a),
		newDemoCommand(a),
	)
	return root
}

// init binds the flags of the command being executed, the environment, and the
// optional config file, and sets up the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("BITONIC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := bindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", file, err)
		}
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) (err error) {
	flags.VisitAll(func(flag *pflag.Flag) {
		if err == nil {
			err = v.BindPFlag(flag.Name, flag)
		}
	})
	return
}
