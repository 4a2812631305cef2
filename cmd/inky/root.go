package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inky/core/config"
	"github.com/dmitrymomot/inky/core/inky"
	"github.com/dmitrymomot/inky/core/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "inky",
		Short:         "Convert Inky email templates to table markup",
		Long:          `Inky converts templates written with component tags (row, columns, button, menu, ...) into the nested tables email clients render consistently.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "log every rendered component to stderr")

	root.AddCommand(newConvertCmd(), newSendCmd(), newVersionCmd())
	return root
}

// newConverter builds a converter from the INKY_* environment.
func newConverter(cmd *cobra.Command) (*inky.Inky, *slog.Logger, error) {
	log := logger.New(logger.WithOutput(cmd.ErrOrStderr()))
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log = logger.New(logger.WithDevelopment("inky"), logger.WithOutput(cmd.ErrOrStderr()))
	}

	var cfg inky.Config
	if err := config.Load(&cfg); err != nil {
		return nil, nil, err
	}

	converter, err := inky.NewFromConfig(cfg, inky.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	return converter, log, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "inky", version)
		},
	}
}
