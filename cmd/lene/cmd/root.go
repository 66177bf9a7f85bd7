// Package cmd implements the lene command line.
package cmd

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/xiam/lene"
	"github.com/xiam/lene/internal/config"
)

// app holds what every command shares once flags are parsed.
type app struct {
	cfgFile string
	verbose bool

	cfg   *config.Config
	log   logr.Logger
	flush func()
}

// NewRootCommand builds the lene command and its subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{
		log:   logr.Discard(),
		flush: func() {},
	}

	root := &cobra.Command{
		Use:   "lene",
		Short: "Reads frame documents",
		Long: `lene reads documents written in a parenthesized frame notation.

It prints their tokens and trees, and counts the tokens found at every
nesting depth.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.flush()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")

	root.AddCommand(
		newCountCommand(a),
		newTokensCommand(a),
		newParseCommand(a),
	)
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup() error {
	log, flush, err := newLogger(a.verbose)
	if err != nil {
		return err
	}
	a.log, a.flush = log, flush

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log.V(1).Info("loaded config", "path", a.cfgFile, "maxDepth", cfg.MaxDepth, "indexMax", cfg.IndexMax)
	return nil
}

func (a *app) readerOptions(extra ...lene.Option) []lene.Option {
	return append(a.cfg.ReaderOptions(a.log), extra...)
}
