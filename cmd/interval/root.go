package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	log "github.com/inconshreveable/log15"
	"github.com/ostafen/interval"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds what the subcommands share once the configuration is loaded.
type app struct {
	config         *viper.Viper
	formatter      *interval.Formatter
	valueFormatter *interval.Formatter
	logger         log.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "interval",
		Short: "Parse, compare and combine intervals of real numbers",
		Long: `interval reads intervals written as [a, b], (a, b], [a, b), (a, b), a, a±r, ≈a, ~a,
>a, ≥a, <a, ≤a or ∅, and prints the result of set operations on them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	addConfigFlags(root.PersistentFlags())

	root.AddCommand(
		a.parseCommand(),
		a.formatCommand(),
		a.classifyCommand(),
		a.unionCommand(),
		a.intersectCommand(),
		a.differenceCommand(),
		a.symdiffCommand(),
		a.complementCommand(),
		a.partitionCommand(),
		a.containsCommand(),
		a.catalogCommand(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	config, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	a.config = config

	lvl, err := logLevel(config)
	if err != nil {
		return err
	}
	h := log.StreamHandler(cmd.ErrOrStderr(), log.TerminalFormat())
	log.Root().SetHandler(log.LvlFilterHandler(lvl, h))
	a.logger = log.New("cmd", cmd.Name())

	opts, err := formatOptions(config)
	if err != nil {
		return err
	}

	a.formatter, err = interval.NewFormatter(opts...)
	if err != nil {
		return err
	}

	// a degenerate interval prints as its value in the simplified notation
	a.valueFormatter, err = interval.NewFormatter(append(opts, interval.WithSimplifiedNotation())...)
	return err
}

func (a *app) format(i interval.Interval[float64]) string {
	return interval.FormatWith(a.formatter, i)
}

func (a *app) println(cmd *cobra.Command, i interval.Interval[float64]) {
	fmt.Fprintln(cmd.OutOrStdout(), a.format(i))
}

func parseArgs(args []string) ([]interval.Interval[float64], error) {
	intervals := make([]interval.Interval[float64], 0, len(args))
	for _, arg := range args {
		i, err := interval.Parse(arg)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, i)
	}
	return intervals, nil
}

// parseValue reads a single finite real number.
func parseValue(text string) (float64, error) {
	v, n, ok := interval.Reals{}.ParseEndpoint([]byte(text))
	if !ok || n != len(text) {
		return 0, errors.Newf("invalid number `%s`", text)
	}
	return v, nil
}
