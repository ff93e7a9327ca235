package main

import (
	"fmt"

	"github.com/ostafen/interval"
	"github.com/spf13/cobra"
)

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <interval>",
		Short: "Describe an interval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := interval.Parse(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "interval:   %s\n", a.format(i))
			fmt.Fprintf(out, "minimum:    %s\n", a.formatValue(i.Minimum()))
			fmt.Fprintf(out, "maximum:    %s\n", a.formatValue(i.Maximum()))
			fmt.Fprintf(out, "topology:   %s\n", i.Topology())
			fmt.Fprintf(out, "empty:      %t\n", i.IsEmpty())
			fmt.Fprintf(out, "degenerate: %t\n", i.IsDegenerate())
			fmt.Fprintf(out, "bounded:    %t\n", i.IsBounded(interval.Reals{}))
			return nil
		},
	}
}

// formatValue prints v the way the endpoints of an interval are printed.
func (a *app) formatValue(v float64) string {
	return interval.FormatWith(a.valueFormatter, interval.Degenerate(v))
}

func (a *app) formatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <interval>...",
		Short: "Print intervals with the configured notation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intervals, err := parseArgs(args)
			if err != nil {
				return err
			}

			for _, i := range intervals {
				a.println(cmd, i)
			}
			return nil
		},
	}
}

func (a *app) classifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <a> <b>",
		Short: "Print how a relates to b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			intervals, err := parseArgs(args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), intervals[0].Classify(intervals[1]))
			return nil
		},
	}
}

// binaryCommand builds a command combining two intervals into one.
func (a *app) binaryCommand(use, short string, op func(x, y interval.Interval[float64]) interval.Interval[float64]) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			intervals, err := parseArgs(args)
			if err != nil {
				return err
			}

			a.println(cmd, op(intervals[0], intervals[1]))
			return nil
		},
	}
}

func (a *app) unionCommand() *cobra.Command {
	return a.binaryCommand("union", "Print the smallest interval covering a and b, ∅ when they are disjoint",
		interval.Interval[float64].Union)
}

func (a *app) intersectCommand() *cobra.Command {
	return a.binaryCommand("intersect", "Print the points shared by a and b",
		interval.Interval[float64].Intersection)
}

func (a *app) printSplit(cmd *cobra.Command, r interval.SplitResult[interval.Interval[float64]]) {
	for _, i := range r.Intervals() {
		a.println(cmd, i)
	}
}

func (a *app) differenceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "difference <a> <b>",
		Short: "Print a minus b, one interval per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			intervals, err := parseArgs(args)
			if err != nil {
				return err
			}

			a.printSplit(cmd, intervals[0].Difference(intervals[1]))
			return nil
		},
	}
}

func (a *app) symdiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "symdiff <a> <b>",
		Short: "Print the points belonging to exactly one of a and b, as a lower and an upper interval",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			intervals, err := parseArgs(args)
			if err != nil {
				return err
			}

			a.printSplit(cmd, intervals[0].SymmetricDifference(intervals[1]))
			return nil
		},
	}
}

func (a *app) complementCommand() *cobra.Command {
	var universe string

	cmd := &cobra.Command{
		Use:   "complement <a>",
		Short: "Print the points of the universe not in a, one interval per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intervals, err := parseArgs([]string{args[0], universe})
			if err != nil {
				return err
			}

			a.printSplit(cmd, intervals[0].Complement(intervals[1]))
			return nil
		},
	}
	cmd.Flags().StringVarP(&universe, "universe", "u", interval.RealLine.String(), "interval the complement is taken in")
	return cmd
}

func (a *app) partitionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "partition <a> <point>",
		Short: "Split a at point into the part below, the point and the part above",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := interval.Parse(args[0])
			if err != nil {
				return err
			}

			point, err := parseValue(args[1])
			if err != nil {
				return err
			}

			switch r := i.Partition(point).(type) {
			case interval.ValidPartition[interval.Interval[float64]]:
				a.println(cmd, r.Lower)
				a.println(cmd, r.Point)
				a.println(cmd, r.Upper)
			case interval.DisjointPartition[interval.Interval[float64]]:
				a.logger.Info("Point outside of the interval", "interval", i, "point", point)
				a.println(cmd, r.Empty)
			}
			return nil
		},
	}
}

func (a *app) containsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <a> <value>",
		Short: "Print whether value belongs to a",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := interval.Parse(args[0])
			if err != nil {
				return err
			}

			v, err := parseValue(args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), i.Contains(v))
			return nil
		},
	}
}
