package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bnbtree/bnb"
	"github.com/katalvlaran/bnbtree/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// errValueMismatch means the two strategies disagreed on the optimum,
// which would be an engine bug.
var errValueMismatch = errors.New("strategies disagree on the optimal value")

func (a *app) newCompareCmd() *cobra.Command {
	var instance string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Solve with both strategies and compare the searches",
		Long: `Runs ones-first and zeroes-first concurrently on the same instance.
The optimal value must agree; the number of explored and pruned nodes and the
incumbent history usually do not.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, cat, err := loadInstance(instance)
			if err != nil {
				return err
			}

			strategies := []bnb.Strategy{bnb.OnesFirst, bnb.ZeroesFirst}
			results := make([]*bnb.Result, len(strategies))
			var g errgroup.Group
			for i, s := range strategies {
				i, s := i, s
				g.Go(func() error {
					res, err := a.solve(cat, in.Capacity, s)
					if err != nil {
						return err
					}
					results[i] = res

					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range results {
				fmt.Fprintf(out, "%-13s %s\n", res.Strategy.String()+":", report.StatsLine(res.Stats))
				fmt.Fprintf(out, "%-13s %s\n", "", "updates: "+report.Updates(res.Updates))
			}
			if results[0].Incumbent != results[1].Incumbent {
				return fmt.Errorf("%w: %v vs %v", errValueMismatch, results[0].Incumbent, results[1].Incumbent)
			}
			fmt.Fprintf(out, "optimum: %v\n", results[0].Incumbent)

			return nil
		},
	}

	cmd.Flags().StringVarP(&instance, "instance", "i", "", "instance YAML file (capacity + items)")
	_ = cmd.MarkFlagRequired("instance")

	return cmd
}
