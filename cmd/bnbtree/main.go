// Command bnbtree solves 0/1 knapsack instances by branch-and-bound and
// prints the explored search tree.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/bnbtree/internal/config"
	"github.com/katalvlaran/bnbtree/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bnbtree",
		Short: "Branch-and-bound 0/1 knapsack solver with a traceable search tree",
		Long: `bnbtree solves a 0/1 knapsack instance exactly by branch-and-bound.

Items are ordered by value/weight ratio; every node of the search computes the
fractional relaxation bound, may raise the global incumbent, and is either
pruned (infeasible, dominated, optimal) or split on the first item that does
not fit. The whole search is reported, not only its answer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			a.logger, err = logging.New(cfg.Logging, a.verbose)

			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "bnbtree.yaml", "settings file (defaults are used when it does not exist)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging of the search")

	root.AddCommand(a.newSolveCmd(), a.newCompareCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
