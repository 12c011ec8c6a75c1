package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/bnbtree/bnb"
	"github.com/katalvlaran/bnbtree/catalog"
	"github.com/katalvlaran/bnbtree/internal/config"
	"github.com/katalvlaran/bnbtree/internal/report"
	"github.com/katalvlaran/bnbtree/searchtree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// solveFlags are the per-invocation flags of the solve command.
type solveFlags struct {
	instance string
	strategy string
	format   string
	capacity float64
}

func (a *app) newSolveCmd() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve an instance and print the report or the search tree",
		Long: `Solves the instance file and writes to stdout:
  - text: ordered items table, incumbent updates, selection, node statistics
  - json / yaml: the labelled search tree ({name, attributes, children})`,
		Example: `  bnbtree solve -i lecture.yaml
  bnbtree solve -i lecture.yaml --strategy zeroes-first --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, cat, err := loadInstance(f.instance)
			if err != nil {
				return err
			}
			s, err := a.resolveStrategy(f.strategy, in)
			if err != nil {
				return err
			}
			format := a.cfg.Output.Format
			if f.format != "" {
				if err := config.ValidateFormat(f.format); err != nil {
					return err
				}
				format = f.format
			}
			capacity := in.Capacity
			if cmd.Flags().Changed("capacity") {
				capacity = f.capacity
			}

			res, err := a.solve(cat, capacity, s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == config.FormatText {
				return report.Text(out, res)
			}

			return report.Tree(out, searchtree.FromResult(res), format, a.cfg.Output.Indent)
		},
	}

	cmd.Flags().StringVarP(&f.instance, "instance", "i", "", "instance YAML file (capacity + items)")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "ones-first or zeroes-first (overrides instance and config)")
	cmd.Flags().StringVar(&f.format, "format", "", "text, json or yaml (overrides config)")
	cmd.Flags().Float64Var(&f.capacity, "capacity", 0, "override the instance capacity")
	_ = cmd.MarkFlagRequired("instance")

	return cmd
}

// loadInstance reads the instance file and builds its catalog.
func loadInstance(path string) (*config.Instance, *catalog.Catalog, error) {
	in, err := config.LoadInstance(path)
	if err != nil {
		return nil, nil, err
	}
	cat, err := in.Catalog()
	if err != nil {
		return nil, nil, err
	}

	return in, cat, nil
}

// resolveStrategy applies flag > instance > config precedence.
func (a *app) resolveStrategy(flag string, in *config.Instance) (bnb.Strategy, error) {
	switch {
	case flag != "":
		return bnb.ParseStrategy(flag)
	case in.Strategy != "":
		return bnb.ParseStrategy(in.Strategy)
	default:
		return a.cfg.ParsedStrategy()
	}
}

// solve runs one tagged solve and logs its outcome.
func (a *app) solve(cat *catalog.Catalog, capacity float64, s bnb.Strategy) (*bnb.Result, error) {
	log := a.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.Stringer("strategy", s),
	)
	log.Info("solve started",
		zap.Int("items", cat.Len()),
		zap.Float64("capacity", capacity))

	res, err := bnb.Solve(cat, capacity, bnb.WithStrategy(s), bnb.WithLogger(log))
	if err != nil {
		log.Error("solve failed", zap.Error(err))

		return nil, fmt.Errorf("solve %s: %w", s, err)
	}
	log.Info("solve finished",
		zap.Float64("optimum", res.Incumbent),
		zap.Int("nodes", res.Stats.Nodes),
		zap.Int("incumbent_updates", len(res.Updates)-1))

	return res, nil
}
