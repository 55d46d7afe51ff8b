package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpuzzle/gridgraph"
	"github.com/katalvlaran/lvpuzzle/internal/solve"
)

// Custom run window; zero means unset.
var minRun, maxRun int

var crucibleCmd = &cobra.Command{
	Use:   "crucible [file]",
	Short: "Find the least heat loss across a digit grid",
	Long: `Part 1 uses straight runs of 1..3, part 2 runs of 4..10 (configurable under
crucible.part1 and crucible.part2). --min-run and --max-run replace both parts
with a single custom window.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrucible,
}

func runCrucible(cmd *cobra.Command, args []string) error {
	windows, err := crucibleWindows()
	if err != nil {
		return err
	}

	f, path, err := openInput(args, cfg.Inputs.Crucible)
	if err != nil {
		return err
	}
	defer f.Close()

	gg, err := gridgraph.ParseDigits(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("input parsed", zap.String("file", path),
		zap.Int("width", gg.Width), zap.Int("height", gg.Height))

	costs, err := solve.Crucible(contextOf(cmd), gg, windows, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, c := range costs {
		fmt.Fprintln(cmd.OutOrStdout(), c)
	}

	return nil
}

// crucibleWindows resolves the run windows from flags and config.
func crucibleWindows() ([]solve.Bounds, error) {
	if minRun != 0 || maxRun != 0 {
		if minRun == 0 || maxRun == 0 {
			return nil, errors.New("--min-run and --max-run must be given together")
		}
		return []solve.Bounds{{MinRun: minRun, MaxRun: maxRun}}, nil
	}

	var windows []solve.Bounds
	for _, p := range parts() {
		rb := cfg.Crucible.Part1
		if p == 2 {
			rb = cfg.Crucible.Part2
		}
		windows = append(windows, solve.Bounds{MinRun: rb.MinRun, MaxRun: rb.MaxRun})
	}

	return windows, nil
}
