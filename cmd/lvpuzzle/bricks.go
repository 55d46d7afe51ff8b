package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpuzzle/brickpile"
	"github.com/katalvlaran/lvpuzzle/internal/solve"
)

var bricksCmd = &cobra.Command{
	Use:   "bricks [file]",
	Short: "Settle a brick snapshot and count removals",
	Long: `Part 1 prints how many bricks can be removed alone without anything falling;
part 2 prints the sum over all bricks of how many others would fall.
With --verbose every load-bearing brick is logged by label.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBricks,
}

func runBricks(cmd *cobra.Command, args []string) error {
	f, path, err := openInput(args, cfg.Inputs.Bricks)
	if err != nil {
		return err
	}
	defer f.Close()

	bricks, err := brickpile.ParseBricks(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("input parsed", zap.String("file", path), zap.Int("bricks", len(bricks)))

	report, err := solve.Bricks(contextOf(cmd), bricks, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, p := range parts() {
		answer := report.Removable
		if p == 2 {
			answer = report.TotalCollapse
		}
		fmt.Fprintln(cmd.OutOrStdout(), answer)
	}

	return nil
}
