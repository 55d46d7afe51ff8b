package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpuzzle/internal/solve"
	"github.com/katalvlaran/lvpuzzle/runfit"
)

var springsCmd = &cobra.Command{
	Use:   "springs [file]",
	Short: "Sum the arrangement counts of spring records",
	Long: `Part 1 counts each record as read; part 2 unfolds every record
springs.unfold times (5 by default) before counting.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSprings,
}

func runSprings(cmd *cobra.Command, args []string) error {
	f, path, err := openInput(args, cfg.Inputs.Springs)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := runfit.ParseRecords(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("input parsed", zap.String("file", path), zap.Int("records", len(records)))

	for _, p := range parts() {
		unfold := 1
		if p == 2 {
			unfold = cfg.Springs.Unfold
		}
		total, err := solve.Springs(contextOf(cmd), records, unfold, logger)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), total)
	}

	return nil
}
