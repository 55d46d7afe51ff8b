// Command lvpuzzle solves the spring-record, crucible and brick-pile
// puzzles from their text inputs and prints one answer per line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpuzzle/internal/config"
	"github.com/katalvlaran/lvpuzzle/internal/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	part    int

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lvpuzzle",
	Short: "Solve the springs, crucible and bricks puzzles",
	Long: `lvpuzzle reads a puzzle input and prints the answers, one integer per line.

  springs   count the arrangements of damaged spring records
  crucible  find the cheapest run-constrained path across a heat-loss grid
  bricks    settle falling bricks and count safe removals and chain reactions

Input paths default to the inputs section of the config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err = cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", cfgFile, err)
		}
		if part < 0 || part > 2 {
			return fmt.Errorf("--part must be 0, 1 or 2, got %d", part)
		}
		logger, err = logging.New(cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "lvpuzzle.yaml", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&part, "part", "p", 0, "Puzzle part to solve: 1, 2, or 0 for both")

	crucibleCmd.Flags().IntVar(&minRun, "min-run", 0, "Custom minimum straight run (with --max-run)")
	crucibleCmd.Flags().IntVar(&maxRun, "max-run", 0, "Custom maximum straight run (with --min-run)")

	rootCmd.AddCommand(springsCmd)
	rootCmd.AddCommand(crucibleCmd)
	rootCmd.AddCommand(bricksCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// parts returns the parts selected by --part.
func parts() []int {
	if part == 0 {
		return []int{1, 2}
	}

	return []int{part}
}

// openInput opens the positional file argument, or fallback when absent.
func openInput(args []string, fallback string) (*os.File, string, error) {
	path := fallback
	if len(args) > 0 {
		path = args[0]
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to open input: %w", err)
	}

	return f, path, nil
}

// contextOf returns the command context, or Background when the command was
// not started through Execute.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
