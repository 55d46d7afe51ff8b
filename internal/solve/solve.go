// Package solve runs the puzzle kernels over whole inputs, fanning
// independent work out with errgroup and reducing the answers.
package solve

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpuzzle/brickpile"
	"github.com/katalvlaran/lvpuzzle/dijkstra"
	"github.com/katalvlaran/lvpuzzle/gridgraph"
	"github.com/katalvlaran/lvpuzzle/runfit"
)

// Sum adds up xs.
func Sum[T constraints.Integer](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}

	return total
}

// Bounds is one crucible run window.
type Bounds struct {
	MinRun, MaxRun int
}

// String renders the window as "min..max".
func (b Bounds) String() string { return fmt.Sprintf("%d..%d", b.MinRun, b.MaxRun) }

// Springs unfolds every record the given number of times, counts its
// arrangements and returns the sum. unfold = 1 leaves the records as read.
// Records are counted concurrently; the first error cancels the rest.
func Springs(ctx context.Context, records []runfit.Record, unfold int, log *zap.Logger) (int64, error) {
	start := time.Now()
	counts := make([]int64, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, rec := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			big, err := rec.Unfold(unfold)
			if err != nil {
				return fmt.Errorf("record %d: %w", i+1, err)
			}
			n, err := runfit.Count(big)
			if err != nil {
				return fmt.Errorf("record %d: %w", i+1, err)
			}
			counts[i] = n

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := Sum(counts)
	log.Debug("springs counted",
		zap.Int("records", len(records)),
		zap.Int("unfold", unfold),
		zap.Int64("total", total),
		zap.Duration("elapsed", time.Since(start)))

	return total, nil
}

// Crucible searches gg once per run window and returns the minimum costs in
// the order of windows. Windows are searched concurrently.
func Crucible(ctx context.Context, gg *gridgraph.GridGraph, windows []Bounds, log *zap.Logger) ([]int64, error) {
	costs := make([]int64, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	for i, w := range windows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			cost, err := dijkstra.MinCost(gg, w.MinRun, w.MaxRun)
			if err != nil {
				return fmt.Errorf("runs %s: %w", w, err)
			}
			costs[i] = cost
			log.Debug("crucible searched",
				zap.String("runs", w.String()),
				zap.Int("width", gg.Width),
				zap.Int("height", gg.Height),
				zap.Int64("cost", cost),
				zap.Duration("elapsed", time.Since(start)))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return costs, nil
}

// BricksReport summarises a settled pile.
type BricksReport struct {
	Bricks        int // bricks read
	Moved         int // bricks that fell during settlement
	Removable     int // bricks removable without anything falling
	TotalCollapse int // sum of chain-reaction sizes over all bricks
}

// Bricks settles the pile and evaluates every brick's chain reaction
// concurrently. At debug level each load-bearing brick is logged by label.
func Bricks(ctx context.Context, bricks []brickpile.Brick, log *zap.Logger) (BricksReport, error) {
	start := time.Now()
	pile, err := brickpile.Settle(bricks)
	if err != nil {
		return BricksReport{}, err
	}
	log.Debug("bricks settled",
		zap.Int("bricks", pile.Len()),
		zap.Int("moved", pile.Moved()),
		zap.Int("height", pile.Height()),
		zap.Duration("elapsed", time.Since(start)))

	collapse := make([]int, pile.Len())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for b := range collapse {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			collapse[b] = pile.CollapseCount(b)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BricksReport{}, err
	}

	removable := 0
	for b, n := range collapse {
		if n == 0 {
			removable++
			continue
		}
		if log.Core().Enabled(zapcore.DebugLevel) {
			log.Debug("load-bearing brick",
				zap.String("label", brickpile.Label(b)),
				zap.String("brick", pile.Brick(b).String()),
				zap.Int("collapse", n))
		}
	}

	return BricksReport{
		Bricks:        pile.Len(),
		Moved:         pile.Moved(),
		Removable:     removable,
		TotalCollapse: Sum(collapse),
	}, nil
}
