// Package lvpuzzle is a small set of combinatorial and geometric puzzle
// kernels with a command-line front end.
//
// Packages:
//
//	runfit/     – counts the ways run lengths fit a pattern of set, free and
//	              unknown cells (memoised, with a brute-force oracle).
//	gridgraph/  – rectangular digit grids: parsing, bounds, headings and steps.
//	dijkstra/   – cheapest walk across a grid when straight runs must last
//	              between MinRun and MaxRun steps.
//	brickpile/  – settles falling bricks on 128-bit footprint masks and
//	              answers removal and chain-reaction queries.
//	internal/   – config (YAML), logging (zap) and solve (errgroup fan-out).
//	cmd/lvpuzzle – the cobra CLI: springs, crucible and bricks.
//
// Kernels are pure and single-threaded: they take parsed values, return
// values or sentinel errors and never log. Concurrency lives in
// internal/solve.
//
// Quick start:
//
//	go run ./cmd/lvpuzzle springs input/day12.txt
//	go run ./cmd/lvpuzzle crucible --part 2 input/day17.txt
//	go run ./cmd/lvpuzzle bricks -v input/day22.txt
package lvpuzzle
