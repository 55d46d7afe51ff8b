// Package brickpile settles falling bricks and answers removal queries on
// the settled pile.
//
// A brick is an axis-aligned segment of unit cubes given by two inclusive
// endpoints "x1,y1,z1~x2,y2,z2". Level z = 0 is the ground; every brick
// starts at z ≥ 1.
//
// Settlement:
//
//   - Bricks fall in ascending order of their original bottom level, ties in
//     input order.
//   - Each brick keeps its XY position and descends until the level under its
//     bottom shares a cell with its footprint.
//
// Queries on the settled Pile:
//
//   - Supporters / Supported – the direct resting relation.
//   - Removable / CountRemovable – bricks whose removal drops nothing.
//   - CollapseCount / TotalCollapse – how many bricks fall in the chain
//     reaction after a single removal.
//
// Footprints:
//
// Every brick is projected onto the XY bounding box of the input, one bit per
// cell, in a 128-bit mask (lukechampine.com/uint128). Level occupancy is the
// union of the footprints present at that level, so each support test is a
// single AND. Inputs whose bounding box exceeds 128 cells are rejected with
// ErrFootprintTooWide rather than truncated.
//
// Example:
//
//	bricks, _ := brickpile.ParseBricks(r)
//	pile, _ := brickpile.Settle(bricks)
//	fmt.Println(pile.CountRemovable(), pile.TotalCollapse())
package brickpile
