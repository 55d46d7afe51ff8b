// Package runfit counts the ways an ordered list of run lengths fits into a
// partially specified pattern of filled and empty cells.
//
// A pattern is a sequence over three symbols:
//
//	'.'  Free     – the cell is empty.
//	'#'  Set      – the cell is filled.
//	'?'  Unknown  – the cell may be either.
//
// A run is a maximal block of consecutive Set cells. Count returns the number
// of ways to resolve every Unknown cell so that the runs of the resolved
// pattern, read left to right, equal the requested run lengths exactly.
//
// Algorithm:
//
//   - The decision walks the pattern once, carrying the state (i, g, r):
//     i is the current position, g the index of the next run to open and
//     r the number of Set cells still owed to the run that is open (0 when
//     no run is open).
//   - A Free cell is legal only while no run is open.
//   - A Set cell either continues the open run or opens run g.
//   - When a run is completed the following cell must act as a separator,
//     so two runs never merge.
//   - Unknown cells sum both readings.
//
// Every state is memoised, which replaces the 2^u enumeration over u unknown
// cells with O(n · k · max(R)) work.
//
// Memory modes:
//
//   - DenseTable (default) – a flat (n+1)×(k+1)×(max(R)+1) table. Preferred
//     for long, unfolded patterns.
//   - HashMemo             – a map keyed by the state tuple; smaller when the
//     reachable state space is sparse.
//
// CountEnumerated keeps the brute-force enumeration as a reference oracle for
// small records.
//
// Errors (sentinel):
//
//   - ErrMalformedRecord  – a line does not follow "<pattern> <r1,r2,…>".
//   - ErrBadRun           – a run length is zero or negative.
//   - ErrBadSymbol        – a pattern holds a value outside Free/Set/Unknown.
//   - ErrBadUnfold        – Unfold was asked for fewer than one copy.
//   - ErrTooManyUnknowns  – CountEnumerated would exceed MaxEnumerateUnknowns.
//
// Example:
//
//	rec, _ := runfit.ParseRecord("?###???????? 3,2,1")
//	n, _ := runfit.Count(rec)                    // 10
//	big, _ := rec.Unfold(runfit.UnfoldFactor)
//	n5, _ := runfit.Count(big)                   // 506250
package runfit
