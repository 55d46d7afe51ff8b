package runfit

import (
	"fmt"
	"math/bits"
	"slices"
)

// RunsOf returns the lengths of the maximal Set runs of a fully resolved
// pattern. ok is false if the pattern still contains Unknown cells.
func RunsOf(pattern []Symbol) (runs []int, ok bool) {
	runs = []int{}
	length := 0
	for _, s := range pattern {
		switch s {
		case Set:
			length++
		case Unknown:
			return nil, false
		default:
			if length > 0 {
				runs = append(runs, length)
				length = 0
			}
		}
	}
	if length > 0 {
		runs = append(runs, length)
	}

	return runs, true
}

// CountEnumerated counts arrangements by trying every assignment of the
// Unknown cells. Only assignments that place exactly the missing number of
// Set cells are resolved and compared. It exists as a reference for Count.
//
// Complexity: O(2^u · n) for u unknown cells; u is capped by
// MaxEnumerateUnknowns.
func CountEnumerated(rec Record) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	var unknowns []int
	known := 0
	for i, s := range rec.Pattern {
		switch s {
		case Unknown:
			unknowns = append(unknowns, i)
		case Set:
			known++
		}
	}
	if len(unknowns) > MaxEnumerateUnknowns {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyUnknowns, len(unknowns), MaxEnumerateUnknowns)
	}

	want := 0
	for _, r := range rec.Runs {
		want += r
	}
	missing := want - known
	if missing < 0 || missing > len(unknowns) {
		return 0, nil
	}

	resolved := slices.Clone(rec.Pattern)
	var total int64
	for mask := uint32(0); mask < 1<<len(unknowns); mask++ {
		if bits.OnesCount32(mask) != missing {
			continue
		}
		for b, pos := range unknowns {
			if mask&(1<<b) != 0 {
				resolved[pos] = Set
			} else {
				resolved[pos] = Free
			}
		}
		if runs, _ := RunsOf(resolved); slices.Equal(runs, rec.Runs) {
			total++
		}
	}

	return total, nil
}
