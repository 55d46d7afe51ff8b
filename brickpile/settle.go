package brickpile

import (
	"cmp"
	"fmt"
	"slices"
)

// Pile is a settled arrangement of bricks together with the per-level
// occupancy tables used by the collapse queries. A Pile is immutable after
// Settle returns and safe for concurrent readers.
type Pile struct {
	plane      Plane
	bricks     []Brick     // settled positions, input order
	prints     []Footprint // XY footprint per brick
	drops      []int       // levels each brick fell
	levelMask  []Footprint // union of footprints occupying level z; level 0 is the ground
	levelBrick [][]int     // bricks occupying level z, in settle order
}

// Settle lets every brick fall straight down until it rests on the ground
// or on another brick. The input slice is not modified.
//
// Bricks are dropped in ascending order of their original bottom level,
// ties kept in input order. A brick at bottom z stays where it is as soon as
// its footprint overlaps the occupancy of level z-1; the ground (level 0)
// overlaps everything.
//
// Level tables cover only the settled pile: its height is at most the lower
// of the tallest original top and the summed brick heights. Empty levels
// above the pile are skipped, not scanned.
//
// Returns ErrEmptyPile for no bricks, a Validate error for any invalid brick,
// ErrFootprintTooWide when the XY extent exceeds MaskBits cells and
// ErrPileTooTall when the settled height could exceed MaxHeight.
//
// Complexity: O(n log n + n·H), H the settled height bound.
func Settle(bricks []Brick) (*Pile, error) {
	if len(bricks) == 0 {
		return nil, ErrEmptyPile
	}
	for i, b := range bricks {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("brick %s: %w", Label(i), err)
		}
	}
	plane, err := NewPlane(bricks)
	if err != nil {
		return nil, err
	}

	n := len(bricks)
	p := &Pile{
		plane:  plane,
		bricks: make([]Brick, n),
		prints: make([]Footprint, n),
		drops:  make([]int, n),
	}
	maxTop, stacked := 0, 0
	for i, b := range bricks {
		p.bricks[i] = b.Normalize()
		p.prints[i] = plane.Footprint(b)
		maxTop = max(maxTop, b.Top())
		if stacked <= MaxHeight {
			stacked += min(b.Top()-b.Bottom()+1, MaxHeight+1)
		}
	}
	height := min(maxTop, stacked)
	if height > MaxHeight {
		return nil, fmt.Errorf("%w: up to %d levels > %d", ErrPileTooTall, height, MaxHeight)
	}
	p.levelMask = make([]Footprint, height+1)
	p.levelBrick = make([][]int, height+1)
	p.levelMask[0] = fullFootprint

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(p.bricks[a].Bottom(), p.bricks[b].Bottom())
	})

	top := 0 // highest occupied level so far
	for _, i := range order {
		b := p.bricks[i]
		z := min(b.Bottom(), top+1)
		for !p.prints[i].Intersects(p.levelMask[z-1]) {
			z--
		}
		drop := b.Bottom() - z
		b.Start.Z -= drop
		b.End.Z -= drop
		p.bricks[i] = b
		p.drops[i] = drop
		top = max(top, b.Top())
		for lvl := b.Bottom(); lvl <= b.Top(); lvl++ {
			p.levelMask[lvl] = p.levelMask[lvl].Union(p.prints[i])
			p.levelBrick[lvl] = append(p.levelBrick[lvl], i)
		}
	}

	return p, nil
}

// Len returns the number of bricks.
func (p *Pile) Len() int { return len(p.bricks) }

// Brick returns the settled position of brick i.
func (p *Pile) Brick(i int) Brick { return p.bricks[i] }

// Bricks returns a copy of the settled bricks in input order.
func (p *Pile) Bricks() []Brick { return slices.Clone(p.bricks) }

// Drops returns a copy of the number of levels each brick fell.
func (p *Pile) Drops() []int { return slices.Clone(p.drops) }

// Footprint returns the XY footprint of brick i.
func (p *Pile) Footprint(i int) Footprint { return p.prints[i] }

// Plane returns the XY layout the footprints are expressed in.
func (p *Pile) Plane() Plane { return p.plane }

// Height returns the highest level the tables cover. It is at least the top
// of the highest settled brick.
func (p *Pile) Height() int { return len(p.levelMask) - 1 }

// Moved returns how many bricks fell at least one level.
func (p *Pile) Moved() int {
	moved := 0
	for _, d := range p.drops {
		if d > 0 {
			moved++
		}
	}

	return moved
}
