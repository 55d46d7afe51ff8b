package brickpile

// CollapseCount returns how many other bricks would fall, directly or in a
// chain, if brick b were removed from the settled pile.
//
// The scan keeps a support mask: the cells of the level below that are still
// held up. It starts from the occupancy of b's top level without b itself
// and walks upward one level at a time. At each level the mask is narrowed
// to what the previous level still occupies; a brick that overlaps the mask
// stays and adds its footprint, a brick that does not falls and clears its
// footprint. Bricks that span several levels are judged at their lowest.
//
// Complexity: O(H·B) for H levels above b and B bricks per level, each step
// a constant-time mask operation.
func (p *Pile) CollapseCount(b int) int {
	top := p.bricks[b].Top()
	support := p.levelMask[top].Without(p.prints[b])
	fallen := make([]bool, len(p.bricks))
	count := 0
	for z := top + 1; z < len(p.levelMask); z++ {
		support = support.Intersect(p.levelMask[z-1])
		for _, u := range p.levelBrick[z] {
			if fallen[u] {
				continue
			}
			if p.prints[u].Intersects(support) {
				support = support.Union(p.prints[u])
				continue
			}
			fallen[u] = true
			support = support.Without(p.prints[u])
			count++
		}
	}

	return count
}

// Removable reports whether removing brick b makes nothing fall.
func (p *Pile) Removable(b int) bool {
	for _, u := range p.Supported(b) {
		if len(p.Supporters(u)) == 1 {
			return false
		}
	}

	return true
}

// CountRemovable returns how many bricks can be removed individually
// without any other brick falling.
func (p *Pile) CountRemovable() int {
	n := 0
	for b := range p.bricks {
		if p.Removable(b) {
			n++
		}
	}

	return n
}

// TotalCollapse returns the sum of CollapseCount over every brick.
func (p *Pile) TotalCollapse() int {
	total := 0
	for b := range p.bricks {
		total += p.CollapseCount(b)
	}

	return total
}

// Supporters returns the bricks b rests on directly, in settle order.
// A brick on the ground has none.
func (p *Pile) Supporters(b int) []int {
	below := p.bricks[b].Bottom() - 1
	if below < 1 {
		return nil
	}
	var out []int
	for _, u := range p.levelBrick[below] {
		if p.bricks[u].Top() == below && p.prints[u].Intersects(p.prints[b]) {
			out = append(out, u)
		}
	}

	return out
}

// Supported returns the bricks resting directly on b, in settle order.
func (p *Pile) Supported(b int) []int {
	above := p.bricks[b].Top() + 1
	if above >= len(p.levelBrick) {
		return nil
	}
	var out []int
	for _, u := range p.levelBrick[above] {
		if p.bricks[u].Bottom() == above && p.prints[u].Intersects(p.prints[b]) {
			out = append(out, u)
		}
	}

	return out
}
