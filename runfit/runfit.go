package runfit

// Count returns the number of ways to resolve the Unknown cells of
// rec.Pattern so that its runs of Set cells equal rec.Runs in order.
//
// Returns an error only when rec fails Validate; the counting itself
// cannot fail.
//
// Complexity:
//
//   - Time:  O(n · k · max(R)) states, O(1) work per state. Records whose
//     runs and separators exceed n cells return 0 before any table is built.
//   - Space: same as time for DenseTable; visited states only for HashMemo.
func Count(rec Record, opts ...Option) (int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := rec.Validate(); err != nil {
		return 0, err
	}
	if !fits(len(rec.Pattern), rec.Runs) {
		return 0, nil
	}

	c := &counter{
		pattern: rec.Pattern,
		runs:    rec.Runs,
	}
	if cfg.MemoryMode == HashMemo {
		c.memo = make(hashMemo)
	} else {
		c.memo = newDenseMemo(len(rec.Pattern), rec.Runs)
	}

	return c.count(0, 0, 0), nil
}

// fits reports whether the runs and their separators can fit in n cells.
// Once it holds, every run is shorter than n+1, which bounds the memo.
func fits(n int, runs []int) bool {
	need := len(runs) - 1
	for _, r := range runs {
		if r > n {
			return false
		}
		need += r
		if need > n {
			return false
		}
	}

	return true
}

// counter holds the inputs and memo of a single Count call.
type counter struct {
	pattern []Symbol
	runs    []int
	memo    memo
}

// count returns the number of completions from position i with g runs
// already opened and r cells still owed to the open run.
func (c *counter) count(i, g, r int) int64 {
	if i >= len(c.pattern) {
		if r == 0 && g == len(c.runs) {
			return 1
		}

		return 0
	}
	if v, ok := c.memo.get(i, g, r); ok {
		return v
	}

	var total int64
	switch c.pattern[i] {
	case Free:
		total = c.asFree(i, g, r)
	case Set:
		total = c.asSet(i, g, r)
	case Unknown:
		total = c.asFree(i, g, r) + c.asSet(i, g, r)
	}
	c.memo.put(i, g, r, total)

	return total
}

// asFree reads position i as empty. An open run cannot be interrupted.
func (c *counter) asFree(i, g, r int) int64 {
	if r > 0 {
		return 0
	}

	return c.count(i+1, g, 0)
}

// asSet reads position i as filled, continuing the open run or opening run g.
func (c *counter) asSet(i, g, r int) int64 {
	var rem int
	switch {
	case r > 0:
		rem = r - 1
	case g < len(c.runs):
		rem = c.runs[g] - 1
		g++
	default:
		return 0
	}
	if rem > 0 {
		return c.count(i+1, g, rem)
	}

	return c.closeRun(i+1, g)
}

// closeRun consumes the separator that must follow a completed run.
// Position j is either the end of the pattern or a cell that reads as Free.
func (c *counter) closeRun(j, g int) int64 {
	if j >= len(c.pattern) {
		return c.count(j, g, 0)
	}
	if c.pattern[j] == Set {
		return 0
	}

	return c.count(j+1, g, 0)
}

// memo stores completion counts per (i, g, r) state.
type memo interface {
	get(i, g, r int) (int64, bool)
	put(i, g, r int, v int64)
}

// denseMemo is a flat (n+1)×(k+1)×(max(R)+1) table; -1 marks unset cells.
type denseMemo struct {
	groups int // k+1
	rems   int // max(R)+1
	cells  []int64
}

func newDenseMemo(n int, runs []int) *denseMemo {
	maxRun := 0
	for _, r := range runs {
		if r > maxRun {
			maxRun = r
		}
	}
	m := &denseMemo{
		groups: len(runs) + 1,
		rems:   maxRun + 1,
	}
	m.cells = make([]int64, (n+1)*m.groups*m.rems)
	for i := range m.cells {
		m.cells[i] = -1
	}

	return m
}

func (m *denseMemo) index(i, g, r int) int {
	return (i*m.groups+g)*m.rems + r
}

func (m *denseMemo) get(i, g, r int) (int64, bool) {
	v := m.cells[m.index(i, g, r)]

	return v, v >= 0
}

func (m *denseMemo) put(i, g, r int, v int64) {
	m.cells[m.index(i, g, r)] = v
}

// stateKey identifies a counting state in hashMemo.
type stateKey struct {
	i, g, r int
}

// hashMemo stores only visited states.
type hashMemo map[stateKey]int64

func (m hashMemo) get(i, g, r int) (int64, bool) {
	v, ok := m[stateKey{i, g, r}]

	return v, ok
}

func (m hashMemo) put(i, g, r int, v int64) {
	m[stateKey{i, g, r}] = v
}
