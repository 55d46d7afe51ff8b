package runfit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseRecord parses a line of the form "<pattern> <r1,r2,…>", where the
// pattern is written over {'.', '#', '?'}.
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Record{}, fmt.Errorf("%w: %q: want 2 fields, got %d", ErrMalformedRecord, line, len(fields))
	}

	pattern := make([]Symbol, 0, len(fields[0]))
	for i, ch := range fields[0] {
		s, ok := SymbolOf(ch)
		if !ok {
			return Record{}, fmt.Errorf("%w: %q: bad symbol %q at %d", ErrMalformedRecord, line, ch, i)
		}
		pattern = append(pattern, s)
	}

	parts := strings.Split(fields[1], ",")
	runs := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Record{}, fmt.Errorf("%w: %q: run %q: %v", ErrMalformedRecord, line, p, err)
		}
		if n <= 0 {
			return Record{}, fmt.Errorf("%w: %q: run %d", ErrBadRun, line, n)
		}
		runs = append(runs, n)
	}

	return Record{Pattern: pattern, Runs: runs}, nil
}

// ParseRecords reads one record per non-blank line.
func ParseRecords(r io.Reader) ([]Record, error) {
	var records []Record
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rec, err := ParseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("runfit: reading records: %w", err)
	}

	return records, nil
}
