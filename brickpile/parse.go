package brickpile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseBrick parses "x1,y1,z1~x2,y2,z2" into a normalised, validated Brick.
func ParseBrick(line string) (Brick, error) {
	lhs, rhs, ok := strings.Cut(strings.TrimSpace(line), "~")
	if !ok {
		return Brick{}, fmt.Errorf("%w: %q", ErrMalformedBrick, line)
	}
	start, err := parsePoint(lhs)
	if err != nil {
		return Brick{}, fmt.Errorf("%w: %q", err, line)
	}
	end, err := parsePoint(rhs)
	if err != nil {
		return Brick{}, fmt.Errorf("%w: %q", err, line)
	}
	b := Brick{Start: start, End: end}
	if err = b.Validate(); err != nil {
		return Brick{}, err
	}

	return b.Normalize(), nil
}

func parsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Point{}, ErrMalformedBrick
	}
	var v [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Point{}, ErrMalformedBrick
		}
		v[i] = n
	}

	return Point{X: v[0], Y: v[1], Z: v[2]}, nil
}

// ParseBricks reads one brick per line from r. Blank lines are skipped.
// Errors carry the 1-based line number.
func ParseBricks(r io.Reader) ([]Brick, error) {
	var bricks []Brick
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		b, err := ParseBrick(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		bricks = append(bricks, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("brickpile: read input: %w", err)
	}

	return bricks, nil
}
