package brickpile

import (
	"errors"
	"fmt"

	"lukechampine.com/uint128"
)

// Sentinel errors for brickpile operations.
var (
	// ErrMalformedBrick indicates a line that is not "x1,y1,z1~x2,y2,z2".
	ErrMalformedBrick = errors.New("brickpile: malformed brick")
	// ErrNotAxisAligned indicates endpoints that differ on more than one axis.
	ErrNotAxisAligned = errors.New("brickpile: brick is not axis-aligned")
	// ErrBelowGround indicates a brick reaching z < 1; z = 0 is the ground.
	ErrBelowGround = errors.New("brickpile: brick must lie at z >= 1")
	// ErrFootprintTooWide indicates an XY bounding box with more cells than MaskBits.
	ErrFootprintTooWide = errors.New("brickpile: XY extent does not fit the footprint mask")
	// ErrPileTooTall indicates a settled pile that could exceed MaxHeight levels.
	ErrPileTooTall = errors.New("brickpile: pile exceeds the level limit")
	// ErrEmptyPile indicates Settle was called without bricks.
	ErrEmptyPile = errors.New("brickpile: no bricks to settle")
)

const (
	// MaskBits is the number of XY cells a Footprint can address.
	MaskBits = 128
	// MaxHeight is the most levels a settled pile may need.
	MaxHeight = 1 << 20
)

// Point is an integer position; Z grows upward.
type Point struct {
	X, Y, Z int
}

// String renders the point as "x,y,z".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Brick is an axis-aligned segment of unit cubes from Start to End
// inclusive. Normalize orders the endpoints so that Start.Z <= End.Z.
type Brick struct {
	Start, End Point
}

// String renders the brick in its input notation.
func (b Brick) String() string {
	return b.Start.String() + "~" + b.End.String()
}

// Normalize returns b with its lower endpoint first.
func (b Brick) Normalize() Brick {
	if b.Start.Z > b.End.Z {
		b.Start, b.End = b.End, b.Start
	}

	return b
}

// Bottom returns the lowest z level of b.
func (b Brick) Bottom() int { return min(b.Start.Z, b.End.Z) }

// Top returns the highest z level of b.
func (b Brick) Top() int { return max(b.Start.Z, b.End.Z) }

// Validate checks axis alignment and that b stays above the ground.
func (b Brick) Validate() error {
	differ := 0
	if b.Start.X != b.End.X {
		differ++
	}
	if b.Start.Y != b.End.Y {
		differ++
	}
	if b.Start.Z != b.End.Z {
		differ++
	}
	if differ > 1 {
		return fmt.Errorf("%w: %s", ErrNotAxisAligned, b)
	}
	if b.Bottom() < 1 {
		return fmt.Errorf("%w: %s", ErrBelowGround, b)
	}

	return nil
}

// Label names the brick at index idx the way the worked example does:
// A, B, …, Z, AA, AB, ….
func Label(idx int) string {
	var buf []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}

	return string(buf)
}

// Footprint is a set of XY cells, one bit per cell of a Plane.
// All set operations are O(1).
type Footprint struct {
	bits uint128.Uint128
}

// fullFootprint has every cell set; it stands for the ground.
var fullFootprint = Footprint{bits: uint128.Max}

// Intersects reports whether f and g share a cell.
func (f Footprint) Intersects(g Footprint) bool { return !f.bits.And(g.bits).IsZero() }

// Union returns f ∪ g.
func (f Footprint) Union(g Footprint) Footprint { return Footprint{bits: f.bits.Or(g.bits)} }

// Intersect returns f ∩ g.
func (f Footprint) Intersect(g Footprint) Footprint { return Footprint{bits: f.bits.And(g.bits)} }

// Without returns f \ g.
func (f Footprint) Without(g Footprint) Footprint {
	return Footprint{bits: f.bits.And(g.bits.Xor(uint128.Max))}
}

// IsEmpty reports whether f has no cells.
func (f Footprint) IsEmpty() bool { return f.bits.IsZero() }

// Cells returns the number of cells in f.
func (f Footprint) Cells() int { return f.bits.OnesCount() }

// String renders f as 32 hex digits, high word first.
func (f Footprint) String() string {
	return fmt.Sprintf("%016x%016x", f.bits.Hi, f.bits.Lo)
}

// Plane maps XY cells of a bounding box onto Footprint bits:
// bit (y-MinY)*Stride + (x-MinX).
type Plane struct {
	MinX, MinY int
	Stride     int // cells per row, maxX-minX+1
	Rows       int // maxY-minY+1
}

// NewPlane fits a Plane to the XY bounding box of bricks.
// Returns ErrFootprintTooWide if the box holds more than MaskBits cells.
func NewPlane(bricks []Brick) (Plane, error) {
	if len(bricks) == 0 {
		return Plane{}, ErrEmptyPile
	}
	minX, minY := bricks[0].Start.X, bricks[0].Start.Y
	maxX, maxY := minX, minY
	for _, b := range bricks {
		minX = min(minX, b.Start.X, b.End.X)
		maxX = max(maxX, b.Start.X, b.End.X)
		minY = min(minY, b.Start.Y, b.End.Y)
		maxY = max(maxY, b.Start.Y, b.End.Y)
	}
	p := Plane{MinX: minX, MinY: minY, Stride: maxX - minX + 1, Rows: maxY - minY + 1}
	if p.Stride < 1 || p.Rows < 1 || p.Stride > MaskBits || p.Rows > MaskBits || p.Stride*p.Rows > MaskBits {
		return Plane{}, fmt.Errorf("%w: %dx%d cells > %d", ErrFootprintTooWide, p.Stride, p.Rows, MaskBits)
	}

	return p, nil
}

// Footprint projects b onto the plane. b must lie inside the bounding box
// the plane was fitted to.
func (p Plane) Footprint(b Brick) Footprint {
	var f Footprint
	one := uint128.From64(1)
	for y := min(b.Start.Y, b.End.Y); y <= max(b.Start.Y, b.End.Y); y++ {
		for x := min(b.Start.X, b.End.X); x <= max(b.Start.X, b.End.X); x++ {
			bit := (y-p.MinY)*p.Stride + (x - p.MinX)
			f.bits = f.bits.Or(one.Lsh(uint(bit)))
		}
	}

	return f
}
