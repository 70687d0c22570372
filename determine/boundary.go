package determine

import (
	"gonum.org/v1/gonum/floats"

	"github.com/mikeboracci/gauge/line"
)

// tangencyTolerance bounds how far apart two values may be and still count
// as touching for CmpEq's purposes. Without this slack, an intersection
// that real arithmetic places exactly on a boundary can be missed by
// floating-point arithmetic and misclassified as a strict inequality
// (spec: "Float robustness... without it, intersections detected by real
// arithmetic can be missed by floating-point arithmetic at exact
// tangencies").
const tangencyTolerance = 1e-9

// Side identifies which boundary a Cursor walks.
type Side int

const (
	// Ceiling walks the maximum: values must stay <= it.
	Ceiling Side = iota
	// Floor walks the minimum: values must stay >= it.
	Floor
)

// Cursor walks a finite sequence of lines representing one boundary curve,
// in the direction its Side implies (spec.md §4.3).
type Cursor struct {
	lines []line.Line
	idx   int
	side  Side
}

// NewCursor builds a Cursor over lines, which must be non-empty, ordered by
// time, with each line's Until equal to the next line's Since.
func NewCursor(lines []line.Line, side Side) *Cursor {
	if len(lines) == 0 {
		panic("determine: NewCursor requires at least one line")
	}
	return &Cursor{lines: lines, side: side}
}

// Line returns the line the cursor currently sits on.
func (c *Cursor) Line() line.Line { return c.lines[c.idx] }

// Walk advances to the next line, if any remain.
func (c *Cursor) Walk() {
	if c.idx+1 < len(c.lines) {
		c.idx++
	}
}

// Cmp reports whether x is strictly on the more restrictive side of y: x <
// y for the ceiling, x > y for the floor.
func (c *Cursor) Cmp(x, y float64) bool {
	if c.side == Ceiling {
		return x < y
	}
	return x > y
}

// CmpEq tolerates exact-touch classification: values within
// tangencyTolerance of each other count as equal, regardless of Cmp.
func (c *Cursor) CmpEq(x, y float64) bool {
	return floats.EqualWithinAbs(x, y, tangencyTolerance) || c.Cmp(x, y)
}

// Best returns the more restrictive of a and b: min for the ceiling, max
// for the floor.
func (c *Cursor) Best(a, b float64) float64 {
	if c.Cmp(a, b) {
		return a
	}
	return b
}
