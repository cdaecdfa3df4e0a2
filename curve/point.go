package curve

import (
	"fmt"

	"github.com/01-00-11-00/gf-16-elliptic-curve-operations/field"
)

// Point is either the point at infinity or an affine point (x, y).
// The zero value is the point at infinity.
type Point struct {
	x, y   field.Element
	affine bool
}

// Infinity returns the identity element of the curve group
func Infinity() Point {
	return Point{}
}

// NewPoint returns the affine point (x, y). It does not check curve membership.
func NewPoint(x, y field.Element) Point {
	return Point{x: x, y: y, affine: true}
}

// IsInfinity reports whether p is the identity
func (p Point) IsInfinity() bool {
	return !p.affine
}

// X returns the x-coordinate, nil for the point at infinity
func (p Point) X() field.Element {
	return p.x
}

// Y returns the y-coordinate, nil for the point at infinity
func (p Point) Y() field.Element {
	return p.y
}

// Equal returns true if p and q are the same point
func (p Point) Equal(q Point) bool {
	if !p.affine || !q.affine {
		return p.affine == q.affine
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

func (p Point) String() string {
	if !p.affine {
		return "O"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
