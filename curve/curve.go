// Package curve implements the group law of binary elliptic curves
// y^2 + xy = x^3 + a*x^2 + b in affine coordinates.
//
// Only the coefficient a enters the addition formulas, so a Curve carries a
// alone; b is needed only to test membership or enumerate points.
package curve

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/01-00-11-00/gf-16-elliptic-curve-operations/field"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("curve")

// maxEnumerableBits bounds Points to at most 2^16 candidate pairs
const maxEnumerableBits = 8

// Curve is a binary elliptic curve with coefficient a over a field of characteristic 2
type Curve struct {
	field field.Field
	a     field.Element
}

// New creates the curve with coefficient a over f
func New(f field.Field, a field.Element) *Curve {
	return &Curve{
		field: f,
		a:     f.FromUint64(a.Uint64()),
	}
}

// NewGF16 creates the curve with coefficient a over GF(2^4)
func NewGF16(a uint64) *Curve {
	f := field.NewGF16()
	return New(f, f.FromUint64(a))
}

// A returns the curve coefficient a
func (c *Curve) A() field.Element {
	return c.a
}

// Field returns the field the curve is defined over
func (c *Curve) Field() field.Field {
	return c.field
}

func (c *Curve) String() string {
	return fmt.Sprintf("y^2 + xy = x^3 + %s*x^2 + b over %s", c.a, c.field)
}

// Neg returns -p = (x, x + y)
func (c *Curve) Neg(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return NewPoint(p.x, p.x.Add(p.y))
}

// Add returns p + q.
//
// Both points must lie on the curve. Off-curve points can make the chord slope
// undefined, which is reported as field.ErrDivisionByZero.
func (c *Curve) Add(p, q Point) (Point, error) {
	switch {
	case p.IsInfinity():
		return q, nil
	case q.IsInfinity():
		return p, nil
	case p.Equal(c.Neg(q)), q.Equal(c.Neg(p)):
		return Infinity(), nil
	case p.Equal(q):
		return c.double(p)
	}

	// m = (y1 + y2) / (x1 + x2)
	m, err := q.y.Add(p.y).Div(q.x.Add(p.x))
	if err != nil {
		return Infinity(), wrap("Add", err)
	}

	x := m.Square().Add(m).Add(c.a).Add(p.x).Add(q.x)
	y := m.Mul(x.Add(p.x)).Add(x).Add(p.y)

	return NewPoint(x, y), nil
}

// Double returns p + p
func (c *Curve) Double(p Point) (Point, error) {
	if p.IsInfinity() || p.Equal(c.Neg(p)) {
		return Infinity(), nil
	}
	return c.double(p)
}

// double applies the tangent formula; p must be affine with x != 0
func (c *Curve) double(p Point) (Point, error) {
	// m = x + y / x
	q, err := p.y.Div(p.x)
	if err != nil {
		return Infinity(), wrap("Double", err)
	}
	m := p.x.Add(q)

	x := m.Square().Add(m).Add(c.a)
	y := m.Mul(p.x).Add(m.Mul(x)).Add(x).Add(p.y)

	return NewPoint(x, y), nil
}

// ScalarMult returns k*p using left-to-right double-and-add. k must be at least 1.
func (c *Curve) ScalarMult(p Point, k int) (Point, error) {
	if k < 1 {
		return Infinity(), wrap("ScalarMult", fmt.Errorf("%w: got %d", ErrInvalidScalar, k))
	}

	// The leading bit of k is accounted for by starting from p
	result := p
	for i := bits.Len(uint(k)) - 2; i >= 0; i-- {
		var err error
		if result, err = c.Add(result, result); err != nil {
			return Infinity(), wrap("ScalarMult", err)
		}
		if (k>>i)&1 == 1 {
			if result, err = c.Add(result, p); err != nil {
				return Infinity(), wrap("ScalarMult", err)
			}
		}
	}

	return result, nil
}

// Order returns the smallest k >= 1 with k*p = O, found by repeated addition.
// The search gives up with ErrNoFiniteOrder past the Hasse bound of the field.
func (c *Curve) Order(p Point) (int, error) {
	bound := HasseBound(c.field.Order())

	order, acc := 1, p
	for !acc.IsInfinity() {
		if order >= bound {
			log.Warnf("point %s did not reach the identity after %d additions", p, order)
			return 0, wrap("Order", fmt.Errorf("%w: %s", ErrNoFiniteOrder, p))
		}

		var err error
		if acc, err = c.Add(acc, p); err != nil {
			return 0, wrap("Order", err)
		}
		order++
	}

	log.Debugf("order of %s is %d", p, order)
	return order, nil
}

// Contains reports whether p satisfies y^2 + xy = x^3 + a*x^2 + b.
// The point at infinity is on every curve.
func (c *Curve) Contains(p Point, b field.Element) bool {
	if p.IsInfinity() {
		return true
	}
	x2 := p.x.Square()
	lhs := p.y.Square().Add(p.x.Mul(p.y))
	rhs := x2.Mul(p.x).Add(c.a.Mul(x2)).Add(c.field.FromUint64(b.Uint64()))
	return lhs.Equal(rhs)
}

// Points returns every affine point of y^2 + xy = x^3 + a*x^2 + b, sorted by (x, y).
// The group order is len(points) + 1.
func (c *Curve) Points(b field.Element) ([]Point, error) {
	if n := c.field.BitsPerElement(); n > maxEnumerableBits {
		return nil, wrap("Points", fmt.Errorf("%w: %d bits", ErrFieldTooLarge, n))
	}

	elements := c.field.Elements()
	var points []Point
	for _, x := range elements {
		for _, y := range elements {
			if p := NewPoint(x, y); c.Contains(p, b) {
				points = append(points, p)
			}
		}
	}

	log.Debugf("found %d affine points on %s with b=%s", len(points), c, b)
	return points, nil
}

// HasseBound returns q + 1 + floor(2*sqrt(q)), the largest possible number of
// points on an elliptic curve over a field of order q.
func HasseBound(q *big.Int) int {
	twoSqrt := new(big.Int).Sqrt(new(big.Int).Lsh(q, 2))
	bound := new(big.Int).Add(q, big.NewInt(1))
	return int(bound.Add(bound, twoSqrt).Int64())
}
