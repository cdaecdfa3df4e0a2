package field

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"math/bits"
)

// MinimalPolynomial is x^4 + x + 1, the reducing polynomial of GF(2^4)
const MinimalPolynomial = 0b10011

const (
	gf16Bits = 4
	gf16Size = 1 << gf16Bits
	gf16Mask = gf16Size - 1
)

// GF16 is the field GF(2^4) = GF(2)[x]/(x^4 + x + 1).
// It holds no state; the zero value is ready to use.
type GF16 struct{}

// NewGF16 returns the GF(2^4) field
func NewGF16() *GF16 {
	return &GF16{}
}

// GF16Element is an element of GF(2^4). Bit i of the value is the coefficient of x^i.
// Every constructor and operation keeps the value in [0, 15].
type GF16Element struct {
	v uint8
}

// NewGF16Element returns v reduced modulo the minimal polynomial
func NewGF16Element(v uint64) GF16Element {
	return Reduce(v)
}

// Degree returns the index of the highest set bit of a, or -1 for zero
func Degree(a uint64) int {
	return bits.Len64(a) - 1
}

// Reduce reduces a polynomial of any degree modulo x^4 + x + 1
// by cancelling its leading term until the degree drops below 4.
func Reduce(a uint64) GF16Element {
	for a >= gf16Size {
		a ^= MinimalPolynomial << (Degree(a) - gf16Bits)
	}
	return GF16Element{v: uint8(a)}
}

var (
	_ Field   = (*GF16)(nil)
	_ Element = GF16Element{}
)

// Field interface implementation for GF16

// Zero returns the additive identity element (0)
func (f *GF16) Zero() Element {
	return GF16Element{}
}

// One returns the multiplicative identity element (1)
func (f *GF16) One() Element {
	return GF16Element{v: 1}
}

// Random returns a uniformly random field element
func (f *GF16) Random() (Element, error) {
	val, err := rand.Int(rand.Reader, big.NewInt(gf16Size))
	if err != nil {
		return nil, err
	}
	return GF16Element{v: uint8(val.Uint64())}, nil
}

// FromUint64 creates a field element from a polynomial bit pattern
func (f *GF16) FromUint64(v uint64) Element {
	return Reduce(v)
}

// Elements returns all 16 elements in ascending order
func (f *GF16) Elements() []Element {
	result := make([]Element, gf16Size)
	for i := range result {
		result[i] = GF16Element{v: uint8(i)}
	}
	return result
}

// BitsPerElement returns the number of bits per field element
func (f *GF16) BitsPerElement() int {
	return gf16Bits
}

// MinimalPolynomial returns x^4 + x + 1
func (f *GF16) MinimalPolynomial() uint64 {
	return MinimalPolynomial
}

// Order returns 16
func (f *GF16) Order() *big.Int {
	return big.NewInt(gf16Size)
}

func (f *GF16) String() string {
	return fmt.Sprintf("GF(2^%d) mod 0x%x", gf16Bits, MinimalPolynomial)
}

// GF16Element methods implementing Element interface

func toGF16(b Element) GF16Element {
	other, ok := b.(GF16Element)
	if !ok {
		panic("incompatible field elements")
	}
	return other
}

// Add returns e + b in the field (XOR operation)
func (e GF16Element) Add(b Element) Element {
	return GF16Element{v: e.v ^ toGF16(b).v}
}

// Sub returns e - b in the field (same as Add in GF(2^n))
func (e GF16Element) Sub(b Element) Element {
	return e.Add(b)
}

// Mul returns e * b in the field
func (e GF16Element) Mul(b Element) Element {
	return e.mul(toGF16(b))
}

// mul is a carry-less multiply that folds x^4 back into x + 1 after every shift
func (e GF16Element) mul(b GF16Element) GF16Element {
	a, m := e.v, b.v
	var result uint8

	for m != 0 {
		if m&1 == 1 {
			result ^= a
		}
		a <<= 1
		if a&gf16Size != 0 {
			a ^= MinimalPolynomial
		}
		m >>= 1
	}

	return GF16Element{v: result & gf16Mask}
}

// Div returns e / b in the field
func (e GF16Element) Div(b Element) (Element, error) {
	other := toGF16(b)
	if other.v == 0 {
		return nil, errorf("Div", ErrDivisionByZero, "%s / %s", e, other)
	}
	return e.mul(other.inv()), nil
}

// Inv returns the multiplicative inverse of e
func (e GF16Element) Inv() (Element, error) {
	if e.v == 0 {
		return nil, errorf("Inv", ErrDivisionByZero, "zero element is not invertible")
	}
	return e.inv(), nil
}

// inv runs a Euclid-style reduction of e against the minimal polynomial,
// tracking in c1 the multiplier that turns e into the current remainder.
// e must be nonzero.
func (e GF16Element) inv() GF16Element {
	a, pol := uint64(e.v), uint64(MinimalPolynomial)
	c1, c2 := uint64(1), uint64(0)
	diff := Degree(a) - gf16Bits

	for a != 1 {
		if diff < 0 {
			a, pol = pol, a
			c1, c2 = c2, c1
			diff = -diff
		}

		a ^= pol << diff
		c1 ^= c2 << diff

		a &= gf16Mask
		c1 &= gf16Mask

		diff = Degree(a) - Degree(pol)
	}

	return GF16Element{v: uint8(c1)}
}

// Square returns e * e
func (e GF16Element) Square() Element {
	return e.mul(e)
}

// Exp returns e^n using square-and-multiply
func (e GF16Element) Exp(n uint64) Element {
	result, base := GF16Element{v: 1}, e
	for n > 0 {
		if n&1 == 1 {
			result = result.mul(base)
		}
		base = base.mul(base)
		n >>= 1
	}
	return result
}

// IsZero returns true if e equals zero
func (e GF16Element) IsZero() bool {
	return e.v == 0
}

// Equal returns true if e equals b
func (e GF16Element) Equal(b Element) bool {
	other, ok := b.(GF16Element)
	if !ok {
		return false
	}
	return e.v == other.v
}

// Degree returns the degree of e as a polynomial, -1 for zero
func (e GF16Element) Degree() int {
	return Degree(uint64(e.v))
}

// Uint64 returns the bit pattern of e
func (e GF16Element) Uint64() uint64 {
	return uint64(e.v)
}

// String returns the string representation of e
func (e GF16Element) String() string {
	return fmt.Sprintf("0x%x", e.v)
}
