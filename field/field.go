package field

import "math/big"

// Element represents an element in a binary finite field
type Element interface {
	// Add returns a + b in the field
	Add(b Element) Element

	// Sub returns a - b in the field
	Sub(b Element) Element

	// Mul returns a * b in the field
	Mul(b Element) Element

	// Div returns a / b in the field, or an error if b is zero
	Div(b Element) (Element, error)

	// Inv returns the multiplicative inverse of a, or an error if a is zero
	Inv() (Element, error)

	// Square returns a * a
	Square() Element

	// Exp returns a^n for n >= 0
	Exp(n uint64) Element

	// IsZero returns true if the element is the zero element
	IsZero() bool

	// Equal returns true if two elements are equal
	Equal(b Element) bool

	// Degree returns the degree of the element as a polynomial over GF(2), -1 for zero
	Degree() int

	// Uint64 returns the bit pattern of the polynomial
	Uint64() uint64

	// String returns the string representation of the element
	String() string
}

// Field represents a binary finite field GF(2^n)
type Field interface {
	// Zero returns the zero element of the field
	Zero() Element

	// One returns the one element of the field
	One() Element

	// Random returns a random element in the field
	Random() (Element, error)

	// FromUint64 creates a field element from a polynomial bit pattern,
	// reducing it modulo the minimal polynomial
	FromUint64(v uint64) Element

	// Elements returns every element of the field in ascending order
	Elements() []Element

	// BitsPerElement returns the number of bits per field element
	BitsPerElement() int

	// MinimalPolynomial returns the reducing polynomial as a bit pattern
	MinimalPolynomial() uint64

	// Order returns the order (size) of the field
	Order() *big.Int

	// String returns a description of the field
	String() string
}
