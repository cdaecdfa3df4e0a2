package field

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	maxBinaryFieldBits = 32 // products of two elements must fit in a uint64
	maxEnumerableBits  = 16
)

// BinaryField represents a binary finite field GF(2^n) for n <= 32
type BinaryField struct {
	n           int    // field extension degree
	irreducible uint64 // irreducible polynomial
}

// NewBinaryField creates a new binary field GF(2^n) with given irreducible polynomial.
// The polynomial must have degree exactly n; irreducibility is not checked.
func NewBinaryField(n int, irreducible uint64) (*BinaryField, error) {
	if n < 1 || n > maxBinaryFieldBits {
		return nil, errorf("NewBinaryField", ErrInvalidField, "degree %d outside [1, %d]", n, maxBinaryFieldBits)
	}
	if Degree(irreducible) != n {
		return nil, errorf("NewBinaryField", ErrInvalidField, "polynomial 0x%x does not have degree %d", irreducible, n)
	}
	return &BinaryField{
		n:           n,
		irreducible: irreducible,
	}, nil
}

// NewBinaryFieldGF2_8 creates GF(2^8) with irreducible polynomial x^8 + x^4 + x^3 + x + 1
func NewBinaryFieldGF2_8() *BinaryField {
	return &BinaryField{n: 8, irreducible: 0x11B}
}

// NewBinaryFieldGF2_32 creates GF(2^32) with irreducible polynomial x^32 + x^7 + x^3 + x^2 + 1
func NewBinaryFieldGF2_32() *BinaryField {
	// x^32 + x^7 + x^3 + x^2 + 1 = 0x10000008D
	return &BinaryField{n: 32, irreducible: 0x10000008D}
}

// BinaryFieldElement represents an element in a binary field
type BinaryFieldElement struct {
	value uint64       // polynomial representation
	field *BinaryField // reference to parent field
}

var (
	_ Field   = (*BinaryField)(nil)
	_ Element = (*BinaryFieldElement)(nil)
)

// Field interface implementation for BinaryField

// Zero returns the additive identity element (0)
func (f *BinaryField) Zero() Element {
	return &BinaryFieldElement{field: f}
}

// One returns the multiplicative identity element (1)
func (f *BinaryField) One() Element {
	return &BinaryFieldElement{value: 1, field: f}
}

// Random returns a uniformly random field element
func (f *BinaryField) Random() (Element, error) {
	val, err := rand.Int(rand.Reader, f.Order())
	if err != nil {
		return nil, err
	}
	return &BinaryFieldElement{
		value: val.Uint64(),
		field: f,
	}, nil
}

// FromUint64 creates a field element, reducing v modulo the irreducible polynomial
func (f *BinaryField) FromUint64(v uint64) Element {
	return &BinaryFieldElement{
		value: f.reduce(v),
		field: f,
	}
}

// Elements returns every element in ascending order. It panics for n > 16.
func (f *BinaryField) Elements() []Element {
	if f.n > maxEnumerableBits {
		panic(fmt.Sprintf("field %s is too large to enumerate", f))
	}
	result := make([]Element, 1<<f.n)
	for i := range result {
		result[i] = &BinaryFieldElement{value: uint64(i), field: f}
	}
	return result
}

// BitsPerElement returns the number of bits per field element
func (f *BinaryField) BitsPerElement() int {
	return f.n
}

// MinimalPolynomial returns the irreducible polynomial
func (f *BinaryField) MinimalPolynomial() uint64 {
	return f.irreducible
}

// Order returns 2^n
func (f *BinaryField) Order() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(f.n))
}

func (f *BinaryField) String() string {
	return fmt.Sprintf("GF(2^%d) mod 0x%x", f.n, f.irreducible)
}

// reduce performs polynomial reduction modulo the irreducible polynomial
func (f *BinaryField) reduce(val uint64) uint64 {
	for Degree(val) >= f.n {
		val ^= f.irreducible << (Degree(val) - f.n)
	}
	return val
}

// BinaryFieldElement methods implementing Element interface

func (e *BinaryFieldElement) other(b Element) *BinaryFieldElement {
	other, ok := b.(*BinaryFieldElement)
	if !ok || other.field.n != e.field.n || other.field.irreducible != e.field.irreducible {
		panic("incompatible field elements")
	}
	return other
}

// Add returns e + b in the field (XOR operation)
func (e *BinaryFieldElement) Add(b Element) Element {
	return &BinaryFieldElement{
		value: e.value ^ e.other(b).value,
		field: e.field,
	}
}

// Sub returns e - b in the field (same as Add in GF(2^n))
func (e *BinaryFieldElement) Sub(b Element) Element {
	return e.Add(b)
}

// Mul returns e * b in the field using polynomial multiplication with reduction
func (e *BinaryFieldElement) Mul(b Element) Element {
	return &BinaryFieldElement{
		value: e.field.reduce(polyMul(e.value, e.other(b).value)),
		field: e.field,
	}
}

// Div returns e / b in the field
func (e *BinaryFieldElement) Div(b Element) (Element, error) {
	inv, err := e.other(b).Inv()
	if err != nil {
		return nil, errorf("Div", ErrDivisionByZero, "%s / %s", e, b)
	}
	return e.Mul(inv), nil
}

// Inv returns the multiplicative inverse of e using extended Euclidean algorithm
func (e *BinaryFieldElement) Inv() (Element, error) {
	if e.IsZero() {
		return nil, errorf("Inv", ErrDivisionByZero, "zero element is not invertible")
	}

	// Extended Euclidean algorithm for polynomials over GF(2)
	oldR, r := e.field.irreducible, e.value
	oldS, s := uint64(0), uint64(1)

	for r != 0 {
		q, remainder := polyDivMod(oldR, r)
		oldR, r = r, remainder
		oldS, s = s, oldS^polyMul(q, s)
	}

	return &BinaryFieldElement{
		value: e.field.reduce(oldS),
		field: e.field,
	}, nil
}

// Square returns e * e
func (e *BinaryFieldElement) Square() Element {
	return e.Mul(e)
}

// Exp returns e^n using square-and-multiply
func (e *BinaryFieldElement) Exp(n uint64) Element {
	var result, base Element = e.field.One(), e
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
		n >>= 1
	}
	return result
}

// IsZero returns true if e equals zero
func (e *BinaryFieldElement) IsZero() bool {
	return e.value == 0
}

// Equal returns true if e equals b
func (e *BinaryFieldElement) Equal(b Element) bool {
	other, ok := b.(*BinaryFieldElement)
	if !ok {
		return false
	}
	return e.value == other.value && e.field.n == other.field.n &&
		e.field.irreducible == other.field.irreducible
}

// Degree returns the degree of e as a polynomial, -1 for zero
func (e *BinaryFieldElement) Degree() int {
	return Degree(e.value)
}

// Uint64 returns the bit pattern of e
func (e *BinaryFieldElement) Uint64() uint64 {
	return e.value
}

// String returns the string representation of e
func (e *BinaryFieldElement) String() string {
	return fmt.Sprintf("0x%x", e.value)
}

// polyDivMod performs polynomial division in GF(2)
func polyDivMod(a, b uint64) (uint64, uint64) {
	if b == 0 {
		panic("division by zero polynomial")
	}

	var quotient uint64
	remainder := a
	bDegree := Degree(b)

	for Degree(remainder) >= bDegree {
		shift := Degree(remainder) - bDegree
		quotient |= 1 << shift
		remainder ^= b << shift
	}

	return quotient, remainder
}

// polyMul performs carry-less multiplication in GF(2)[x]. Operands must have degree < 32.
func polyMul(a, b uint64) uint64 {
	var result uint64
	for b > 0 {
		if b&1 == 1 {
			result ^= a
		}
		a <<= 1
		b >>= 1
	}
	return result
}
