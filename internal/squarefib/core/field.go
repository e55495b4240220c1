// Package core implements the finite-field, polynomial, and Merkle-tree
// primitives the prover is built from.
package core

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Modulus is the field prime p = 3*2^30 + 1.
const Modulus uint64 = 3221225473

// Generator is a fixed primitive root of Fp*. Its choice must be
// reproducible since it is baked into every proof; 5 is the smallest
// integer that generates the full multiplicative group of order p-1.
const Generator uint64 = 5

// Field is GF(p) for the fixed p used throughout the prover. There is
// exactly one Field value in practice (DefaultField below); the type
// exists so FieldElement can carry its modulus and arithmetic can detect
// operands from mismatched fields (it panics on them).
type Field struct {
	modulus *big.Int
}

// FieldElement is a value in [0, p) together with a reference to its Field.
type FieldElement struct {
	field *Field
	value *big.Int
}

// NewField constructs the field of the given prime modulus.
func NewField(modulus uint64) *Field {
	return &Field{modulus: new(big.Int).SetUint64(modulus)}
}

// DefaultField is Fp for p = 3*2^30+1, the only field this prover uses.
var DefaultField = NewField(Modulus)

// PrimitiveRoot is DefaultField's fixed generator w.
var PrimitiveRoot = DefaultField.NewElementFromUint64(Generator)

// Modulus returns p as a big.Int copy.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// NewElement reduces value mod p and wraps it as a FieldElement.
func (f *Field) NewElement(value *big.Int) *FieldElement {
	v := new(big.Int).Mod(value, f.modulus)
	return &FieldElement{field: f, value: v}
}

// NewElementFromInt64 builds an element from a signed integer.
func (f *Field) NewElementFromInt64(value int64) *FieldElement {
	return f.NewElement(big.NewInt(value))
}

// NewElementFromUint64 builds an element from an unsigned integer.
func (f *Field) NewElementFromUint64(value uint64) *FieldElement {
	return f.NewElement(new(big.Int).SetUint64(value))
}

// RandomElement draws a uniformly random element of Fp. It is
// cryptographically random and deliberately unrelated to the Fiat-Shamir
// scalar stream: transcript.Channel.GetRandomScalar is what callers must
// use for anything that needs to be reproducible from a transcript, this
// is only for out-of-band witness selection (e.g. the CLI driver).
func (f *Field) RandomElement() (*FieldElement, error) {
	v, err := rand.Int(rand.Reader, f.modulus)
	if err != nil {
		return nil, fmt.Errorf("field: random element: %w", err)
	}
	return f.NewElement(v), nil
}

// Zero returns the additive identity.
func (f *Field) Zero() *FieldElement { return f.NewElement(big.NewInt(0)) }

// One returns the multiplicative identity.
func (f *Field) One() *FieldElement { return f.NewElement(big.NewInt(1)) }

// Equals reports whether two Field values share a modulus.
func (f *Field) Equals(other *Field) bool {
	return f.modulus.Cmp(other.modulus) == 0
}

// Field returns the element's field.
func (fe *FieldElement) Field() *Field { return fe.field }

// Big returns a copy of the element's value as a big.Int in [0, p).
func (fe *FieldElement) Big() *big.Int { return new(big.Int).Set(fe.value) }

func (fe *FieldElement) mustMatch(other *FieldElement) {
	if !fe.field.Equals(other.field) {
		panic("core: operands belong to different fields")
	}
}

// Add returns fe + other.
func (fe *FieldElement) Add(other *FieldElement) *FieldElement {
	fe.mustMatch(other)
	return fe.field.NewElement(new(big.Int).Add(fe.value, other.value))
}

// Sub returns fe - other.
func (fe *FieldElement) Sub(other *FieldElement) *FieldElement {
	fe.mustMatch(other)
	return fe.field.NewElement(new(big.Int).Sub(fe.value, other.value))
}

// Neg returns -fe.
func (fe *FieldElement) Neg() *FieldElement {
	return fe.field.NewElement(new(big.Int).Neg(fe.value))
}

// Mul returns fe * other.
func (fe *FieldElement) Mul(other *FieldElement) *FieldElement {
	fe.mustMatch(other)
	return fe.field.NewElement(new(big.Int).Mul(fe.value, other.value))
}

// Square returns fe * fe.
func (fe *FieldElement) Square() *FieldElement { return fe.Mul(fe) }

// Inv returns the multiplicative inverse of fe via Fermat's little theorem
// (fe^(p-2)). Fails for the zero element: ErrFieldInverseOfZero in the
// pkg/squarefib-stark error taxonomy maps to this condition.
func (fe *FieldElement) Inv() (*FieldElement, error) {
	if fe.IsZero() {
		return nil, fmt.Errorf("core: inverse of zero: %w", ErrInverseOfZero)
	}
	exp := new(big.Int).Sub(fe.field.modulus, big.NewInt(2))
	return fe.Exp(exp), nil
}

// Div returns fe / other, failing if other is zero.
func (fe *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	fe.mustMatch(other)
	inv, err := other.Inv()
	if err != nil {
		return nil, err
	}
	return fe.Mul(inv), nil
}

// Exp returns fe raised to a non-negative integer exponent.
func (fe *FieldElement) Exp(exponent *big.Int) *FieldElement {
	return fe.field.NewElement(new(big.Int).Exp(fe.value, exponent, fe.field.modulus))
}

// ExpUint64 is a convenience wrapper around Exp for small exponents.
func (fe *FieldElement) ExpUint64(exponent uint64) *FieldElement {
	return fe.Exp(new(big.Int).SetUint64(exponent))
}

// Equal reports value equality within the same field.
func (fe *FieldElement) Equal(other *FieldElement) bool {
	return fe.field.Equals(other.field) && fe.value.Cmp(other.value) == 0
}

// IsZero reports whether fe is the additive identity.
func (fe *FieldElement) IsZero() bool { return fe.value.Sign() == 0 }

// IsOne reports whether fe is the multiplicative identity.
func (fe *FieldElement) IsOne() bool { return fe.value.Cmp(big.NewInt(1)) == 0 }

// String renders fe as a base-10 integer, the wire encoding used throughout
// the transcript.
func (fe *FieldElement) String() string { return fe.value.String() }
