// Package domain builds the cyclic subgroups and cosets the prover
// evaluates polynomials over.
package domain

import (
	"fmt"
	"math/big"

	"github.com/orbital-stark/squarefib/internal/squarefib/core"
)

// BlowupFactor is the ratio between the FRI domain and the trace domain.
// It must be at least 4 for the FRI codeword to carry enough redundancy;
// 8 matches the reference construction and its test vectors.
const BlowupFactor = 8

// TraceDomainSize is the fixed size of the trace's evaluation subgroup.
const TraceDomainSize = 1024

// FRIDomainSize is BlowupFactor * TraceDomainSize.
const FRIDomainSize = BlowupFactor * TraceDomainSize

// Domain is an ordered sequence of field elements: either a multiplicative
// subgroup <g> of the given size, or a coset offset*<g>. Elements appear
// in generator-power order.
type Domain struct {
	Offset    *core.FieldElement
	Generator *core.FieldElement
	Size      int
}

// FindGenerator returns an element of Fp* of exact multiplicative order l,
// computed as w^((p-1)/l) for the fixed primitive root w. It fails if l
// does not divide p-1.
func FindGenerator(l int) (*core.FieldElement, error) {
	if l <= 0 {
		return nil, fmt.Errorf("domain: subgroup order must be positive, got %d: %w", l, ErrInvalidSize)
	}
	pMinus1 := new(big.Int).Sub(core.DefaultField.Modulus(), big.NewInt(1))
	lBig := big.NewInt(int64(l))
	q, rem := new(big.Int).QuoRem(pMinus1, lBig, new(big.Int))
	if rem.Sign() != 0 {
		return nil, fmt.Errorf("domain: subgroup order %d does not divide p-1: %w", l, ErrInvalidSize)
	}
	return core.PrimitiveRoot.Exp(q), nil
}

// NewSubgroup builds the subgroup <g> of the given power-of-two size,
// ordered [g^0, g^1, ..., g^(size-1)].
func NewSubgroup(size int) (*Domain, error) {
	if !isPowerOfTwo(size) {
		return nil, fmt.Errorf("domain: size %d is not a power of two: %w", size, ErrInvalidSize)
	}
	g, err := FindGenerator(size)
	if err != nil {
		return nil, err
	}
	return &Domain{Offset: core.DefaultField.One(), Generator: g, Size: size}, nil
}

// WithOffset returns a coset offset*d of the same generator and size.
func (d *Domain) WithOffset(offset *core.FieldElement) *Domain {
	return &Domain{Offset: offset, Generator: d.Generator, Size: d.Size}
}

// Elements materializes the domain as an ordered slice.
func (d *Domain) Elements() []*core.FieldElement {
	out := make([]*core.FieldElement, d.Size)
	current := d.Offset
	for i := 0; i < d.Size; i++ {
		out[i] = current
		current = current.Mul(d.Generator)
	}
	return out
}

// At returns the i-th element offset*g^i without materializing the whole
// domain.
func (d *Domain) At(i int) *core.FieldElement {
	return d.Offset.Mul(d.Generator.ExpUint64(uint64(i)))
}

// TraceDomain returns <g_trace>, the order-TraceDomainSize subgroup the
// execution trace is interpolated over.
func TraceDomain() (*Domain, error) {
	return NewSubgroup(TraceDomainSize)
}

// FRIDomain returns the coset w*<g_fri> of order FRIDomainSize that the
// composition polynomial is evaluated and FRI-folded over. Using the
// primitive root itself as the coset offset guarantees disjointness from
// the trace domain: w generates the whole group of order p-1, so w is
// not itself a power of g_fri (which only generates the strict subgroup
// of order FRIDomainSize), and no coset element collides with a trace
// domain element (see domain_test.go).
func FRIDomain() (*Domain, error) {
	g, err := FindGenerator(FRIDomainSize)
	if err != nil {
		return nil, err
	}
	return &Domain{Offset: core.PrimitiveRoot, Generator: g, Size: FRIDomainSize}, nil
}

// Halve returns a domain of half the size, whose elements are the squares
// of this domain's first half, used once per FRI fold.
func (d *Domain) Halve() (*Domain, error) {
	if d.Size < 2 || d.Size%2 != 0 {
		return nil, fmt.Errorf("domain: cannot halve domain of size %d: %w", d.Size, ErrInvalidSize)
	}
	return &Domain{
		Offset:    d.Offset.Square(),
		Generator: d.Generator.Square(),
		Size:      d.Size / 2,
	}, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
