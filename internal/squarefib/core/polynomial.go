package core

import (
	"fmt"
	"strings"
)

// Polynomial is a dense univariate polynomial over Fp, coefficients
// ordered low-degree first. The zero polynomial is represented as a
// single zero coefficient; Degree() returns 0 for it by convention of
// this package (callers that need "-infinity" check IsZero instead).
type Polynomial struct {
	field        *Field
	coefficients []*FieldElement
}

// NewPolynomial builds a polynomial from coefficients (low-degree first),
// stripping trailing zero coefficients to canonical form.
func NewPolynomial(field *Field, coefficients []*FieldElement) *Polynomial {
	trimmed := trimTrailingZeros(coefficients)
	if len(trimmed) == 0 {
		trimmed = []*FieldElement{field.Zero()}
	}
	return &Polynomial{field: field, coefficients: trimmed}
}

func trimTrailingZeros(coeffs []*FieldElement) []*FieldElement {
	last := len(coeffs) - 1
	for last >= 0 && coeffs[last].IsZero() {
		last--
	}
	return coeffs[:last+1]
}

// NewPolynomialFromInt64 is a convenience constructor for small literal
// polynomials, chiefly used by tests.
func NewPolynomialFromInt64(field *Field, coeffs []int64) *Polynomial {
	elems := make([]*FieldElement, len(coeffs))
	for i, c := range coeffs {
		elems[i] = field.NewElementFromInt64(c)
	}
	return NewPolynomial(field, elems)
}

// Field returns the field the polynomial is defined over.
func (p *Polynomial) Field() *Field { return p.field }

// Degree returns the polynomial's degree. The zero polynomial has
// degree 0 here (it is a single zero coefficient); IsZero distinguishes it.
func (p *Polynomial) Degree() int { return len(p.coefficients) - 1 }

// IsZero reports whether p is the additive identity polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coefficients) == 1 && p.coefficients[0].IsZero()
}

// Coefficient returns the coefficient of X^degree, or zero beyond the
// polynomial's length.
func (p *Polynomial) Coefficient(degree int) *FieldElement {
	if degree < 0 || degree >= len(p.coefficients) {
		return p.field.Zero()
	}
	return p.coefficients[degree]
}

// LeadingCoefficient returns the coefficient of the highest-degree term.
func (p *Polynomial) LeadingCoefficient() *FieldElement {
	return p.coefficients[len(p.coefficients)-1]
}

// Coefficients returns a defensive copy of the coefficient vector.
func (p *Polynomial) Coefficients() []*FieldElement {
	out := make([]*FieldElement, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// Eval evaluates p at a point via Horner's method.
func (p *Polynomial) Eval(x *FieldElement) *FieldElement {
	result := p.field.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coefficients[i])
	}
	return result
}

// Add returns p + other.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	n := maxInt(len(p.coefficients), len(other.coefficients))
	out := make([]*FieldElement, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coefficient(i).Add(other.Coefficient(i))
	}
	return NewPolynomial(p.field, out)
}

// Sub returns p - other.
func (p *Polynomial) Sub(other *Polynomial) *Polynomial {
	n := maxInt(len(p.coefficients), len(other.coefficients))
	out := make([]*FieldElement, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coefficient(i).Sub(other.Coefficient(i))
	}
	return NewPolynomial(p.field, out)
}

// Mul returns p * other, computed by schoolbook convolution.
func (p *Polynomial) Mul(other *Polynomial) *Polynomial {
	if p.IsZero() || other.IsZero() {
		return NewPolynomial(p.field, []*FieldElement{p.field.Zero()})
	}
	out := make([]*FieldElement, len(p.coefficients)+len(other.coefficients)-1)
	for i := range out {
		out[i] = p.field.Zero()
	}
	for i, a := range p.coefficients {
		if a.IsZero() {
			continue
		}
		for j, b := range other.coefficients {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return NewPolynomial(p.field, out)
}

// MulScalar returns p scaled by a field constant.
func (p *Polynomial) MulScalar(scalar *FieldElement) *Polynomial {
	out := make([]*FieldElement, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = c.Mul(scalar)
	}
	return NewPolynomial(p.field, out)
}

// Compose returns p(alpha*X): substituting alpha*X for X. This is the
// shifted-evaluation primitive the transition constraint needs to express
// f(g*X) and f(g^2*X) without re-interpolating.
func (p *Polynomial) Compose(alpha *FieldElement) *Polynomial {
	out := make([]*FieldElement, len(p.coefficients))
	power := p.field.One()
	for i, c := range p.coefficients {
		out[i] = c.Mul(power)
		power = power.Mul(alpha)
	}
	return NewPolynomial(p.field, out)
}

// DivideByLinear performs exact synthetic division of p by (X - a),
// returning Q such that p(X) = Q(X)*(X-a) + p(a). The caller must have
// already established p(a) = 0; this function does not re-check it.
func (p *Polynomial) DivideByLinear(a *FieldElement) *Polynomial {
	n := len(p.coefficients)
	quotient := make([]*FieldElement, n-1)
	carry := p.field.Zero()
	for i := n - 1; i >= 1; i-- {
		coeff := p.coefficients[i].Add(carry)
		quotient[i-1] = coeff
		carry = coeff.Mul(a)
	}
	return NewPolynomial(p.field, quotient)
}

// Div performs polynomial long division, returning (quotient, remainder)
// such that p = quotient*divisor + remainder and remainder's degree is
// less than divisor's. Fails if divisor is the zero polynomial.
func (p *Polynomial) Div(divisor *Polynomial) (*Polynomial, *Polynomial, error) {
	if divisor.IsZero() {
		return nil, nil, fmt.Errorf("core: division by zero polynomial")
	}
	field := p.field
	remainder := p.Coefficients()
	divisorDegree := divisor.Degree()
	leadInv, err := divisor.LeadingCoefficient().Inv()
	if err != nil {
		return nil, nil, err
	}

	quotientDegree := len(remainder) - 1 - divisorDegree
	if quotientDegree < 0 {
		return NewPolynomial(field, []*FieldElement{field.Zero()}), NewPolynomial(field, remainder), nil
	}
	quotient := make([]*FieldElement, quotientDegree+1)

	for d := quotientDegree; d >= 0; d-- {
		topIndex := d + divisorDegree
		coeff := remainder[topIndex].Mul(leadInv)
		quotient[d] = coeff
		if coeff.IsZero() {
			continue
		}
		for i := 0; i <= divisorDegree; i++ {
			remainder[d+i] = remainder[d+i].Sub(coeff.Mul(divisor.Coefficient(i)))
		}
	}
	return NewPolynomial(field, quotient), NewPolynomial(field, remainder), nil
}

// vanishingPolynomial returns X^n - 1.
func vanishingPolynomial(field *Field, n int) *Polynomial {
	coeffs := make([]*FieldElement, n+1)
	for i := range coeffs {
		coeffs[i] = field.Zero()
	}
	coeffs[0] = field.NewElementFromInt64(-1)
	coeffs[n] = field.One()
	return NewPolynomial(field, coeffs)
}

// DivideByVanishingComplement computes (X^n - 1) / prod_{x in roots}(X - x)
// by repeated synthetic division, used to build the transition-constraint
// denominator as the complement of a contiguous suffix of the trace
// domain's roots. Every root must actually divide the
// vanishing polynomial; callers only ever pass trace-domain elements here
// so this always holds.
func DivideByVanishingComplement(field *Field, n int, roots []*FieldElement) *Polynomial {
	q := vanishingPolynomial(field, n)
	for _, r := range roots {
		q = q.DivideByLinear(r)
	}
	return q
}

// Point is an (x, y) pair used for Lagrange interpolation.
type Point struct {
	X *FieldElement
	Y *FieldElement
}

// LagrangeInterpolation returns the unique polynomial of degree < len(points)
// passing through every given point. Points must have distinct X values.
func LagrangeInterpolation(field *Field, points []Point) (*Polynomial, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("core: lagrange interpolation over empty point set: %w", ErrEmptyInput)
	}

	result := NewPolynomial(field, []*FieldElement{field.Zero()})
	xPoly := NewPolynomial(field, []*FieldElement{field.Zero(), field.One()}) // X

	for i, pi := range points {
		numerator := NewPolynomial(field, []*FieldElement{field.One()})
		denominator := field.One()
		for j, pj := range points {
			if i == j {
				continue
			}
			diff := pi.X.Sub(pj.X)
			if diff.IsZero() {
				return nil, fmt.Errorf("core: lagrange interpolation: duplicate x-coordinate: %w", ErrDuplicatePoint)
			}
			linear := xPoly.Sub(NewPolynomial(field, []*FieldElement{pj.X}))
			numerator = numerator.Mul(linear)
			denominator = denominator.Mul(diff)
		}
		invDenominator, err := field.One().Div(denominator)
		if err != nil {
			return nil, err
		}
		term := numerator.MulScalar(pi.Y.Mul(invDenominator))
		result = result.Add(term)
	}
	return result, nil
}

// String renders p in a human-readable "c*X^2 + b*X + a" form, highest
// degree first, omitting zero terms.
func (p *Polynomial) String() string {
	var terms []string
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		c := p.coefficients[i]
		if c.IsZero() && len(p.coefficients) > 1 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, c.String())
		case 1:
			terms = append(terms, c.String()+"*X")
		default:
			terms = append(terms, fmt.Sprintf("%s*X^%d", c.String(), i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
