package squarefibstark

import (
	"github.com/orbital-stark/squarefib/internal/squarefib/core"
	"github.com/orbital-stark/squarefib/internal/squarefib/domain"
)

// FibonacciStatement is the one concrete claim this prover proves: "I know
// a secret x1 such that iterating x_{i+2} = x_i^2 + x_{i+1}^2 for Steps
// steps, starting from the public x0 = 1, produces the public output Y."
type FibonacciStatement struct {
	field   *core.Field
	witness *core.FieldElement // the secret x1
	steps   int                // T, the number of transitions
	trace   []*core.FieldElement
}

// NewFibonacciStatement computes the trace for the given secret witness and
// step count, and returns a Statement ready to be proven. x0 is fixed to 1,
// matching the public boundary condition this statement hardcodes. cfg
// governs the accepted step-count range (MaxTraceLength); passing nil uses
// DefaultConfig.
func NewFibonacciStatement(witness *core.FieldElement, steps int, cfg *Config) (*FibonacciStatement, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if steps <= 0 {
		return nil, newError(ErrEmptyInput, nil, "fibonacci: step count must be positive, got %d", steps)
	}
	if steps > cfg.MaxTraceLength {
		return nil, newError(ErrInvalidDomain, nil, "fibonacci: step count %d exceeds the maximum trace length %d", steps, cfg.MaxTraceLength)
	}
	field := witness.Field()
	trace := ComputeTrace(field.One(), witness, steps)
	return &FibonacciStatement{field: field, witness: witness, steps: steps, trace: trace}, nil
}

// ComputeTrace returns the T+1 values x0, x1, ..., xT produced by iterating
// x_{i+2} = x_i^2 + x_{i+1}^2 for steps transitions starting from x0, x1.
func ComputeTrace(x0, x1 *core.FieldElement, steps int) []*core.FieldElement {
	trace := make([]*core.FieldElement, steps+1)
	trace[0] = x0
	trace[1] = x1
	for i := 2; i <= steps; i++ {
		trace[i] = trace[i-2].Square().Add(trace[i-1].Square())
	}
	return trace
}

// TraceLength returns T.
func (s *FibonacciStatement) TraceLength() int { return s.steps }

// Trace returns the precomputed trace values.
func (s *FibonacciStatement) Trace() ([]*core.FieldElement, error) {
	return s.trace, nil
}

// PublicOutput returns x_T, the last trace value.
func (s *FibonacciStatement) PublicOutput() (*core.FieldElement, error) {
	return s.trace[len(s.trace)-1], nil
}

// BuildConstraints returns [p0, p1, p2]: the two boundary constraints and
// the transition constraint, each already divided by its denominator.
func (s *FibonacciStatement) BuildConstraints(tracePoly *core.Polynomial, traceDomain *domain.Domain) ([]*core.Polynomial, error) {
	field := tracePoly.Field()
	g := traceDomain.Elements()
	T := s.steps

	g0 := g[0]
	if !tracePoly.Eval(g0).IsOne() {
		return nil, newError(ErrNotDivisible, nil, "fibonacci: trace polynomial does not evaluate to 1 at G[0]")
	}
	p0Numerator := tracePoly.Sub(core.NewPolynomial(field, []*core.FieldElement{field.One()}))
	p0 := p0Numerator.DivideByLinear(g0)

	gT := g[T]
	y, err := s.PublicOutput()
	if err != nil {
		return nil, err
	}
	if !tracePoly.Eval(gT).Equal(y) {
		return nil, newError(ErrNotDivisible, nil, "fibonacci: trace polynomial does not evaluate to the public output at G[T]")
	}
	p1Numerator := tracePoly.Sub(core.NewPolynomial(field, []*core.FieldElement{y}))
	p1 := p1Numerator.DivideByLinear(gT)

	fOfGX := tracePoly.Compose(g[1])
	fOfG2X := tracePoly.Compose(g[2])
	numerator := fOfG2X.Sub(fOfGX.Mul(fOfGX)).Sub(tracePoly.Mul(tracePoly))

	roots := g[T-1:]
	denominator := core.DivideByVanishingComplement(field, len(g), roots)
	quotient, remainder, err := numerator.Div(denominator)
	if err != nil {
		return nil, err
	}
	if !remainder.IsZero() {
		return nil, newError(ErrNotDivisible, nil, "fibonacci: transition numerator is not exactly divisible by its denominator")
	}
	p2 := quotient

	return []*core.Polynomial{p0, p1, p2}, nil
}
