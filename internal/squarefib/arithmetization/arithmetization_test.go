package arithmetization

import (
	"testing"

	"github.com/orbital-stark/squarefib/internal/squarefib/core"
	"github.com/orbital-stark/squarefib/internal/squarefib/domain"
	"github.com/orbital-stark/squarefib/internal/squarefib/transcript"
)

// squareStatement is a tiny self-contained Statement used only to exercise
// the pipeline in isolation, without pulling in the public Fibonacci
// statement (which lives in pkg/squarefib-stark and would create an import
// cycle back into this package).
type squareStatement struct {
	trace []*core.FieldElement
}

func newSquareStatement(steps int) *squareStatement {
	field := core.DefaultField
	trace := make([]*core.FieldElement, steps+1)
	trace[0] = field.One()
	trace[1] = field.NewElementFromInt64(3141592)
	for i := 2; i <= steps; i++ {
		trace[i] = trace[i-2].Square().Add(trace[i-1].Square())
	}
	return &squareStatement{trace: trace}
}

func (s *squareStatement) TraceLength() int { return len(s.trace) - 1 }

func (s *squareStatement) Trace() ([]*core.FieldElement, error) { return s.trace, nil }

func (s *squareStatement) PublicOutput() (*core.FieldElement, error) {
	return s.trace[len(s.trace)-1], nil
}

func (s *squareStatement) BuildConstraints(tracePoly *core.Polynomial, traceDomain *domain.Domain) ([]*core.Polynomial, error) {
	field := tracePoly.Field()
	g := traceDomain.Elements()
	T := s.TraceLength()

	p0 := tracePoly.Sub(core.NewPolynomial(field, []*core.FieldElement{field.One()})).DivideByLinear(g[0])

	y, _ := s.PublicOutput()
	p1 := tracePoly.Sub(core.NewPolynomial(field, []*core.FieldElement{y})).DivideByLinear(g[T])

	fgx := tracePoly.Compose(g[1])
	fg2x := tracePoly.Compose(g[2])
	numerator := fg2x.Sub(fgx.Mul(fgx)).Sub(tracePoly.Mul(tracePoly))
	denominator := core.DivideByVanishingComplement(field, len(g), g[T-1:])
	quotient, remainder, err := numerator.Div(denominator)
	if err != nil {
		return nil, err
	}
	if !remainder.IsZero() {
		return nil, errNotExact
	}
	return []*core.Polynomial{p0, p1, quotient}, nil
}

var errNotExact = &divError{}

type divError struct{}

func (*divError) Error() string { return "transition numerator not exactly divisible" }

func TestInterpolateAndBuildComposition(t *testing.T) {
	stmt := newSquareStatement(30)

	traceDomain, err := domain.TraceDomain()
	if err != nil {
		t.Fatalf("trace domain: %v", err)
	}
	friDomain, err := domain.FRIDomain()
	if err != nil {
		t.Fatalf("fri domain: %v", err)
	}

	tracePoly, err := InterpolateTrace(stmt, traceDomain)
	if err != nil {
		t.Fatalf("interpolate: %v", err)
	}
	values, _ := stmt.Trace()
	for i, v := range values {
		if !tracePoly.Eval(traceDomain.At(i)).Equal(v) {
			t.Fatalf("trace polynomial disagrees with the trace at step %d", i)
		}
	}

	ch := transcript.New()
	ch.Send("trace-root-placeholder")
	composition, err := BuildComposition(stmt, tracePoly, traceDomain, friDomain, ch)
	if err != nil {
		t.Fatalf("build composition: %v", err)
	}
	if len(composition.Codeword) != friDomain.Size {
		t.Fatalf("expected codeword of length %d, got %d", friDomain.Size, len(composition.Codeword))
	}

	log := ch.Proof()
	gotAlphas := 0
	for _, entry := range log {
		if len(entry) >= len("get_random_scalar:") && entry[:len("get_random_scalar:")] == "get_random_scalar:" {
			gotAlphas++
		}
	}
	if gotAlphas != 3 {
		t.Fatalf("expected exactly 3 composition coefficients drawn, got %d", gotAlphas)
	}
}
