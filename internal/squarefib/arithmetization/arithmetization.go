package arithmetization

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/orbital-stark/squarefib/internal/squarefib/core"
	"github.com/orbital-stark/squarefib/internal/squarefib/domain"
	"github.com/orbital-stark/squarefib/internal/squarefib/transcript"
)

// InterpolateTrace returns the unique polynomial of degree <= T agreeing
// with the statement's trace values at the trace domain's first T+1
// points.
func InterpolateTrace(stmt Statement, trace *domain.Domain) (*core.Polynomial, error) {
	values, err := stmt.Trace()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("arithmetization: empty trace: %w", core.ErrEmptyInput)
	}

	points := make([]core.Point, len(values))
	for i, v := range values {
		points[i] = core.Point{X: trace.At(i), Y: v}
	}
	return core.LagrangeInterpolation(values[0].Field(), points)
}

// Composition bundles the composition polynomial and its FRI-domain
// codeword, ready for the FRI commit phase to pick up as its seed layer.
type Composition struct {
	Polynomial *core.Polynomial
	Codeword   []*core.FieldElement
}

// BuildComposition asks the statement for its constraint polynomials, draws
// the composition coefficients from the transcript in order, combines them
// into CP, and evaluates CP over the FRI domain.
//
// Callers must have already sent the trace LDE's Merkle root to ch before
// calling this: one alpha per constraint is drawn via ch.GetRandomScalar()
// one after another, and that send must precede these draws.
func BuildComposition(stmt Statement, tracePoly *core.Polynomial, trace, fri *domain.Domain, ch *transcript.Channel) (*Composition, error) {
	constraints, err := stmt.BuildConstraints(tracePoly, trace)
	if err != nil {
		return nil, err
	}
	if len(constraints) == 0 {
		return nil, fmt.Errorf("arithmetization: statement produced no constraints: %w", core.ErrEmptyInput)
	}

	field := tracePoly.Field()
	composition := core.NewPolynomial(field, []*core.FieldElement{field.Zero()})
	for _, constraint := range constraints {
		alpha := ch.GetRandomScalar()
		composition = composition.Add(constraint.MulScalar(alpha))
	}

	codeword, err := EvaluateOverDomain(composition, fri)
	if err != nil {
		return nil, err
	}
	return &Composition{Polynomial: composition, Codeword: codeword}, nil
}

// EvaluateOverDomain evaluates p at every point of d, fanning the
// independent evaluations out across a bounded worker pool since this is
// exactly the kind of purely-functional, independent-per-index workload
// that benefits from fanning out across goroutines.
func EvaluateOverDomain(p *core.Polynomial, d *domain.Domain) ([]*core.FieldElement, error) {
	elements := d.Elements()
	out := make([]*core.FieldElement, len(elements))

	var g errgroup.Group
	g.SetLimit(evalWorkerLimit())
	for i, x := range elements {
		i, x := i, x
		g.Go(func() error {
			out[i] = p.Eval(x)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func evalWorkerLimit() int { return 8 }
