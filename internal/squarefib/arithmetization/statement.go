// Package arithmetization turns an execution trace into the composition
// polynomial the FRI layer commits to. The pipeline itself
// is statement-agnostic; the statement being proven plugs in through the
// Statement interface below.
package arithmetization

import (
	"github.com/orbital-stark/squarefib/internal/squarefib/core"
	"github.com/orbital-stark/squarefib/internal/squarefib/domain"
)

// Statement is the narrow capability set an arithmetization needs from
// whatever claim is being proven: how long the trace is, the trace
// values themselves, the claimed public output, and the boundary/
// transition constraint polynomials built against a concrete trace
// polynomial and domain.
type Statement interface {
	// TraceLength returns T, the number of execution steps (T < 1024).
	TraceLength() int

	// Trace returns the T+1 trace values x_0..x_T.
	Trace() ([]*core.FieldElement, error)

	// PublicOutput returns the claimed result, i.e. the trace's last value.
	PublicOutput() (*core.FieldElement, error)

	// BuildConstraints returns the constraint polynomials (boundary and
	// transition) given the interpolated trace polynomial and the trace
	// domain they were interpolated over. Each returned polynomial is
	// already divided by its vanishing denominator, ready to be combined
	// into the composition polynomial.
	BuildConstraints(tracePoly *core.Polynomial, traceDomain *domain.Domain) ([]*core.Polynomial, error)
}
