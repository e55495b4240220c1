// Package squarefibstark is the public surface of the prover: a single
// concrete statement (FibonacciStatement), the Config/ProverError ambient
// types, and Prove, which wires the trace, arithmetization, and FRI stages
// together into a proof transcript.
package squarefibstark

import (
	"github.com/orbital-stark/squarefib/internal/squarefib/arithmetization"
	"github.com/orbital-stark/squarefib/internal/squarefib/core"
	"github.com/orbital-stark/squarefib/internal/squarefib/domain"
	"github.com/orbital-stark/squarefib/internal/squarefib/fri"
	"github.com/orbital-stark/squarefib/internal/squarefib/transcript"
)

// Proof is the prover's output: the ordered transcript log a verifier
// would replay, plus the claimed public output the statement produces.
type Proof struct {
	Log          []string
	PublicOutput *core.FieldElement
}

// Prove runs the full pipeline for stmt: interpolate and commit the trace
// polynomial, arithmetize it into a composition polynomial, FRI-commit and
// FRI-decommit that composition polynomial, and return the resulting
// transcript. cfg governs the query count and validates the fixed domain
// parameters; passing nil uses DefaultConfig.
//
// The transcript order matters and must stay exactly as follows:
// the trace LDE's Merkle root is sent first, then the three composition
// coefficients are drawn, then the composition polynomial's own FRI
// commitment proceeds layer by layer, and finally each of cfg.FRIQueries
// queries opens both the trace LDE and every FRI layer.
//
// Every error Prove returns is a *ProverError: failures bubbling up from the
// internal packages are classified by wrapError before they cross this
// boundary, so errors.Is(err, &ProverError{Kind: ...}) works for callers.
func Prove(stmt arithmetization.Statement, cfg *Config) (*Proof, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	traceDomain, err := domain.TraceDomain()
	if err != nil {
		return nil, wrapError(err)
	}
	friDomain, err := domain.FRIDomain()
	if err != nil {
		return nil, wrapError(err)
	}

	ch := transcript.New()

	tracePoly, err := arithmetization.InterpolateTrace(stmt, traceDomain)
	if err != nil {
		return nil, wrapError(err)
	}
	traceCodeword, err := arithmetization.EvaluateOverDomain(tracePoly, friDomain)
	if err != nil {
		return nil, wrapError(err)
	}
	traceMerkle, err := core.NewMerkleTree(traceCodeword)
	if err != nil {
		return nil, wrapError(err)
	}
	ch.Send(traceMerkle.Root())

	composition, err := arithmetization.BuildComposition(stmt, tracePoly, traceDomain, friDomain, ch)
	if err != nil {
		return nil, wrapError(err)
	}

	layers, err := fri.Commit(composition.Polynomial, friDomain, composition.Codeword, ch)
	if err != nil {
		return nil, wrapError(err)
	}

	if err := fri.Decommit(layers, traceCodeword, traceMerkle, ch, cfg.FRIQueries); err != nil {
		return nil, wrapError(err)
	}

	output, err := stmt.PublicOutput()
	if err != nil {
		return nil, wrapError(err)
	}

	return &Proof{Log: ch.Proof(), PublicOutput: output}, nil
}
