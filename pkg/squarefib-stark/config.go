package squarefibstark

import (
	"github.com/orbital-stark/squarefib/internal/squarefib/core"
	"github.com/orbital-stark/squarefib/internal/squarefib/domain"
	"github.com/orbital-stark/squarefib/internal/squarefib/fri"
)

// Config collects the prover's fixed parameters. The field modulus, trace
// domain size, and FRI domain size are fixed constants in this prover; they
// are exposed on Config so callers can see and validate them, but Prove
// always uses the package constants for them. FRIQueries and MaxTraceLength
// are the fields that change a run (e.g. raising FRIQueries for a
// higher-confidence proof). Prove and NewFibonacciStatement both take a
// *Config; passing nil uses DefaultConfig.
type Config struct {
	FieldModulus    uint64
	TraceDomainSize int
	FRIDomainSize   int
	BlowupFactor    int
	FRIQueries      int
	MaxTraceLength  int
	HashFunction    string
}

// DefaultConfig returns the configuration this prover was built for: the
// square-Fibonacci statement over a 1024-element trace domain.
func DefaultConfig() *Config {
	return &Config{
		FieldModulus:    core.Modulus,
		TraceDomainSize: domain.TraceDomainSize,
		FRIDomainSize:   domain.FRIDomainSize,
		BlowupFactor:    domain.BlowupFactor,
		FRIQueries:      fri.QueriesNum,
		MaxTraceLength:  domain.TraceDomainSize - 1,
		HashFunction:    "sha256",
	}
}

// Validate checks the configuration's internal consistency.
func (c *Config) Validate() error {
	if c.FieldModulus <= 2 {
		return newError(ErrInvalidDomain, nil, "field modulus must be greater than 2, got %d", c.FieldModulus)
	}
	if !isPowerOfTwo(c.TraceDomainSize) {
		return newError(ErrInvalidDomain, nil, "trace domain size %d is not a power of two", c.TraceDomainSize)
	}
	if !isPowerOfTwo(c.FRIDomainSize) {
		return newError(ErrInvalidDomain, nil, "FRI domain size %d is not a power of two", c.FRIDomainSize)
	}
	if c.FRIDomainSize != c.BlowupFactor*c.TraceDomainSize {
		return newError(ErrInvalidDomain, nil, "FRI domain size %d must equal blowup factor %d times trace domain size %d",
			c.FRIDomainSize, c.BlowupFactor, c.TraceDomainSize)
	}
	if c.FRIQueries <= 0 {
		return newError(ErrInvalidDomain, nil, "FRI query count must be positive, got %d", c.FRIQueries)
	}
	if c.MaxTraceLength <= 0 || c.MaxTraceLength >= c.TraceDomainSize {
		return newError(ErrInvalidDomain, nil, "max trace length %d must be in (0, %d)", c.MaxTraceLength, c.TraceDomainSize)
	}
	if c.HashFunction != "sha256" {
		return newError(ErrInvalidDomain, nil, "hash function must be 'sha256', got %q", c.HashFunction)
	}
	return nil
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
