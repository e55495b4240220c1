package squarefibstark

import (
	"errors"
	"fmt"

	"github.com/orbital-stark/squarefib/internal/squarefib/core"
	"github.com/orbital-stark/squarefib/internal/squarefib/domain"
)

// ErrorKind identifies one of the prover's fatal error conditions. None of
// these are recoverable: a caller that sees one must discard the
// in-progress proof rather than retry on the same transcript.
type ErrorKind int

const (
	// ErrUnknown is the zero value, reserved so a zero ProverError is
	// never mistaken for a specific kind.
	ErrUnknown ErrorKind = iota

	// ErrInvalidDomain marks a requested domain order that does not
	// divide p-1, or a size that is not a power of two.
	ErrInvalidDomain

	// ErrNotDivisible marks an exact-division precondition that failed
	// (e.g. a boundary polynomial evaluated to nonzero at its root).
	ErrNotDivisible

	// ErrIndexOutOfRange marks a Merkle leaf index outside [0, size).
	ErrIndexOutOfRange

	// ErrFieldInverseOfZero marks an attempt to invert the zero element.
	ErrFieldInverseOfZero

	// ErrEmptyInput marks an operation given an empty vector or point set.
	ErrEmptyInput
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidDomain:
		return "invalid domain"
	case ErrNotDivisible:
		return "not divisible"
	case ErrIndexOutOfRange:
		return "index out of range"
	case ErrFieldInverseOfZero:
		return "field inverse of zero"
	case ErrEmptyInput:
		return "empty input"
	default:
		return "unknown"
	}
}

// ProverError is the single error type the prover's public surface
// returns. Kind identifies which of the fatal conditions
// occurred; Cause, when set, wraps the lower-level error that triggered it.
type ProverError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error returns the error message.
func (e *ProverError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("squarefib-stark: %s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("squarefib-stark: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *ProverError) Unwrap() error { return e.Cause }

// Is reports whether target is a ProverError of the same Kind, so callers
// can write errors.Is(err, &ProverError{Kind: ErrNotDivisible}).
func (e *ProverError) Is(target error) bool {
	t, ok := target.(*ProverError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind ErrorKind, cause error, format string, args ...any) *ProverError {
	return &ProverError{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// wrapError classifies an error returned by an internal package into a
// *ProverError, so that the public surface documented above the type
// actually holds: every error that crosses it carries a Kind. Errors that
// are already a *ProverError (the statement's own BuildConstraints
// failures, for instance) pass through unchanged.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	var proverErr *ProverError
	if errors.As(err, &proverErr) {
		return err
	}
	switch {
	case errors.Is(err, core.ErrIndexOutOfRange):
		return newError(ErrIndexOutOfRange, err, "index out of range")
	case errors.Is(err, core.ErrInverseOfZero):
		return newError(ErrFieldInverseOfZero, err, "field inverse of zero")
	case errors.Is(err, core.ErrEmptyInput):
		return newError(ErrEmptyInput, err, "empty input")
	case errors.Is(err, core.ErrDuplicatePoint), errors.Is(err, domain.ErrInvalidSize):
		return newError(ErrInvalidDomain, err, "invalid domain")
	default:
		return newError(ErrUnknown, err, err.Error())
	}
}
