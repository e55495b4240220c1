package squarefibstark

import (
	"errors"
	"testing"

	"github.com/orbital-stark/squarefib/internal/squarefib/core"
	"github.com/orbital-stark/squarefib/internal/squarefib/domain"
)

func TestProverErrorIs(t *testing.T) {
	err := newError(ErrNotDivisible, nil, "boundary check failed")
	if !errors.Is(err, &ProverError{Kind: ErrNotDivisible}) {
		t.Fatalf("expected errors.Is to match on Kind")
	}
	if errors.Is(err, &ProverError{Kind: ErrEmptyInput}) {
		t.Fatalf("errors.Is should not match a different Kind")
	}
}

func TestProverErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := newError(ErrInvalidDomain, cause, "bad domain")
	if errors.Unwrap(err) != cause {
		t.Fatalf("expected Unwrap to return the cause")
	}
}

func TestProverErrorMessage(t *testing.T) {
	err := newError(ErrIndexOutOfRange, nil, "leaf %d out of range", 9)
	if err.Error() == "" {
		t.Fatalf("expected a non-empty error message")
	}
}

func TestWrapErrorClassifiesInternalPackageErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"index out of range", core.ErrIndexOutOfRange, ErrIndexOutOfRange},
		{"inverse of zero", core.ErrInverseOfZero, ErrFieldInverseOfZero},
		{"empty input", core.ErrEmptyInput, ErrEmptyInput},
		{"duplicate point", core.ErrDuplicatePoint, ErrInvalidDomain},
		{"invalid domain size", domain.ErrInvalidSize, ErrInvalidDomain},
	}
	for _, c := range cases {
		wrapped := wrapError(c.err)
		pe, ok := wrapped.(*ProverError)
		if !ok {
			t.Fatalf("%s: expected a *ProverError, got %T", c.name, wrapped)
		}
		if pe.Kind != c.want {
			t.Fatalf("%s: expected kind %s, got %s", c.name, c.want, pe.Kind)
		}
		if !errors.Is(wrapped, c.err) {
			t.Fatalf("%s: expected wrapped error to still satisfy errors.Is against the cause", c.name)
		}
	}

	already := newError(ErrNotDivisible, nil, "boundary check failed")
	if wrapError(already) != already {
		t.Fatalf("expected an already-typed ProverError to pass through unchanged")
	}

	if wrapError(nil) != nil {
		t.Fatalf("expected wrapError(nil) to return nil")
	}
}
