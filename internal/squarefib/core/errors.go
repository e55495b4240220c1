package core

import "errors"

// Sentinel errors identifying the specific failure conditions this package
// can raise. Callers at the pkg/squarefib-stark boundary classify these
// with errors.Is and map them onto the prover's own ErrorKind taxonomy;
// the package itself stays free of that higher-level vocabulary.
var (
	ErrEmptyInput      = errors.New("core: empty input")
	ErrIndexOutOfRange = errors.New("core: index out of range")
	ErrInverseOfZero   = errors.New("core: inverse of zero")
	ErrDuplicatePoint  = errors.New("core: duplicate x-coordinate")
)
