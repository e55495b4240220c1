package domain

import "errors"

// ErrInvalidSize identifies a requested domain size or order that cannot be
// satisfied: not a power of two, not positive, or not a divisor of p-1.
// Callers at the pkg/squarefib-stark boundary classify this with errors.Is.
var ErrInvalidSize = errors.New("domain: invalid size")
