package usecase

import crerr "github.com/cockroachdb/errors"

// Failure kinds surfaced to the CLI layer. Each maps to a distinct
// user-facing message there; none should crash the process. An unsupported
// provider variant is deliberately not an error.
var (
	ErrInvalidInput = crerr.New("invalid input")
	ErrNetwork      = crerr.New("provider unreachable")
	ErrNotFound     = crerr.New("hero not found at provider")
	ErrSchema       = crerr.New("unexpected provider payload")
	ErrMarkup       = crerr.New("unexpected provider page structure")
)
