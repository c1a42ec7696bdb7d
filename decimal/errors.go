package decimal

import "github.com/zeebo/errs"

// Error is the error class for this package. Every error returned from an
// exported function is wrapped in it.
var Error = errs.Class("decimal")

// Error kinds. Use Has to test for one, e.g. ErrDivisionByZero.Has(err).
var (
	ErrInvalidNumber    = errs.Class("invalid number")
	ErrUnsupportedInput = errs.Class("unsupported input")
	ErrDivisionByZero   = errs.Class("division by zero")
)
