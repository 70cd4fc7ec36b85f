package types

import "github.com/zeebo/errs"

var (
	// ErrBadAccess is the class of the panic raised when the side of an
	// expected that is not populated is read.
	ErrBadAccess = errs.Class("bad expected access")

	// ErrUnexpected wraps error payloads that do not implement error.
	ErrUnexpected = errs.Class("unexpected")

	// ErrDecode is the class of JSON decoding failures.
	ErrDecode = errs.Class("expected decode")
)
