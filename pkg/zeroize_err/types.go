// pkg/zeroize_err/types.go

package zeroize_err

import "errors"

// ErrConfirmationFailed marks a mismatched confirmation literal.
var ErrConfirmationFailed = errors.New("confirmation failed")

// ErrDeclined marks a declined yes/no checkpoint.
var ErrDeclined = errors.New("declined by operator")

// UserError marks an error as expected and caused by operator input rather
// than a fault in zeroize itself. Expected errors are reported without a
// stack trace but still fail the run with a non-zero exit status: a declined
// confirmation must never look like success to a calling script.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}
