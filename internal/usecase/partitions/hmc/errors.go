package hmc

import "errors"

// ErrorKind distinguishes remote failures without string matching.
type ErrorKind string

const (
	KindNotFound    ErrorKind = "not-found"
	KindConflict    ErrorKind = "conflict"
	KindAuth        ErrorKind = "authentication"
	KindJobFailed   ErrorKind = "job-failed"
	KindTransport   ErrorKind = "transport"
	KindBadRequest  ErrorKind = "bad-request"
	KindServerError ErrorKind = "server-error"
)

// Error is the uniform error every Client implementation raises on a remote
// failure.
type Error struct {
	Kind    ErrorKind
	Message string
	// Reason is the appliance's numeric reason code when one was returned.
	Reason int
	Cause  error
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is a remote not-found.
func IsNotFound(err error) bool {
	var he *Error

	return errors.As(err, &he) && he.Kind == KindNotFound
}
