// Package clierrors provides the base error type shared by all layers of the
// CLI. Domain packages declare their own error families by embedding
// InternalError and wrapping it with call context.
package clierrors

import "fmt"

// InternalError carries the originating component, the call site and the
// underlying error. It is embedded by the typed errors of the usecase and
// controller packages.
type InternalError struct {
	Name          string
	Call          string
	Function      string
	Message       string
	OriginalError error
}

// CreateError creates the base error for a component.
func CreateError(name string) InternalError {
	return InternalError{Name: name}
}

// Wrap records the call context and the underlying error.
func (e *InternalError) Wrap(call, function string, err error) error {
	e.Call = call
	e.Function = function
	e.OriginalError = err

	return e
}

func (e *InternalError) Error() string {
	msg := fmt.Sprintf("%s - %s - %s", e.Name, e.Call, e.Function)
	if e.OriginalError != nil {
		msg += ": " + e.OriginalError.Error()
	}

	return msg
}

func (e *InternalError) Unwrap() error {
	return e.OriginalError
}

// FriendlyMessage returns the message suitable for end users. It falls back
// to the underlying error text when no message was set.
func (e *InternalError) FriendlyMessage() string {
	if e.Message != "" {
		return e.Message
	}

	if e.OriginalError != nil {
		return e.OriginalError.Error()
	}

	return e.Name + " failed"
}
