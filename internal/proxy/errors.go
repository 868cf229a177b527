package proxy

import (
	"errors"
	"fmt"
)

// Error kinds carried by CallError. They map onto HTTP status codes at
// the API boundary.
const (
	KindNotFound        = "not_found"
	KindInvalidArgument = "invalid_argument"
	KindDispatchFailure = "dispatch_failure"
	KindTimeout         = "timeout"
	KindInternal        = "internal"
)

// CallError wraps a forwarding failure with its kind so callers can
// translate it to the right status code.
type CallError struct {
	Kind string
	Err  error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

func callErrorf(kind, format string, args ...any) *CallError {
	return &CallError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Kind extracts the error kind, defaulting to internal for errors that
// did not originate in the proxy.
func Kind(err error) string {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindInternal
}
