package enum

import "errors"

// ErrInvalidOperation is the base error for operations the enum contract
// forbids. Both lifecycle errors wrap it, so callers can match the whole
// taxonomy with errors.Is.
var ErrInvalidOperation = errors.New("invalid operation")

// InvalidOperationError reports an attempt to use a set in a way its
// contract permanently forbids. It is never recoverable: the forbidden
// operations have no successful path.
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string { return e.Message }

func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }

var (
	// ErrNewInstance is returned by every attempt to construct an enum
	// instance.
	ErrNewInstance = &InvalidOperationError{Message: "you may not create Enum class instances"}

	// ErrCloneInstance is returned by every attempt to clone an enum
	// instance.
	ErrCloneInstance = &InvalidOperationError{Message: "you may not clone Enum class instances"}
)
