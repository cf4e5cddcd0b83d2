package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrNotFound         = errors.New("not found")
	ErrRender           = errors.New("render error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidParameter ErrorKind = "invalid_parameter"
	KindInvalidConfig    ErrorKind = "invalid_config"
	KindNotFound         ErrorKind = "not_found"
	KindRender           ErrorKind = "render"
	KindDisplay          ErrorKind = "display"
	KindExecution        ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Path  string // Optional: relevant file path
	Field string // Optional: offending parameter or config field
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Field != "" {
		base += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// InvalidParameter builds a KindInvalidParameter error that also matches
// ErrInvalidParameter with errors.Is.
func InvalidParameter(op, field, msg string) error {
	return &OpError{
		Op:    op,
		Kind:  KindInvalidParameter,
		Field: field,
		Err:   fmt.Errorf("%s: %w", msg, ErrInvalidParameter),
	}
}
