package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrFormat        = errors.New("format error")
	ErrConfiguration = errors.New("configuration error")
	ErrRange         = errors.New("out of range")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindFormat        ErrorKind = "format"
	KindConfiguration ErrorKind = "configuration"
	KindRange         ErrorKind = "range"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: source file of a tz record
	Line int    // Optional: 1-based line in Path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		if e.Line > 0 {
			base += fmt.Sprintf(" (path=%s:%d)", e.Path, e.Line)
		} else {
			base += fmt.Sprintf(" (path=%s)", e.Path)
		}
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

// Is lets errors.Is match an OpError against the sentinel of its kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindFormat:
		return target == ErrFormat
	case KindConfiguration:
		return target == ErrConfiguration
	case KindRange:
		return target == ErrRange
	}
	return false
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// FormatError reports a malformed tz record. token is the offending field, if any.
func FormatError(op, path string, line int, token string, msg string) error {
	var err error
	if token != "" {
		err = fmt.Errorf("%s %q", msg, token)
	} else {
		err = errors.New(msg)
	}
	return &OpError{Op: op, Kind: KindFormat, Path: path, Line: line, Err: err}
}

// ConfigurationError reports a missing or empty argument at a public entry point.
func ConfigurationError(op string, msg string) error {
	return &OpError{Op: op, Kind: KindConfiguration, Err: errors.New(msg)}
}
