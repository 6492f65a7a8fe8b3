package http

import (
	"errors"
	"fmt"
)

// Sentinel errors for request decoding. Every decode failure returned by
// ParseRequest wraps exactly one of these; use errors.Is to classify it and
// errors.As with the typed errors below to recover the offending text.
var (
	ErrMissingFirstLine       = errors.New("HTTP first line is completely missing")
	ErrMissingFirstLinePart   = errors.New("HTTP first line is incomplete")
	ErrInvalidVersionFormat   = errors.New("invalid HTTP version format")
	ErrInvalidHeaderSeparator = errors.New("invalid header separator")
	ErrUnknownMethod          = errors.New("unknown HTTP method")
	ErrInvalidEncoding        = errors.New("request is not valid UTF-8")
)

// ParseError represents an error that occurred during HTTP message parsing.
type ParseError struct {
	Err  error // underlying cause, one of the typed or sentinel errors
	Line int   // 1-indexed line number where error occurred (0 if unknown)
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("http: parse error at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("http: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(err error, line int) *ParseError {
	return &ParseError{Err: err, Line: line}
}

// MissingPartError reports a request line that ended before Part
// ("Method", "Path" or "Version").
type MissingPartError struct {
	Part string
}

func (e *MissingPartError) Error() string {
	return fmt.Sprintf("HTTP first line is incomplete (%s is missing)", e.Part)
}

func (e *MissingPartError) Is(target error) bool { return target == ErrMissingFirstLinePart }

// VersionFormatError reports a version token that is not HTTP/MAJOR.MINOR.
type VersionFormatError struct {
	Version string
}

func (e *VersionFormatError) Error() string {
	return fmt.Sprintf("the request's version formatting doesn't match the standard: expected HTTP/MAJOR.MINOR, got %s", e.Version)
}

func (e *VersionFormatError) Is(target error) bool { return target == ErrInvalidVersionFormat }

// HeaderSeparatorError reports a header line without a colon.
type HeaderSeparatorError struct {
	Header string
}

func (e *HeaderSeparatorError) Error() string {
	return fmt.Sprintf("header doesn't separate the key from the value: expected KEY: VALUE, got %s", e.Header)
}

func (e *HeaderSeparatorError) Is(target error) bool { return target == ErrInvalidHeaderSeparator }

// UnknownMethodError reports a method token outside the known verbs.
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("input (%s) doesn't match any known HTTP method", e.Method)
}

func (e *UnknownMethodError) Is(target error) bool { return target == ErrUnknownMethod }
