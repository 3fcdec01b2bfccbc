// Package errors is the project error type: a message, a code that maps to an
// HTTP status and an optional reason tag callers branch on
//
// Import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error; values are stable on the wire
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePanic
	// ErrorCodeUnavailable is transient; a retry may succeed
	ErrorCodeUnavailable
	ErrorCodeTooManyRequests
	// ErrorCodeInvalidArgument is input that is well formed but unusable (a link without a video id)
	ErrorCodeInvalidArgument
	// ErrorCodeValidation is input that fails a required check (a blank link)
	ErrorCodeValidation
	ErrorCodeJSON
	ErrorCodeNotFound
	// ErrorCodeUpstream is a failure reported by YouTube or Gemini
	ErrorCodeUpstream
)

var codeInfo = map[ErrorCode]struct {
	name   string
	status int
}{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeTooManyRequests: {"too_many_requests", http.StatusTooManyRequests},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeUpstream:        {"upstream", http.StatusBadGateway},
}

// String names the code for logs
func (c ErrorCode) String() string {
	if ci, ok := codeInfo[c]; ok {
		return ci.name
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// HTTPStatusCode maps a code to its HTTP status; unknown codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if ci, ok := codeInfo[c]; ok {
		return ci.status
	}
	return http.StatusInternalServerError
}

// Error carries msg for people, code for machines and an optional reason
// tag (e.g. "invalid_url_format"); field names the offending input
type Error struct {
	orig   error
	msg    string
	code   ErrorCode
	reason string
	field  string
}

// Wire is the JSON form of an Error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Reason  string    `json:"reason,omitempty"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return e.msg + ": " + e.orig.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Message returns the message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// Reason returns this error's own reason tag
func (e *Error) Reason() string { return e.reason }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// ToWire converts e to its wire form
func (e *Error) ToWire() Wire {
	return Wire{Code: e.code, Reason: e.reason, Message: e.msg, Field: e.field}
}

// As returns the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WireFrom converts any error to its wire form; foreign errors become Unknown
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// CodeOf returns the code of the first *Error in err's chain, or Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the HTTP status for err
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// ReasonOf returns the outermost reason tag in err's chain
func ReasonOf(err error) string {
	for ; err != nil; err = stderrs.Unwrap(err) {
		if e, ok := err.(*Error); ok && e.reason != "" {
			return e.reason
		}
	}
	return ""
}

// WithReason returns a copy of err tagged with reason; foreign errors pass through
func WithReason(err error, reason string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.reason = reason
	return &c
}

// WithField returns a copy of err naming the offending field; foreign errors pass through
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// New returns an *Error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with a format
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns an *Error wrapping orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf is Wrap with a format
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

func NotFoundf(format string, a ...any) error   { return Newf(ErrorCodeNotFound, format, a...) }
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }
func JSONErrf(format string, a ...any) error    { return Newf(ErrorCodeJSON, format, a...) }
func PanicErrf(format string, a ...any) error   { return Newf(ErrorCodePanic, format, a...) }
func Upstreamf(format string, a ...any) error   { return Newf(ErrorCodeUpstream, format, a...) }
