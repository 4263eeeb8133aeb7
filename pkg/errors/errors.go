package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Failure class codes. The 5xx-class codes all end a generation attempt in
// the failed status; handlers use CodeOf to pick the HTTP response.
const (
	CodeUnknown             = 0
	CodeValidation          = 40001
	CodeNotFound            = 40401
	CodeNotConfigured       = 50001
	CodeNotImplemented      = 50002
	CodeUnsupportedProvider = 50003
	CodeUpstreamFailure     = 50004
)

// Error is a coded error with an optional cause and captured stack trace.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
	Stack   string `json:"stack,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithCode creates a new error with code.
func WithCode(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Stack:   captureStack(),
	}
}

// WithCodef creates a new error with code and formatted message.
func WithCodef(code int, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Stack:   captureStack(),
	}
}

// WrapCode wraps an error, keeping its message visible and attaching a code.
func WrapCode(code int, err error, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message + ": " + err.Error(),
		Err:     err,
		Stack:   captureStack(),
	}
}

// Wrap wraps an error with message.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
		Stack:   captureStack(),
	}
}

// New creates a new error without a code.
func New(message string) *Error {
	return &Error{
		Message: message,
		Stack:   captureStack(),
	}
}

// Errorf creates a new formatted error.
func Errorf(format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Stack:   captureStack(),
	}
}

// CodeOf walks the error chain and returns the first non-zero code found,
// or CodeUnknown when no coded error is present.
func CodeOf(err error) int {
	for err != nil {
		var e *Error
		if errors.As(err, &e) {
			if e.Code != CodeUnknown {
				return e.Code
			}
			err = e.Err
			continue
		}
		return CodeUnknown
	}
	return CodeUnknown
}

// GetMessage returns the error message, tolerating nil.
func GetMessage(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}

// captureStack captures the current stack trace, trimming the frames of
// this package itself.
func captureStack() string {
	buf := make([]byte, 1024)
	n := runtime.Stack(buf, false)
	stack := string(buf[:n])

	lines := strings.Split(stack, "\n")
	if len(lines) > 6 {
		stack = strings.Join(lines[6:], "\n")
	}

	return strings.TrimSpace(stack)
}

// Format implements fmt.Formatter; %+v appends the stack.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s", e.Error())
			if e.Stack != "" {
				fmt.Fprintf(s, "\n%s", e.Stack)
			}
			return
		}
		fallthrough
	case 's':
		fmt.Fprintf(s, "%s", e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
