package nfd

import (
	"errors"
	"fmt"
)

var (
	// ErrNulByte is the cause of an Error raised because an input string
	// contained a 0 byte and cannot be passed to the native library.
	ErrNulByte = errors.New("nul byte found in provided data")

	// ErrNative is the cause of an Error reported by the native library.
	ErrNative = errors.New("native dialog error")

	// ErrInvalidMode is the cause of an Error raised for a Mode outside
	// SingleFile, MultipleFiles and SaveFile.
	ErrInvalidMode = errors.New("unknown dialog mode")
)

// Error is the single failure type of this package. Message is the text to
// show to a user; for native failures it is the library's own message,
// captured at the moment of failure.
type Error struct {
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns ErrNulByte, ErrNative or ErrInvalidMode.
func (e *Error) Unwrap() error {
	return e.cause
}

func encodingError(field string, pos int) *Error {
	return &Error{
		Message: fmt.Sprintf("%s: %v at position: %d", field, ErrNulByte, pos),
		cause:   ErrNulByte,
	}
}

func modeError(mode Mode) *Error {
	return &Error{
		Message: fmt.Sprintf("nfd: %v %d", ErrInvalidMode, int(mode)),
		cause:   ErrInvalidMode,
	}
}

func nativeError(msg string) *Error {
	if msg == "" {
		msg = "unknown native dialog error"
	}
	return &Error{Message: msg, cause: ErrNative}
}
