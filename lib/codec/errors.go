package codec

import "fmt"

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message. All failures produced by this package are of this
// type, so callers can branch on the code with CodeOf.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCChannelMismatch:
		errorCode = "ChannelMismatch"
	case RetCNotWrapped:
		errorCode = "NotWrapped"
	case RetCCorruptStream:
		errorCode = "CorruptStream"
	case RetCVersionMismatch:
		errorCode = "VersionMismatch"
	case RetCInstantiationFailed:
		errorCode = "InstantiationFailed"
	case RetCUnexpectedEOF:
		errorCode = "UnexpectedEof"
	default:
		errorCode = "Unknown"
	}

	return fmt.Sprintf("CodecError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new codec Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// NewErrorf creates a new codec Error with a formatted message.
func NewErrorf(code RetCode, format string, args ...any) *Error {
	return NewError(code, fmt.Sprintf(format, args...))
}

// CodeOf extracts the RetCode from an error. It returns RetCSuccess for nil
// and RetCInternalError for errors that did not originate in this package.
func CodeOf(err error) RetCode {
	if err == nil {
		return RetCSuccess
	}
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return RetCInternalError
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess             RetCode = iota // 0: Operation completed successfully.
	RetCInternalError                      // 1: Operation failed due to an internal or foreign error.
	RetCChannelMismatch                    // 2: Wrap called with a different channel while a wrap is active.
	RetCNotWrapped                         // 3: Unwrap called without a matching wrap.
	RetCCorruptStream                      // 4: Out-of-range or unexpected opcode/ID, stream is not trustworthy.
	RetCVersionMismatch                    // 5: Declared version token differs from the dictionary entry.
	RetCInstantiationFailed                // 6: The resolved type cannot be constructed.
	RetCUnexpectedEOF                      // 7: Channel exhausted mid-record.
)
