package common

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message. The code tells the caller which stage of a command
// invocation failed; none of the categories is retried by this client.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCArgument:
		errorCode = "ArgumentError"
	case RetCProtocol:
		errorCode = "ProtocolError"
	case RetCConsistency:
		errorCode = "ConsistencyError"
	case RetCConfig:
		errorCode = "ConfigError"
	default:
		errorCode = "Unknown"
	}

	return fmt.Sprintf("DocStoreError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, format string, args ...interface{}) *Error {
	return &Error{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// CodeOf returns the RetCode of an error, or RetCUnknown if the error was
// not produced by this package.
func CodeOf(err error) RetCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return RetCUnknown
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

// RetCode classifies client errors.
type RetCode uint8

const (
	RetCUnknown RetCode = iota
	// RetCArgument - invalid call arguments (empty key, bad option set).
	// Detected before any transport call is made.
	RetCArgument
	// RetCProtocol - the server answered with an error reply (wrong type at
	// path, required path absent, ...). The server text is surfaced
	// unchanged.
	RetCProtocol
	// RetCConsistency - a clustered reply had a cardinality that
	// contradicts the command's aggregation mode. Fatal to the call.
	RetCConsistency
	// RetCConfig - unusable client configuration, e.g. an unrecognized
	// deployment mode or a transport that does not match it.
	RetCConfig
)
