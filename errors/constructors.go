package errors

import "fmt"

// New creates a new RdbcError with the given code and message.
// The error classification is determined by the error code using default mappings.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "statement has no parameters")
func New(code ErrorCode, message string) RdbcError {
	return &rdbcError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new RdbcError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "expected %d arguments, got %d", want, got)
func Newf(code ErrorCode, format string, args ...interface{}) RdbcError {
	return New(code, fmt.Sprintf(format, args...))
}
