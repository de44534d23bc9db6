package errors

import "fmt"

// rdbcError is the concrete implementation of RdbcError and the common core
// embedded by every other variant.
// It is private to enforce construction through package functions.
type rdbcError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *rdbcError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *rdbcError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *rdbcError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *rdbcError) Message() string {
	return e.message
}

// Context returns a copy of the context map.
// Returns nil if no context has been attached.
func (e *rdbcError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *rdbcError) Unwrap() error {
	return e.cause
}

func (e *rdbcError) derive(fn func(*rdbcError)) RdbcError {
	clone := *e
	clone.context = copyContext(e.context)
	fn(&clone)
	return &clone
}

// lift converts err to an RdbcError, returning the first RdbcError in its chain.
// Errors from outside the taxonomy become CodeUnknown failures caused by err.
func lift(err error) RdbcError {
	var rdbcErr RdbcError
	if As(err, &rdbcErr) {
		return rdbcErr
	}
	return &rdbcError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	clone := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		clone[k] = v
	}
	return clone
}
