package errors

import "fmt"

// Wrap chains err as the cause of a new failure.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If the wrapped error is an RdbcError, its classification is preserved.
// Otherwise, the default classification for the error code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	out, err := registry.Convert(arg, target)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeParameterBinding, "failed to bind parameter")
//	}
func Wrap(err error, code ErrorCode, message string) RdbcError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf chains err as the cause of a new failure with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) RdbcError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err != nil {
//	    return errors.WrapWithContext(err, errors.CodeColumnDecoding, "failed to decode column", map[string]interface{}{
//	        "column_index": 2,
//	        "column":       "created_at",
//	    })
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) RdbcError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var rdbcErr RdbcError
	if As(err, &rdbcErr) {
		classification = rdbcErr.Classification()
	}

	return &rdbcError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}
