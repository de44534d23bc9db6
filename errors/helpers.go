package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
//
// Example:
//
//	var nsc *errors.NoSuitableConverterError
//	if errors.As(err, &nsc) {
//	    log.Printf("register a converter for %T", nsc.Value())
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// outermost returns the first RdbcError in err's chain. Wrapping layers added
// by binding and decoding shadow the failures they wrap.
func outermost(err error) (RdbcError, bool) {
	var rdbcErr RdbcError
	if err == nil || !stderrors.As(err, &rdbcErr) {
		return nil, false
	}
	return rdbcErr, true
}

// GetCode returns the code of the outermost RdbcError in err's chain, or
// CodeUnknown when there is none.
func GetCode(err error) ErrorCode {
	if rdbcErr, ok := outermost(err); ok {
		return rdbcErr.Code()
	}
	return CodeUnknown
}

// GetClassification returns the classification of the outermost RdbcError in
// err's chain. Errors outside the taxonomy are permanent.
func GetClassification(err error) ErrorClassification {
	if rdbcErr, ok := outermost(err); ok {
		return rdbcErr.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable reports whether err is classified as retryable.
//
// A missing converter is never retryable: the caller registers a converter
// and retries the whole operation, or fails the request.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
