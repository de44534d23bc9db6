package errors

// WithContext adds a single context field to an error.
// Returns a new RdbcError of the same variant with the field added; existing
// fields are preserved.
//
// If err is not an RdbcError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.NoSuitableConverter(value)
//	err2 := errors.WithContext(err, "param", "user_id")
func WithContext(err error, key string, value interface{}) RdbcError {
	if err == nil {
		return nil
	}

	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not an RdbcError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) RdbcError {
	if err == nil {
		return nil
	}

	return lift(err).derive(func(e *rdbcError) {
		if e.context == nil {
			e.context = make(map[string]interface{}, len(ctx))
		}
		for k, v := range ctx {
			e.context[k] = v
		}
	})
}

// WithClassification overrides the classification of an error.
//
// If err is not an RdbcError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	// A driver that reconnects on a fresh type catalog may retry the operation.
//	err = errors.WithClassification(err, errors.ClassificationRetryable)
func WithClassification(err error, classification ErrorClassification) RdbcError {
	if err == nil {
		return nil
	}

	return lift(err).derive(func(e *rdbcError) {
		e.classification = classification
	})
}
