package errors

// RdbcError is the root of the client library's failure taxonomy.
//
// Every failure raised by the library implements RdbcError, so generic handling
// code can inspect the code, message, and classification of any failure without
// knowing its concrete variant. Code() acts as the variant tag; handlers that
// need variant-specific data match the concrete type with errors.As.
//
// The interface is sealed: only types in this package implement it.
type RdbcError interface {
	error

	// Code returns the error code identifying the variant of the failure.
	Code() ErrorCode

	// Classification returns whether the failure is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable message fixed at construction.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the chained cause for errors.Is and errors.As compatibility.
	// Returns nil if this failure has no cause.
	Unwrap() error

	// derive returns a copy of the failure with fn applied to its common fields.
	// The concrete variant and its payload are preserved.
	derive(fn func(*rdbcError)) RdbcError
}
