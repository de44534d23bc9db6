package errors

// ErrorCode identifies a failure variant.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Conversion errors.

	// CodeNoSuitableConverter indicates no registered converter could transform a value.
	CodeNoSuitableConverter ErrorCode = "NO_SUITABLE_CONVERTER"

	// CodeConversionFailed indicates an applicable converter rejected the value.
	CodeConversionFailed ErrorCode = "CONVERSION_FAILED"

	// Data access errors.

	// CodeParameterBinding indicates a statement parameter could not be bound.
	CodeParameterBinding ErrorCode = "PARAMETER_BINDING_FAILED"

	// CodeColumnDecoding indicates a result column could not be decoded.
	CodeColumnDecoding ErrorCode = "COLUMN_DECODING_FAILED"

	// Validation errors.

	// CodeInvalidInput indicates an argument passed to a library operation is invalid.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// System errors.

	// CodeInternal indicates an internal library error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
