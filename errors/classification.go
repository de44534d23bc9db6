package errors

// ErrorClassification indicates whether a failure should trigger a retry.
// Callers use it to decide between retrying the whole operation and failing
// the request.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: a missing converter registration, a value out of range.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Conversion gaps are configuration problems; retrying the same lookup
	// yields the same answer until a converter is registered.
	CodeNoSuitableConverter: ClassificationPermanent,
	CodeConversionFailed:    ClassificationPermanent,

	CodeParameterBinding: ClassificationPermanent,
	CodeColumnDecoding:   ClassificationPermanent,
	CodeInvalidInput:     ClassificationPermanent,

	CodeInternal: ClassificationPermanent,
	CodeUnknown:  ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
