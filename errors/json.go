package errors

import (
	"encoding/json"
)

// ErrorResponse is a flat, serializable representation of a failure for
// diagnostic endpoints and structured logs.
//
// The cause chain and raw payloads are excluded. A conversion failure reports
// the type name of its value in ValueType, never the value itself.
type ErrorResponse struct {
	// Code is the error code identifying the variant.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// ValueType is the TypeName of the unconvertible value. Set only when the
	// outermost failure is a NoSuitableConverterError.
	ValueType string `json:"value_type,omitempty"`

	// Context contains optional metadata about the error.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// The response describes the outermost RdbcError in the chain; inner failures
// stay hidden. Errors outside the taxonomy report CodeUnknown with their
// Error() text.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	if rdbcErr, ok := outermost(err); ok {
		return newResponse(rdbcErr)
	}

	return &ErrorResponse{
		Code:           string(CodeUnknown),
		Message:        err.Error(),
		Classification: string(ClassificationPermanent),
	}
}

func newResponse(e RdbcError) *ErrorResponse {
	response := &ErrorResponse{
		Code:           string(e.Code()),
		Message:        e.Message(),
		Classification: string(e.Classification()),
		Context:        e.Context(),
	}
	if nsc, ok := e.(*NoSuitableConverterError); ok {
		response.ValueType = TypeName(nsc.value)
	}
	return response
}

func marshalResponse(response *ErrorResponse) ([]byte, error) {
	data, err := json.Marshal(response)
	if err != nil {
		return nil, &rdbcError{
			code:           CodeInternal,
			classification: ClassificationPermanent,
			message:        "failed to marshal error response",
			cause:          err,
		}
	}
	return data, nil
}

// MarshalJSON implements json.Marshaler.
func (e *rdbcError) MarshalJSON() ([]byte, error) {
	return marshalResponse(newResponse(e))
}

// MarshalJSON implements json.Marshaler. The output adds value_type to the
// common fields.
func (e *NoSuitableConverterError) MarshalJSON() ([]byte, error) {
	return marshalResponse(newResponse(e))
}
