// Package errors provides the failure taxonomy of the rdbc client library.
//
// Every failure the library raises implements RdbcError, the taxonomy root. It
// carries an error code, a human-readable message, a retry classification,
// optional context metadata, and an optional chained cause. It stays fully
// compatible with the standard library errors package (errors.Is, errors.As,
// errors.Unwrap).
//
// # Variants
//
// The set of failure variants is closed. Code() is the variant tag, and
// variants with a payload have an exported concrete type:
//
//   - CodeNoSuitableConverter: *NoSuitableConverterError, carrying the value
//     no registered converter could transform
//   - CodeConversionFailed: an applicable converter rejected the value
//   - CodeParameterBinding, CodeColumnDecoding: wrappers added by statement
//     binding and result decoding
//   - CodeInvalidInput, CodeInternal, CodeUnknown
//
// Generic handlers match the root:
//
//	var rdbcErr errors.RdbcError
//	if errors.As(err, &rdbcErr) {
//	    log.Printf("%s: %s", rdbcErr.Code(), rdbcErr.Message())
//	}
//
// Specific handlers match the variant:
//
//	var nsc *errors.NoSuitableConverterError
//	if errors.As(err, &nsc) {
//	    registry.Register(converterFor(nsc.Value()))
//	}
//
// # Conversion Failures
//
// The converter lookup calls NoSuitableConverter(value) once it has exhausted
// every registered converter. The message is fixed at construction:
//
//	No suitable converter was found for value '42' of type int
//
// The type is rendered by TypeName: fully qualified for named types
// ("github.com/acme/app/model.Money"), or supplied by the value itself through
// TypeNamer. Calling NoSuitableConverter with a nil value or nil pointer panics
// with ErrAbsentValue; absent values are NULLs and never reach the lookup.
//
// A missing converter is a registration gap, not a transient fault. It is
// classified as permanent and IsRetryable reports false.
//
// # Wrapping
//
// Intermediate layers add context by chaining, never by discarding:
//
//	out, err := registry.Convert(arg, target)
//	if err != nil {
//	    return errors.WrapWithContext(err, errors.CodeParameterBinding, "failed to bind parameter",
//	        map[string]interface{}{"index": i})
//	}
//
// WithContext, WithContextMap, and WithClassification return a new failure of
// the same variant, so the unconvertible value survives decoration.
//
// # Design Principles
//
//   - Standard library compatibility (errors.Is, errors.As, errors.Unwrap)
//   - Immutability (errors are immutable once created, safe to share across goroutines)
//   - No side effects (constructing a failure never logs or performs I/O)
//   - Type safety (strong types for codes and classifications)
//
// # JSON
//
// ToJSON and MarshalJSON produce a flat ErrorResponse for the outermost
// failure. Cause chains and raw payloads are excluded; a conversion failure
// reports the type name of its value as value_type.
package errors
