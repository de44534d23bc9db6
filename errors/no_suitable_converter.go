package errors

import (
	"fmt"
	"reflect"
)

// ErrAbsentValue is the panic value raised when NoSuitableConverter is called
// without a subject. A missing converter for a nil value is meaningless; the
// converter lookup binds absent values as NULL instead.
var ErrAbsentValue = New(CodeInvalidInput, "no suitable converter failure requires a non-nil value")

// NoSuitableConverterError is raised by the converter lookup once every
// registered converter has declined a value.
//
// It carries the offending value so handlers can inspect it, attempt another
// serialization, or re-raise with more context. The message renders the value
// and its type for operators and never changes after construction.
type NoSuitableConverterError struct {
	rdbcError
	value interface{}
}

// NoSuitableConverter creates the failure reported when no registered converter
// applies to value.
//
// value must not be nil or a nil pointer; violating this is a programming
// error in the caller and panics with ErrAbsentValue.
//
// Example:
//
//	for _, c := range converters {
//	    if out, ok, err := c.Convert(value, target); ok || err != nil {
//	        return out, err
//	    }
//	}
//	return nil, errors.NoSuitableConverter(value)
func NoSuitableConverter(value interface{}) *NoSuitableConverterError {
	if IsAbsent(value) {
		panic(ErrAbsentValue)
	}

	return &NoSuitableConverterError{
		rdbcError: rdbcError{
			code:           CodeNoSuitableConverter,
			classification: getDefaultClassification(CodeNoSuitableConverter),
			message: fmt.Sprintf(
				"No suitable converter was found for value '%v' of type %s",
				value,
				TypeName(value),
			),
		},
		value: value,
	}
}

// Value returns the value that could not be converted.
func (e *NoSuitableConverterError) Value() interface{} {
	return e.value
}

func (e *NoSuitableConverterError) derive(fn func(*rdbcError)) RdbcError {
	clone := *e
	clone.context = copyContext(e.context)
	fn(&clone.rdbcError)
	return &clone
}

// IsNoSuitableConverter reports whether err's chain contains a
// NoSuitableConverterError.
func IsNoSuitableConverter(err error) bool {
	var target *NoSuitableConverterError
	return As(err, &target)
}

// UnconvertibleValue returns the offending value of the first
// NoSuitableConverterError in err's chain.
//
// Example:
//
//	if v, ok := errors.UnconvertibleValue(err); ok {
//	    registry.Register(converterFor(v))
//	}
func UnconvertibleValue(err error) (interface{}, bool) {
	var target *NoSuitableConverterError
	if !As(err, &target) {
		return nil, false
	}
	return target.Value(), true
}

// IsAbsent reports whether value is nil or a nil reference: a nil pointer,
// func, chan, or unsafe.Pointer. Absent values have no subject to report, so
// the converter lookup must check this before calling NoSuitableConverter.
//
// Nil maps and slices are values. They print as "map[]" and "[]" and
// converters may still apply to them.
func IsAbsent(value interface{}) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
