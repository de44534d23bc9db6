package convert

import "reflect"

// Converter transforms a value into the target type.
//
// A nil target asks for the converter's natural driver representation.
// Converters report ok == false with a nil error to decline a value they do not
// handle. A non-nil error means the converter applies but rejected the value.
type Converter interface {
	Convert(value any, target reflect.Type) (out any, ok bool, err error)
}

// ConverterFunc adapts an ordinary function to the Converter interface.
type ConverterFunc func(value any, target reflect.Type) (any, bool, error)

// Convert calls f(value, target).
func (f ConverterFunc) Convert(value any, target reflect.Type) (any, bool, error) {
	return f(value, target)
}

// Func builds a Converter from a typed function. The converter applies only
// when value is an In and target is Out or nil.
//
// Example:
//
//	unix := convert.Func(func(t time.Time) (int64, error) {
//	    return t.Unix(), nil
//	})
func Func[In, Out any](fn func(In) (Out, error)) Converter {
	outType := reflect.TypeFor[Out]()
	return ConverterFunc(func(value any, target reflect.Type) (any, bool, error) {
		in, ok := value.(In)
		if !ok {
			return nil, false, nil
		}
		if target != nil && target != outType {
			return nil, false, nil
		}
		out, err := fn(in)
		if err != nil {
			return nil, true, err
		}
		return out, true, nil
	})
}
