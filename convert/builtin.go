package convert

import (
	"database/sql/driver"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	stringType  = reflect.TypeFor[string]()
	bytesType   = reflect.TypeFor[[]byte]()
	float64Type = reflect.TypeFor[float64]()
	int64Type   = reflect.TypeFor[int64]()
	decimalType = reflect.TypeFor[decimal.Decimal]()
	uuidType    = reflect.TypeFor[uuid.UUID]()
)

// Defaults returns the built-in converters in lookup order.
func Defaults() []Converter {
	return []Converter{
		Decimal(),
		UUID(),
		Identity(),
		Integer(),
		Stringer(),
	}
}

// Identity accepts values already assignable to the target. With a nil target
// it accepts values that are already driver values (int64, float64, bool,
// []byte, string, time.Time). A nil value is declined.
func Identity() Converter {
	return ConverterFunc(func(value any, target reflect.Type) (any, bool, error) {
		if value == nil {
			return nil, false, nil
		}
		if target == nil {
			if driver.IsValue(value) {
				return value, true, nil
			}
			return nil, false, nil
		}
		if reflect.TypeOf(value).AssignableTo(target) {
			return value, true, nil
		}
		return nil, false, nil
	})
}

// Integer converts between Go integer kinds, and parses base 10 strings into
// integers. With a nil target integers widen to int64. Conversions that would
// overflow the target fail with strconv.ErrRange.
func Integer() Converter {
	return ConverterFunc(convertInteger)
}

func convertInteger(value any, target reflect.Type) (any, bool, error) {
	if value == nil {
		return nil, false, nil
	}
	if target == nil {
		if !isInteger(reflect.TypeOf(value).Kind()) {
			return nil, false, nil
		}
		target = int64Type
	}
	if !isInteger(target.Kind()) {
		return nil, false, nil
	}

	out := reflect.New(target).Elem()
	rv := reflect.ValueOf(value)

	switch {
	case rv.Kind() == reflect.String:
		if isSigned(target.Kind()) {
			n, err := strconv.ParseInt(rv.String(), 10, target.Bits())
			if err != nil {
				return nil, true, err
			}
			out.SetInt(n)
		} else {
			n, err := strconv.ParseUint(rv.String(), 10, target.Bits())
			if err != nil {
				return nil, true, err
			}
			out.SetUint(n)
		}

	case isSigned(rv.Kind()):
		n := rv.Int()
		if isSigned(target.Kind()) {
			if out.OverflowInt(n) {
				return nil, true, rangeError(value)
			}
			out.SetInt(n)
		} else {
			if n < 0 || out.OverflowUint(uint64(n)) {
				return nil, true, rangeError(value)
			}
			out.SetUint(uint64(n))
		}

	case isUnsigned(rv.Kind()):
		n := rv.Uint()
		if isSigned(target.Kind()) {
			if n > math.MaxInt64 || out.OverflowInt(int64(n)) {
				return nil, true, rangeError(value)
			}
			out.SetInt(int64(n))
		} else {
			if out.OverflowUint(n) {
				return nil, true, rangeError(value)
			}
			out.SetUint(n)
		}

	default:
		return nil, false, nil
	}

	return out.Interface(), true, nil
}

func rangeError(value any) error {
	return &strconv.NumError{Func: "Integer", Num: fmt.Sprint(value), Err: strconv.ErrRange}
}

func isInteger(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k)
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// Decimal converts shopspring decimals. A decimal.Decimal becomes a string
// (its driver form) or a float64; strings and float64 values become decimals.
func Decimal() Converter {
	return ConverterFunc(func(value any, target reflect.Type) (any, bool, error) {
		switch v := value.(type) {
		case decimal.Decimal:
			switch target {
			case nil, stringType:
				return v.String(), true, nil
			case float64Type:
				f, _ := v.Float64()
				return f, true, nil
			}
		case string:
			if target == decimalType {
				d, err := decimal.NewFromString(v)
				if err != nil {
					return nil, true, fmt.Errorf("%w: %w", ErrInvalidDecimal, err)
				}
				return d, true, nil
			}
		case float64:
			if target == decimalType {
				return decimal.NewFromFloat(v), true, nil
			}
		}
		return nil, false, nil
	})
}

// UUID converts google/uuid values. A uuid.UUID becomes its canonical string
// (its driver form) or its 16 raw bytes; strings and byte slices become UUIDs.
func UUID() Converter {
	return ConverterFunc(func(value any, target reflect.Type) (any, bool, error) {
		switch v := value.(type) {
		case uuid.UUID:
			switch target {
			case nil, stringType:
				return v.String(), true, nil
			case bytesType:
				b, err := v.MarshalBinary()
				if err != nil {
					return nil, true, err
				}
				return b, true, nil
			}
		case string:
			if target == uuidType {
				u, err := uuid.Parse(v)
				if err != nil {
					return nil, true, err
				}
				return u, true, nil
			}
		case []byte:
			if target == uuidType {
				u, err := uuid.FromBytes(v)
				if err != nil {
					return nil, true, err
				}
				return u, true, nil
			}
		}
		return nil, false, nil
	})
}

// Stringer renders fmt.Stringer values when a string is requested.
func Stringer() Converter {
	return ConverterFunc(func(value any, target reflect.Type) (any, bool, error) {
		s, ok := value.(fmt.Stringer)
		if !ok || target != stringType {
			return nil, false, nil
		}
		return s.String(), true, nil
	})
}
