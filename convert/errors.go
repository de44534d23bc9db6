package convert

import (
	stderrors "errors"
	"reflect"
	"strconv"

	"github.com/google/uuid"
	"github.com/rdbc-io/rdbc-go/errors"
)

// ErrInvalidDecimal is returned by the Decimal converter when a string is not
// a decimal number. The parser's own error follows it in the chain.
var ErrInvalidDecimal = stderrors.New("invalid decimal")

// wrapConverterError turns an error returned by a converter into a
// CodeConversionFailed failure. The original error stays in the chain.
// Failures already in the taxonomy pass through unchanged.
func wrapConverterError(err error, value any, target reflect.Type) error {
	var rdbcErr errors.RdbcError
	if errors.As(err, &rdbcErr) {
		return err
	}

	return errors.WrapWithContext(err, errors.CodeConversionFailed, classifyError(err), map[string]interface{}{
		"value_type":  errors.TypeName(value),
		"target_type": typeName(target),
	})
}

// classifyError maps converter errors to a failure message.
func classifyError(err error) string {
	switch {
	case errors.Is(err, strconv.ErrRange):
		return "value out of range for target type"
	case errors.Is(err, strconv.ErrSyntax):
		return "value has invalid syntax for target type"
	case errors.Is(err, ErrInvalidDecimal):
		return "value has invalid syntax for decimal"
	case uuid.IsInvalidLengthError(err):
		return "value has invalid length for UUID"
	default:
		return "converter rejected value"
	}
}
