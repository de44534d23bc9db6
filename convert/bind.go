package convert

import (
	"maps"
	"reflect"
	"slices"

	"github.com/rdbc-io/rdbc-go/errors"
)

// BindArgs converts positional statement arguments. targets holds the
// parameter type for each argument; a nil slice binds every argument to its
// driver representation.
//
// A failed argument is reported as CodeParameterBinding with its "index" in
// the context; the lookup failure stays in the chain.
func (r *Registry) BindArgs(args []any, targets []reflect.Type) ([]any, error) {
	if targets != nil && len(targets) != len(args) {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"got %d arguments for %d parameters", len(args), len(targets))
	}

	bound := make([]any, len(args))
	for i, arg := range args {
		var target reflect.Type
		if targets != nil {
			target = targets[i]
		}

		out, err := r.Convert(arg, target)
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeParameterBinding, "failed to bind parameter",
				map[string]interface{}{"index": i})
		}
		bound[i] = out
	}
	return bound, nil
}

// BindNamed converts named statement arguments. Parameters missing from
// targets bind to their driver representation. Arguments are bound in name
// order so the reported failure is deterministic.
func (r *Registry) BindNamed(args map[string]any, targets map[string]reflect.Type) (map[string]any, error) {
	bound := make(map[string]any, len(args))
	for _, name := range slices.Sorted(maps.Keys(args)) {
		out, err := r.Convert(args[name], targets[name])
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeParameterBinding, "failed to bind parameter",
				map[string]interface{}{"param": name})
		}
		bound[name] = out
	}
	return bound, nil
}

// DecodeColumn converts a driver value read from a result column into target.
// A failure is reported as CodeColumnDecoding with "column_index" and "column"
// in the context.
func (r *Registry) DecodeColumn(index int, name string, value any, target reflect.Type) (any, error) {
	if target == nil {
		return nil, errors.Newf(errors.CodeInvalidInput, "no target type for column %q", name)
	}

	out, err := r.Convert(value, target)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeColumnDecoding, "failed to decode column",
			map[string]interface{}{
				"column_index": index,
				"column":       name,
			})
	}
	return out, nil
}
