package convert

import (
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/rdbc-io/rdbc-go/errors"
)

// Registry is an ordered set of converters. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	converters []Converter
	logger     *slog.Logger
}

// NewRegistry creates a Registry configured by opts.
func NewRegistry(opts ...Option) *Registry {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Registry{logger: cfg.logger}
	r.Register(cfg.converters...)
	return r
}

// Register appends converters after the ones already registered.
// Nil converters are ignored.
func (r *Registry) Register(converters ...Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range converters {
		if c != nil {
			r.converters = append(r.converters, c)
		}
	}
	r.logger.Debug("registered converters", "converter_count", len(r.converters))
}

// Len returns the number of registered converters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.converters)
}

func (r *Registry) snapshot() []Converter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.converters)
}

// Convert transforms value into target using the first converter that accepts it.
//
// Absent values (nil or a nil pointer) convert to nil. A converter error is
// returned as a CodeConversionFailed failure chaining the original error. When
// no converter accepts the value, Convert returns *errors.NoSuitableConverterError.
func (r *Registry) Convert(value any, target reflect.Type) (any, error) {
	if errors.IsAbsent(value) {
		return nil, nil
	}

	converters := r.snapshot()
	for _, c := range converters {
		out, ok, err := c.Convert(value, target)
		if err != nil {
			return nil, wrapConverterError(err, value, target)
		}
		if !ok {
			continue
		}
		if target != nil && out != nil && !reflect.TypeOf(out).AssignableTo(target) {
			return nil, errors.Newf(errors.CodeInternal,
				"converter produced %s for target %s", errors.TypeName(out), typeName(target))
		}
		return out, nil
	}

	r.logger.Debug("no suitable converter",
		"value_type", errors.TypeName(value),
		"target_type", typeName(target),
		"converter_count", len(converters),
	)
	return nil, errors.NoSuitableConverter(value)
}

// ConvertTo converts value to T using r.
//
// Example:
//
//	id, err := convert.ConvertTo[uuid.UUID](reg, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
func ConvertTo[T any](r *Registry, value any) (T, error) {
	var zero T

	out, err := r.Convert(value, reflect.TypeFor[T]())
	if err != nil || out == nil {
		return zero, err
	}

	t, ok := out.(T)
	if !ok {
		return zero, errors.Newf(errors.CodeInternal,
			"converter produced %s for target %s", errors.TypeName(out), typeName(reflect.TypeFor[T]()))
	}
	return t, nil
}

// typeName renders a target type for messages; nil means any representation.
func typeName(t reflect.Type) string {
	if t == nil {
		return "any"
	}
	return t.String()
}
