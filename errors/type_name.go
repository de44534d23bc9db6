package errors

import "reflect"

// TypeNamer lets a value supply its own type descriptor for failure messages.
// Values that wrap driver types or come from code generators implement it to
// report a stable name instead of the Go type name.
type TypeNamer interface {
	TypeName() string
}

// TypeName returns a human-readable, fully qualified type name for value.
//
// Named types render as "import/path.Name", pointers to named types as
// "*import/path.Name", and builtin or unnamed types as their Go spelling
// ("int", "[]string", "map[string]int"). A TypeNamer supplies its own name,
// unless the value is a nil reference: its method is never called and the
// reflected name is used.
func TypeName(value interface{}) string {
	if value == nil {
		return "<nil>"
	}
	if IsAbsent(value) {
		return qualifiedName(reflect.TypeOf(value))
	}
	if namer, ok := value.(TypeNamer); ok {
		return namer.TypeName()
	}
	return qualifiedName(reflect.TypeOf(value))
}

func qualifiedName(t reflect.Type) string {
	switch {
	case t.Kind() == reflect.Pointer && t.Name() == "":
		return "*" + qualifiedName(t.Elem())
	case t.Name() != "" && t.PkgPath() != "":
		return t.PkgPath() + "." + t.Name()
	default:
		return t.String()
	}
}
