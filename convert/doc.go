// Package convert looks up converters that move values between their
// application representation and the representation a database driver
// accepts.
//
// A Registry holds converters in registration order. Convert asks each one in
// turn; the first that accepts the value and target type wins. Converters that
// do not handle a value decline by returning ok == false, they never fail for
// values outside their domain. When every converter declines, Convert returns
// *errors.NoSuitableConverterError carrying the value. That failure is
// permanent: the registry never retries the lookup.
//
//	reg := convert.NewRegistry(convert.WithDefaults())
//	out, err := reg.Convert(amount, reflect.TypeFor[string]())
//	if errors.IsNoSuitableConverter(err) {
//	    // register a converter for amount's type, or fail the request
//	}
//
// Nil values and nil pointers are NULLs. They convert to nil without consulting
// any converter.
//
// BindArgs, BindNamed, and DecodeColumn are the statement-binding and
// result-decoding callers of the lookup. They wrap its failures with the
// parameter or column that triggered them, leaving the original failure
// reachable through errors.As.
package convert
