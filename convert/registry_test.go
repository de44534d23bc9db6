package convert

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"sync"
	"testing"

	"github.com/rdbc-io/rdbc-go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int }

type countingConverter struct {
	mu    sync.Mutex
	calls int
	ok    bool
	out   any
	err   error
}

func (c *countingConverter) Convert(value any, target reflect.Type) (any, bool, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.out, c.ok, c.err
}

func (c *countingConverter) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestNewRegistry(t *testing.T) {
	require.Equal(t, 0, NewRegistry().Len())
	require.Equal(t, len(Defaults()), NewRegistry(WithDefaults()).Len())
	require.Equal(t, 2, NewRegistry(WithConverters(Identity(), nil, Integer())).Len())
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register(Identity())
	r.Register(Integer(), Decimal())
	r.Register(nil)

	require.Equal(t, 3, r.Len())
}

func TestRegistry_Convert_NoSuitableConverter(t *testing.T) {
	r := NewRegistry(WithDefaults())
	value := point{X: 1, Y: 2}

	out, err := r.Convert(value, reflect.TypeFor[string]())

	require.Nil(t, out)
	require.Error(t, err)

	var nsc *errors.NoSuitableConverterError
	require.True(t, errors.As(err, &nsc))
	require.Equal(t, value, nsc.Value())
	require.Equal(t,
		"No suitable converter was found for value '{1 2}' of type github.com/rdbc-io/rdbc-go/convert.point",
		nsc.Message(),
	)
	require.False(t, errors.IsRetryable(err))
}

func TestRegistry_Convert_EmptyRegistry(t *testing.T) {
	_, err := NewRegistry().Convert(42, nil)

	require.True(t, errors.IsNoSuitableConverter(err))
	require.Equal(t, "[NO_SUITABLE_CONVERTER] No suitable converter was found for value '42' of type int", err.Error())
}

func TestRegistry_Convert_AbsentValue(t *testing.T) {
	decliner := &countingConverter{}
	r := NewRegistry(WithConverters(decliner))

	for _, v := range []any{nil, (*point)(nil), (func())(nil), (chan int)(nil)} {
		out, err := r.Convert(v, reflect.TypeFor[string]())
		require.NoError(t, err)
		require.Nil(t, out)
	}
	require.Equal(t, 0, decliner.Calls())
}

func TestRegistry_Convert_Order(t *testing.T) {
	first := &countingConverter{}
	second := &countingConverter{ok: true, out: "second"}
	third := &countingConverter{ok: true, out: "third"}
	r := NewRegistry(WithConverters(first, second, third))

	out, err := r.Convert(1, reflect.TypeFor[string]())

	require.NoError(t, err)
	require.Equal(t, "second", out)
	require.Equal(t, 1, first.Calls())
	require.Equal(t, 1, second.Calls())
	require.Equal(t, 0, third.Calls())
}

func TestRegistry_Convert_NoRetry(t *testing.T) {
	decliner := &countingConverter{}
	r := NewRegistry(WithConverters(decliner))

	_, err := r.Convert("x", nil)

	require.True(t, errors.IsNoSuitableConverter(err))
	require.Equal(t, 1, decliner.Calls())
}

func TestRegistry_Convert_ConverterError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"range", &strconv.NumError{Func: "ParseInt", Num: "999", Err: strconv.ErrRange}, "value out of range for target type"},
		{"syntax", &strconv.NumError{Func: "ParseInt", Num: "x", Err: strconv.ErrSyntax}, "value has invalid syntax for target type"},
		{"decimal", fmt.Errorf("%w: %w", ErrInvalidDecimal, stderrors.New("can't convert x to decimal")), "value has invalid syntax for decimal"},
		{"other", stderrors.New("boom"), "converter rejected value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(WithConverters(&countingConverter{ok: true, err: tt.err}))

			_, err := r.Convert(int8(1), reflect.TypeFor[string]())

			require.Equal(t, errors.CodeConversionFailed, errors.GetCode(err))
			require.True(t, stderrors.Is(err, tt.err))
			require.False(t, errors.IsNoSuitableConverter(err))

			var rdbcErr errors.RdbcError
			require.True(t, errors.As(err, &rdbcErr))
			require.Equal(t, tt.message, rdbcErr.Message())
			require.Equal(t, "int8", rdbcErr.Context()["value_type"])
			require.Equal(t, "string", rdbcErr.Context()["target_type"])
		})
	}
}

func TestRegistry_Convert_ConverterErrorInTaxonomy(t *testing.T) {
	inner := errors.NoSuitableConverter("nested")
	r := NewRegistry(WithConverters(&countingConverter{err: inner}))

	_, err := r.Convert("outer", nil)

	require.Same(t, inner, err)
}

func TestRegistry_Convert_WrongOutputType(t *testing.T) {
	r := NewRegistry(WithConverters(&countingConverter{ok: true, out: 42}))

	_, err := r.Convert("x", reflect.TypeFor[string]())

	require.Equal(t, errors.CodeInternal, errors.GetCode(err))
	require.Contains(t, err.Error(), "converter produced int for target string")
}

func TestRegistry_Convert_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewRegistry(WithLogger(logger), WithConverters(Identity()))

	_, err := r.Convert(point{}, reflect.TypeFor[string]())
	require.Error(t, err)

	out := buf.String()
	require.Contains(t, out, "no suitable converter")
	require.Contains(t, out, "value_type=github.com/rdbc-io/rdbc-go/convert.point")
	require.Contains(t, out, "target_type=string")
	require.Contains(t, out, "converter_count=1")
}

func TestRegistry_Convert_NilLoggerIgnored(t *testing.T) {
	r := NewRegistry(WithLogger(nil))

	_, err := r.Convert(1, nil)
	require.True(t, errors.IsNoSuitableConverter(err))
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry(WithDefaults())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			out, err := r.Convert(strconv.Itoa(i), reflect.TypeFor[int]())
			assert.NoError(t, err)
			assert.Equal(t, i, out)
		}(i)
		go func(i int) {
			defer wg.Done()
			_, err := r.Convert(point{X: i}, reflect.TypeFor[string]())
			v, ok := errors.UnconvertibleValue(err)
			assert.True(t, ok)
			assert.Equal(t, point{X: i}, v)
		}(i)
	}

	// Registration races with lookups
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.Register(ConverterFunc(func(value any, target reflect.Type) (any, bool, error) {
			return nil, false, nil
		}))
	}()
	wg.Wait()

	require.Equal(t, len(Defaults())+1, r.Len())
}

func TestConvertTo(t *testing.T) {
	r := NewRegistry(WithDefaults())

	n, err := ConvertTo[int16](r, "123")
	require.NoError(t, err)
	require.Equal(t, int16(123), n)

	s, err := ConvertTo[string](r, "same")
	require.NoError(t, err)
	require.Equal(t, "same", s)
}

func TestConvertTo_Failures(t *testing.T) {
	r := NewRegistry(WithDefaults())

	_, err := ConvertTo[int](r, point{})
	require.True(t, errors.IsNoSuitableConverter(err))

	zero, err := ConvertTo[int](r, nil)
	require.NoError(t, err)
	require.Equal(t, 0, zero)
}

func TestTypeName(t *testing.T) {
	require.Equal(t, "any", typeName(nil))
	require.Equal(t, "[]uint8", typeName(reflect.TypeFor[[]byte]()))
	require.Equal(t, "convert.point", typeName(reflect.TypeFor[point]()))
}

func ExampleRegistry_Convert() {
	r := NewRegistry(WithDefaults())

	_, err := r.Convert(point{X: 1, Y: 2}, reflect.TypeFor[string]())
	fmt.Println(errors.GetCode(err))
	fmt.Println(errors.IsRetryable(err))
	// Output:
	// NO_SUITABLE_CONVERTER
	// false
}
