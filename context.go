package fstr

import (
	"fmt"
	"reflect"
)

// Formatter is the per-type formatting strategy: parse a specifier from the
// template cursor, render one value to the context's sink. Parse must stop
// at the first byte it does not understand; the driver verifies the closing
// '}'. Reset restores the parsed state to the type's defaults so the same
// argument can be referenced by several placeholders with independent
// specifiers.
type Formatter interface {
	Parse(s *Scanner) error
	Format(ctx *Context, v any) error
	Reset()
}

// Formattable is implemented by caller types that supply their own
// [Formatter]. It takes precedence over every built-in strategy.
type Formattable interface {
	NewFormatter() Formatter
}

// argument bundles one caller value with its formatting strategy for the
// duration of a single top-level call.
type argument struct {
	value any
	f     Formatter
}

// uint reports the argument's value as an unsigned integer, for deferred
// width and precision references. Non-integral and negative values report
// false.
func (a *argument) uint() (uint64, bool) {
	u, neg, err := toUint(a.value)
	if err != nil || neg {
		return 0, false
	}
	return u, true
}

// newArgument selects the strategy for one caller value. Formattable wins,
// then the built-in types, then pairs and ordered containers, and finally
// fmt.Stringer as the string-like fallback.
func newArgument(v any) (*argument, error) {
	if f, ok := v.(Formattable); ok {
		return &argument{value: v, f: f.NewFormatter()}, nil
	}
	switch v.(type) {
	case bool:
		return &argument{value: v, f: newBoolFormatter()}, nil
	case Char:
		return &argument{value: v, f: newCharFormatter()}, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return &argument{value: v, f: newIntFormatter()}, nil
	case float32, float64:
		return &argument{value: v, f: newFloatFormatter()}, nil
	case string, []byte:
		return &argument{value: v, f: newStrFormatter()}, nil
	}
	if _, ok := v.(pairer); ok {
		return &argument{value: v, f: newPairFormatter()}, nil
	}
	if rv := reflect.ValueOf(v); rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		return &argument{value: v, f: newSeqFormatter(rv)}, nil
	}
	if _, ok := v.(fmt.Stringer); ok {
		return &argument{value: v, f: newStrFormatter()}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

func newArguments(values []any) ([]*argument, error) {
	args := make([]*argument, len(values))
	for i, v := range values {
		a, err := newArgument(v)
		if err != nil {
			return nil, err
		}
		args[i] = a
	}
	return args, nil
}

// Context carries the sink, the call's argument store, and the shared
// automatic-index cursor through every recursive render of one top-level
// call.
type Context struct {
	out  Sink
	args []*argument
	auto *int
}

func newContext(out Sink, args []*argument) *Context {
	var auto int
	return &Context{out: out, args: args, auto: &auto}
}

// withSink returns a Context writing to a different sink while sharing the
// argument store and automatic cursor.
func (ctx *Context) withSink(out Sink) *Context {
	c := *ctx
	c.out = out
	return &c
}

// arg returns the argument at index i.
func (ctx *Context) arg(i int) (*argument, error) {
	if i >= len(ctx.args) {
		return nil, fmt.Errorf("%w: index %d with %d argument(s)", ErrIndexOutOfRange, i, len(ctx.args))
	}
	return ctx.args[i], nil
}

// nextArg returns the argument selected by the automatic cursor and advances
// it. Deferred width and precision references share this cursor with
// top-level placeholders.
func (ctx *Context) nextArg() (*argument, error) {
	i := *ctx.auto
	*ctx.auto++
	return ctx.arg(i)
}

// WriteString writes s to the context's sink.
func (ctx *Context) WriteString(s string) error {
	_, err := ctx.out.WriteString(s)
	return err
}

// WriteRune writes r to the context's sink.
func (ctx *Context) WriteRune(r rune) error {
	_, err := ctx.out.WriteRune(r)
	return err
}

// Render re-enters the engine against the context's sink. Custom
// [Formatter] implementations use it to compose their output from nested
// templates.
func (ctx *Context) Render(format string, args ...any) error {
	store, err := newArguments(args)
	if err != nil {
		return err
	}
	return render(newContext(ctx.out, store), format)
}
