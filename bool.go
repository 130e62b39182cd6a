package fstr

import "fmt"

// boolFormatter renders true/false by default and falls back to the integer
// strategy (value 0 or 1) for numeric representations.
type boolFormatter struct {
	intFormatter
}

func newBoolFormatter() *boolFormatter {
	f := &boolFormatter{intFormatter: *newIntFormatter()}
	f.allowStr = true
	f.rep = 's'
	return f
}

func (f *boolFormatter) Reset() {
	*f = *newBoolFormatter()
}

func (f *boolFormatter) Format(ctx *Context, v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("%w: %T is not a bool", ErrInvalidSpec, v)
	}
	if f.rep == 's' {
		if b {
			return ctx.WriteString("true")
		}
		return ctx.WriteString("false")
	}
	return f.intFormatter.Format(ctx, v)
}
