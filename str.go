package fstr

import "fmt"

// strFormatter renders string-like values: alignment and width apply as
// usual, precision caps the number of runes taken from the start. There are
// no sign or base semantics.
type strFormatter struct {
	padSpec
	prec sizeVal
}

func newStrFormatter() *strFormatter {
	return &strFormatter{padSpec: newPadSpec()}
}

func (f *strFormatter) Reset() {
	*f = *newStrFormatter()
}

func (f *strFormatter) Parse(s *Scanner) error {
	f.parseAlign(s)
	if err := f.parseWidth(s); err != nil {
		return err
	}
	if err := parsePrec(s, &f.prec); err != nil {
		return err
	}
	return rejectLocale(s)
}

func (f *strFormatter) Format(ctx *Context, v any) error {
	var text string
	switch s := v.(type) {
	case string:
		text = s
	case []byte:
		text = string(s)
	case fmt.Stringer:
		text = s.String()
	default:
		return fmt.Errorf("%w: %T is not string-like", ErrInvalidSpec, v)
	}
	if f.prec.present() {
		limit, err := f.prec.resolve(ctx)
		if err != nil {
			return err
		}
		if r := []rune(text); len(r) > limit {
			text = string(r[:limit])
		}
	}
	return f.emitPadded(ctx, text)
}
