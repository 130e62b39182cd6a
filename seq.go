package fstr

import "reflect"

// seqFormatter renders ordered containers as "[e0, e1, ...]". The container
// defines no specifier grammar of its own: the specifier is parsed by the
// element strategy once and applied to every element, so padding and base
// selection act per element, never on the bracketed whole.
type seqFormatter struct {
	elem Formatter
	err  error // element type has no strategy; reported at render time
}

func newSeqFormatter(rv reflect.Value) *seqFormatter {
	f := &seqFormatter{elem: newStrFormatter()}
	if rv.Len() > 0 {
		a, err := newArgument(rv.Index(0).Interface())
		if err != nil {
			f.err = err
		} else {
			f.elem = a.f
		}
	}
	return f
}

func (f *seqFormatter) Parse(s *Scanner) error { return f.elem.Parse(s) }

func (f *seqFormatter) Reset() { f.elem.Reset() }

func (f *seqFormatter) Format(ctx *Context, v any) error {
	if f.err != nil {
		return f.err
	}
	rv := reflect.ValueOf(v)
	if err := ctx.WriteRune('['); err != nil {
		return err
	}
	for i, n := 0, rv.Len(); i < n; i++ {
		if i > 0 {
			if err := ctx.WriteString(", "); err != nil {
				return err
			}
		}
		if err := f.elem.Format(ctx, rv.Index(i).Interface()); err != nil {
			return err
		}
	}
	return ctx.WriteRune(']')
}
