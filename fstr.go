package fstr

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidTemplate = errors.New("invalid template")
	ErrIndexOutOfRange = errors.New("argument index out of range")
	ErrInvalidSpec     = errors.New("invalid format specifier")
	ErrConversion      = errors.New("value not representable")
	ErrUnsupportedType = errors.New("unsupported argument type")
)

// Render interpolates format against args and returns the result.
func Render(format string, args ...any) (string, error) {
	var buf strings.Builder
	if err := renderTo(&buf, format, args); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fprint interpolates format against args and writes the result to w.
func Fprint(w io.Writer, format string, args ...any) error {
	return renderTo(WrapWriter(w), format, args)
}

// Fprintln is [Fprint] with a trailing newline.
func Fprintln(w io.Writer, format string, args ...any) error {
	out := WrapWriter(w)
	if err := renderTo(out, format, args); err != nil {
		return err
	}
	_, err := out.WriteRune('\n')
	return err
}

// Print interpolates format against args and writes the result to the
// default sink (see [SetOutput]).
func Print(format string, args ...any) error {
	return renderTo(output, format, args)
}

// Println is [Print] with a trailing newline.
func Println(format string, args ...any) error {
	if err := renderTo(output, format, args); err != nil {
		return err
	}
	_, err := output.WriteRune('\n')
	return err
}

func renderTo(out Sink, format string, values []any) error {
	args, err := newArguments(values)
	if err != nil {
		return err
	}
	return render(newContext(out, args), format)
}

// render is the template driver: a single left-to-right pass that copies
// verbatim text, decodes the two escape forms, and resolves each placeholder
// against the argument store. Bytes written before an error are not
// retracted.
func render(ctx *Context, format string) error {
	sc := &Scanner{src: format}
	for !sc.Empty() {
		if lit := sc.literal(); lit != "" {
			if err := ctx.WriteString(lit); err != nil {
				return err
			}
			continue
		}
		switch sc.Next() {
		case '{':
			if sc.Peek() == '{' {
				sc.Next()
				if err := ctx.WriteRune('{'); err != nil {
					return err
				}
				continue
			}
			if err := placeholder(ctx, sc); err != nil {
				return err
			}
		case '}':
			if sc.Peek() != '}' {
				return fmt.Errorf("%w: stray '}' must be escaped as '}}'", ErrInvalidTemplate)
			}
			sc.Next()
			if err := ctx.WriteRune('}'); err != nil {
				return err
			}
		}
	}
	return nil
}

// placeholder resolves one '{...}' unit: the argument (explicit index or the
// shared automatic cursor), an optional specifier handed to the argument's
// strategy, and the mandatory closing brace.
func placeholder(ctx *Context, sc *Scanner) error {
	if sc.Empty() {
		return fmt.Errorf("%w: unterminated placeholder", ErrInvalidTemplate)
	}

	var (
		a   *argument
		err error
	)
	if isDigit(sc.Peek()) {
		idx, _ := sc.digits()
		a, err = ctx.arg(idx)
	} else {
		a, err = ctx.nextArg()
	}
	if err != nil {
		return err
	}

	a.f.Reset()

	if sc.Peek() == ':' {
		sc.Next()
		if err := a.f.Parse(sc); err != nil {
			return err
		}
	}
	if sc.Empty() {
		return fmt.Errorf("%w: unterminated placeholder", ErrInvalidTemplate)
	}
	if c := sc.Next(); c != '}' {
		return fmt.Errorf("%w: expected '}', found %q", ErrInvalidTemplate, rune(c))
	}
	return a.f.Format(ctx, a.value)
}
