package fstr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// floatFormatter renders floating-point values. With no representation
// letter and no precision it produces the shortest text that round-trips;
// a representation letter without an explicit precision defaults to 6.
type floatFormatter struct {
	padSpec
	signSpec
	rep  byte
	prec sizeVal
}

func newFloatFormatter() *floatFormatter {
	return &floatFormatter{padSpec: newPadSpec(), signSpec: newSignSpec()}
}

func (f *floatFormatter) Reset() {
	*f = *newFloatFormatter()
}

func (f *floatFormatter) Parse(s *Scanner) error {
	f.parseAlign(s)
	f.parseSign(s, f.customPad)
	if err := f.parseWidth(s); err != nil {
		return err
	}
	if err := parsePrec(s, &f.prec); err != nil {
		return err
	}
	if err := rejectLocale(s); err != nil {
		return err
	}
	switch c := s.Peek(); c {
	case 'a', 'A', 'e', 'E', 'f', 'F', 'g', 'G':
		f.rep = s.Next()
	case '}', 0:
	default:
		return fmt.Errorf("%w: unsupported representation %q", ErrInvalidSpec, rune(c))
	}
	return nil
}

func (f *floatFormatter) Format(ctx *Context, v any) error {
	var (
		x    float64
		bits int
	)
	switch n := v.(type) {
	case float32:
		x, bits = float64(n), 32
	case float64:
		x, bits = n, 64
	default:
		return fmt.Errorf("%w: %T is not a floating-point value", ErrInvalidSpec, v)
	}
	neg := math.Signbit(x)
	x = math.Abs(x)

	prec := -1
	if f.prec.present() {
		p, err := f.prec.resolve(ctx)
		if err != nil {
			return err
		}
		prec = p
	}

	verb := byte('g')
	switch f.rep {
	case 'a', 'A':
		verb = 'x'
	case 'e', 'E':
		verb = 'e'
	case 'f', 'F':
		verb = 'f'
	}
	if f.rep != 0 && prec < 0 {
		prec = 6
	}

	text := strconv.FormatFloat(x, verb, prec, bits)
	if f.rep >= 'A' && f.rep <= 'Z' {
		text = strings.ToUpper(text)
	}

	return emitNumber(ctx, &f.padSpec, f.zero, f.signText(neg), "", text)
}
