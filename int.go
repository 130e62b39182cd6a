package fstr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// signSpec is the sign / alternate-form / zero-pad portion shared by the
// numeric strategies.
type signSpec struct {
	sign byte
	alt  bool
	zero bool
}

func newSignSpec() signSpec { return signSpec{sign: '-'} }

// parseSign recognizes the sign glyph, the alternate-form flag, and the
// zero-pad flag. Zero padding is ignored when a custom pad rune was given.
func (f *signSpec) parseSign(s *Scanner, customPad bool) {
	switch s.Peek() {
	case '+', '-', ' ':
		f.sign = s.Next()
	}
	if s.Peek() == '#' {
		f.alt = true
		s.Next()
	}
	if s.Peek() == '0' {
		f.zero = !customPad
		s.Next()
	}
}

// signText returns the glyph written before the magnitude: '-' for negative
// values, the requested '+' or ' ' otherwise.
func (f *signSpec) signText(neg bool) string {
	if neg {
		return "-"
	}
	if f.sign != '-' {
		return string(f.sign)
	}
	return ""
}

// emitNumber writes sign+prefix+digits. With the zero flag set the digits
// are zero-filled to the resolved width; otherwise the contiguous run is
// padded as a whole.
func emitNumber(ctx *Context, p *padSpec, zero bool, sign, prefix, digits string) error {
	if zero {
		if err := ctx.WriteString(sign); err != nil {
			return err
		}
		if err := ctx.WriteString(prefix); err != nil {
			return err
		}
		width, err := p.width.resolve(ctx)
		if err != nil {
			return err
		}
		if n := len(digits); n < width {
			if err := ctx.WriteString(strings.Repeat("0", width-n)); err != nil {
				return err
			}
		}
		return ctx.WriteString(digits)
	}
	return p.emitPadded(ctx, sign+prefix+digits)
}

// intFormatter renders integral values in any of the supported bases. It is
// also the numeric fallback for bool and [Char].
type intFormatter struct {
	padSpec
	signSpec
	rep      byte
	allowStr bool // bool arguments may request the textual 's' form
}

func newIntFormatter() *intFormatter {
	return &intFormatter{padSpec: newPadSpec(), signSpec: newSignSpec()}
}

func (f *intFormatter) Reset() {
	*f = intFormatter{padSpec: newPadSpec(), signSpec: newSignSpec(), allowStr: f.allowStr}
}

func (f *intFormatter) Parse(s *Scanner) error {
	f.parseAlign(s)
	f.parseSign(s, f.customPad)
	if err := f.parseWidth(s); err != nil {
		return err
	}
	if err := rejectLocale(s); err != nil {
		return err
	}
	switch c := s.Peek(); {
	case c == 'b' || c == 'B' || c == 'c' || c == 'd' || c == 'o' || c == 'x' || c == 'X':
		f.rep = s.Next()
	case c == 's' && f.allowStr:
		f.rep = s.Next()
	case c == '}' || c == 0:
	default:
		return fmt.Errorf("%w: unsupported representation %q", ErrInvalidSpec, rune(c))
	}
	return nil
}

func (f *intFormatter) Format(ctx *Context, v any) error {
	u, neg, err := toUint(v)
	if err != nil {
		return err
	}

	var prefix, digits string
	switch f.rep {
	case 'b', 'B':
		prefix = "0" + string(f.rep)
		digits = strconv.FormatUint(u, 2)
	case 'o':
		prefix = "0o"
		digits = strconv.FormatUint(u, 8)
	case 'x':
		prefix = "0x"
		digits = strconv.FormatUint(u, 16)
	case 'X':
		prefix = "0X"
		digits = strings.ToUpper(strconv.FormatUint(u, 16))
	case 'c':
		r, err := toRune(u, neg)
		if err != nil {
			return err
		}
		digits = string(r)
	default: // 'd' or none
		digits = strconv.FormatUint(u, 10)
	}
	if !f.alt {
		prefix = ""
	}

	sign := ""
	if f.rep != 'c' {
		sign = f.signText(neg)
	}
	return emitNumber(ctx, &f.padSpec, f.zero, sign, prefix, digits)
}

// toUint normalizes any built-in integer value to a magnitude and sign.
func toUint(v any) (uint64, bool, error) {
	switch n := v.(type) {
	case int:
		return mag(int64(n))
	case int8:
		return mag(int64(n))
	case int16:
		return mag(int64(n))
	case int32:
		return mag(int64(n))
	case int64:
		return mag(n)
	case uint:
		return uint64(n), false, nil
	case uint8:
		return uint64(n), false, nil
	case uint16:
		return uint64(n), false, nil
	case uint32:
		return uint64(n), false, nil
	case uint64:
		return n, false, nil
	case uintptr:
		return uint64(n), false, nil
	case Char:
		return mag(int64(n))
	case bool:
		if n {
			return 1, false, nil
		}
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("%w: %T is not integral", ErrInvalidSpec, v)
}

func mag(n int64) (uint64, bool, error) {
	if n < 0 {
		// Two's complement negation stays correct for MinInt64.
		return -uint64(n), true, nil
	}
	return uint64(n), false, nil
}

// toRune validates a code point for the 'c' representation.
func toRune(u uint64, neg bool) (rune, error) {
	if neg || u > utf8.MaxRune {
		return 0, fmt.Errorf("%w: value out of code point range", ErrConversion)
	}
	return rune(u), nil
}
