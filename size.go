package fstr

import "fmt"

type sizeKind uint8

const (
	sizeAbsent sizeKind = iota
	sizeLiteral
	sizeRefAuto
	sizeRefIndex
)

// sizeVal is a width or precision: absent, a literal, or a deferred
// reference to another argument. Deferred references are resolved at render
// time, never at parse time, because the referenced value may belong to an
// argument the automatic cursor has not reached yet. The resolved value is
// cached for the rest of the render.
type sizeVal struct {
	kind     sizeKind
	n        int
	index    int
	resolved bool
}

// parse recognizes a digit run (literal) or '{' [digits] '}' (deferred
// reference). With neither present the value stays absent.
func (v *sizeVal) parse(s *Scanner) error {
	if isDigit(s.Peek()) {
		n, _ := s.digits()
		*v = sizeVal{kind: sizeLiteral, n: n}
		return nil
	}
	if s.Peek() != '{' {
		return nil
	}
	s.Next()
	if n, ok := s.digits(); ok {
		*v = sizeVal{kind: sizeRefIndex, index: n}
	} else {
		*v = sizeVal{kind: sizeRefAuto}
	}
	if s.Peek() != '}' {
		return fmt.Errorf("%w: unterminated size reference", ErrInvalidTemplate)
	}
	s.Next()
	return nil
}

func (v *sizeVal) present() bool { return v.kind != sizeAbsent }

// resolve produces the concrete value, consulting the argument store for
// deferred references exactly once. Absent values resolve to zero.
func (v *sizeVal) resolve(ctx *Context) (int, error) {
	switch v.kind {
	case sizeAbsent:
		return 0, nil
	case sizeLiteral:
		return v.n, nil
	}
	if v.resolved {
		return v.n, nil
	}
	var (
		a   *argument
		err error
	)
	if v.kind == sizeRefIndex {
		a, err = ctx.arg(v.index)
	} else {
		a, err = ctx.nextArg()
	}
	if err != nil {
		return 0, err
	}
	u, ok := a.uint()
	if !ok {
		return 0, fmt.Errorf("%w: expected integral size argument, got %T", ErrInvalidSpec, a.value)
	}
	v.n = int(u)
	v.resolved = true
	return v.n, nil
}

// parsePrec recognizes '.' followed by a literal or deferred precision.
func parsePrec(s *Scanner, v *sizeVal) error {
	if s.Peek() != '.' {
		return nil
	}
	s.Next()
	if err := v.parse(s); err != nil {
		return err
	}
	if !v.present() {
		return fmt.Errorf("%w: expected number after '.'", ErrInvalidTemplate)
	}
	return nil
}
