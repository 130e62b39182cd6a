package fstr

import (
	"fmt"
	"strings"
)

// Pair is a two-element tuple rendered as "(A, B)".
type Pair[F, S any] struct {
	First  F
	Second S
}

// NewPair builds a Pair from its two components.
func NewPair[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{First: first, Second: second}
}

func (p Pair[F, S]) components() (any, any) { return p.First, p.Second }

type pairer interface {
	components() (any, any)
}

// pairFormatter renders "(A, B)" via each component's default strategy into
// a scratch buffer, then applies its own alignment and width to the whole
// unit. It accepts no precision.
type pairFormatter struct {
	padSpec
}

func newPairFormatter() *pairFormatter {
	return &pairFormatter{padSpec: newPadSpec()}
}

func (f *pairFormatter) Reset() {
	*f = *newPairFormatter()
}

func (f *pairFormatter) Parse(s *Scanner) error {
	f.parseAlign(s)
	if err := f.parseWidth(s); err != nil {
		return err
	}
	return rejectLocale(s)
}

func (f *pairFormatter) Format(ctx *Context, v any) error {
	p, ok := v.(pairer)
	if !ok {
		return fmt.Errorf("%w: %T is not a pair", ErrInvalidSpec, v)
	}
	first, second := p.components()

	var buf strings.Builder
	sub := ctx.withSink(&buf)
	if err := sub.WriteRune('('); err != nil {
		return err
	}
	if err := renderDefault(sub, first); err != nil {
		return err
	}
	if err := sub.WriteString(", "); err != nil {
		return err
	}
	if err := renderDefault(sub, second); err != nil {
		return err
	}
	if err := sub.WriteRune(')'); err != nil {
		return err
	}
	return f.emitPadded(ctx, buf.String())
}

// renderDefault renders v with its type's default strategy.
func renderDefault(ctx *Context, v any) error {
	a, err := newArgument(v)
	if err != nil {
		return err
	}
	return a.f.Format(ctx, v)
}
