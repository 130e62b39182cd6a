package fstr

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

type alignment byte

const (
	alignLeft   alignment = '<'
	alignRight  alignment = '>'
	alignCenter alignment = '^'
)

func isAlignGlyph(c byte) bool { return c == '<' || c == '>' || c == '^' }

// padSpec is the alignment, fill, and width portion shared by every built-in
// strategy. Alignment defaults to right with a space pad.
type padSpec struct {
	align     alignment
	pad       rune
	customPad bool
	width     sizeVal
}

func newPadSpec() padSpec {
	return padSpec{align: alignRight, pad: ' '}
}

// parseAlign recognizes an alignment glyph, optionally preceded by a custom
// pad rune. A bare glyph keeps the space pad.
func (p *padSpec) parseAlign(s *Scanner) {
	if isAlignGlyph(s.Peek()) {
		p.align = alignment(s.Next())
		return
	}
	if r, n := s.PeekRune(); n > 0 && isAlignGlyph(s.PeekAt(n)) {
		p.pad = r
		p.customPad = true
		s.Advance(n)
		p.align = alignment(s.Next())
	}
}

// parseWidth recognizes a literal or deferred width.
func (p *padSpec) parseWidth(s *Scanner) error {
	return p.width.parse(s)
}

// deficit returns how many pad runes content of display width w is short of
// the resolved width.
func (p *padSpec) deficit(ctx *Context, w int) (int, error) {
	width, err := p.width.resolve(ctx)
	if err != nil {
		return 0, err
	}
	if w >= width {
		return 0, nil
	}
	return width - w, nil
}

// pre writes the padding that precedes the content: the whole deficit for
// right alignment, the smaller half for center.
func (p *padSpec) pre(ctx *Context, deficit int) error {
	switch p.align {
	case alignRight:
		return ctx.WriteString(strings.Repeat(string(p.pad), deficit))
	case alignCenter:
		return ctx.WriteString(strings.Repeat(string(p.pad), deficit/2))
	}
	return nil
}

// post writes the padding that follows the content: the whole deficit for
// left alignment, the larger half for center.
func (p *padSpec) post(ctx *Context, deficit int) error {
	switch p.align {
	case alignLeft:
		return ctx.WriteString(strings.Repeat(string(p.pad), deficit))
	case alignCenter:
		return ctx.WriteString(strings.Repeat(string(p.pad), deficit-deficit/2))
	}
	return nil
}

// rejectLocale refuses the locale flag, which no strategy supports.
func rejectLocale(s *Scanner) error {
	if s.Peek() == 'L' {
		return fmt.Errorf("%w: locale-specific formatting is not supported", ErrInvalidSpec)
	}
	return nil
}

// emitPadded writes text surrounded by the padding its display width calls
// for.
func (p *padSpec) emitPadded(ctx *Context, text string) error {
	d, err := p.deficit(ctx, runewidth.StringWidth(text))
	if err != nil {
		return err
	}
	if err := p.pre(ctx, d); err != nil {
		return err
	}
	if err := ctx.WriteString(text); err != nil {
		return err
	}
	return p.post(ctx, d)
}
