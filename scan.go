package fstr

import (
	"math"
	"unicode/utf8"
)

// Scanner is a cursor over the unconsumed portion of a template string. The
// driver and every [Formatter.Parse] consume from the same Scanner, so a
// strategy reads exactly the specifier bytes it understands and leaves the
// closing '}' for the driver to verify.
type Scanner struct {
	src string
	pos int
}

// Peek returns the current byte without consuming it, or 0 at end of input.
func (s *Scanner) Peek() byte {
	if s.pos < len(s.src) {
		return s.src[s.pos]
	}
	return 0
}

// PeekAt returns the byte n positions past the cursor, or 0 past the end.
func (s *Scanner) PeekAt(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

// PeekRune decodes the rune at the cursor without consuming it. At end of
// input it returns size 0.
func (s *Scanner) PeekRune() (rune, int) {
	if s.pos >= len(s.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.src[s.pos:])
}

// Next consumes and returns the current byte, or 0 at end of input.
func (s *Scanner) Next() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	c := s.src[s.pos]
	s.pos++
	return c
}

// Advance moves the cursor n bytes forward.
func (s *Scanner) Advance(n int) {
	s.pos += n
	if s.pos > len(s.src) {
		s.pos = len(s.src)
	}
}

// Empty reports whether the input is exhausted.
func (s *Scanner) Empty() bool { return s.pos >= len(s.src) }

// digits consumes a run of decimal digits and reports whether any were seen.
// Runs that would overflow saturate at math.MaxInt, leaving index bounds
// checks to reject them.
func (s *Scanner) digits() (int, bool) {
	n, seen := 0, false
	for isDigit(s.Peek()) {
		d := int(s.Next() - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
		} else {
			n = n*10 + d
		}
		seen = true
	}
	return n, seen
}

// literal consumes and returns the run of verbatim text before the next
// brace or end of input.
func (s *Scanner) literal() string {
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != '{' && s.src[s.pos] != '}' {
		s.pos++
	}
	return s.src[start:s.pos]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
