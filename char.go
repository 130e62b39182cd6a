package fstr

// Char formats as a character: {} writes the rune itself, while the numeric
// representation letters format its code point. Go cannot tell rune apart
// from int32 in a type switch, so character semantics ride on a named type;
// a plain int32 formats as an integer.
type Char rune

// charFormatter is the integer strategy with representation 'c' by default.
type charFormatter struct {
	intFormatter
}

func newCharFormatter() *charFormatter {
	f := &charFormatter{intFormatter: *newIntFormatter()}
	f.rep = 'c'
	return f
}

func (f *charFormatter) Reset() {
	*f = *newCharFormatter()
}
