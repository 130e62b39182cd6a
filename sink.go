package fstr

import (
	"io"
	"os"
)

// Sink is the write destination for rendered output. *strings.Builder,
// *bytes.Buffer, and *bufio.Writer satisfy it directly; wrap any other
// io.Writer with [WrapWriter].
type Sink interface {
	io.StringWriter
	WriteRune(r rune) (int, error)
}

// WrapWriter adapts an io.Writer into a [Sink]. Writers that already
// implement Sink are returned unchanged.
func WrapWriter(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return writerSink{w}
}

type writerSink struct{ w io.Writer }

func (s writerSink) WriteString(str string) (int, error) {
	return io.WriteString(s.w, str)
}

func (s writerSink) WriteRune(r rune) (int, error) {
	return s.WriteString(string(r))
}

// output is the process-wide default sink used by [Print] and [Println] when
// the caller supplies no writer. It starts as stdout.
var output Sink = WrapWriter(os.Stdout)

// SetOutput replaces the default sink used by [Print] and [Println].
func SetOutput(w io.Writer) {
	output = WrapWriter(w)
}
