package fstr

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerDigits(t *testing.T) {
	t.Parallel()
	s := &Scanner{src: "42x"}
	n, ok := s.digits()
	assert.True(t, ok)
	assert.Equal(t, 42, n)
	assert.Equal(t, byte('x'), s.Peek())

	_, ok = s.digits()
	assert.False(t, ok)
}

func TestScannerDigitsSaturate(t *testing.T) {
	t.Parallel()
	s := &Scanner{src: "9223372036854775808}"}
	n, ok := s.digits()
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt, n)
	assert.Equal(t, byte('}'), s.Peek())
}

func TestScannerLiteral(t *testing.T) {
	t.Parallel()
	s := &Scanner{src: "héllo {0}"}
	assert.Equal(t, "héllo ", s.literal())
	assert.Equal(t, byte('{'), s.Peek())
	assert.Equal(t, "", s.literal())
}

func TestParseAlignBareGlyph(t *testing.T) {
	t.Parallel()
	p := newPadSpec()
	p.parseAlign(&Scanner{src: "^5"})
	assert.Equal(t, alignCenter, p.align)
	assert.Equal(t, ' ', p.pad)
	assert.False(t, p.customPad)
}

func TestParseAlignCustomPad(t *testing.T) {
	t.Parallel()
	p := newPadSpec()
	p.parseAlign(&Scanner{src: "*<"})
	assert.Equal(t, alignLeft, p.align)
	assert.Equal(t, '*', p.pad)
	assert.True(t, p.customPad)
}

func TestParseAlignMultibytePad(t *testing.T) {
	t.Parallel()
	p := newPadSpec()
	s := &Scanner{src: "→>5"}
	p.parseAlign(s)
	assert.Equal(t, alignRight, p.align)
	assert.Equal(t, '→', p.pad)
	assert.Equal(t, byte('5'), s.Peek())
}

func TestParseAlignAbsent(t *testing.T) {
	t.Parallel()
	p := newPadSpec()
	s := &Scanner{src: "5d"}
	p.parseAlign(s)
	assert.Equal(t, alignRight, p.align)
	assert.False(t, p.customPad)
	assert.Equal(t, byte('5'), s.Peek())
}

func TestCenterSplit(t *testing.T) {
	t.Parallel()
	// Odd deficit: floor before, ceil after.
	var buf strings.Builder
	ctx := newContext(&buf, nil)
	p := newPadSpec()
	p.align = alignCenter
	p.width = sizeVal{kind: sizeLiteral, n: 6}
	require.NoError(t, p.emitPadded(ctx, "abc"))
	assert.Equal(t, " abc  ", buf.String())
}

func TestSizeValLiteral(t *testing.T) {
	t.Parallel()
	var v sizeVal
	require.NoError(t, v.parse(&Scanner{src: "12}"}))
	assert.Equal(t, sizeLiteral, v.kind)

	n, err := v.resolve(newContext(&strings.Builder{}, nil))
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestSizeValUnterminatedRef(t *testing.T) {
	t.Parallel()
	var v sizeVal
	err := v.parse(&Scanner{src: "{1x"})
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestSizeValDeferredCaching(t *testing.T) {
	t.Parallel()
	args, err := newArguments([]any{7})
	require.NoError(t, err)
	ctx := newContext(&strings.Builder{}, args)

	var v sizeVal
	require.NoError(t, v.parse(&Scanner{src: "{}"}))
	assert.Equal(t, sizeRefAuto, v.kind)

	n, err := v.resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 1, *ctx.auto)

	// A second read must hit the cache, not the cursor.
	n, err = v.resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 1, *ctx.auto)
}

func TestParsePrecRequiresValue(t *testing.T) {
	t.Parallel()
	var v sizeVal
	err := parsePrec(&Scanner{src: ".x"}, &v)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestParseSignFlags(t *testing.T) {
	t.Parallel()
	f := newSignSpec()
	f.parseSign(&Scanner{src: "+#0"}, false)
	assert.Equal(t, byte('+'), f.sign)
	assert.True(t, f.alt)
	assert.True(t, f.zero)
}

func TestZeroFlagIgnoredWithCustomPad(t *testing.T) {
	t.Parallel()
	f := newSignSpec()
	f.parseSign(&Scanner{src: "0"}, true)
	assert.False(t, f.zero)
}

func TestToUintMagnitudes(t *testing.T) {
	t.Parallel()

	u, neg, err := toUint(-5)
	require.NoError(t, err)
	assert.True(t, neg)
	assert.Equal(t, uint64(5), u)

	u, neg, err = toUint(int64(math.MinInt64))
	require.NoError(t, err)
	assert.True(t, neg)
	assert.Equal(t, uint64(1)<<63, u)

	u, neg, err = toUint(uint64(math.MaxUint64))
	require.NoError(t, err)
	assert.False(t, neg)
	assert.Equal(t, uint64(math.MaxUint64), u)

	_, _, err = toUint("nope")
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestToRuneRange(t *testing.T) {
	t.Parallel()

	r, err := toRune('A', false)
	require.NoError(t, err)
	assert.Equal(t, 'A', r)

	_, err = toRune(0, true)
	assert.ErrorIs(t, err, ErrConversion)

	_, err = toRune(0x110000, false)
	assert.ErrorIs(t, err, ErrConversion)
}

func TestWrapWriter(t *testing.T) {
	t.Parallel()

	// A writer that is already a Sink passes through unchanged.
	var buf strings.Builder
	assert.Equal(t, Sink(&buf), WrapWriter(&buf))

	// Plain writers get the adapter.
	w := &recordWriter{}
	sink := WrapWriter(w)
	_, err := sink.WriteString("ab")
	require.NoError(t, err)
	_, err = sink.WriteRune('→')
	require.NoError(t, err)
	assert.Equal(t, "ab→", string(w.data))
}

type recordWriter struct{ data []byte }

func (w *recordWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func TestNewArgumentDispatch(t *testing.T) {
	t.Parallel()

	a, err := newArgument(uint16(9))
	require.NoError(t, err)
	assert.IsType(t, &intFormatter{}, a.f)

	a, err = newArgument(false)
	require.NoError(t, err)
	assert.IsType(t, &boolFormatter{}, a.f)

	a, err = newArgument([2]string{"a", "b"})
	require.NoError(t, err)
	assert.IsType(t, &seqFormatter{}, a.f)

	_, err = newArgument(nil)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestArgumentUint(t *testing.T) {
	t.Parallel()

	a, err := newArgument(7)
	require.NoError(t, err)
	u, ok := a.uint()
	assert.True(t, ok)
	assert.Equal(t, uint64(7), u)

	// Negative values cannot serve as a width or precision.
	a, err = newArgument(-7)
	require.NoError(t, err)
	_, ok = a.uint()
	assert.False(t, ok)

	a, err = newArgument("7")
	require.NoError(t, err)
	_, ok = a.uint()
	assert.False(t, ok)
}
