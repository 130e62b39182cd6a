// Package fstr renders template strings containing {} placeholders against
// a heterogeneous argument list.
//
// The central entry points are [Render], [Fprint], and [Print], which accept
// a template string and variadic values of any type:
//
//	s, err := fstr.Render("{} scored {:.1f} points", "Ada", 97.25)
//	// "Ada scored 97.2 points"
//
// # Placeholder Grammar
//
// A placeholder is "{" [index] [":" specifier] "}". Without an explicit
// index, placeholders take arguments left to right from a shared automatic
// cursor; explicit indices do not advance it, so both styles mix freely.
// "{{" and "}}" escape literal braces; a lone "}" is an error.
//
// The specifier is, in order: an optional pad rune and alignment glyph
// ('<' left, '>' right, '^' center; default right, space pad), a sign glyph
// ('+', '-', or ' '), the alternate-form flag '#', the zero-pad flag '0', a
// width, a precision (".N"), and a representation letter. Width and
// precision may be literals or deferred references ("{}" or "{2}") that take
// their value from another argument at render time:
//
//	fstr.Render("{:{}}", "x", 5)   // "    x"
//	fstr.Render("{:>8.2f}", 3.14159)
//
// # Built-in Strategies
//
//   - integers: representations b/B, o, d (default), x/X, and c (code point
//     as character); '#' adds the 0b/0o/0x prefix
//   - floats: a/A hex, e/E scientific, f/F fixed, g/G general; shortest
//     round-trip text when no letter or precision is given
//   - strings and []byte: precision truncates to a rune-count prefix
//   - bool: "true"/"false", or 0/1 under a numeric representation
//   - [Char]: character semantics for a rune value
//   - slices and arrays: "[a, b, c]", the specifier applying to each element
//   - [Pair]: "(A, B)", padded as a unit
//
// Values implementing [fmt.Stringer] without their own strategy render as
// strings. Locale-aware formatting (the 'L' flag) is not supported and
// errors.
//
// # Custom Strategies
//
// Implement [Formattable] to supply a [Formatter] for your own type. A
// Formatter parses its specifier from the shared [Scanner] and may call
// [Context.Render] to compose its output from a nested template against the
// same sink.
//
// # Output
//
// Rendering writes to a [Sink]; [WrapWriter] adapts any io.Writer. [Print]
// and [Println] use a process-wide default sink, stdout until [SetOutput]
// replaces it.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidTemplate] — unterminated placeholder, stray '}', malformed
//     size value
//   - [ErrIndexOutOfRange] — placeholder index beyond the supplied arguments
//   - [ErrInvalidSpec] — unsupported representation letter, locale flag, or
//     non-integral deferred width/precision argument
//   - [ErrConversion] — value not representable (e.g. 'c' on an invalid
//     code point)
//   - [ErrUnsupportedType] — argument type with no strategy
//
// Errors abort the call; bytes already written to the sink stay written.
package fstr
