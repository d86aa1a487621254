package jsn

import "errors"

// Sentinel errors returned by the lazy path scanner (GetByPath, ParseLazy)
// and the low-level skippers it is built from. None of them carry
// positional detail in the message: callers that need a diagnostic compose
// one from (error, cursor, surrounding bytes) themselves, since the cursor
// is always left at the offending byte (or at the EOF position) on error.
var (
	// ErrNotFound is returned when a path key or index is absent from the
	// document. It is not fatal: the document up to that point was
	// well-formed, the path simply didn't resolve.
	ErrNotFound = errors.New("path not found")

	// ErrUnsupportedType is returned when a path step's shape doesn't match
	// the document at that position (a string key against an array, an
	// integer index against an object, a negative index, or a path step of
	// a type the scanner doesn't recognize).
	ErrUnsupportedType = errors.New("path step does not match document shape")

	// ErrMustRetry is returned by ParseLazy when the caller-supplied tape
	// is full. It is cooperative backpressure to the allocation layer,
	// never a document error; ParseLazyGrow handles it internally and
	// returns it only when its grow callback does not enlarge the tape.
	ErrMustRetry = errors.New("tape capacity exhausted, caller must grow and retry")

	// ErrUnexpectedToken is returned when a byte doesn't fit any JSON
	// grammar production at the position the scanner expected one.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnexpectedEOF is returned when the input ends before a value,
	// string, or literal is complete.
	ErrUnexpectedEOF = errors.New("unexpected EOF")

	// ErrInvalidNumber is returned by the strict number grammar (and by
	// the eager materializer's float conversion) for a malformed number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidString is returned for a raw control byte inside a string
	// or a backslash not followed by a recognized escape.
	ErrInvalidString = errors.New("invalid string")

	// ErrInvalidUnicodeEscape is returned for a \u escape not followed by
	// exactly four hex digits.
	ErrInvalidUnicodeEscape = errors.New("invalid unicode escape")

	// ErrNumericValueOutOfRange is returned when a syntactically valid
	// number's value overflows float64 on conversion.
	ErrNumericValueOutOfRange = errors.New("numeric value out of range")
)
