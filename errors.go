package compact

// Kind groups errors by the reason they occur.
type Kind uint8

const (
	// KindOutOfBounds is a read that needs more bytes than remain in the buffer.
	KindOutOfBounds Kind = iota + 1
	// KindTooLarge is a write whose size does not fit the 30-bit size encoding.
	KindTooLarge
	// KindInvalidData is a read whose bytes were consumed but do not hold a valid value.
	KindInvalidData
)

func (k Kind) String() string {
	switch k {
	case KindOutOfBounds:
		return "out of bounds"
	case KindTooLarge:
		return "too large"
	case KindInvalidData:
		return "invalid data"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by Encoder and Decoder.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is reports whether target is an *Error of the same Kind, so the Kind sentinels
// below match every specific error of their category.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	// ErrOutOfBounds indicates a read past the end of the buffer.
	ErrOutOfBounds = &Error{KindOutOfBounds, "compact: attempted to read out of bounds"}

	// ErrTooLarge indicates a size, byte sequence or text longer than MaxSize.
	// The Encoder reports it from End, never from the write itself.
	ErrTooLarge = &Error{KindTooLarge, "compact: value is too large"}

	// ErrInvalidData indicates bytes that were read successfully but are not a valid value.
	ErrInvalidData = &Error{KindInvalidData, "compact: invalid data"}

	// ErrInvalidUTF8 is returned by Decoder.String when the text bytes are not valid UTF-8.
	ErrInvalidUTF8 = &Error{KindInvalidData, "compact: couldn't decode UTF-8 string"}

	// ErrTrailingData is returned by Unmarshal when bytes remain after the value was decoded.
	ErrTrailingData = &Error{KindInvalidData, "compact: trailing data found after decoding"}

	errSizeTooLarge  = &Error{KindTooLarge, "compact: size value is too large"}
	errBytesTooLong  = &Error{KindTooLarge, "compact: bytes is too long"}
	errStringTooLong = &Error{KindTooLarge, "compact: string is too long"}
)
