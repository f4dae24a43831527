package compact

// Encodable is implemented by types that write their fields to an Encoder.
// The field order is the type's wire layout; nothing else is written.
type Encodable interface {
	EncodeTo(e *Encoder) *Encoder
}

// Decodable is implemented by types that read their fields back from a
// Decoder, in exactly the order EncodeTo wrote them.
type Decodable interface {
	DecodeFrom(d *Decoder) error
}

// Message aggregates both directions. A type implementing Message is a
// complete, self-describing-by-code binary encoder/decoder.
type Message interface {
	Encodable
	Decodable
}

// DecodablePtr constrains P to be a pointer to T that implements Decodable,
// so generic helpers can allocate a T and decode into it.
type DecodablePtr[T any] interface {
	*T
	Decodable
}
