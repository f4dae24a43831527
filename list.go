package compact

// EncodeList writes the number of items as a size, followed by each item.
func EncodeList[T Encodable](e *Encoder, items []T) *Encoder {
	e.Size(len(items))
	for _, item := range items {
		item.EncodeTo(e)
	}
	return e
}

// DecodeList reads a list written by EncodeList. It stops at the first item
// that fails to decode.
func DecodeList[T any, P DecodablePtr[T]](d *Decoder) ([]T, error) {
	n, err := d.Size()
	if err != nil {
		return nil, err
	}
	// Items made only of booleans may share bytes, so the count cannot be
	// checked against the remaining length; only the allocation is capped.
	items := make([]T, 0, min(n, d.Remaining()))
	for range n {
		var item T
		if err := P(&item).DecodeFrom(d); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// EncodeStrings writes a size-prefixed list of texts.
func EncodeStrings(e *Encoder, ss []string) *Encoder {
	e.Size(len(ss))
	for _, s := range ss {
		e.String(s)
	}
	return e
}

// DecodeStrings reads a list written by EncodeStrings.
func DecodeStrings(d *Decoder) ([]string, error) {
	n, err := d.Size()
	if err != nil {
		return nil, err
	}
	// Each text carries at least its one-byte size prefix.
	if n > d.Remaining() {
		return nil, ErrOutOfBounds
	}
	ss := make([]string, n)
	for i := range ss {
		if ss[i], err = d.String(); err != nil {
			return nil, err
		}
	}
	return ss, nil
}
