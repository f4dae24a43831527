package compact

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/puzpuzpuz/xsync/v4"
)

// sizeHints remembers how large each Encodable type has encoded to, so the
// next Marshal of that type starts with a buffer large enough to avoid
// re-allocations. It is shared by all goroutines.
var sizeHints = xsync.NewMap[reflect.Type, int]()

// SizeHint returns the remembered encoded size of v's type, or 0.
func SizeHint(v Encodable) int {
	n, _ := sizeHints.Load(reflect.TypeOf(v))
	return n
}

// Marshal encodes v with a fresh Encoder and finalizes it.
func Marshal(v Encodable) ([]byte, error) {
	t := reflect.TypeOf(v)
	hint, _ := sizeHints.Load(t)

	data, err := v.EncodeTo(NewEncoder(hint)).End()
	if err != nil {
		return nil, errors.Wrapf(err, "compact: marshal %T", v)
	}
	if len(data) > hint {
		sizeHints.Compute(t, func(old int, _ bool) (int, xsync.ComputeOp) {
			if len(data) <= old {
				return old, xsync.CancelOp
			}
			return len(data), xsync.UpdateOp
		})
	}
	return data, nil
}

// Unmarshal decodes data into v and requires that every byte is consumed.
func Unmarshal(data []byte, v Decodable) error {
	d := NewDecoder(data)
	if err := v.DecodeFrom(d); err != nil {
		return errors.Wrapf(err, "compact: unmarshal %T", v)
	}
	if !d.End() {
		return errors.Wrapf(ErrTrailingData, "compact: unmarshal %T: %d bytes left", v, d.Remaining())
	}
	return nil
}
