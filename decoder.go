package compact

import (
	"math"
	"unicode/utf8"
)

// Decoder reads values back from a byte sequence produced by an Encoder.
// Reads must be issued in the same order and with the same types as the writes.
//
// A Decoder is not safe for concurrent use: every read advances the cursor
// and the boolean packing state.
type Decoder struct {
	buf       []byte
	pos       int   // current read position, only ever increases
	boolIndex int   // pos right after the current run's byte was consumed, or noRun
	boolShift uint8 // bit position of the last boolean read in the run
}

// NewDecoder creates a Decoder over its own copy of data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{buf: append([]byte(nil), data...), boolIndex: noRun}
}

// End reports whether the whole buffer has been consumed.
func (d *Decoder) End() bool { return d.pos >= len(d.buf) }

// Len returns the number of bytes consumed.
func (d *Decoder) Len() int { return d.pos }

// Remaining returns the number of bytes not yet consumed.
func (d *Decoder) Remaining() int {
	if d.pos >= len(d.buf) {
		return 0
	}
	return len(d.buf) - d.pos
}

// next consumes n bytes. When fewer remain it fails without moving the cursor.
func (d *Decoder) next(n int) ([]byte, error) {
	if n > d.Remaining() {
		return nil, ErrOutOfBounds
	}
	p := d.buf[d.pos : d.pos+n]
	d.pos += n
	return p, nil
}

// --- Fixed-width Read Operations ---

func (d *Decoder) Uint8() (uint8, error) {
	p, err := d.next(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func (d *Decoder) Uint16() (uint16, error) {
	p, err := d.next(2)
	if err != nil {
		return 0, err
	}
	return Order.Uint16(p), nil
}

func (d *Decoder) Uint32() (uint32, error) {
	p, err := d.next(4)
	if err != nil {
		return 0, err
	}
	return Order.Uint32(p), nil
}

func (d *Decoder) Int8() (int8, error) {
	v, err := d.Uint8()
	return int8(v), err
}

func (d *Decoder) Int16() (int16, error) {
	v, err := d.Uint16()
	return int16(v), err
}

func (d *Decoder) Int32() (int32, error) {
	v, err := d.Uint32()
	return int32(v), err
}

func (d *Decoder) Float32() (float32, error) {
	v, err := d.Uint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (d *Decoder) Float64() (float64, error) {
	p, err := d.next(8)
	if err != nil {
		return 0, err
	}
	hi, lo := Order.Uint32(p[:4]), Order.Uint32(p[4:])
	return math.Float64frombits(uint64(hi)<<32 | uint64(lo)), nil
}

// Bool mirrors Encoder.Bool. A new byte is consumed only at the start of a
// run; otherwise the next bit of the byte just behind the cursor is tested.
func (d *Decoder) Bool() (bool, error) {
	if d.boolIndex == d.pos && d.boolShift < MaxBoolRun-1 {
		d.boolShift++
		return d.buf[d.pos-1]>>d.boolShift&1 == 1, nil
	}
	b, err := d.Uint8()
	if err != nil {
		return false, err
	}
	d.boolIndex = d.pos
	d.boolShift = 0
	return b&1 == 1, nil
}

// --- Variable-length Read Operations ---

// Size reads a value written by Encoder.Size. On a truncated size the
// cursor is left before its first byte.
func (d *Decoder) Size() (int, error) {
	if d.Remaining() < 1 {
		return 0, ErrOutOfBounds
	}
	first := d.buf[d.pos]
	if first&sigMask == 0 {
		d.pos++
		return int(first), nil
	}

	width := 4
	if first>>6 == sig2 {
		width = 2
	}
	p, err := d.next(width)
	if err != nil {
		return 0, err
	}

	size := int(first & low6Mask)
	for _, b := range p[1:] {
		size = size<<8 | int(b)
	}
	return size, nil
}

// Bytes reads a size-prefixed byte sequence and returns a copy of it.
// If the sequence is truncated the size prefix stays consumed.
func (d *Decoder) Bytes() ([]byte, error) {
	n, err := d.Size()
	if err != nil {
		return nil, err
	}
	p, err := d.next(n)
	if err != nil {
		return nil, err
	}
	return append(make([]byte, 0, n), p...), nil
}

// String reads a size-prefixed UTF-8 text. Invalid UTF-8 fails with
// ErrInvalidUTF8 after the bytes have been consumed.
func (d *Decoder) String() (string, error) {
	n, err := d.Size()
	if err != nil {
		return "", err
	}
	p, err := d.next(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		return "", ErrInvalidUTF8
	}
	return string(p), nil
}
