package compact

import (
	"math"
)

// Encoder accumulates values into a growing byte buffer.
//
// Every write returns the Encoder so calls can be chained. A write that
// cannot be encoded (a size above MaxSize) appends nothing and latches the
// error; the chain keeps going and the first such error is reported by End.
type Encoder struct {
	buf       []byte
	boolIndex int   // len(buf) right after the current run's byte was appended, or noRun
	boolShift uint8 // bit position of the last boolean in the run
	err       error // first error encountered, reported by End
}

// NewEncoder creates an Encoder. An optional capacity pre-allocates the buffer.
func NewEncoder(capacity ...int) *Encoder {
	n := 0
	if len(capacity) > 0 && capacity[0] > 0 {
		n = capacity[0]
	}
	return &Encoder{buf: make([]byte, 0, n), boolIndex: noRun}
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return len(e.buf) }

// Err returns the deferred error without finalizing the Encoder.
func (e *Encoder) Err() error { return e.err }

// setError records the first non-nil error.
func (e *Encoder) setError(err error) {
	if e.err == nil && err != nil {
		e.err = err
	}
}

// End finalizes the Encoder. It returns the encoded bytes, or the first
// deferred error and no bytes at all. The Encoder must not be used afterwards.
func (e *Encoder) End() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	buf := e.buf
	e.buf = nil
	return buf, nil
}

// --- Fixed-width Write Operations ---

func (e *Encoder) Uint8(v uint8) *Encoder {
	e.buf = append(e.buf, v)
	return e
}

func (e *Encoder) Uint16(v uint16) *Encoder {
	e.buf = Order.AppendUint16(e.buf, v)
	return e
}

func (e *Encoder) Uint32(v uint32) *Encoder {
	e.buf = Order.AppendUint32(e.buf, v)
	return e
}

func (e *Encoder) Int8(v int8) *Encoder   { return e.Uint8(uint8(v)) }
func (e *Encoder) Int16(v int16) *Encoder { return e.Uint16(uint16(v)) }
func (e *Encoder) Int32(v int32) *Encoder { return e.Uint32(uint32(v)) }

func (e *Encoder) Float32(v float32) *Encoder {
	return e.Uint32(math.Float32bits(v))
}

// Float64 writes the IEEE-754 bits as two 32-bit halves, high half first.
func (e *Encoder) Float64(v float64) *Encoder {
	bits := math.Float64bits(v)
	return e.Uint32(uint32(bits >> 32)).Uint32(uint32(bits))
}

// Bool packs consecutive booleans into a shared byte, bit 0 first.
// A run continues only while nothing else has been written since the
// previous boolean, and holds at most MaxBoolRun booleans.
func (e *Encoder) Bool(v bool) *Encoder {
	var bit uint8
	if v {
		bit = 1
	}
	index := len(e.buf)
	if e.boolIndex == index && e.boolShift < MaxBoolRun-1 {
		e.boolShift++
		e.buf[index-1] |= bit << e.boolShift
		return e
	}
	e.boolIndex = index + 1
	e.boolShift = 0
	return e.Uint8(bit)
}

// --- Variable-length Write Operations ---

// Size writes n in 1, 2 or 4 bytes depending on its magnitude.
// Values outside [0, MaxSize] are not written; End will report ErrTooLarge.
func (e *Encoder) Size(n int) *Encoder {
	switch SizeLen(n) {
	case 1:
		return e.Uint8(uint8(n))
	case 2:
		return e.Uint16(uint16(n) | size2Flag)
	case 4:
		return e.Uint32(uint32(n) | size4Flag)
	default:
		e.setError(errSizeTooLarge)
		return e
	}
}

// Bytes writes a size-prefixed byte sequence.
func (e *Encoder) Bytes(p []byte) *Encoder {
	if len(p) > MaxSize {
		e.setError(errBytesTooLong)
		return e
	}
	e.Size(len(p))
	e.buf = append(e.buf, p...)
	return e
}

// String writes the UTF-8 bytes of s, size-prefixed.
func (e *Encoder) String(s string) *Encoder {
	if len(s) > MaxSize {
		e.setError(errStringTooLong)
		return e
	}
	e.Size(len(s))
	e.buf = append(e.buf, s...)
	return e
}
