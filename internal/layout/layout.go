// Package layout describes the field order of a compact message as text,
// e.g. "u8,bool,string", and drives an Encoder or Decoder through it.
//
// The wire format carries no type information, so a layout is the
// out-of-band agreement between the writer and the reader.
package layout

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/oy3o/compact"
)

// Type is one field type of a layout.
type Type uint8

const (
	Uint8 Type = iota + 1
	Uint16
	Uint32
	Int8
	Int16
	Int32
	Float32
	Float64
	Bool
	Size
	Bytes
	String
)

var typeNames = map[Type]string{
	Uint8:   "u8",
	Uint16:  "u16",
	Uint32:  "u32",
	Int8:    "i8",
	Int16:   "i16",
	Int32:   "i32",
	Float32: "f32",
	Float64: "f64",
	Bool:    "bool",
	Size:    "size",
	Bytes:   "bytes",
	String:  "string",
}

var namedTypes = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		m[name] = t
	}
	return m
}()

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "type(" + strconv.Itoa(int(t)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// ErrUnknownType is returned by Parse for a type name it does not know.
var ErrUnknownType = errors.New("layout: unknown field type")

// Layout is an ordered list of field types.
type Layout []Type

// Parse reads a comma-separated list of type names. Blank entries are ignored.
func Parse(s string) (Layout, error) {
	var l Layout
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		t, ok := namedTypes[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownType, "%q", name)
		}
		l = append(l, t)
	}
	return l, nil
}

func (l Layout) String() string {
	names := make([]string, len(l))
	for i, t := range l {
		names[i] = t.String()
	}
	return strings.Join(names, ",")
}

// Field is one decoded value together with its type.
type Field struct {
	Type  Type `json:"type"`
	Value any  `json:"value"`
}

// Text formats the value the way Encode parses it back.
func (f Field) Text() string {
	switch v := f.Value.(type) {
	case []byte:
		return hex.EncodeToString(v)
	case string:
		return v
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}

// MarshalJSON writes byte strings as hex and non-finite floats as text,
// matching Text. Every other value keeps its JSON form.
func (f Field) MarshalJSON() ([]byte, error) {
	v := f.Value
	switch x := v.(type) {
	case []byte:
		v = f.Text()
	case float32:
		if !isFinite(float64(x)) {
			v = f.Text()
		}
	case float64:
		if !isFinite(x) {
			v = f.Text()
		}
	}
	return json.Marshal(struct {
		Type  Type `json:"type"`
		Value any  `json:"value"`
	}{f.Type, v})
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Decode reads one value per field type. It returns the fields decoded so
// far together with the error of the first field that failed.
func (l Layout) Decode(d *compact.Decoder) ([]Field, error) {
	fields := make([]Field, 0, len(l))
	for i, t := range l {
		v, err := decodeField(d, t)
		if err != nil {
			Logger().Debug("decode field failed",
				zap.Int("index", i),
				zap.Stringer("type", t),
				zap.Int("offset", d.Len()),
				zap.Error(err))
			return fields, errors.Wrapf(err, "layout: field %d (%s)", i, t)
		}
		fields = append(fields, Field{Type: t, Value: v})
	}
	return fields, nil
}

func decodeField(d *compact.Decoder, t Type) (any, error) {
	switch t {
	case Uint8:
		return d.Uint8()
	case Uint16:
		return d.Uint16()
	case Uint32:
		return d.Uint32()
	case Int8:
		return d.Int8()
	case Int16:
		return d.Int16()
	case Int32:
		return d.Int32()
	case Float32:
		return d.Float32()
	case Float64:
		return d.Float64()
	case Bool:
		return d.Bool()
	case Size:
		return d.Size()
	case Bytes:
		return d.Bytes()
	case String:
		return d.String()
	default:
		return nil, errors.Wrapf(ErrUnknownType, "%s", t)
	}
}

// Encode parses one textual value per field type and writes it. Integers
// accept any base strconv understands, bytes are hex. Size errors are
// deferred by the Encoder and surface from its End.
func (l Layout) Encode(e *compact.Encoder, values []string) error {
	if len(values) != len(l) {
		return errors.Newf("layout: %d fields but %d values", len(l), len(values))
	}
	for i, t := range l {
		if err := encodeField(e, t, values[i]); err != nil {
			return errors.Wrapf(err, "layout: field %d (%s)", i, t)
		}
	}
	return nil
}

func encodeField(e *compact.Encoder, t Type, s string) error {
	switch t {
	case Uint8, Uint16, Uint32:
		v, err := strconv.ParseUint(s, 0, bitSize(t))
		if err != nil {
			return err
		}
		switch t {
		case Uint8:
			e.Uint8(uint8(v))
		case Uint16:
			e.Uint16(uint16(v))
		default:
			e.Uint32(uint32(v))
		}
	case Int8, Int16, Int32:
		v, err := strconv.ParseInt(s, 0, bitSize(t))
		if err != nil {
			return err
		}
		switch t {
		case Int8:
			e.Int8(int8(v))
		case Int16:
			e.Int16(int16(v))
		default:
			e.Int32(int32(v))
		}
	case Float32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return err
		}
		e.Float32(float32(v))
	case Float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		e.Float64(v)
	case Bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		e.Bool(v)
	case Size:
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return err
		}
		e.Size(int(v))
	case Bytes:
		v, err := hex.DecodeString(s)
		if err != nil {
			return err
		}
		e.Bytes(v)
	case String:
		e.String(s)
	default:
		return errors.Wrapf(ErrUnknownType, "%s", t)
	}
	return nil
}

func bitSize(t Type) int {
	switch t {
	case Uint8, Int8:
		return 8
	case Uint16, Int16:
		return 16
	default:
		return 32
	}
}
