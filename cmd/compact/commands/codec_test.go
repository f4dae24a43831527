package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/compact"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := NewApp(&out).Run(context.Background(), append([]string{"compact"}, args...))
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := run(t, "encode", "--layout", "u8,bool,string", "5", "true", "ok")
	require.NoError(t, err)
	assert.Equal(t, "0501026f6b\n", out)
}

func TestDecodeCommand(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		out, err := run(t, "decode", "--layout", "u8,bool,string", "0501026f6b")
		require.NoError(t, err)
		assert.Equal(t, "0\tu8\t5\n1\tbool\ttrue\n2\tstring\tok\n", out)
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := run(t, "decode", "--json", "--layout", "u8,string", "05026f6b")
		require.NoError(t, err)

		var fields []struct {
			Type  string `json:"type"`
			Value any    `json:"value"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &fields))
		require.Len(t, fields, 2)
		assert.Equal(t, "u8", fields[0].Type)
		assert.EqualValues(t, 5, fields[0].Value)
		assert.Equal(t, "string", fields[1].Type)
		assert.Equal(t, "ok", fields[1].Value)
	})

	t.Run("JSONNonFinite", func(t *testing.T) {
		out, err := run(t, "decode", "--json", "--layout", "f32", "7fc00000")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"type":"f32","value":"NaN"}]`, out)

		out, err = run(t, "decode", "--json", "--layout", "f64,bytes", "7ff000000000000002cafe")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"type":"f64","value":"+Inf"},{"type":"bytes","value":"cafe"}]`, out)
	})

	t.Run("TrailingBytes", func(t *testing.T) {
		_, err := run(t, "decode", "--layout", "u8", "0501")
		assert.ErrorIs(t, err, compact.ErrTrailingData)

		out, err := run(t, "decode", "--allow-trailing", "--layout", "u8", "0501")
		require.NoError(t, err)
		assert.Equal(t, "0\tu8\t5\n", out)
	})

	t.Run("Truncated", func(t *testing.T) {
		_, err := run(t, "decode", "--layout", "u8,string", "0505")
		assert.ErrorIs(t, err, compact.ErrOutOfBounds)
	})

	t.Run("InvalidHex", func(t *testing.T) {
		_, err := run(t, "decode", "--layout", "u8", "zz")
		assert.Error(t, err)
	})
}

func TestSizeCommand(t *testing.T) {
	out, err := run(t, "size", "16384")
	require.NoError(t, err)
	assert.Equal(t, "c0004000\t4 bytes\n", out)

	_, err = run(t, "size", "1073741824")
	assert.ErrorIs(t, err, compact.ErrTooLarge)
}
