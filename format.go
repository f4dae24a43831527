package compact

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Order is the byte order of every multi-byte field on the wire.
var Order = binary.BigEndian

const (
	// MaxSize is the largest magnitude the variable-length size encoding can carry (30 bits).
	MaxSize = 0x3FFFFFFF

	// MaxBoolRun is the number of booleans packed into one byte before a new run starts.
	MaxBoolRun = 8

	size1Max = 0x7F   // 7 payload bits, signature 0
	size2Max = 0x3FFF // 14 payload bits, signature 10

	size2Flag = 0x8000     // 10xxxxxx xxxxxxxx
	size4Flag = 0xC0000000 // 11xxxxxx xxxxxxxx xxxxxxxx xxxxxxxx

	sigMask  = 0x80
	sig2     = 2
	low6Mask = 0x3F

	noRun = -1
)

// SizeLen reports how many bytes the size encoding of n occupies: 1, 2 or 4.
// It returns 0 when n is negative or above MaxSize and therefore cannot be encoded.
func SizeLen[T constraints.Integer](n T) int {
	if n < 0 || uint64(n) > MaxSize {
		return 0
	}
	switch v := uint64(n); {
	case v <= size1Max:
		return 1
	case v <= size2Max:
		return 2
	default:
		return 4
	}
}
