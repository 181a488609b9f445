package common

import (
	"encoding/binary"
	"math"
)

// Fixed byte widths of the scalar shapes. All multi-byte values are little-endian.
const (
	TagSize     = 1
	BoolSize    = 1
	Int32Size   = 4
	Int64Size   = 8
	Float64Size = 8
	// RefSize is a nested-record reference: kind tag + handle.
	RefSize = TagSize + Int32Size
)

// MinCapacity is the smallest capacity a store grows to.
const MinCapacity = 64

// GrowCapacity returns the capacity to reallocate to when a write needs
// `need` bytes in a region of capacity `cur`. The result at least doubles cur.
func GrowCapacity(cur, need int) int {
	next := cur * 2
	if next < MinCapacity {
		next = MinCapacity
	}
	for next < need {
		next *= 2
	}
	return next
}

// PutInt32 writes v into b[0:4].
func PutInt32(b []byte, v int32) { binary.LittleEndian.PutUint32(b, uint32(v)) }

// Int32 reads b[0:4].
func Int32(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) }

// PutInt64 writes v into b[0:8].
func PutInt64(b []byte, v int64) { binary.LittleEndian.PutUint64(b, uint64(v)) }

// Int64 reads b[0:8].
func Int64(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) }

// PutFloat64 writes the IEEE-754 bits of v into b[0:8].
func PutFloat64(b []byte, v float64) { binary.LittleEndian.PutUint64(b, math.Float64bits(v)) }

// Float64 reads b[0:8] as IEEE-754 bits.
func Float64(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) }
