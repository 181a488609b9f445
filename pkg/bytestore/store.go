// Package bytestore provides the growable byte region that encoded records live in.
//
// A Store is append-only while encoding: every Write* call starts at the
// current end, returns that start offset, and leaves the cursor past the
// payload. Reads are random access by absolute offset. Offsets never change
// when the region grows, so offsets recorded elsewhere stay valid.
package bytestore

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/rmcodec/internal/common"
)

var ErrOutOfRange = errors.New("offset out of range")

type Store struct {
	buf   []byte // len(buf) is the write cursor, cap(buf) the capacity
	grows int
}

// New returns an empty store with at least the given capacity.
func New(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{buf: make([]byte, 0, capacity)}
}

// FromBytes returns a store holding a copy of data, with the cursor at its end.
func FromBytes(data []byte) *Store {
	s := New(len(data))
	s.buf = append(s.buf, data...)
	return s
}

// Len is the number of bytes written, which is also the cursor position.
func (s *Store) Len() int { return len(s.buf) }

// Cap is the current capacity of the region.
func (s *Store) Cap() int { return cap(s.buf) }

// Grows reports how many times the region has been reallocated.
func (s *Store) Grows() int { return s.grows }

// Bytes returns a copy of the written bytes.
func (s *Store) Bytes() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// Clone returns an independent copy with the same bytes and capacity.
func (s *Store) Clone() *Store {
	c := New(cap(s.buf))
	c.buf = append(c.buf, s.buf...)
	return c
}

// Truncate drops everything written at or after n. It is used only to
// discard a failed encode; bytes before n are never touched.
func (s *Store) Truncate(n int) error {
	if n < 0 || n > len(s.buf) {
		return fmt.Errorf("%w: truncate to %d, length %d", ErrOutOfRange, n, len(s.buf))
	}
	s.buf = s.buf[:n]
	return nil
}

// reserve extends the written region by n bytes and returns the start
// offset of the new bytes.
func (s *Store) reserve(n int) int {
	off := len(s.buf)
	end := off + n
	if end > cap(s.buf) {
		grown := make([]byte, off, common.GrowCapacity(cap(s.buf), end))
		copy(grown, s.buf)
		s.buf = grown
		s.grows++
	}
	s.buf = s.buf[:end]
	return off
}

func (s *Store) WriteInt32(v int32) int {
	off := s.reserve(common.Int32Size)
	common.PutInt32(s.buf[off:], v)
	return off
}

func (s *Store) WriteInt64(v int64) int {
	off := s.reserve(common.Int64Size)
	common.PutInt64(s.buf[off:], v)
	return off
}

func (s *Store) WriteFloat64(v float64) int {
	off := s.reserve(common.Float64Size)
	common.PutFloat64(s.buf[off:], v)
	return off
}

// WriteUint8 writes a single byte (enum tags, presence flags, kind tags).
func (s *Store) WriteUint8(v uint8) int {
	off := s.reserve(common.TagSize)
	s.buf[off] = v
	return off
}

func (s *Store) WriteBool(v bool) int {
	if v {
		return s.WriteUint8(1)
	}
	return s.WriteUint8(0)
}

// WriteBytes writes b as is, without a length prefix.
func (s *Store) WriteBytes(b []byte) int {
	off := s.reserve(len(b))
	copy(s.buf[off:], b)
	return off
}

// WriteUTF8 writes a 4-byte length prefix followed by the bytes of str.
func (s *Store) WriteUTF8(str string) int {
	off := s.reserve(common.Int32Size + len(str))
	common.PutInt32(s.buf[off:], int32(len(str)))
	copy(s.buf[off+common.Int32Size:], str)
	return off
}

func (s *Store) check(off, n int) error {
	if off < 0 || n < 0 || off > len(s.buf) || n > len(s.buf)-off {
		return fmt.Errorf("%w: offset %d length %d, store length %d", ErrOutOfRange, off, n, len(s.buf))
	}
	return nil
}

func (s *Store) ReadInt32(off int) (int32, error) {
	if err := s.check(off, common.Int32Size); err != nil {
		return 0, err
	}
	return common.Int32(s.buf[off:]), nil
}

func (s *Store) ReadInt64(off int) (int64, error) {
	if err := s.check(off, common.Int64Size); err != nil {
		return 0, err
	}
	return common.Int64(s.buf[off:]), nil
}

func (s *Store) ReadFloat64(off int) (float64, error) {
	if err := s.check(off, common.Float64Size); err != nil {
		return 0, err
	}
	return common.Float64(s.buf[off:]), nil
}

func (s *Store) ReadUint8(off int) (uint8, error) {
	if err := s.check(off, common.TagSize); err != nil {
		return 0, err
	}
	return s.buf[off], nil
}

// ReadBool reads one byte; any non-zero value is true.
func (s *Store) ReadBool(off int) (bool, error) {
	b, err := s.ReadUint8(off)
	return b != 0, err
}

// ReadBytes returns a copy of n bytes starting at off.
func (s *Store) ReadBytes(off, n int) ([]byte, error) {
	if err := s.check(off, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, s.buf[off:off+n])
	return out, nil
}

// ReadUTF8 returns the n payload bytes at off as a string. The caller reads
// the length prefix first; off points past it.
func (s *Store) ReadUTF8(off, n int) (string, error) {
	if err := s.check(off, n); err != nil {
		return "", err
	}
	return string(s.buf[off : off+n]), nil
}
