// Package field holds the shape codecs that every record field is built from.
//
// A Codec pairs an append-only writer with a reader over the same layout:
//
//	int32, int64, float64   fixed 4/8 bytes, little-endian
//	bool, tag               fixed 1 byte
//	string, bytes           int32 length + payload
//	nullable                1 presence byte + payload when present
//	list                    int32 count + count element encodings
//	ref                     1 byte kind + int32 handle
//
// Codecs know nothing about records; they are composed by the record package.
package field

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/rmcodec/internal/common"
	"github.com/rawbytedev/rmcodec/pkg/bytestore"
	"github.com/rawbytedev/rmcodec/pkg/control"
	"github.com/rawbytedev/rmcodec/pkg/kind"
)

var ErrCorruptData = errors.New("corrupt data")

// Span is the location of one encoded field.
type Span struct {
	Off int
	Len int
}

// End is the offset just past the span.
func (s Span) End() int { return s.Off + s.Len }

type Codec[T any] struct {
	put  func(s *bytestore.Store, v T)
	read func(s *bytestore.Store, off int) (T, int, error)
	// width is the constant encoded size, or -1 for variable-length shapes.
	width int
}

// Put appends v and returns where it was written.
func (c Codec[T]) Put(s *bytestore.Store, v T) Span {
	off := s.Len()
	c.put(s, v)
	return Span{Off: off, Len: s.Len() - off}
}

// Read decodes a value at off and returns it with the number of bytes consumed.
func (c Codec[T]) Read(s *bytestore.Store, off int) (T, int, error) {
	return c.read(s, off)
}

// Width is the fixed encoded size, or -1 if it depends on the value.
func (c Codec[T]) Width() int { return c.width }

// Load decodes the field recorded at sp. The span must lie inside the store
// and the decoded value must consume it exactly.
func (c Codec[T]) Load(s *bytestore.Store, sp Span) (T, error) {
	var zero T
	if sp.Off < 0 || sp.Len < 0 || sp.End() > s.Len() {
		return zero, fmt.Errorf("%w: span [%d,+%d) outside store of %d bytes", ErrCorruptData, sp.Off, sp.Len, s.Len())
	}
	if c.width >= 0 && sp.Len != c.width {
		return zero, fmt.Errorf("%w: span length %d, shape width %d", ErrCorruptData, sp.Len, c.width)
	}
	v, n, err := c.read(s, sp.Off)
	if errors.Is(err, bytestore.ErrOutOfRange) {
		return zero, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	if err != nil {
		return zero, err
	}
	if n != sp.Len {
		return zero, fmt.Errorf("%w: decoded %d bytes from a %d byte span", ErrCorruptData, n, sp.Len)
	}
	return v, nil
}

var Int32 = Codec[int32]{
	put: func(s *bytestore.Store, v int32) { s.WriteInt32(v) },
	read: func(s *bytestore.Store, off int) (int32, int, error) {
		v, err := s.ReadInt32(off)
		return v, common.Int32Size, err
	},
	width: common.Int32Size,
}

var Int64 = Codec[int64]{
	put: func(s *bytestore.Store, v int64) { s.WriteInt64(v) },
	read: func(s *bytestore.Store, off int) (int64, int, error) {
		v, err := s.ReadInt64(off)
		return v, common.Int64Size, err
	},
	width: common.Int64Size,
}

var Float64 = Codec[float64]{
	put: func(s *bytestore.Store, v float64) { s.WriteFloat64(v) },
	read: func(s *bytestore.Store, off int) (float64, int, error) {
		v, err := s.ReadFloat64(off)
		return v, common.Float64Size, err
	},
	width: common.Float64Size,
}

var Bool = Codec[bool]{
	put: func(s *bytestore.Store, v bool) { s.WriteBool(v) },
	read: func(s *bytestore.Store, off int) (bool, int, error) {
		b, err := s.ReadUint8(off)
		if err != nil {
			return false, 0, err
		}
		if b > 1 {
			return false, 0, fmt.Errorf("%w: bool byte %#x at %d", ErrCorruptData, b, off)
		}
		return b == 1, common.BoolSize, nil
	},
	width: common.BoolSize,
}

// Tag is a single-byte enumeration value. Range checks belong to the caller.
var Tag = Codec[uint8]{
	put: func(s *bytestore.Store, v uint8) { s.WriteUint8(v) },
	read: func(s *bytestore.Store, off int) (uint8, int, error) {
		v, err := s.ReadUint8(off)
		return v, common.TagSize, err
	},
	width: common.TagSize,
}

func readLength(s *bytestore.Store, off int) (int, error) {
	n, err := s.ReadInt32(off)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length %d at %d", ErrCorruptData, n, off)
	}
	return int(n), nil
}

var String = Codec[string]{
	put: func(s *bytestore.Store, v string) { s.WriteUTF8(v) },
	read: func(s *bytestore.Store, off int) (string, int, error) {
		n, err := readLength(s, off)
		if err != nil {
			return "", 0, err
		}
		v, err := s.ReadUTF8(off+common.Int32Size, n)
		if err != nil {
			return "", 0, err
		}
		return v, common.Int32Size + n, nil
	},
	width: -1,
}

// Bytes is a length-prefixed raw byte array. A zero-length array decodes as nil.
var Bytes = Codec[[]byte]{
	put: func(s *bytestore.Store, v []byte) {
		s.WriteInt32(int32(len(v)))
		s.WriteBytes(v)
	},
	read: func(s *bytestore.Store, off int) ([]byte, int, error) {
		n, err := readLength(s, off)
		if err != nil {
			return nil, 0, err
		}
		if n == 0 {
			return nil, common.Int32Size, nil
		}
		v, err := s.ReadBytes(off+common.Int32Size, n)
		if err != nil {
			return nil, 0, err
		}
		return v, common.Int32Size + n, nil
	},
	width: -1,
}

// Ref points at another encoded instance.
type Ref struct {
	Kind   kind.Kind
	Handle control.Handle
}

func (r Ref) String() string { return fmt.Sprintf("%s#%d", r.Kind, r.Handle) }

var RefCodec = Codec[Ref]{
	put: func(s *bytestore.Store, v Ref) {
		s.WriteUint8(uint8(v.Kind))
		s.WriteInt32(int32(v.Handle))
	},
	read: func(s *bytestore.Store, off int) (Ref, int, error) {
		k, err := s.ReadUint8(off)
		if err != nil {
			return Ref{}, 0, err
		}
		h, err := s.ReadInt32(off + common.TagSize)
		if err != nil {
			return Ref{}, 0, err
		}
		return Ref{Kind: kind.Kind(k), Handle: control.Handle(uint32(h))}, common.RefSize, nil
	},
	width: common.RefSize,
}

// Nullable wraps c with a presence byte. nil is absent; a non-nil pointer to
// a zero value is present.
func Nullable[T any](c Codec[T]) Codec[*T] {
	return Codec[*T]{
		put: func(s *bytestore.Store, v *T) {
			if v == nil {
				s.WriteBool(false)
				return
			}
			s.WriteBool(true)
			c.put(s, *v)
		},
		read: func(s *bytestore.Store, off int) (*T, int, error) {
			present, n, err := Bool.read(s, off)
			if err != nil || !present {
				return nil, n, err
			}
			v, m, err := c.read(s, off+n)
			if err != nil {
				return nil, 0, err
			}
			return &v, n + m, nil
		},
		width: -1,
	}
}

// List encodes a count followed by each element. An empty list decodes as nil.
func List[T any](c Codec[T]) Codec[[]T] {
	return Codec[[]T]{
		put: func(s *bytestore.Store, v []T) {
			s.WriteInt32(int32(len(v)))
			for _, e := range v {
				c.put(s, e)
			}
		},
		read: func(s *bytestore.Store, off int) ([]T, int, error) {
			count, err := readLength(s, off)
			if err != nil {
				return nil, 0, err
			}
			pos := off + common.Int32Size
			if count == 0 {
				return nil, pos - off, nil
			}
			if c.width > 0 && count > (s.Len()-pos)/c.width {
				return nil, 0, fmt.Errorf("%w: list of %d elements overruns store", ErrCorruptData, count)
			}
			out := make([]T, 0, min(count, s.Len()-pos))
			for i := 0; i < count; i++ {
				e, n, err := c.read(s, pos)
				if err != nil {
					return nil, 0, err
				}
				out = append(out, e)
				pos += n
			}
			return out, pos - off, nil
		},
		width: -1,
	}
}
