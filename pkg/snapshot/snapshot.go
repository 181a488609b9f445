// Package snapshot persists a store and its control index as one framed blob,
// so a codec can be re-opened in another process of the same build.
//
// Frame layout:
//
//	[0:4]   magic "RMC1"
//	[4:6]   version
//	[6:8]   flags
//	[8:16]  body length
//	[16:n]  CBOR body
//	[n:n+4] CRC32 (IEEE) of the body
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/fxamacker/cbor/v2"

	"github.com/rawbytedev/rmcodec/pkg/bytestore"
	"github.com/rawbytedev/rmcodec/pkg/control"
	"github.com/rawbytedev/rmcodec/pkg/kind"
)

const (
	Magic     uint32 = 'R' | 'M'<<8 | 'C'<<16 | '1'<<24
	VersionV1 uint16 = 1

	// FlagCanonical marks a body written with canonical CBOR.
	FlagCanonical uint16 = 1 << 0
)

const (
	HeaderSize  = 16
	TrailerSize = 4
)

var (
	ErrBadMagic  = errors.New("not a snapshot")
	ErrVersion   = errors.New("unsupported snapshot version")
	ErrTruncated = errors.New("snapshot truncated")
	ErrChecksum  = errors.New("snapshot checksum mismatch")
)

type Header struct {
	Magic   uint32
	Version uint16
	Flags   uint16
	BodyLen uint64
}

type countRow struct {
	_      struct{} `cbor:",toarray"`
	Kind   uint8
	Handle uint32
}

type entryRow struct {
	_      struct{} `cbor:",toarray"`
	Kind   uint8
	Handle uint32
	Field  uint16
	Offset uint64
	Length uint64
}

type instanceRow struct {
	_      struct{} `cbor:",toarray"`
	Kind   uint8
	Handle uint32
}

type body struct {
	Store   []byte        `cbor:"1,keyasint"`
	Counts  []countRow    `cbor:"2,keyasint"`
	Entries []entryRow    `cbor:"3,keyasint"`
	Sealed  []instanceRow `cbor:"4,keyasint"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = cbor.CanonicalEncOptions().EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = (cbor.DecOptions{}).DecMode(); err != nil {
		panic(err)
	}
}

// Encode frames the store bytes and index state.
func Encode(s *bytestore.Store, x *control.Index) ([]byte, error) {
	st := x.State()
	b := body{Store: s.Bytes()}
	for _, k := range kind.All() {
		if n, ok := st.Counts[k]; ok {
			b.Counts = append(b.Counts, countRow{Kind: uint8(k), Handle: uint32(n)})
		}
	}
	for _, e := range st.Entries {
		b.Entries = append(b.Entries, entryRow{
			Kind: uint8(e.Kind), Handle: uint32(e.Handle), Field: uint16(e.Field),
			Offset: uint64(e.Offset), Length: uint64(e.Length),
		})
	}
	for _, inst := range st.Sealed {
		b.Sealed = append(b.Sealed, instanceRow{Kind: uint8(inst.Kind), Handle: uint32(inst.Handle)})
	}
	payload, err := encMode.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode body: %w", err)
	}
	out := make([]byte, HeaderSize, HeaderSize+len(payload)+TrailerSize)
	putHeader(out, Header{Magic: Magic, Version: VersionV1, Flags: FlagCanonical, BodyLen: uint64(len(payload))})
	out = append(out, payload...)
	out = binary.LittleEndian.AppendUint32(out, crc32.ChecksumIEEE(payload))
	return out, nil
}

// Decode verifies the frame and rebuilds the store and index.
func Decode(data []byte) (*bytestore.Store, *control.Index, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, nil, err
	}
	if len(data) < HeaderSize+TrailerSize || h.BodyLen > uint64(len(data)-HeaderSize-TrailerSize) {
		return nil, nil, fmt.Errorf("%w: body of %d bytes in a %d byte frame", ErrTruncated, h.BodyLen, len(data))
	}
	end := HeaderSize + int(h.BodyLen)
	payload := data[HeaderSize:end]
	if len(data) != end+TrailerSize {
		return nil, nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(data)-end-TrailerSize)
	}
	if want := binary.LittleEndian.Uint32(data[end:]); crc32.ChecksumIEEE(payload) != want {
		return nil, nil, ErrChecksum
	}
	var b body
	if err := decMode.Unmarshal(payload, &b); err != nil {
		return nil, nil, fmt.Errorf("snapshot: decode body: %w", err)
	}
	st := control.State{Counts: make(map[kind.Kind]control.Handle, len(b.Counts))}
	for _, c := range b.Counts {
		st.Counts[kind.Kind(c.Kind)] = control.Handle(c.Handle)
	}
	for _, e := range b.Entries {
		st.Entries = append(st.Entries, control.Entry{
			Kind: kind.Kind(e.Kind), Handle: control.Handle(e.Handle), Field: control.FieldID(e.Field),
			Offset: int(e.Offset), Length: int(e.Length),
		})
	}
	for _, inst := range b.Sealed {
		st.Sealed = append(st.Sealed, control.Instance{Kind: kind.Kind(inst.Kind), Handle: control.Handle(inst.Handle)})
	}
	x, err := control.Restore(st)
	if err != nil {
		return nil, nil, err
	}
	return bytestore.FromBytes(b.Store), x, nil
}

func putHeader(buf []byte, h Header) {
	binary.LittleEndian.PutUint32(buf[0:], h.Magic)
	binary.LittleEndian.PutUint16(buf[4:], h.Version)
	binary.LittleEndian.PutUint16(buf[6:], h.Flags)
	binary.LittleEndian.PutUint64(buf[8:], h.BodyLen)
}

func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncated, len(data), HeaderSize)
	}
	h := Header{
		Magic:   binary.LittleEndian.Uint32(data[0:]),
		Version: binary.LittleEndian.Uint16(data[4:]),
		Flags:   binary.LittleEndian.Uint16(data[6:]),
		BodyLen: binary.LittleEndian.Uint64(data[8:]),
	}
	if h.Magic != Magic {
		return Header{}, ErrBadMagic
	}
	if h.Version != VersionV1 {
		return Header{}, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	return h, nil
}
