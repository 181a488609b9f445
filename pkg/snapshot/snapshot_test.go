package snapshot

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/rmcodec/internal/sample"
	"github.com/rawbytedev/rmcodec/pkg/bytestore"
	"github.com/rawbytedev/rmcodec/pkg/control"
	"github.com/rawbytedev/rmcodec/pkg/kind"
	"github.com/rawbytedev/rmcodec/pkg/record"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

func encoded(t *testing.T) (*bytestore.Store, *control.Index, []byte) {
	t.Helper()
	s, x := bytestore.New(0), control.New()
	enc := record.NewEncoder(s, x, nil)
	_, err := enc.Encode(sample.Composition())
	require.NoError(t, err)
	_, err = enc.Encode(sample.Identifier())
	require.NoError(t, err)
	data, err := Encode(s, x)
	require.NoError(t, err)
	return s, x, data
}

func TestRoundTrip(t *testing.T) {
	s, x, data := encoded(t)

	h, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, VersionV1, h.Version)
	require.Equal(t, FlagCanonical, h.Flags&FlagCanonical)
	require.Equal(t, len(data), HeaderSize+int(h.BodyLen)+TrailerSize)

	s2, x2, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, s.Bytes(), s2.Bytes())
	require.Equal(t, x.State(), x2.State())

	got, err := record.DecodeAs[rm.Composition](record.NewDecoder(s2, x2, nil), 0)
	require.NoError(t, err)
	require.Equal(t, sample.Composition(), got)
}

func TestEncodingIsDeterministic(t *testing.T) {
	s, x, data := encoded(t)
	again, err := Encode(s.Clone(), x.Clone())
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestEmptyCodec(t *testing.T) {
	data, err := Encode(bytestore.New(0), control.New())
	require.NoError(t, err)
	s, x, err := Decode(data)
	require.NoError(t, err)
	require.Zero(t, s.Len())
	require.Zero(t, x.Len())
	require.Zero(t, x.Count(kind.Composition))
}

func TestDecodeRejectsDamagedFrames(t *testing.T) {
	_, _, data := encoded(t)
	clone := func() []byte { return append([]byte(nil), data...) }

	bad := clone()
	bad[0] = 'X'
	_, _, err := Decode(bad)
	require.ErrorIs(t, err, ErrBadMagic)

	bad = clone()
	binary.LittleEndian.PutUint16(bad[4:], 9)
	_, _, err = Decode(bad)
	require.ErrorIs(t, err, ErrVersion)

	bad = clone()
	bad[HeaderSize+3] ^= 0xff
	_, _, err = Decode(bad)
	require.ErrorIs(t, err, ErrChecksum)

	_, _, err = Decode(data[:len(data)-1])
	require.ErrorIs(t, err, ErrTruncated)
	_, _, err = Decode(data[:HeaderSize-1])
	require.ErrorIs(t, err, ErrTruncated)
	_, _, err = Decode(append(clone(), 0))
	require.ErrorIs(t, err, ErrTruncated)

	bad = clone()
	binary.LittleEndian.PutUint64(bad[8:], 1<<62)
	_, _, err = Decode(bad)
	require.ErrorIs(t, err, ErrTruncated)
}
