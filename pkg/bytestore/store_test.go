package bytestore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritesReturnStartOffsets(t *testing.T) {
	s := New(0)
	require.Equal(t, 0, s.WriteInt32(42))
	require.Equal(t, 4, s.WriteBool(true))
	require.Equal(t, 5, s.WriteUint8(7))
	require.Equal(t, 6, s.WriteUTF8("héllo"))
	require.Equal(t, 6+4+len("héllo"), s.WriteBytes([]byte{1, 2}))
	require.Equal(t, 6+4+len("héllo")+2, s.Len())

	v, err := s.ReadInt32(0)
	require.NoError(t, err)
	require.Equal(t, int32(42), v)
	b, err := s.ReadBool(4)
	require.NoError(t, err)
	require.True(t, b)
	n, err := s.ReadInt32(6)
	require.NoError(t, err)
	str, err := s.ReadUTF8(10, int(n))
	require.NoError(t, err)
	require.Equal(t, "héllo", str)
}

func TestGrowthPreservesBytes(t *testing.T) {
	small := New(1)
	big := New(1 << 16)
	for i := 0; i < 500; i++ {
		s := strings.Repeat("x", i%17)
		require.Equal(t, big.WriteUTF8(s), small.WriteUTF8(s))
		require.Equal(t, big.WriteInt64(int64(i)), small.WriteInt64(int64(i)))
		require.Equal(t, big.WriteFloat64(float64(i)/3), small.WriteFloat64(float64(i)/3))
	}
	require.Equal(t, big.Bytes(), small.Bytes())
	require.Positive(t, small.Grows())
	require.Zero(t, big.Grows())
	require.GreaterOrEqual(t, small.Cap(), small.Len())
}

func TestReadsOutOfRange(t *testing.T) {
	s := New(8)
	s.WriteInt32(1)
	_, err := s.ReadInt32(1)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.ReadInt64(0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.ReadBytes(-1, 1)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.ReadUTF8(2, 3)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.ReadUint8(4)
	require.ErrorIs(t, err, ErrOutOfRange)
	got, err := s.ReadBytes(4, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestTruncateAndClone(t *testing.T) {
	s := New(4)
	s.WriteInt32(1)
	mark := s.Len()
	s.WriteUTF8("discard me")
	c := s.Clone()

	require.NoError(t, s.Truncate(mark))
	require.Equal(t, mark, s.Len())
	require.ErrorIs(t, s.Truncate(mark+1), ErrOutOfRange)
	require.Greater(t, c.Len(), s.Len(), "clone is independent")

	require.Equal(t, 4, s.WriteInt32(2), "writes resume at the truncation point")
	r := FromBytes(s.Bytes())
	v, err := r.ReadInt32(4)
	require.NoError(t, err)
	require.Equal(t, int32(2), v)
}

func TestBytesReturnsCopy(t *testing.T) {
	s := New(4)
	s.WriteUint8(9)
	b := s.Bytes()
	b[0] = 0
	v, err := s.ReadUint8(0)
	require.NoError(t, err)
	require.Equal(t, uint8(9), v)
}
