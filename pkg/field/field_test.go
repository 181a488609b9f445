package field

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/rmcodec/pkg/bytestore"
	"github.com/rawbytedev/rmcodec/pkg/control"
	"github.com/rawbytedev/rmcodec/pkg/kind"
)

func roundTrip[T any](t *testing.T, c Codec[T], v T) T {
	t.Helper()
	s := bytestore.New(0)
	s.WriteUint8(0xAA) // fields never start at offset zero in practice
	sp := c.Put(s, v)
	if w := c.Width(); w >= 0 {
		require.Equal(t, w, sp.Len)
	}
	got, err := c.Load(s, sp)
	require.NoError(t, err)
	return got
}

func TestScalars(t *testing.T) {
	cond := func(a int32, b int64, f float64, flag bool, tag uint8) bool {
		return roundTrip(t, Int32, a) == a &&
			roundTrip(t, Int64, b) == b &&
			math.Float64bits(roundTrip(t, Float64, f)) == math.Float64bits(f) &&
			roundTrip(t, Bool, flag) == flag &&
			roundTrip(t, Tag, tag) == tag
	}
	require.NoError(t, quick.Check(cond, nil))
	require.True(t, math.IsNaN(roundTrip(t, Float64, math.NaN())))
}

func TestStringsAndBytes(t *testing.T) {
	cond := func(s string, b []byte) bool {
		gotB := roundTrip(t, Bytes, b)
		if len(b) == 0 {
			return roundTrip(t, String, s) == s && gotB == nil
		}
		return roundTrip(t, String, s) == s && assert.ObjectsAreEqual(b, gotB)
	}
	require.NoError(t, quick.Check(cond, nil))
}

func TestContiguousStringsKeepBoundaries(t *testing.T) {
	s := bytestore.New(0)
	in := []string{"issuer", "assigner", "id", "type"}
	spans := make([]Span, len(in))
	for i, v := range in {
		spans[i] = String.Put(s, v)
	}
	for i, sp := range spans {
		if i > 0 {
			require.Equal(t, spans[i-1].End(), sp.Off)
		}
		got, err := String.Load(s, sp)
		require.NoError(t, err)
		require.Equal(t, in[i], got)
	}
}

func TestNullableDistinguishesAbsentFromEmpty(t *testing.T) {
	opt := Nullable(String)
	empty := ""

	require.Nil(t, roundTrip(t, opt, nil))
	got := roundTrip(t, opt, &empty)
	require.NotNil(t, got)
	require.Equal(t, "", *got)

	s := bytestore.New(0)
	sp := opt.Put(s, nil)
	require.Equal(t, 1, sp.Len, "absent consumes exactly the presence byte")
}

func TestListFidelity(t *testing.T) {
	strs := List(String)
	require.Nil(t, roundTrip(t, strs, nil))
	require.Nil(t, roundTrip(t, strs, []string{}))
	require.Equal(t, []string{"one"}, roundTrip(t, strs, []string{"one"}))
	many := []string{"c", "", "a", "b", "a"}
	require.Equal(t, many, roundTrip(t, strs, many))

	ints := List(Int32)
	cond := func(v []int32) bool {
		got := roundTrip(t, ints, v)
		if len(v) == 0 {
			return got == nil
		}
		return assert.ObjectsAreEqual(v, got)
	}
	require.NoError(t, quick.Check(cond, nil))

	nested := List(Nullable(Int64))
	one := int64(1)
	got := roundTrip(t, nested, []*int64{nil, &one})
	require.Len(t, got, 2)
	require.Nil(t, got[0])
	require.Equal(t, one, *got[1])
}

func TestRef(t *testing.T) {
	r := Ref{Kind: kind.ItemTree, Handle: control.Handle(70000)}
	require.Equal(t, r, roundTrip(t, RefCodec, r))
	require.Equal(t, "ItemTree#70000", r.String())
}

func TestLoadRejectsInconsistentSpans(t *testing.T) {
	s := bytestore.New(0)
	sp := String.Put(s, "hello")

	_, err := String.Load(s, Span{Off: sp.Off, Len: sp.Len + 1})
	require.ErrorIs(t, err, ErrCorruptData)
	_, err = String.Load(s, Span{Off: sp.Off, Len: sp.Len - 1})
	require.ErrorIs(t, err, ErrCorruptData)
	_, err = String.Load(s, Span{Off: -1, Len: 2})
	require.ErrorIs(t, err, ErrCorruptData)
	_, err = Int32.Load(s, Span{Off: 0, Len: 3})
	require.ErrorIs(t, err, ErrCorruptData)
}

func TestCorruptPayloads(t *testing.T) {
	s := bytestore.New(0)
	sp := Int32.Put(s, -5)
	_, err := String.Load(s, sp)
	require.ErrorIs(t, err, ErrCorruptData, "negative length prefix")

	s = bytestore.New(0)
	sp = Tag.Put(s, 2)
	_, err = Bool.Load(s, sp)
	require.ErrorIs(t, err, ErrCorruptData)

	s = bytestore.New(0)
	sp = Int32.Put(s, 1<<20)
	_, err = List(RefCodec).Load(s, sp)
	require.ErrorIs(t, err, ErrCorruptData, "count larger than the store")

	s = bytestore.New(0)
	sp = Int32.Put(s, 100)
	_, err = List(String).Load(s, sp)
	require.ErrorIs(t, err, ErrCorruptData)
	require.ErrorIs(t, err, bytestore.ErrOutOfRange)
}

func FuzzStringList(f *testing.F) {
	f.Add("a", "", []byte{1})
	f.Fuzz(func(t *testing.T, a, b string, raw []byte) {
		in := []string{a, b}
		got := roundTrip(t, List(String), in)
		require.Equal(t, in, got)

		// Arbitrary bytes must never panic, only fail cleanly.
		s := bytestore.FromBytes(raw)
		_, _ = List(Nullable(String)).Load(s, Span{Off: 0, Len: len(raw)})
	})
}
