package control

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/rmcodec/pkg/kind"
)

func TestHandlesArePerKind(t *testing.T) {
	x := New()
	require.Equal(t, Handle(0), x.Begin(kind.DvText))
	require.Equal(t, Handle(1), x.Begin(kind.DvText))
	require.Equal(t, Handle(0), x.Begin(kind.CodePhrase))
	require.Equal(t, 2, x.Count(kind.DvText))

	last, err := x.Last(kind.DvText)
	require.NoError(t, err)
	require.Equal(t, Handle(1), last)

	_, err = x.Last(kind.Composition)
	require.ErrorIs(t, err, ErrNoInstance)
	require.Equal(t, []kind.Kind{kind.CodePhrase, kind.DvText}, x.Kinds())
}

func TestFieldLocations(t *testing.T) {
	x := New()
	h := x.Begin(kind.DvIdentifier)
	x.Record(kind.DvIdentifier, h, 0, 0, 10)
	x.Record(kind.DvIdentifier, h, 1, 10, 12)

	loc, err := x.Field(kind.DvIdentifier, h, 1)
	require.NoError(t, err)
	require.Equal(t, Location{Offset: 10, Length: 12}, loc)

	_, err = x.Field(kind.DvIdentifier, h, 2)
	require.ErrorIs(t, err, ErrUnknownField)
	_, err = x.Field(kind.DvIdentifier, h+1, 0)
	require.ErrorIs(t, err, ErrUnknownField)

	require.False(t, x.Sealed(kind.DvIdentifier, h))
	x.Seal(kind.DvIdentifier, h)
	require.True(t, x.Sealed(kind.DvIdentifier, h))
	require.Equal(t, 2, x.Len())
}

func TestRollback(t *testing.T) {
	x := New()
	kept := x.Begin(kind.DvURI)
	x.Record(kind.DvURI, kept, 0, 0, 8)
	x.Seal(kind.DvURI, kept)

	cp := x.Checkpoint()
	h := x.Begin(kind.DvURI)
	x.Record(kind.DvURI, h, 0, 8, 8)
	x.Seal(kind.DvURI, h)
	other := x.Begin(kind.DvText)
	x.Record(kind.DvText, other, 0, 16, 4)

	require.NoError(t, x.Rollback(cp))
	require.Equal(t, 1, x.Count(kind.DvURI))
	require.Zero(t, x.Count(kind.DvText))
	require.Equal(t, 1, x.Len())
	require.False(t, x.Sealed(kind.DvURI, h))
	require.True(t, x.Sealed(kind.DvURI, kept))
	_, err := x.Field(kind.DvURI, h, 0)
	require.ErrorIs(t, err, ErrUnknownField)

	require.Equal(t, h, x.Begin(kind.DvURI), "handles are reused after rollback")
	require.ErrorIs(t, x.Rollback(cp), ErrStaleCheckpoint)
}

func TestStateRestore(t *testing.T) {
	x := New()
	for i := 0; i < 3; i++ {
		h := x.Begin(kind.DvCount)
		x.Record(kind.DvCount, h, 0, i*8, 8)
		x.Seal(kind.DvCount, h)
	}
	y, err := Restore(x.State())
	require.NoError(t, err)
	require.Equal(t, x.State(), y.State())

	c := x.Clone()
	c.Begin(kind.DvCount)
	require.Equal(t, 3, x.Count(kind.DvCount), "clone is independent")
}

func TestRestoreRejectsInconsistentState(t *testing.T) {
	_, err := Restore(State{Counts: map[kind.Kind]Handle{kind.Invalid: 1}})
	require.ErrorIs(t, err, ErrCorruptState)

	_, err = Restore(State{
		Counts:  map[kind.Kind]Handle{kind.DvText: 1},
		Entries: []Entry{{Kind: kind.DvText, Handle: 1}},
	})
	require.ErrorIs(t, err, ErrCorruptState)

	_, err = Restore(State{
		Counts:  map[kind.Kind]Handle{kind.DvText: 1},
		Entries: []Entry{{Kind: kind.DvText, Offset: -1}},
	})
	require.ErrorIs(t, err, ErrCorruptState)

	_, err = Restore(State{Sealed: []Instance{{Kind: kind.DvText}}})
	require.ErrorIs(t, err, ErrCorruptState)
}
