package kind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllKindsNamedAndParsable(t *testing.T) {
	all := All()
	require.Len(t, all, 65)
	seen := make(map[string]bool)
	for _, k := range all {
		require.True(t, k.Valid())
		name := k.String()
		require.NotEmpty(t, name)
		require.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
		back, err := Parse(name)
		require.NoError(t, err)
		require.Equal(t, k, back)
	}
}

func TestInvalidKinds(t *testing.T) {
	require.False(t, Invalid.Valid())
	require.False(t, Kind(200).Valid())
	require.Equal(t, "Kind(200)", Kind(200).String())
	_, err := Parse("NotAKind")
	require.ErrorIs(t, err, ErrUnknownName)
}
