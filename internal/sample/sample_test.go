package sample

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/rmcodec/pkg/kind"
)

func TestAllValuesAreValid(t *testing.T) {
	all := All()
	for _, k := range kind.All() {
		v, ok := all[k]
		require.True(t, ok, "no sample for %s", k)
		require.Equal(t, k, v.Kind())
		require.NoError(t, v.Validate(), "%s", k)
	}
}

func TestBuilders(t *testing.T) {
	require.NoError(t, Composition().Validate())
	require.NoError(t, Large(3).Validate())
	require.Len(t, Large(3).Content, 3)
	require.NoError(t, Contribution(2).Validate())
	require.Error(t, Contribution(0).Validate())
	require.Nil(t, Contribution(0).Versions)
	require.NoError(t, Multimedia().Validate())
}
