package common

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestGrowCapacity(t *testing.T) {
	require.Equal(t, MinCapacity, GrowCapacity(0, 1))
	require.Equal(t, 128, GrowCapacity(64, 65))
	require.Equal(t, 1024, GrowCapacity(64, 1000))
	cond := func(cur uint16, extra uint16) bool {
		c, need := int(cur), int(cur)+int(extra)+1
		got := GrowCapacity(c, need)
		return got >= need && got >= 2*c && got >= MinCapacity
	}
	require.NoError(t, quick.Check(cond, nil))
}

func TestScalarHelpers(t *testing.T) {
	b := make([]byte, 8)
	PutInt32(b, -7)
	require.Equal(t, int32(-7), Int32(b))
	require.Equal(t, []byte{0xf9, 0xff, 0xff, 0xff}, b[:4], "little-endian")

	PutInt64(b, math.MinInt64)
	require.Equal(t, int64(math.MinInt64), Int64(b))

	PutFloat64(b, math.Inf(-1))
	require.True(t, math.IsInf(Float64(b), -1))
}
