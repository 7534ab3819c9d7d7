package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 2, 2}, 2))
	require.Equal(t, -1, FindIndex([]int{4, 2, 2}, 3))
	require.Equal(t, -1, FindIndex(nil, 0))
}

func TestArgMax(t *testing.T) {
	identity := func(x float64) float64 { return x }

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, -1, ArgMax(nil, identity))
	})

	t.Run("first maximum wins", func(t *testing.T) {
		require.Equal(t, 1, ArgMax([]float64{0.2, 0.7, 0.1, 0.7}, identity))
	})

	t.Run("negative values", func(t *testing.T) {
		require.Equal(t, 2, ArgMax([]float64{-3, -2, -1}, identity))
	})
}
