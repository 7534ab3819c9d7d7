package searcher

import (
	"testing"

	"connectfour/game"

	"github.com/stretchr/testify/require"
)

func TestRollout(t *testing.T) {
	t.Run("first player already won", func(t *testing.T) {
		plus, minus := rollout(newBoard(t, 0, 1, 0, 1, 0, 1, 0), 25, newRand(1))

		require.Equal(t, 25, plus)
		require.Equal(t, 0, minus)
	})

	t.Run("second player already won", func(t *testing.T) {
		plus, minus := rollout(newBoard(t, 6, 0, 1, 0, 1, 0, 1, 0), 25, newRand(1))

		require.Equal(t, 0, plus)
		require.Equal(t, 25, minus)
	})

	t.Run("drawn board credits nobody", func(t *testing.T) {
		b, err := game.NewBoard(2, 4, 0, 1, 2, 3, 0, 1, 2, 3)
		require.NoError(t, err)

		plus, minus := rollout(b, 25, newRand(1))

		require.Equal(t, 0, plus)
		require.Equal(t, 0, minus)
	})

	t.Run("playouts from an open position", func(t *testing.T) {
		board := newBoard(t, 3, 3)

		plus, minus := rollout(board, 200, newRand(1))

		require.LessOrEqual(t, plus+minus, 200)
		require.Greater(t, plus, 0)
		require.Greater(t, minus, 0)
		require.Equal(t, []int{3, 3}, board.Moves(), "Rollouts should not touch the source board")
	})

	t.Run("same seed gives the same outcome", func(t *testing.T) {
		board := newBoard(t)

		plus1, minus1 := rollout(board, 50, newRand(42))
		plus2, minus2 := rollout(board, 50, newRand(42))

		require.Equal(t, plus1, plus2)
		require.Equal(t, minus1, minus2)
	})
}

func TestParallelRollout(t *testing.T) {
	t.Run("terminal board across workers", func(t *testing.T) {
		plus, minus := parallelRollout(newBoard(t, 0, 1, 0, 1, 0, 1, 0), 10, 4, newRand(1))

		require.Equal(t, 10, plus, "Every worker share should be counted")
		require.Equal(t, 0, minus)
	})

	t.Run("more workers than playouts", func(t *testing.T) {
		plus, minus := parallelRollout(newBoard(t, 6, 0, 1, 0, 1, 0, 1, 0), 3, 8, newRand(1))

		require.Equal(t, 0, plus)
		require.Equal(t, 3, minus)
	})

	t.Run("same seed gives the same outcome", func(t *testing.T) {
		board := newBoard(t)

		plus1, minus1 := parallelRollout(board, 64, 4, newRand(9))
		plus2, minus2 := parallelRollout(board, 64, 4, newRand(9))

		require.Equal(t, plus1, plus2)
		require.Equal(t, minus1, minus2)
		require.LessOrEqual(t, plus1+minus1, 64)
	})
}
