package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCB1(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCB1(1.4, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCB1Evaluate(t *testing.T) {
	t.Run("computing UCB1 value", func(t *testing.T) {
		policy := newUCB1(1.4, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + 1.4*math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute w/n + c*sqrt(ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCB1(1.4, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("single parent visit gives no exploration bonus", func(t *testing.T) {
		policy := newUCB1(1.4, 1)

		require.InDelta(t, 0.25, policy.evaluate(1, 4), 1e-12)
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		policy1 := newUCB1(1.4, 100)
		policy2 := newUCB1(1.4, 1000)

		require.Greater(t, policy2.evaluate(5, 10), policy1.evaluate(5, 10),
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCB1(1.4, 100)

		require.Greater(t, policy.evaluate(5, 10), policy.evaluate(10, 20),
			"More child visits should decrease exploration term at equal win rate")
	})

	t.Run("exploitation term increases with score", func(t *testing.T) {
		policy := newUCB1(1.4, 100)

		require.Greater(t, policy.evaluate(10, 10), policy.evaluate(5, 10),
			"More wins should increase exploitation term")
	})

	t.Run("larger constant favors exploration", func(t *testing.T) {
		low := newUCB1(0.5, 100)
		high := newUCB1(2.0, 100)

		require.Greater(t, high.evaluate(5, 10), low.evaluate(5, 10))
	})
}
