package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(time.Second, 50, 1.4, 2)
	c.AddVisit()
	c.AddVisit()
	c.AddRollouts(50)
	c.AddRollouts(350)

	metric := c.Complete(3, 12, 0.75)

	require.Equal(t, time.Second, metric.ThinkingTime)
	require.Equal(t, 50, metric.Sims)
	require.Equal(t, 1.4, metric.Exploration)
	require.Equal(t, 2, metric.Workers)
	require.Equal(t, 2, metric.Visits)
	require.Equal(t, 400, metric.Rollouts)
	require.Equal(t, 3, metric.TreeDepth)
	require.Equal(t, 12, metric.TreeSize)
	require.Equal(t, 0.75, metric.WinRate)

	c.Start(time.Second, 50, 1.4, 2)
	require.Zero(t, c.Complete(0, 0, 0).Visits, "Start should reset counters")
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(time.Second, 50, 1.4, 1)
	c.AddVisit()
	c.AddRollouts(10)

	require.Equal(t, SearchMetric{}, c.Complete(1, 1, 1))
}
