package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"connectfour/game"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func sampleRecords() ([]GameRecord, []MoveRecord) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	games := []GameRecord{{
		ID:     1,
		Agent1: 1,
		Agent2: 2,
		GameMetric: GameMetric{
			Rows:       6,
			Cols:       7,
			Winner:     1,
			Status:     game.WonByA,
			StartTime:  start,
			EndTime:    start.Add(3 * time.Second),
			Duration:   3 * time.Second,
			TotalMoves: 2,
		},
	}}
	moves := []MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.PlayerA, Column: 3, SearchMetric: SearchMetric{Visits: 12, Rollouts: 600, TreeDepth: 2, TreeSize: 40, WinRate: 0.5625, Sims: 50}}},
		{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: game.PlayerB, Column: 4}},
	}
	return games, moves
}

func TestWriterCSV(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "speedup")
	require.NoError(t, err)
	games, moves := sampleRecords()

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "mcts", ThinkingTime: time.Second, Sims: 100, Exploration: 1.4, Workers: 1, Seed: 7}}))
	require.NoError(t, w.WriteGameRecords(games))
	require.NoError(t, w.WriteMoveRecords(moves))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, []string{"id", "kind", "thinking_time", "episodes", "sims", "exploration", "workers", "temperature", "seed"}, configs[0])
	require.Equal(t, []string{"1", "mcts", "1s", "0", "100", "1.4", "1", "0", "7"}, configs[1])

	gameRows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, gameRows, 2)
	require.Equal(t, "won by X", gameRows[1][6])
	require.Equal(t, "2024-05-01T12:00:00Z", gameRows[1][7])

	moveRows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moveRows, 3)
	require.Equal(t, []string{"1", "1", "1", "3", "0s", "12", "600", "2", "40", "0.5625"}, moveRows[1])
	require.Equal(t, "-1", moveRows[2][2], "Second player is encoded as -1")
}

func TestWriterParquet(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "speedup")
	require.NoError(t, err)
	games, moves := sampleRecords()

	require.NoError(t, w.WriteGameRecordsParquet(games))
	require.NoError(t, w.WriteMoveRecordsParquet(moves))

	gameRows, err := parquet.ReadFile[gameRow](filepath.Join(w.Dir(), "game_records.parquet"))
	require.NoError(t, err)
	require.Len(t, gameRows, 1)
	require.Equal(t, "won by X", gameRows[0].Status)
	require.Equal(t, int64(3000), gameRows[0].DurationMs)

	moveRows, err := parquet.ReadFile[moveRow](filepath.Join(w.Dir(), "move_records.parquet"))
	require.NoError(t, err)
	require.Len(t, moveRows, 2)
	require.Equal(t, int32(3), moveRows[0].Column)
	require.Equal(t, int64(600), moveRows[0].Rollouts)
	require.Equal(t, 0.5625, moveRows[0].WinRate)
	require.Equal(t, int32(-1), moveRows[1].Player)

	_, err = os.Stat(filepath.Join(w.Dir(), "move_records.parquet.tmp"))
	require.True(t, os.IsNotExist(err), "Temp file should be renamed away")
}
