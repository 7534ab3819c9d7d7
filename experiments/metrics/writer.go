package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, moves first
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// gameRow and moveRow are the Parquet layouts of the records.
type gameRow struct {
	ID         int32  `parquet:"id"`
	Agent1     int32  `parquet:"agent1"`
	Agent2     int32  `parquet:"agent2"`
	Rows       int32  `parquet:"rows"`
	Cols       int32  `parquet:"cols"`
	Winner     int32  `parquet:"winner"`
	Status     string `parquet:"status,dict"`
	StartTime  int64  `parquet:"start_time_ms"`
	EndTime    int64  `parquet:"end_time_ms"`
	DurationMs int64  `parquet:"duration_ms"`
	TotalMoves int32  `parquet:"total_moves"`
}

type moveRow struct {
	Game        int32   `parquet:"game"`
	Step        int32   `parquet:"step"`
	Player      int32   `parquet:"player"`
	Column      int32   `parquet:"column"`
	DurationMs  int64   `parquet:"duration_ms"`
	Visits      int32   `parquet:"visits"`
	Rollouts    int64   `parquet:"rollouts"`
	TreeDepth   int32   `parquet:"tree_depth"`
	TreeSize    int32   `parquet:"tree_size"`
	WinRate     float64 `parquet:"win_rate"`
	Sims        int32   `parquet:"sims"`
	Exploration float64 `parquet:"exploration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named after the experiment and the
// current timestamp.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "thinking_time", "episodes", "sims", "exploration", "workers", "temperature", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			config.ThinkingTime.String(),
			strconv.Itoa(config.Episodes),
			strconv.Itoa(config.Sims),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			strconv.Itoa(config.Workers),
			strconv.FormatFloat(config.Temperature, 'f', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "rows", "cols", "winner", "status", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.Rows),
			strconv.Itoa(record.Cols),
			strconv.Itoa(record.Winner),
			record.Status.String(),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "column", "duration", "visits", "rollouts", "tree_depth", "tree_size", "win_rate"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(int(record.Player)),
			strconv.Itoa(record.Column),
			record.Duration.String(),
			strconv.Itoa(record.Visits),
			strconv.Itoa(record.Rollouts),
			strconv.Itoa(record.TreeDepth),
			strconv.Itoa(record.TreeSize),
			strconv.FormatFloat(record.WinRate, 'f', 4, 64),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteGameRecordsParquet(records []GameRecord) error {
	rows := make([]gameRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, gameRow{
			ID:         int32(record.ID),
			Agent1:     int32(record.Agent1),
			Agent2:     int32(record.Agent2),
			Rows:       int32(record.Rows),
			Cols:       int32(record.Cols),
			Winner:     int32(record.Winner),
			Status:     record.Status.String(),
			StartTime:  record.StartTime.UnixMilli(),
			EndTime:    record.EndTime.UnixMilli(),
			DurationMs: record.Duration.Milliseconds(),
			TotalMoves: int32(record.TotalMoves),
		})
	}
	return writeParquet(filepath.Join(w.baseDir, "game_records.parquet"), rows, "game_record_v1")
}

func (w *Writer) WriteMoveRecordsParquet(records []MoveRecord) error {
	rows := make([]moveRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, moveRow{
			Game:        int32(record.Game),
			Step:        int32(record.Step),
			Player:      int32(record.Player),
			Column:      int32(record.Column),
			DurationMs:  record.Duration.Milliseconds(),
			Visits:      int32(record.Visits),
			Rollouts:    int64(record.Rollouts),
			TreeDepth:   int32(record.TreeDepth),
			TreeSize:    int32(record.TreeSize),
			WinRate:     record.WinRate,
			Sims:        int32(record.Sims),
			Exploration: record.Exploration,
		})
	}
	return writeParquet(filepath.Join(w.baseDir, "move_records.parquet"), rows, "move_record_v1")
}

// writeParquet writes to a temp file and renames it so readers never see a
// partial file.
func writeParquet[T any](path string, rows []T, schema string) error {
	tmpPath := path + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}
