package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes all files there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
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

func (w *Writer) write(file string, header []string, rows [][]string) error {
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
	return f.Close()
}

func (w *Writer) WriteSearchMetric(m SearchMetric) error {
	header := []string{"depth", "colour", "nodes", "leaves", "rollouts", "wins", "duration"}
	row := []string{
		strconv.Itoa(m.Depth),
		m.Colour.String(),
		strconv.Itoa(m.Nodes),
		strconv.Itoa(m.Leaves),
		strconv.Itoa(m.Rollouts),
		strconv.Itoa(m.Wins),
		m.Duration.String(),
	}
	return w.write("search.csv", header, [][]string{row})
}

func (w *Writer) WriteBranches(records []BranchRecord) error {
	header := []string{"rank", "move", "wins", "plays", "win_rate"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Rank),
			r.Move,
			strconv.FormatUint(uint64(r.Wins), 10),
			strconv.FormatUint(uint64(r.Plays), 10),
			strconv.FormatFloat(r.WinRate(), 'f', 4, 64),
		})
	}
	return w.write("branches.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "winner", "dark", "light", "plies", "passes", "declines", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Winner,
			strconv.Itoa(r.Dark),
			strconv.Itoa(r.Light),
			strconv.Itoa(r.Plies),
			strconv.Itoa(r.Passes),
			strconv.Itoa(r.Declines),
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}
