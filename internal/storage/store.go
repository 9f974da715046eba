package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/coltrans/internal/experiment"
	"github.com/san-kum/coltrans/internal/transport"
)

const (
	metadataFile = "metadata.json"
	profileFile  = "profile.csv"
	btcFile      = "btc.csv"
)

var profileHeader = []string{"x", "central", "min", "max", "lower_quartile", "upper_quartile", "mean"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID             string             `json:"id"`
	Preset         string             `json:"preset,omitempty"`
	Timestamp      time.Time          `json:"timestamp"`
	Seed           int64              `json:"seed"`
	Solution       string             `json:"solution"`
	BTCSolution    string             `json:"btc_solution"`
	Injection      string             `json:"injection"`
	PulseDuration  float64            `json:"pulse_duration,omitempty"`
	Samples        int                `json:"samples"`
	Nodes          int                `json:"nodes"`
	PoreVolumes    float64            `json:"pore_volumes"`
	PoreVolumeTime float64            `json:"pore_volume_time"`
	Velocity       float64            `json:"velocity"`
	Retardation    float64            `json:"retardation"`
	BTCX           float64            `json:"btc_x"`
	Metrics        map[string]float64 `json:"metrics"`
}

// Profile is the stored column profile with its uncertainty bands.
type Profile struct {
	X             []float64 `json:"x"`
	Central       []float64 `json:"central"`
	Min           []float64 `json:"min"`
	Max           []float64 `json:"max"`
	LowerQuartile []float64 `json:"lower_quartile"`
	UpperQuartile []float64 `json:"upper_quartile"`
	Mean          []float64 `json:"mean"`
}

func (s *Store) Save(preset string, result *experiment.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", result.Solution, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Preset:         preset,
		Timestamp:      now,
		Seed:           result.Seed,
		Solution:       result.Solution,
		BTCSolution:    result.BTCSolution,
		Injection:      result.Injection.Mode.String(),
		Samples:        result.Field.Members(),
		Nodes:          len(result.Grid),
		PoreVolumes:    result.PoreVolumes,
		PoreVolumeTime: result.PoreVolumeTime,
		Velocity:       result.Velocity,
		Retardation:    result.Retardation,
		BTCX:           result.Breakthrough.X,
		Metrics:        result.Metrics,
	}
	if result.Injection.Mode == transport.Pulse {
		meta.PulseDuration = result.Injection.Duration
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	b := result.Bands
	if err := writeColumns(filepath.Join(runDir, profileFile), profileHeader,
		result.Grid, result.Central, b.Min, b.Max, b.LowerQuartile, b.UpperQuartile, b.Mean); err != nil {
		return "", err
	}

	btc := result.Breakthrough
	if err := writeColumns(filepath.Join(runDir, btcFile), []string{"pore_volume", "concentration"},
		btc.PoreVolumes, btc.Concentrations); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeColumns(path string, header []string, cols ...[]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := WriteColumns(w, header, cols...); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// WriteColumns writes equally long columns as CSV rows below header.
func WriteColumns(w *csv.Writer, header []string, cols ...[]float64) error {
	for j := 1; j < len(cols); j++ {
		if len(cols[j]) != len(cols[0]) {
			return fmt.Errorf("storage: column %d has %d values, want %d", j, len(cols[j]), len(cols[0]))
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}
	if len(cols) == 0 {
		return nil
	}
	for i := range cols[0] {
		row := make([]string, len(cols))
		for j, col := range cols {
			row[j] = strconv.FormatFloat(col[i], 'g', 10, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadProfile(runID string) (*Profile, error) {
	cols, err := readColumns(filepath.Join(s.baseDir, runID, profileFile), len(profileHeader))
	if err != nil {
		return nil, err
	}
	return &Profile{
		X:             cols[0],
		Central:       cols[1],
		Min:           cols[2],
		Max:           cols[3],
		LowerQuartile: cols[4],
		UpperQuartile: cols[5],
		Mean:          cols[6],
	}, nil
}

// LoadBreakthrough returns pore volumes and concentrations.
func (s *Store) LoadBreakthrough(runID string) ([]float64, []float64, error) {
	cols, err := readColumns(filepath.Join(s.baseDir, runID, btcFile), 2)
	if err != nil {
		return nil, nil, err
	}
	return cols[0], cols[1], nil
}

func readColumns(path string, n int) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cols, err := ReadColumns(file, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cols, nil
}

// ReadColumns reads the first n columns of a CSV table with a header row.
func ReadColumns(r io.Reader, n int) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	cols := make([][]float64, n)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < n {
			return nil, fmt.Errorf("line %d has %d fields, want %d", i+1, len(record), n)
		}
		for j := 0; j < n; j++ {
			val, err := strconv.ParseFloat(strings.TrimSpace(record[j]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			cols[j] = append(cols[j], val)
		}
	}

	return cols, nil
}
