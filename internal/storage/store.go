package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/lifesim/internal/logging"
	"github.com/san-kum/lifesim/internal/patterns"
	"github.com/san-kum/lifesim/internal/sim"
)

const (
	metadataFile   = "metadata.json"
	populationFile = "population.csv"
	snapshotFile   = "final.rle"
)

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
	ID          string             `json:"id"`
	Pattern     string             `json:"pattern"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	Generations int                `json:"generations"`
	Reason      sim.StopReason     `json:"reason"`
	CycleStart  int                `json:"cycle_start,omitempty"`
	Period      int                `json:"period,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes a run under a fresh directory. metadata.json is written
// last, so a run that List can see is complete. On failure the directory
// is removed.
func (s *Store) Save(pattern string, seed int64, result *sim.Result) (id string, err error) {
	now := time.Now()
	runID, runDir, err := s.allocate(pattern, now)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	if err := writePopulation(filepath.Join(runDir, populationFile), result.Populations); err != nil {
		return "", err
	}
	if err := writeSnapshot(filepath.Join(runDir, snapshotFile), result); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	meta := RunMetadata{
		ID:          runID,
		Pattern:     pattern,
		Timestamp:   now,
		Seed:        seed,
		Width:       result.Width,
		Height:      result.Height,
		Generations: result.Generations,
		Reason:      result.Reason,
		CycleStart:  result.CycleStart,
		Period:      result.Period,
		Metrics:     result.Metrics,
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	logging.Logger().Info("run saved", zap.String("id", runID), zap.String("dir", runDir))
	return runID, nil
}

// allocate creates a fresh run directory, adding a suffix if two runs of
// the same pattern land on the same second.
func (s *Store) allocate(pattern string, now time.Time) (string, string, error) {
	if err := s.Init(); err != nil {
		return "", "", err
	}
	base := fmt.Sprintf("%s_%d", slug(pattern), now.Unix())
	runID := base
	for i := 1; ; i++ {
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", err
		}
		runID = fmt.Sprintf("%s_%d", base, i)
	}
}

// slug maps a pattern label onto a single path element.
func slug(name string) string {
	b := []byte(name)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			b[i] = '_'
		}
	}
	if len(b) == 0 {
		return "run"
	}
	return string(b)
}

func writeSnapshot(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := patterns.EncodeRLE(f, result.Width, result.Height, result.Final); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePopulation(path string, pops []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Write([]string{"generation", "population"})
	for gen, p := range pops {
		w.Write([]string{strconv.Itoa(gen), strconv.Itoa(p)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns every readable run, oldest first.
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
			logging.Logger().Debug("skipping run", zap.String("dir", entry.Name()), zap.Error(err))
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

// LoadPopulation returns the population of every recorded generation.
func (s *Store) LoadPopulation(runID string) ([]int, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, populationFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	pops := make([]int, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < 2 {
			continue
		}
		p, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("run %s line %d: %w", runID, i+1, err)
		}
		pops = append(pops, p)
	}

	return pops, nil
}

// LoadSnapshot returns the final generation of a run as a pattern.
func (s *Store) LoadSnapshot(runID string) (patterns.Pattern, error) {
	return patterns.Load(filepath.Join(s.baseDir, runID, snapshotFile))
}
