// Package store persists comparison runs under a data directory so
// the plotting and export commands can revisit them.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/smithberg/aspectlab/internal/circstat"
	"github.com/smithberg/aspectlab/internal/compare"
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

// SpeciesSummary echoes one species' descriptive statistics into the
// run metadata.
type SpeciesSummary struct {
	Label     string  `json:"label"`
	N         int     `json:"n"`
	MeanDeg   float64 `json:"mean_deg"`
	Resultant float64 `json:"resultant"`
	Variance  float64 `json:"variance"`
}

// RunMetadata is the persisted record of one comparison.
type RunMetadata struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Input     string            `json:"input"`
	Alpha     float64           `json:"alpha"`
	RoseBins  int               `json:"rose_bins"`
	Zones     int               `json:"zones"`
	Dropped   int               `json:"dropped_rows"`
	Statistic *float64          `json:"statistic,omitempty"` // nil when unextractable
	PValue    *float64          `json:"p_value,omitempty"`
	Species   [2]SpeciesSummary `json:"species"`
}

// Save writes metadata.json and samples.csv for a run and returns the
// run id. NaN statistic or p-value persist as absent fields, matching
// the reporter's unable-to-extract handling. Run ids take a numeric
// suffix when a run with the same label pair lands in the same
// second, so earlier runs are never overwritten.
func (s *Store) Save(out *compare.Outcome) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	base := fmt.Sprintf("%s-%s_%d", out.Samples[0].Label, out.Samples[1].Label, time.Now().Unix())
	runID := base
	for n := 2; ; n++ {
		err := os.Mkdir(filepath.Join(s.baseDir, runID), 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", err
		}
		runID = fmt.Sprintf("%s-%d", base, n)
	}
	runDir := filepath.Join(s.baseDir, runID)

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Input:     out.Config.Input,
		Alpha:     out.Config.Alpha,
		RoseBins:  out.Config.RoseBins,
		Zones:     len(out.Table.Zones),
		Dropped:   out.Table.Dropped,
	}
	if out.Test.Ok() {
		stat, p := out.Test.Statistic, out.Test.PValue
		meta.Statistic = &stat
		meta.PValue = &p
	}
	for i, sm := range out.Samples {
		st := out.Stats[i]
		meta.Species[i] = SpeciesSummary{
			Label:     sm.Label,
			N:         st.N,
			MeanDeg:   st.MeanDeg,
			Resultant: st.Resultant,
			Variance:  st.Variance,
		}
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := s.writeSamples(filepath.Join(runDir, "samples.csv"), out); err != nil {
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

func (s *Store) writeSamples(path string, out *compare.Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"species", "aspect_deg"}); err != nil {
		return err
	}
	for _, sm := range out.Samples {
		for _, d := range sm.Degrees {
			row := []string{sm.Label, strconv.FormatFloat(d, 'f', 4, 64)}
			if err := w.Write(row); err != nil {
				return err
			}
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
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSamples reads a run's samples.csv back as label → bearings.
// Labels keep their first-seen order in the returned slice of keys.
func (s *Store) LoadSamples(runID string) (map[string][]float64, []string, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	samples := make(map[string][]float64)
	order := make([]string, 0, 2)
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 2 {
			continue
		}
		d, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			continue
		}
		if _, ok := samples[rec[0]]; !ok {
			order = append(order, rec[0])
		}
		samples[rec[0]] = append(samples[rec[0]], circstat.NormalizeDeg(d))
	}
	return samples, order, nil
}
