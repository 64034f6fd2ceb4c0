package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Domain errors for survey table loading.
var (
	// ErrMissingColumn indicates a required column header was not found.
	ErrMissingColumn = errors.New("survey: required column not found in header")

	// ErrEmptyTable indicates the file contained a header but no data rows.
	ErrEmptyTable = errors.New("survey: no data rows in table")
)

// Zone is one surveyed spatial unit: the compass aspect its slope faces
// and how many trees of each species were counted on it.
type Zone struct {
	AspectDeg float64
	Counts    [2]int // indexed by species position, see Columns
}

// Columns names the three table columns the loader resolves. Species
// holds exactly two column names, one per compared species.
type Columns struct {
	Aspect  string
	Species [2]string
}

// Table is the filtered survey dataset plus bookkeeping about what the
// filter dropped. Zones is immutable after Load returns.
type Table struct {
	Zones   []Zone
	Dropped int // rows removed by the validity filter
}

// Load reads a headered CSV survey table and applies the validity
// filter: a row survives only when the aspect parses and both species
// counts parse as non-negative integers. Invalid rows are dropped
// silently; only the aggregate count is kept.
func Load(path string, cols Columns) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("survey: open table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("survey: read table: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	idx, err := resolveColumns(records[0], cols)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, ErrEmptyTable
	}

	t := &Table{Zones: make([]Zone, 0, len(records)-1)}
	for _, rec := range records[1:] {
		z, ok := parseZone(rec, idx)
		if !ok {
			t.Dropped++
			continue
		}
		t.Zones = append(t.Zones, z)
	}
	return t, nil
}

// Total sums one species' counts over all valid zones.
func (t *Table) Total(species int) int {
	sum := 0
	for _, z := range t.Zones {
		sum += z.Counts[species]
	}
	return sum
}

type colIndex struct {
	aspect  int
	species [2]int
}

func resolveColumns(header []string, cols Columns) (colIndex, error) {
	idx := colIndex{aspect: -1, species: [2]int{-1, -1}}
	for i, name := range header {
		name = strings.TrimSpace(name)
		switch {
		case strings.EqualFold(name, cols.Aspect):
			idx.aspect = i
		case strings.EqualFold(name, cols.Species[0]):
			idx.species[0] = i
		case strings.EqualFold(name, cols.Species[1]):
			idx.species[1] = i
		}
	}
	if idx.aspect < 0 {
		return idx, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Aspect)
	}
	for s := 0; s < 2; s++ {
		if idx.species[s] < 0 {
			return idx, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Species[s])
		}
	}
	return idx, nil
}

func parseZone(rec []string, idx colIndex) (Zone, bool) {
	var z Zone
	max := idx.aspect
	for _, i := range idx.species {
		if i > max {
			max = i
		}
	}
	if len(rec) <= max {
		return z, false
	}

	aspect, err := strconv.ParseFloat(strings.TrimSpace(rec[idx.aspect]), 64)
	if err != nil {
		return z, false
	}
	z.AspectDeg = aspect

	for s := 0; s < 2; s++ {
		field := strings.TrimSpace(rec[idx.species[s]])
		if field == "" {
			return z, false
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return z, false
		}
		z.Counts[s] = n
	}
	return z, true
}
