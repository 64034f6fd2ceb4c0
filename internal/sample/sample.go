package sample

import (
	"errors"
	"fmt"

	"github.com/smithberg/aspectlab/internal/survey"
)

// ErrEmptySample indicates a species had no observations after the
// validity filter; the comparison cannot run.
var ErrEmptySample = errors.New("sample: species has no observations after filtering")

// Sample is one species' directional observations: each surveyed tree
// contributes the aspect of the zone it stands on, in degrees. Built
// once by Expand and not mutated afterwards.
type Sample struct {
	Label   string
	Degrees []float64
}

// Len returns the number of observations.
func (s Sample) Len() int { return len(s.Degrees) }

// Expand builds a species' sample by repeating each zone's aspect once
// per counted tree, in zone order. The Watson test is permutation
// invariant, so the order carries no meaning beyond reproducibility.
func Expand(t *survey.Table, species int, label string) (Sample, error) {
	s := Sample{Label: label, Degrees: make([]float64, 0, t.Total(species))}
	for _, z := range t.Zones {
		for i := 0; i < z.Counts[species]; i++ {
			s.Degrees = append(s.Degrees, z.AspectDeg)
		}
	}
	if len(s.Degrees) == 0 {
		return Sample{}, fmt.Errorf("%w: %s", ErrEmptySample, label)
	}
	return s, nil
}

// ExpandPair expands both species of a survey table, failing if either
// sample comes out empty.
func ExpandPair(t *survey.Table, labels [2]string) ([2]Sample, error) {
	var out [2]Sample
	for i := 0; i < 2; i++ {
		s, err := Expand(t, i, labels[i])
		if err != nil {
			return out, err
		}
		out[i] = s
	}
	return out, nil
}
