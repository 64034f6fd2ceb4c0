package store

import (
	"math"
	"testing"

	"github.com/smithberg/aspectlab/internal/circstat"
	"github.com/smithberg/aspectlab/internal/compare"
	"github.com/smithberg/aspectlab/internal/config"
	"github.com/smithberg/aspectlab/internal/sample"
	"github.com/smithberg/aspectlab/internal/survey"
)

func testOutcome() *compare.Outcome {
	cfg := config.DefaultConfig()
	cfg.Input = "zones.csv"
	out := &compare.Outcome{
		Config: cfg,
		Table:  &survey.Table{Zones: make([]survey.Zone, 2), Dropped: 0},
		Samples: [2]sample.Sample{
			{Label: "pine", Degrees: []float64{45, 45}},
			{Label: "fir", Degrees: []float64{180, 180, 180}},
		},
	}
	for i, s := range out.Samples {
		out.Stats[i] = circstat.Describe(s.Degrees)
	}
	out.Test = circstat.WatsonTwoSample(out.Samples[0].Degrees, out.Samples[1].Degrees)
	return out
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save(testOutcome())
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.ID != runID {
		t.Errorf("id mismatch: %s vs %s", meta.ID, runID)
	}
	if meta.Species[0].Label != "pine" || meta.Species[0].N != 2 {
		t.Errorf("species summary: %+v", meta.Species[0])
	}
	if meta.Statistic == nil || meta.PValue == nil {
		t.Error("expected statistic and p-value persisted")
	}
}

func TestSaveUnextractableResult(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	out := testOutcome()
	out.Test = circstat.Result{Statistic: math.NaN(), PValue: math.NaN(), N1: 2, N2: 3}

	runID, err := st.Save(out)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Statistic != nil || meta.PValue != nil {
		t.Error("non-numeric result must persist as absent fields")
	}
}

func TestLoadSamples(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save(testOutcome())
	if err != nil {
		t.Fatal(err)
	}

	samples, order, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != "pine" || order[1] != "fir" {
		t.Fatalf("unexpected species order: %v", order)
	}
	if len(samples["pine"]) != 2 || len(samples["fir"]) != 3 {
		t.Errorf("sample lengths: pine=%d fir=%d", len(samples["pine"]), len(samples["fir"]))
	}
	if samples["fir"][0] != 180 {
		t.Errorf("expected 180, got %f", samples["fir"][0])
	}
}

func TestSaveSameSecondKeepsBothRuns(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	// Back-to-back saves land in the same second; both must survive
	// under distinct ids.
	first, err := st.Save(testOutcome())
	if err != nil {
		t.Fatal(err)
	}
	second, err := st.Save(testOutcome())
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Fatalf("run ids collide: %s", first)
	}
	for _, id := range []string{first, second} {
		if _, err := st.Load(id); err != nil {
			t.Errorf("run %s not loadable: %v", id, err)
		}
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/nonexistent")

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(testOutcome()); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}
