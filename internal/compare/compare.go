// Package compare runs the full two-species aspect comparison:
// load survey table, expand species samples, compute descriptive
// circular statistics, and apply the two-sample Watson U² test.
package compare

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/smithberg/aspectlab/internal/circstat"
	"github.com/smithberg/aspectlab/internal/config"
	"github.com/smithberg/aspectlab/internal/sample"
	"github.com/smithberg/aspectlab/internal/survey"
)

// Outcome is everything one run produces: the filtered table, the two
// expanded samples, their descriptive statistics, and the test result.
type Outcome struct {
	Config  *config.Config
	Table   *survey.Table
	Samples [2]sample.Sample
	Stats   [2]circstat.Descriptive
	Test    circstat.Result
}

// Run executes the pipeline for the configured input table. It fails
// before invoking the statistical test if either species comes out of
// the filter with no observations.
func Run(cfg *config.Config, log *zap.SugaredLogger) (*Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	aspect, species := cfg.SurveyColumns()
	table, err := survey.Load(cfg.Input, survey.Columns{Aspect: aspect, Species: species})
	if err != nil {
		return nil, err
	}
	log.Debugw("survey table loaded",
		"zones", len(table.Zones),
		"dropped_rows", table.Dropped,
	)

	samples, err := sample.ExpandPair(table, cfg.SpeciesLabels())
	if err != nil {
		return nil, fmt.Errorf("cannot compare %s and %s: %w", cfg.Labels[0], cfg.Labels[1], err)
	}

	out := &Outcome{Config: cfg, Table: table, Samples: samples}
	for i, s := range samples {
		out.Stats[i] = circstat.Describe(s.Degrees)
	}

	out.Test = circstat.WatsonTwoSample(samples[0].Degrees, samples[1].Degrees)
	log.Debugw("watson two-sample test",
		"statistic", out.Test.Statistic,
		"p_value", out.Test.PValue,
		"n1", out.Test.N1,
		"n2", out.Test.N2,
	)
	return out, nil
}
