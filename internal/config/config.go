package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlpha    = 0.05
	DefaultRoseBins = 16
	DefaultSVGSize  = 480
	DefaultDataDir  = ".aspectlab"
)

// Config describes one comparison run: where the survey table lives,
// which columns hold the data, and how results are binned and drawn.
type Config struct {
	Input    string       `yaml:"input"`
	Columns  ColumnConfig `yaml:"columns"`
	Labels   []string     `yaml:"labels"`
	Alpha    float64      `yaml:"alpha"`
	RoseBins int          `yaml:"rose_bins"`
	SVGSize  int          `yaml:"svg_size"`
	DataDir  string       `yaml:"data_dir"`
}

// ColumnConfig names the survey table columns holding the aspect and
// the two species counts.
type ColumnConfig struct {
	Aspect  string   `yaml:"aspect"`
	Species []string `yaml:"species"`
}

func DefaultConfig() *Config {
	return &Config{
		Columns: ColumnConfig{
			Aspect:  "aspect",
			Species: []string{"pine", "fir"},
		},
		Labels:   []string{"pine", "fir"},
		Alpha:    DefaultAlpha,
		RoseBins: DefaultRoseBins,
		SVGSize:  DefaultSVGSize,
		DataDir:  DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if len(c.Columns.Species) != 2 {
		return fmt.Errorf("config: expected 2 species columns, got %d", len(c.Columns.Species))
	}
	if len(c.Labels) != 2 {
		return fmt.Errorf("config: expected 2 species labels, got %d", len(c.Labels))
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf("config: alpha must be in (0,1), got %g", c.Alpha)
	}
	if c.RoseBins < 4 || 360%c.RoseBins != 0 {
		return fmt.Errorf("config: rose_bins must be >= 4 and divide 360, got %d", c.RoseBins)
	}
	if c.SVGSize < 64 {
		return fmt.Errorf("config: svg_size too small: %d", c.SVGSize)
	}
	return nil
}

// SurveyColumns converts the yaml column list into the loader's
// fixed-size form; call only after Validate.
func (c *Config) SurveyColumns() (aspect string, species [2]string) {
	return c.Columns.Aspect, [2]string{c.Columns.Species[0], c.Columns.Species[1]}
}

// SpeciesLabels returns the two display labels.
func (c *Config) SpeciesLabels() [2]string {
	return [2]string{c.Labels[0], c.Labels[1]}
}
