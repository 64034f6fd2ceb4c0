package config

// Presets are named binning/threshold profiles for common uses: the
// default 16-sector compass rose, a fine 24-sector rose for large
// surveys, and a coarse 8-sector rose for sparse ones. Sector counts
// must divide 360 evenly.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"fine": {
		Columns:  ColumnConfig{Aspect: "aspect", Species: []string{"pine", "fir"}},
		Labels:   []string{"pine", "fir"},
		Alpha:    DefaultAlpha,
		RoseBins: 24,
		SVGSize:  640,
		DataDir:  DefaultDataDir,
	},
	"coarse": {
		Columns:  ColumnConfig{Aspect: "aspect", Species: []string{"pine", "fir"}},
		Labels:   []string{"pine", "fir"},
		Alpha:    DefaultAlpha,
		RoseBins: 8,
		SVGSize:  360,
		DataDir:  DefaultDataDir,
	},
	"strict": {
		Columns:  ColumnConfig{Aspect: "aspect", Species: []string{"pine", "fir"}},
		Labels:   []string{"pine", "fir"},
		Alpha:    0.01,
		RoseBins: DefaultRoseBins,
		SVGSize:  DefaultSVGSize,
		DataDir:  DefaultDataDir,
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.Columns.Species = append([]string(nil), p.Columns.Species...)
	cp.Labels = append([]string(nil), p.Labels...)
	return &cp
}

// ListPresets returns the preset names in no particular order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
