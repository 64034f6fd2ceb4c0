// Package tui is a read-only terminal viewer for saved comparison
// runs: it cycles between each species' rose diagram and circular
// scatter.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smithberg/aspectlab/internal/circstat"
	"github.com/smithberg/aspectlab/internal/plot"
)

const plotSize = 48

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type plotKind int

const (
	kindRose plotKind = iota
	kindScatter
)

// Viewer is the bubbletea model: which species and plot kind are
// currently shown over a fixed set of samples.
type Viewer struct {
	labels   []string
	samples  map[string][]float64
	bins     int
	species  int
	kind     plotKind
	quitting bool
}

func NewViewer(labels []string, samples map[string][]float64, bins int) Viewer {
	return Viewer{labels: labels, samples: samples, bins: bins}
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		v.quitting = true
		return v, tea.Quit
	case "tab":
		v.species = (v.species + 1) % len(v.labels)
	case "r":
		v.kind = kindRose
	case "s":
		v.kind = kindScatter
	}
	return v, nil
}

func (v Viewer) View() string {
	if v.quitting {
		return ""
	}

	label := v.labels[v.species]
	degrees := v.samples[label]

	var body, kindName string
	switch v.kind {
	case kindScatter:
		body = plot.Scatter(degrees, plotSize)
		kindName = "scatter"
	default:
		body = plot.Rose(degrees, v.bins, plotSize)
		kindName = "rose"
	}

	d := circstat.Describe(degrees)
	stats := fmt.Sprintf("n=%d  mean=%.1f°  resultant=%.3f", d.N, d.MeanDeg, d.Resultant)

	return headerStyle.Render(fmt.Sprintf("%s — %s", label, kindName)) + "\n" +
		body +
		statStyle.Render(stats) + "\n" +
		helpStyle.Render("tab: species  r: rose  s: scatter  q: quit")
}
