// Package report formats comparison outcomes for the terminal.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/smithberg/aspectlab/internal/compare"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	verdictSig = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	verdictNot = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Interpret renders the decision rule as a sentence: reject equal
// distributions when p < alpha.
func Interpret(p, alpha float64) string {
	if p < alpha {
		return fmt.Sprintf("the aspect distributions are significantly different (p = %.4f < %.2f)", p, alpha)
	}
	return fmt.Sprintf("no significant difference between the aspect distributions (p = %.4f >= %.2f)", p, alpha)
}

// Write prints the test result, interpretation, and per-species
// descriptive statistics. A non-numeric statistic or p-value is
// reported as unextractable, with the raw result dumped for
// diagnosis, rather than treated as an error.
func Write(w io.Writer, out *compare.Outcome, log *zap.SugaredLogger) {
	fmt.Fprintln(w, titleStyle.Render("Watson two-sample U² test"))
	fmt.Fprintf(w, "species: %s (n=%d) vs %s (n=%d)\n",
		out.Samples[0].Label, out.Samples[0].Len(),
		out.Samples[1].Label, out.Samples[1].Len())
	fmt.Fprintf(w, "zones: %d (dropped rows: %d)\n\n", len(out.Table.Zones), out.Table.Dropped)

	if !out.Test.Ok() {
		log.Warnw("unable to extract statistic or p-value from test result")
		fmt.Fprintln(w, "unable to extract statistic or p-value; raw result:")
		fmt.Fprintf(w, "  %+v\n\n", out.Test)
	} else {
		fmt.Fprintf(w, "U² = %.4f\n", out.Test.Statistic)
		fmt.Fprintf(w, "p  = %.4f\n", out.Test.PValue)

		verdict := Interpret(out.Test.PValue, out.Config.Alpha)
		if out.Test.PValue < out.Config.Alpha {
			fmt.Fprintln(w, verdictSig.Render(verdict))
		} else {
			fmt.Fprintln(w, verdictNot.Render(verdict))
		}
		fmt.Fprintln(w)
	}

	writeDescriptives(w, out)
}

func writeDescriptives(w io.Writer, out *compare.Outcome) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SPECIES\tN\tMEAN DIR\tRESULTANT\tCIRC VAR")
	for i, s := range out.Samples {
		st := out.Stats[i]
		fmt.Fprintf(tw, "%s\t%d\t%.1f°\t%.3f\t%.3f\n",
			s.Label, st.N, st.MeanDeg, st.Resultant, st.Variance)
	}
	tw.Flush()
}
