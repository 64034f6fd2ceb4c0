package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smithberg/aspectlab/internal/compare"
	"github.com/smithberg/aspectlab/internal/config"
	"github.com/smithberg/aspectlab/internal/plot"
	"github.com/smithberg/aspectlab/internal/report"
	"github.com/smithberg/aspectlab/internal/store"
	"github.com/smithberg/aspectlab/internal/tui"
)

var (
	dataDir    string
	debug      bool
	configFile string
	preset     string
	alpha      float64
	roseBins   int
	aspectCol  string
	speciesCol []string
	labels     []string
	writeSVG   bool
	noSave     bool
	termPlots  bool
)

var log *zap.SugaredLogger

func main() {
	rootCmd := &cobra.Command{
		Use:   "aspectlab",
		Short: "circular statistics for tree species slope-aspect surveys",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var zl *zap.Logger
			var err error
			if debug {
				zl, err = zap.NewDevelopment()
			} else {
				zl, err = zap.NewProduction()
			}
			if err != nil {
				return err
			}
			log = zl.Sugar()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")

	analyzeCmd := newAnalyzeCmd()

	summaryCmd := &cobra.Command{
		Use:   "summary [table.csv]",
		Short: "descriptive circular statistics only",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSummary,
	}
	addPipelineFlags(summaryCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	roseCmd := &cobra.Command{
		Use:   "rose [run_id]",
		Short: "rose diagrams for a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSaved(plotRose),
	}

	scatterCmd := &cobra.Command{
		Use:   "scatter [run_id]",
		Short: "circular scatter plots for a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSaved(plotScatter),
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("%s: %d bins, alpha %g\n", name, p.RoseBins, p.Alpha)
			}
			return nil
		},
	}

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "interactive viewer for a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  viewRun,
	}

	rootCmd.AddCommand(analyzeCmd, summaryCmd, listCmd, roseCmd, scatterCmd,
		exportJSONCmd, exportCSVCmd, presetsCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [table.csv]",
		Short: "run the two-species Watson U² comparison",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	addPipelineFlags(cmd)
	cmd.Flags().BoolVar(&writeSVG, "svg", false, "write rose and scatter SVGs (into the run directory, or the working directory with --no-save)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")
	cmd.Flags().BoolVar(&termPlots, "plots", true, "render terminal plots")
	return cmd
}

func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "significance level")
	cmd.Flags().IntVar(&roseBins, "bins", config.DefaultRoseBins, "rose diagram sectors")
	cmd.Flags().StringVar(&aspectCol, "aspect-col", "aspect", "aspect column name")
	cmd.Flags().StringSliceVar(&speciesCol, "species-cols", []string{"pine", "fir"}, "two species count columns")
	cmd.Flags().StringSliceVar(&labels, "labels", nil, "display labels (default: column names)")
}

// buildConfig resolves preset, config file, and flags, in that
// precedence order (flags win).
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("alpha") {
		cfg.Alpha = alpha
	}
	if cmd.Flags().Changed("bins") {
		cfg.RoseBins = roseBins
	}
	if cmd.Flags().Changed("aspect-col") {
		cfg.Columns.Aspect = aspectCol
	}
	if cmd.Flags().Changed("species-cols") {
		cfg.Columns.Species = speciesCol
	}
	if cmd.Flags().Changed("labels") {
		cfg.Labels = labels
	} else if cmd.Flags().Changed("species-cols") {
		cfg.Labels = speciesCol
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if cfg.Input == "" {
		return nil, fmt.Errorf("no input table: pass a CSV path or set input in the config")
	}
	cfg.DataDir = dataDir

	return cfg, cfg.Validate()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	out, err := compare.Run(cfg, log)
	if err != nil {
		return err
	}

	report.Write(os.Stdout, out, log)

	if termPlots {
		renderTermPlots(os.Stdout, out)
	}

	if noSave {
		// no run directory to target, so SVGs land in the
		// working directory
		if writeSVG {
			return writeSVGPlots(cfg, out, ".")
		}
		return nil
	}
	st := store.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(out)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)

	if writeSVG {
		if err := writeSVGPlots(cfg, out, filepath.Join(cfg.DataDir, runID)); err != nil {
			return err
		}
	}
	return nil
}

func renderTermPlots(w io.Writer, out *compare.Outcome) {
	for _, s := range out.Samples {
		fmt.Fprintf(w, "\n%s — rose (%d sectors)\n", s.Label, out.Config.RoseBins)
		fmt.Fprint(w, plot.Rose(s.Degrees, out.Config.RoseBins, 48))
		fmt.Fprintf(w, "\n%s — scatter with mean direction\n", s.Label)
		fmt.Fprint(w, plot.Scatter(s.Degrees, 48))
		fmt.Fprintln(w)
		fmt.Fprint(w, plot.BinHistogram(s.Degrees, out.Config.RoseBins, 8))
	}
}

var svgColors = [2]string{"#2d6a4f", "#b5651d"}

func writeSVGPlots(cfg *config.Config, out *compare.Outcome, dir string) error {
	for i, s := range out.Samples {
		rose := plot.RoseSVG(s.Degrees, cfg.RoseBins, cfg.SVGSize, svgColors[i],
			fmt.Sprintf("%s aspect rose", s.Label))
		scatter := plot.ScatterSVG(s.Degrees, cfg.SVGSize, svgColors[i],
			fmt.Sprintf("%s aspect scatter", s.Label))

		if err := os.WriteFile(filepath.Join(dir, s.Label+"_rose.svg"), []byte(rose), 0644); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, s.Label+"_scatter.svg"), []byte(scatter), 0644); err != nil {
			return err
		}
	}
	log.Debugw("svg plots written", "dir", dir)
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	out, err := compare.Run(cfg, log)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPECIES\tN\tMEAN DIR\tRESULTANT\tCIRC VAR")
	for i, s := range out.Samples {
		st := out.Stats[i]
		fmt.Fprintf(w, "%s\t%d\t%.1f°\t%.3f\t%.3f\n", s.Label, st.N, st.MeanDeg, st.Resultant, st.Variance)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSPECIES\tN1\tN2\tU²\tP")
	for _, run := range runs {
		stat, p := "-", "-"
		if run.Statistic != nil {
			stat = fmt.Sprintf("%.4f", *run.Statistic)
		}
		if run.PValue != nil {
			p = fmt.Sprintf("%.4f", *run.PValue)
		}
		fmt.Fprintf(w, "%s\t%s\t%s/%s\t%d\t%d\t%s\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Species[0].Label, run.Species[1].Label,
			run.Species[0].N, run.Species[1].N,
			stat, p,
		)
	}
	return w.Flush()
}

func plotSaved(render func(label string, degrees []float64, meta *store.RunMetadata)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		st := store.New(dataDir)
		meta, err := st.Load(args[0])
		if err != nil {
			return err
		}
		samples, order, err := st.LoadSamples(args[0])
		if err != nil {
			return err
		}
		for _, label := range order {
			render(label, samples[label], meta)
		}
		return nil
	}
}

func plotRose(label string, degrees []float64, meta *store.RunMetadata) {
	fmt.Printf("%s — rose (%d sectors)\n", label, meta.RoseBins)
	fmt.Print(plot.Rose(degrees, meta.RoseBins, 48))
	fmt.Println()
}

func plotScatter(label string, degrees []float64, meta *store.RunMetadata) {
	fmt.Printf("%s — scatter with mean direction\n", label)
	fmt.Print(plot.Scatter(degrees, 48))
	fmt.Println()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	f, err := os.Open(filepath.Join(dataDir, args[0], "samples.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(os.Stdout, f)
	return err
}

func viewRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, order, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewViewer(order, samples, meta.RoseBins))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
