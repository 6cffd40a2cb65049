package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m-wiedmann/rtdlab/internal/analysis"
	"github.com/m-wiedmann/rtdlab/internal/config"
	"github.com/m-wiedmann/rtdlab/internal/dataio"
	"github.com/m-wiedmann/rtdlab/internal/plot"
	"github.com/m-wiedmann/rtdlab/internal/reactor"
	"github.com/m-wiedmann/rtdlab/internal/report"
	"github.com/m-wiedmann/rtdlab/internal/storage"
	"github.com/m-wiedmann/rtdlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	// Input parsing
	separator string
	skipRows  int
	headerRow int
	timeCol   int
	signalCol int

	// Kinetics and reactor
	k0       float64
	ea       float64
	temp     float64
	flowRate float64
	feedConc float64

	// convert
	tauList  []float64
	concList []float64
	steps    int

	// calibrate
	ca0     float64
	caInf   float64
	w0      float64
	wInf    float64
	condCol int

	// plot
	svgPath  string
	plotGrid bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rtdlab",
		Short: "residence-time-distribution analysis for flow reactors",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [csv-file]",
		Short: "run the tracer-response pipeline on a measurement file",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	analyzeCmd.Flags().StringVar(&separator, "sep", config.DefaultSeparator, "column separator")
	analyzeCmd.Flags().IntVar(&skipRows, "skip-rows", 0, "leading rows to skip")
	analyzeCmd.Flags().IntVar(&headerRow, "header-row", -1, "header row index, -1 for none")
	analyzeCmd.Flags().IntVar(&timeCol, "time-col", 0, "time column index")
	analyzeCmd.Flags().IntVar(&signalCol, "signal-col", 1, "signal column index")
	analyzeCmd.Flags().Float64Var(&k0, "k0", config.DefaultK0, "pre-exponential factor")
	analyzeCmd.Flags().Float64Var(&ea, "ea", config.DefaultEa, "activation energy (J/mol)")
	analyzeCmd.Flags().Float64Var(&temp, "temp", config.DefaultTemperature, "absolute temperature (K)")
	analyzeCmd.Flags().Float64Var(&flowRate, "flow", config.DefaultFlowRate, "volumetric flow rate")
	analyzeCmd.Flags().Float64Var(&feedConc, "feed", config.DefaultFeedConc, "feed concentration")

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "chained-CSTR conversion series over residence times",
		RunE:  runConvert,
	}
	convertCmd.Flags().Float64SliceVar(&tauList, "tau", nil, "residence times (minutes)")
	convertCmd.Flags().Float64SliceVar(&concList, "c0", nil, "initial concentrations")
	convertCmd.Flags().IntVar(&steps, "steps", 0, "number of steps (defaults to len(tau))")
	convertCmd.Flags().Float64Var(&k0, "k0", config.DefaultK0, "pre-exponential factor")
	convertCmd.Flags().Float64Var(&ea, "ea", config.DefaultEa, "activation energy (J/mol)")
	convertCmd.Flags().Float64Var(&temp, "temp", config.DefaultTemperature, "absolute temperature (K)")

	calibrateCmd := &cobra.Command{
		Use:   "calibrate [csv-file]",
		Short: "map a conductivity trace onto concentrations",
		Args:  cobra.ExactArgs(1),
		RunE:  runCalibrate,
	}
	calibrateCmd.Flags().StringVar(&separator, "sep", config.DefaultSeparator, "column separator")
	calibrateCmd.Flags().IntVar(&skipRows, "skip-rows", 0, "leading rows to skip")
	calibrateCmd.Flags().IntVar(&headerRow, "header-row", -1, "header row index, -1 for none")
	calibrateCmd.Flags().IntVar(&timeCol, "time-col", 0, "time column index")
	calibrateCmd.Flags().IntVar(&condCol, "cond-col", 1, "conductivity column index")
	calibrateCmd.Flags().Float64Var(&ca0, "ca0", 1.0, "concentration at start conductivity")
	calibrateCmd.Flags().Float64Var(&caInf, "ca-inf", 0.0, "concentration at end conductivity")
	calibrateCmd.Flags().Float64Var(&w0, "w0", 0.0, "start conductivity")
	calibrateCmd.Flags().Float64Var(&wInf, "w-inf", 0.0, "end conductivity")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  runList,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write the chart to this SVG file")
	plotCmd.Flags().BoolVar(&plotGrid, "grid", true, "draw grid lines in the SVG")

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "browse a stored run interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a stored run's series to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a stored run as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(analyzeCmd, convertCmd, calibrateCmd, listCmd, plotCmd, viewCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildConfig(cmd *cobra.Command, path string) (*config.Config, error) {
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

	// CLI flags override preset and config file.
	cfg.Input.Path = path
	if cmd.Flags().Changed("sep") {
		cfg.Input.Separator = separator
	}
	if cmd.Flags().Changed("skip-rows") {
		cfg.Input.SkipRows = skipRows
	}
	if cmd.Flags().Changed("header-row") {
		cfg.Input.HeaderRow = headerRow
	}
	if cmd.Flags().Changed("time-col") {
		cfg.Input.TimeColumn = timeCol
	}
	if cmd.Flags().Changed("signal-col") {
		cfg.Input.SignalColumn = signalCol
	}
	if cmd.Flags().Changed("k0") {
		cfg.Kinetics.K0 = k0
	}
	if cmd.Flags().Changed("ea") {
		cfg.Kinetics.Ea = ea
	}
	if cmd.Flags().Changed("temp") {
		cfg.Kinetics.Temperature = temp
	}
	if cmd.Flags().Changed("flow") {
		cfg.Reactor.FlowRate = flowRate
	}
	if cmd.Flags().Changed("feed") {
		cfg.Reactor.FeedConcentration = feedConc
	}
	return cfg, nil
}

func loadColumns(cfg *config.Config) ([]dataio.Column, error) {
	sep := ';'
	if cfg.Input.Separator != "" {
		sep = rune(cfg.Input.Separator[0])
	}
	return dataio.ReadFile(cfg.Input.Path, dataio.Options{
		Separator: sep,
		SkipRows:  cfg.Input.SkipRows,
		HeaderRow: cfg.Input.HeaderRow,
	})
}

func columnFloats(cols []dataio.Column, idx int) ([]float64, error) {
	if idx < 0 || idx >= len(cols) {
		return nil, fmt.Errorf("column index %d out of range (file has %d columns)", idx, len(cols))
	}
	return cols[idx].Floats()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	cols, err := loadColumns(cfg)
	if err != nil {
		return err
	}
	times, err := columnFloats(cols, cfg.Input.TimeColumn)
	if err != nil {
		return err
	}
	signal, err := columnFloats(cols, cfg.Input.SignalColumn)
	if err != nil {
		return err
	}

	result, err := analysis.Run(times, signal, analysis.Params{
		FlowRate:          cfg.Reactor.FlowRate,
		FeedConcentration: cfg.Reactor.FeedConcentration,
		Kinetics: reactor.Arrhenius{
			K0:          cfg.Kinetics.K0,
			Ea:          cfg.Kinetics.Ea,
			Temperature: cfg.Kinetics.Temperature,
		},
	})
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(args[0], result)
	if err != nil {
		return err
	}

	entries := []report.Entry{
		{Label: "mean residence time", Value: result.Moments.Mean},
		{Label: "variance", Value: result.Moments.Variance},
		{Label: "standard deviation", Value: result.Moments.Sigma},
		{Label: "dimensionless variance", Value: result.Moments.DimlessVariance},
		{Label: "dispersion number D/uL", Value: result.Dispersion},
		{Label: "effective volume", Value: result.EffectiveVolume},
		{Label: "rate constant", Value: result.RateConstant},
		{Label: "conversion estimate", Value: result.Conversion},
	}
	if err := report.Print(os.Stdout, fmt.Sprintf("analysis of %s", args[0]), entries, nil, nil); err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(tauList) == 0 {
		return fmt.Errorf("--tau is required")
	}
	if len(concList) == 0 {
		return fmt.Errorf("--c0 is required")
	}
	n := steps
	if n == 0 {
		n = len(tauList)
	}

	k, err := reactor.Arrhenius{K0: k0, Ea: ea, Temperature: temp}.RateConstant()
	if err != nil {
		return err
	}

	f, err := reactor.ConversionSeries(tauList, k, concList, n)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tTAU\tCONVERSION")
	fmt.Fprintf(w, "0\t-\t%.6f\n", f[0])
	for i := 1; i < len(f); i++ {
		fmt.Fprintf(w, "%d\t%.2f\t%.6f\n", i, tauList[i-1], f[i])
	}
	return w.Flush()
}

func runCalibrate(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.Input.Path = args[0]
	cfg.Input.Separator = separator
	cfg.Input.SkipRows = skipRows
	cfg.Input.HeaderRow = headerRow

	cols, err := loadColumns(cfg)
	if err != nil {
		return err
	}
	times, err := columnFloats(cols, timeCol)
	if err != nil {
		return err
	}
	conductivity, err := columnFloats(cols, condCol)
	if err != nil {
		return err
	}

	conc, err := reactor.ConcentrationFromConductivity(ca0, caInf, w0, wInf, conductivity)
	if err != nil {
		return err
	}

	return report.Print(os.Stdout, fmt.Sprintf("calibration of %s", args[0]), nil, times, conc)
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tTIME\tSAMPLES\tMEAN_RT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\n",
			run.ID,
			run.Source,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.Metrics["mean_residence_time"],
		)
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, signal, norm, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	if _, err := plot.Render(times, signal, plot.Options{
		Title:  "raw tracer signal",
		XLabel: "t",
		Label:  "signal",
		Show:   true,
	}); err != nil {
		return err
	}
	fmt.Println()

	_, err = plot.Render(times, norm, plot.Options{
		Title:    "normalized response E(t)",
		XLabel:   "t",
		Label:    "E(t)",
		Grid:     plotGrid,
		Marker:   "o",
		FilePath: svgPath,
		Show:     true,
	})
	return err
}

func runView(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	_, signal, norm, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	return viz.Run(args[0], []viz.Series{
		{Name: "signal", Values: signal},
		{Name: "E(t)", Values: norm},
	})
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, signal, norm, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return dataio.WriteTable(os.Stdout, ';', []string{"time", "signal", "e_norm"}, times, signal, norm)
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, signal, norm, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, times, signal, norm)
}
