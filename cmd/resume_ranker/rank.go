package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/logger"
	"github.com/jonathan/resume-ranker/internal/metrics"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/pipeline"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/schemas"
	"github.com/jonathan/resume-ranker/internal/types"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score and rank every resume in a directory",
	Long: `Parses the job description, scores each supported file in the resumes directory against it
and prints the ranked list.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	SilenceUsage: true,
	RunE:         runRankCmd,
}

var (
	rankConfigPath string
	rankJob        string
	rankDir        string
	rankVocabulary string
	rankFormat     string
	rankQuiet      bool
	rankNoSelf     bool
	rankWorkers    int
	rankTop        int
	rankMetrics    string
)

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, rankCmd} {
		addRankFlags(cmd)
	}
	rootCmd.AddCommand(rankCmd)
}

func addRankFlags(cmd *cobra.Command) {
	// Config file flag (processed first)
	cmd.Flags().StringVarP(&rankConfigPath, "config", "c", "", "Path to config.json file (values can be overridden by other flags)")

	cmd.Flags().StringVarP(&rankJob, "job", "j", config.DefaultJob, "Path to the job description")
	cmd.Flags().StringVarP(&rankDir, "dir", "d", config.DefaultResumesDir, "Directory of resumes to rank")
	cmd.Flags().StringVar(&rankVocabulary, "vocabulary", "", "YAML skill vocabulary (defaults to the built-in list)")
	cmd.Flags().StringVar(&rankFormat, "format", config.DefaultFormat, "Output format: text or json")
	cmd.Flags().BoolVarP(&rankQuiet, "quiet", "q", false, "Print only the ranked list, without per-document diagnostic blocks")
	cmd.Flags().BoolVar(&rankNoSelf, "no-self-check", false, "Skip scoring the job description against itself")
	cmd.Flags().IntVar(&rankWorkers, "workers", 1, "Number of resumes scored in parallel")
	cmd.Flags().IntVar(&rankTop, "top", 0, "Show only the N best candidates (0 shows all)")
	cmd.Flags().StringVar(&rankMetrics, "metrics-file", "", "Write Prometheus run metrics to this file (textfile collector format)")
}

func runRankCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveRankConfig(cmd)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging())

	return executeRank(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// resolveRankConfig layers flags over the config file over defaults.
func resolveRankConfig(cmd *cobra.Command) (config.Config, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if rankConfigPath != "" {
		loadedCfg, err := config.LoadConfig(rankConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (only flags that were explicitly set)
	flags := cmd.Flags()
	if flags.Changed("job") {
		cfg.Job = rankJob
	}
	if flags.Changed("dir") {
		cfg.ResumesDir = rankDir
	}
	if flags.Changed("vocabulary") {
		cfg.Vocabulary = rankVocabulary
	}
	if flags.Changed("format") {
		cfg.Format = rankFormat
	}
	if flags.Changed("quiet") {
		cfg.Quiet = rankQuiet
	}
	if flags.Changed("no-self-check") {
		cfg.NoSelfCheck = rankNoSelf
	}
	if flags.Changed("workers") {
		cfg.Workers = rankWorkers
	}
	if flags.Changed("top") {
		cfg.Top = rankTop
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = rankMetrics
	}

	// Step 3: Apply defaults for unset values, then the environment
	cfg = cfg.MergeWithDefaults(config.Defaults())
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// executeRank runs the batch and writes the report to out. In json mode the
// diagnostics go to errOut so stdout stays machine-readable.
func executeRank(ctx context.Context, cfg config.Config, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	opts := pipeline.RunOptions{
		JobPath:        cfg.Job,
		CandidatesDir:  cfg.ResumesDir,
		VocabularyPath: cfg.Vocabulary,
		Workers:        cfg.Workers,
		SelfCheck:      cfg.SelfCheck(),
	}
	diagOut := out
	if cfg.Format == "json" {
		diagOut = errOut
	}
	if cfg.Diagnostics() {
		opts.OnProgress = diagnosticsProgress(observability.NewPrinter(diagOut))
	}

	started := time.Now()
	report, err := pipeline.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	if cfg.MetricsFile != "" {
		m := metrics.New()
		m.ObserveReport(report, time.Since(started))
		if err := m.WriteToTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	if cfg.Format == "json" {
		return writeJSONReport(report, cfg.Top, out, errOut)
	}

	printer := observability.NewPrinter(out)
	if cfg.Diagnostics() {
		printer.PrintSkipped(report.Skipped)
	} else if report.SelfScore != nil {
		printer.PrintSelfCheck(report.Reference, *report.SelfScore)
	}
	printer.PrintRanking(report, cfg.Top)
	return nil
}

// diagnosticsProgress prints the job description, the self-match line and one
// block per scored candidate as the run progresses.
func diagnosticsProgress(printer *observability.Printer) pipeline.ProgressCallback {
	var reference string
	return func(event pipeline.ProgressEvent) {
		switch event.Step {
		case pipeline.StepReference:
			if doc, ok := event.Content.(*types.Document); ok {
				reference = doc.SourceName
				printer.PrintDocument(doc)
			}
		case pipeline.StepSelfCheck:
			if score, ok := event.Content.(float64); ok {
				printer.PrintSelfCheck(reference, score)
			}
		case pipeline.StepCandidate:
			if result, ok := event.Content.(ranking.Result); ok {
				printer.PrintDocument(result.Candidate)
				printer.PrintBreakdown(result.Candidate.SourceName, result.Breakdown)
			}
		}
	}
}

func writeJSONReport(report *types.RankedCandidates, top int, out, errOut io.Writer) error {
	if top > 0 && top < len(report.Ranked) {
		trimmed := *report
		trimmed.Ranked = report.Ranked[:top]
		report = &trimmed
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := schemas.ValidateRankedCandidates(jsonBytes); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(errOut, "Warning: report does not validate against schema: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(errOut, "Warning: Could not validate report against schema: %v\n", err)
		}
	}

	_, err = fmt.Fprintln(out, string(jsonBytes))
	return err
}
