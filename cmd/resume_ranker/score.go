package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/pipeline"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single resume against a job description",
	Long:  "Score a single resume against a job description and print the coverage, similarity and final components.",
	RunE:  runScore,
}

var (
	scoreJob        string
	scoreResume     string
	scoreVocabulary string
	scoreJSON       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to the job description")
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to the resume")
	scoreCmd.Flags().StringVar(&scoreVocabulary, "vocabulary", "", "YAML skill vocabulary (defaults to the built-in list)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the breakdown as JSON")

	_ = scoreCmd.MarkFlagRequired("job")
	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	return executeScore(scoreJob, scoreResume, scoreVocabulary, scoreJSON, cmd.OutOrStdout())
}

func executeScore(jobPath, resumePath, vocabularyPath string, asJSON bool, out io.Writer) error {
	result, err := pipeline.ScoreFile(jobPath, resumePath, vocabularyPath)
	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}

	if asJSON {
		jsonBytes, err := json.MarshalIndent(result.Breakdown, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(jsonBytes))
		return err
	}

	printer := observability.NewPrinter(out)
	printer.PrintDocument(result.Candidate)
	printer.PrintBreakdown(result.Candidate.SourceName, result.Breakdown)
	return nil
}
