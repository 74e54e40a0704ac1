package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/pipeline"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Print the skills extracted from a document",
	Long:  "Extract the vocabulary skills found in a resume, or with --required the mandatory skills of a job description.",
	RunE:  runSkills,
}

var (
	skillsFile       string
	skillsRequired   bool
	skillsVocabulary string
	skillsJSON       bool
)

func init() {
	skillsCmd.Flags().StringVarP(&skillsFile, "file", "f", "", "Path to a PDF, DOCX or TXT document")
	skillsCmd.Flags().BoolVar(&skillsRequired, "required", false, "Treat the file as a job description and extract required skills")
	skillsCmd.Flags().StringVar(&skillsVocabulary, "vocabulary", "", "YAML skill vocabulary (defaults to the built-in list)")
	skillsCmd.Flags().BoolVar(&skillsJSON, "json", false, "Print the skill list as a JSON array")

	_ = skillsCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	return executeSkills(skillsFile, skillsVocabulary, skillsRequired, skillsJSON, cmd.OutOrStdout())
}

func executeSkills(path, vocabularyPath string, required, asJSON bool, out io.Writer) error {
	doc, err := pipeline.ParseFile(path, vocabularyPath, required)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	if asJSON {
		labels := doc.Skills.Sorted()
		if required {
			labels = doc.RequiredSkills.Sorted()
		}
		jsonBytes, err := json.Marshal(labels)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(jsonBytes))
		return err
	}

	observability.NewPrinter(out).PrintDocument(doc)
	return nil
}
