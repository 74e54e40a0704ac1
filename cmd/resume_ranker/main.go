// Package main provides the resume_ranker command-line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_ranker",
	Short: "Rank resumes against a job description",
	Long: `resume_ranker scores every PDF, DOCX and TXT resume in a directory against a job description
and prints them ranked by relevance (75% required-skill coverage, 25% TF-IDF text similarity).

Running without a subcommand is the same as "resume_ranker rank".`,
	SilenceUsage: true,
	RunE:         runRankCmd,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
