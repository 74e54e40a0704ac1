package main

import (
	"fmt"
	"io"

	"github.com/jonathan/resume-ranker/internal/schemas"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the --format json ranking report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printSchema(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func printSchema(out io.Writer) error {
	if _, err := fmt.Fprintln(out, schemas.RankedCandidatesSchema()); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}
