// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxSkillsToShow bounds skill lists inside diagnostic boxes
	maxSkillsToShow = 12
)

// Printer handles formatted output for verbose mode and the ranked table
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines by rune so multi-byte characters stay intact
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		pad := max(boxWidth-4-utf8.RuneCountInString(line), 0)
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", pad))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs the skills extracted from a parsed document.
func (p *Printer) PrintDocument(doc *types.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", doc.SourceName))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", doc.Role))
	sb.WriteString(fmt.Sprintf("Text:     %d chars\n", len(doc.RawText)))
	sb.WriteString("\n")
	writeSkillList(&sb, "Skills", doc.Skills.Sorted())
	if doc.RequiredSkills != nil {
		sb.WriteString("\n")
		writeSkillList(&sb, "Required Skills", doc.RequiredSkills.Sorted())
	}

	title := "CANDIDATE"
	if doc.IsReference() {
		title = "JOB DESCRIPTION"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBreakdown outputs the diagnostic block for one scored candidate.
func (p *Printer) PrintBreakdown(name string, b types.ScoreBreakdown) {
	var sb strings.Builder
	if b.ReferenceEmpty {
		sb.WriteString("Reference text is empty; score forced to 0\n")
	}
	writeSkillList(&sb, "Matched Required Skills", b.MatchedSkills)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skill coverage:     %.2f (%d/%d)\n", b.Coverage, len(b.MatchedSkills), b.RequiredCount))
	sb.WriteString(fmt.Sprintf("Text similarity:    %.2f\n", b.Similarity))
	sb.WriteString(fmt.Sprintf("Final score:        %.2f", b.Final))

	p.printBox("SCORE: "+name, sb.String())
}

// PrintSelfCheck outputs the score of the job description against itself.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSelfCheck(name string, score float64) {
	fmt.Fprintf(p.out, "Self-match score for %s: %.2f\n", name, score)
}

// PrintRanking outputs the ranked table as "filename: score", highest first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRanking(ranked *types.RankedCandidates, top int) {
	if ranked == nil {
		return
	}

	fmt.Fprintln(p.out, "--- Ranked Resumes ---")
	count := len(ranked.Ranked)
	if top > 0 && top < count {
		count = top
	}
	for i := 0; i < count; i++ {
		c := ranked.Ranked[i]
		fmt.Fprintf(p.out, "%s: %.2f\n", c.SourceName, c.RelevanceScore)
	}
	if count < len(ranked.Ranked) {
		fmt.Fprintf(p.out, "... and %d more\n", len(ranked.Ranked)-count)
	}
	if len(ranked.Ranked) == 0 {
		fmt.Fprintln(p.out, "(no candidates scored)")
	}
}

// PrintSkipped outputs the directory entries that were not scored.
func (p *Printer) PrintSkipped(skipped []types.SkippedFile) {
	if len(skipped) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(skipped), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", skipped[i].SourceName, skipped[i].Reason))
	}
	if len(skipped) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skipped)-maxItemsToShow))
	}
	p.printBox("SKIPPED FILES", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSkillList(sb *strings.Builder, label string, skills []string) {
	sb.WriteString(fmt.Sprintf("%s (%d):\n", label, len(skills)))
	if len(skills) == 0 {
		sb.WriteString("  (none)\n")
		return
	}
	count := min(len(skills), maxSkillsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxSkillsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxSkillsToShow))
	}
}
