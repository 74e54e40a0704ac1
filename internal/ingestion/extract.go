// Package ingestion reads the text out of candidate and reference files.
package ingestion

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-ranker/internal/logger"
)

// Supported container formats, keyed by lower-case extension.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatTXT  = "txt"
)

type extractFunc func(path string) (string, error)

var extractors = map[string]extractFunc{
	FormatPDF:  extractPDF,
	FormatDOCX: extractDOCX,
	FormatTXT:  extractTXT,
}

// FormatOf returns the supported format of path, or "" when unsupported.
func FormatOf(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if _, ok := extractors[ext]; ok {
		return ext
	}
	return ""
}

// IsSupported reports whether path has a pdf, docx or txt extension.
func IsSupported(path string) bool {
	return FormatOf(path) != ""
}

// Extract returns the text of path, dispatching on its extension. Any failure,
// including a panic inside a container parser or an empty result, is returned
// as an *ExtractionError.
func Extract(path string) (text string, err error) {
	format := FormatOf(path)
	if format == "" {
		return "", &ExtractionError{Path: path, Cause: ErrUnsupportedFormat}
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Path: path, Format: format, Cause: fmt.Errorf("parser panic: %v", r)}
		}
	}()

	text, err = extractors[format](path)
	if err != nil {
		return "", &ExtractionError{Path: path, Format: format, Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Path: path, Format: format, Cause: ErrEmptyDocument}
	}
	return text, nil
}

// ExtractText returns the text of path or "" when extraction fails for any
// reason. Failures are logged, never returned.
func ExtractText(path string) string {
	text, err := Extract(path)
	if err != nil {
		logger.Warn().Str("component", "ingestion").Str("file", path).Err(err).Msg("text extraction failed")
		return ""
	}
	return text
}
