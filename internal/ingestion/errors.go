package ingestion

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for extensions other than pdf, docx and txt.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptyDocument is returned when a container yields no text.
	ErrEmptyDocument = errors.New("no text extracted")
	// ErrInvalidEncoding is returned for plain-text files that are not UTF-8.
	ErrInvalidEncoding = errors.New("text is not valid UTF-8")
)

// ExtractionError represents a file whose text could not be extracted
type ExtractionError struct {
	Path   string
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("failed to extract %s text from %s: %v", e.Format, e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
