package skills

import "fmt"

// VocabularyError represents a vocabulary that could not be loaded or is unusable
type VocabularyError struct {
	Source  string
	Message string
	Cause   error
}

func (e *VocabularyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary %s: %s", e.Source, e.Message)
}

func (e *VocabularyError) Unwrap() error {
	return e.Cause
}
