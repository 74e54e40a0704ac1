package ingestion

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// extractTXT reads a UTF-8 text file. CRLF and lone CR line endings become LF.
func extractTXT(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if !utf8.Valid(content) {
		return "", ErrInvalidEncoding
	}
	return normalizeLineEndings(string(content)), nil
}

func normalizeLineEndings(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}
