// Package skills matches a fixed skill vocabulary against document text and
// derives the skill and required-skill sets of a document.
package skills

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabularyYAML []byte

// vocabularyFile is the on-disk YAML layout of a vocabulary.
type vocabularyFile struct {
	Technical []string `yaml:"technical"`
	Soft      []string `yaml:"soft"`
}

// Vocabulary is the immutable union of technical and soft skill terms.
// It is safe for concurrent use.
type Vocabulary struct {
	terms []string
	index map[string]struct{}
}

// NewVocabulary builds a vocabulary from technical and soft term lists.
// Terms are trimmed and lowercased; blanks and duplicates are dropped.
func NewVocabulary(technical, soft []string) (*Vocabulary, error) {
	index := make(map[string]struct{}, len(technical)+len(soft))
	for _, list := range [][]string{technical, soft} {
		for _, term := range list {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			index[term] = struct{}{}
		}
	}
	v := &Vocabulary{index: index}

	if len(index) == 0 {
		return nil, &VocabularyError{Source: "(inline)", Message: "no terms defined"}
	}

	v.terms = make([]string, 0, len(index))
	for term := range index {
		v.terms = append(v.terms, term)
	}
	sort.Strings(v.terms)
	return v, nil
}

// ParseVocabulary decodes a YAML vocabulary document.
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &VocabularyError{Source: "(yaml)", Message: "failed to parse YAML", Cause: err}
	}
	return NewVocabulary(file.Technical, file.Soft)
}

// LoadVocabulary reads a YAML vocabulary file from disk.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &VocabularyError{Source: path, Message: "failed to read file", Cause: err}
	}
	v, err := ParseVocabulary(data)
	if err != nil {
		if vErr, ok := err.(*VocabularyError); ok {
			vErr.Source = path
		}
		return nil, err
	}
	return v, nil
}

var defaultVocabulary = sync.OnceValue(func() *Vocabulary {
	v, err := ParseVocabulary(defaultVocabularyYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary is invalid: %v", err))
	}
	return v
})

// DefaultVocabulary returns the built-in vocabulary. It is decoded once per
// process and shared.
func DefaultVocabulary() *Vocabulary {
	return defaultVocabulary()
}

// Terms returns the sorted terms. The slice must not be modified.
func (v *Vocabulary) Terms() []string {
	return v.terms
}

// Contains reports whether term is part of the vocabulary.
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.index[term]
	return ok
}

// Len returns the number of distinct terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}
