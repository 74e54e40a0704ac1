package parsing

import (
	"path/filepath"

	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Parser builds Document records from files or raw text.
type Parser struct {
	extractor *skills.Extractor
}

// NewParser returns a Parser matching skills with extractor.
func NewParser(extractor *skills.Extractor) *Parser {
	return &Parser{extractor: extractor}
}

// CandidateFromText builds a candidate (resume) record.
func (p *Parser) CandidateFromText(name, raw string) *types.Document {
	return &types.Document{
		SourceName:     name,
		Role:           types.RoleCandidate,
		RawText:        raw,
		NormalizedText: Normalize(raw),
		Skills:         p.extractor.ExtractSkills(raw),
	}
}

// ReferenceFromText builds a reference (job description) record. Its general
// skill set equals its required set so the reference fully covers itself.
func (p *Parser) ReferenceFromText(name, raw string) *types.Document {
	required := p.extractor.ExtractRequiredSkills(raw)
	return &types.Document{
		SourceName:     name,
		Role:           types.RoleReference,
		RawText:        raw,
		NormalizedText: Normalize(raw),
		Skills:         required.Clone(),
		RequiredSkills: required,
	}
}

// ParseCandidate extracts text from path and builds a candidate record.
func (p *Parser) ParseCandidate(path string) (*types.Document, error) {
	raw, err := ingestion.Extract(path)
	if err != nil {
		return nil, &ParseError{Path: path, Message: "failed to extract candidate text", Cause: err}
	}
	return p.CandidateFromText(filepath.Base(path), raw), nil
}

// ParseReference extracts text from path and builds a reference record.
func (p *Parser) ParseReference(path string) (*types.Document, error) {
	raw, err := ingestion.Extract(path)
	if err != nil {
		return nil, &ParseError{Path: path, Message: "failed to extract reference text", Cause: err}
	}
	return p.ReferenceFromText(filepath.Base(path), raw), nil
}
