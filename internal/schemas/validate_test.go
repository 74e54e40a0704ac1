package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-ranker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankedCandidatesSchema_IsValidJSON(t *testing.T) {
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(RankedCandidatesSchema()), &v))
	assert.Equal(t, "RankedCandidates", v["title"])
}

func TestValidateRankedCandidates_Valid(t *testing.T) {
	self := 100.0
	report := types.RankedCandidates{
		RunID:     "0b6c1f0e-5d5e-4a55-9a55-1f0f0e0d0c0b",
		Reference: "job_description.txt",
		SelfScore: &self,
		Ranked: []types.RankedCandidate{{
			Rank:           1,
			SourceName:     "alice.pdf",
			RelevanceScore: 62.5,
			Coverage:       0.5,
			Similarity:     1,
			MatchedSkills:  []string{"java"},
			RequiredCount:  2,
			Skills:         []string{"java"},
			Notes:          "Moderate skill match (1/2)",
		}},
		Skipped: []types.SkippedFile{},
	}
	data, err := json.Marshal(report)
	require.NoError(t, err)

	assert.NoError(t, ValidateRankedCandidates(data))
}

func TestValidateRankedCandidates_Invalid(t *testing.T) {
	data := []byte(`{"run_id": "", "reference": "jd.txt", "ranked": [{"rank": 0, "source_name": "a", "relevance_score": 140}], "skipped": []}`)

	err := ValidateRankedCandidates(data)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 2)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCompile_BadSchema(t *testing.T) {
	_, err := compile("broken.schema.json", `{ not json`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "broken.schema.json")
}

func TestValidateRankedCandidates_Ordering(t *testing.T) {
	data := []byte(`{"run_id": "r", "reference": "jd.txt", "skipped": [], "ranked": [
		{"rank": 1, "source_name": "a", "relevance_score": 20, "coverage": 0, "similarity": 0.8, "matched_skills": [], "required_count": 1, "skills": [], "notes": ""},
		{"rank": 3, "source_name": "b", "relevance_score": 40, "coverage": 0.5, "similarity": 0.1, "matched_skills": [], "required_count": 1, "skills": [], "notes": ""}
	]}`)

	err := ValidateRankedCandidates(data)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 2)
	assert.Equal(t, "ranked.1.rank", validationErr.Errors[0].Field)
	assert.Equal(t, "ranked.1.relevance_score", validationErr.Errors[1].Field)
}

func TestValidateRankedCandidates_MalformedJSON(t *testing.T) {
	var validationErr *ValidationError
	assert.ErrorAs(t, ValidateRankedCandidates([]byte(`{"ranked": [`)), &validationErr)
}
