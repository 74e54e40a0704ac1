package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillSet_AddAndContains(t *testing.T) {
	s := NewSkillSet("java")
	s.Add("go", "java")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("go"))
	assert.False(t, s.Contains("rust"))
}

func TestSkillSet_NilIsEmpty(t *testing.T) {
	var s SkillSet
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("go"))
	assert.Empty(t, s.Sorted())
	assert.Equal(t, 0, s.Intersect(NewSkillSet("go")).Len())
}

func TestSkillSet_Intersect(t *testing.T) {
	a := NewSkillSet("java", "postgresql", "gitlab")
	b := NewSkillSet("postgresql", "java", "docker")

	assert.Equal(t, []string{"java", "postgresql"}, a.Intersect(b).Sorted())
	assert.Equal(t, []string{"java", "postgresql"}, b.Intersect(a).Sorted())
}

func TestSkillSet_UnionAndClone(t *testing.T) {
	a := NewSkillSet("java")
	clone := a.Clone()
	a.Union(NewSkillSet("go"))

	assert.Equal(t, []string{"go", "java"}, a.Sorted())
	assert.Equal(t, []string{"java"}, clone.Sorted())
	assert.False(t, a.Equal(clone))
	clone.Add("go")
	assert.True(t, a.Equal(clone))
}

func TestSkillSet_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(NewSkillSet("sql", "aws", "go"))
	require.NoError(t, err)
	assert.JSONEq(t, `["aws","go","sql"]`, string(data))

	var decoded SkillSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Contains("aws"))
	assert.Equal(t, 3, decoded.Len())
}

func TestDocument_RequirementSet(t *testing.T) {
	ref := &Document{Role: RoleReference, Skills: NewSkillSet("go"), RequiredSkills: NewSkillSet("java")}
	assert.True(t, ref.IsReference())
	assert.Equal(t, []string{"java"}, ref.RequirementSet().Sorted())

	cand := &Document{Role: RoleCandidate, Skills: NewSkillSet("go")}
	assert.False(t, cand.IsReference())
	assert.Equal(t, []string{"go"}, cand.RequirementSet().Sorted())
}
