package skills

import "slices"

// bulletMarkers start a line that lists a skill.
var bulletMarkers = []string{"·", "-", "*", "•"}

// skillLineCues mark a line as describing skills when they appear anywhere in it.
var skillLineCues = []string{
	"experience with",
	"experience in",
	"solid understanding of",
	"proficiency in",
	"proficient in",
}

// requiredLineCues adds the explicit requirements header.
var requiredLineCues = append(slices.Clone(skillLineCues), "required skills:")

// phraseTrigger maps literal sub-phrases to canonical skills. Any phrase
// present in a qualifying line adds all of the skills.
type phraseTrigger struct {
	phrases []string
	skills  []string
}

var skillTriggers = []phraseTrigger{
	{phrases: []string{"java development"}, skills: []string{"java"}},
	{phrases: []string{"postgresql"}, skills: []string{"postgresql"}},
	{phrases: []string{"micro service", "microservices"}, skills: []string{"microservices"}},
	{phrases: []string{"gitlab"}, skills: []string{"gitlab"}},
	{phrases: []string{"github pipelines"}, skills: []string{"github pipelines", "github"}},
}

var requiredSkillTriggers = append(slices.Clone(skillTriggers), []phraseTrigger{
	{
		phrases: []string{"ability to quickly grasp concepts"},
		skills:  []string{"problem-solving", "analytical skills", "adaptability"},
	},
}...)

// lineScan configures the line-scoped pass.
type lineScan struct {
	cues     []string
	triggers []phraseTrigger
}

var (
	skillScan    = lineScan{cues: skillLineCues, triggers: skillTriggers}
	requiredScan = lineScan{cues: requiredLineCues, triggers: requiredSkillTriggers}
)
