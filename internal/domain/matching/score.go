package matching

import (
	"math"

	"skill-matcher/internal/domain/skill"
)

// Score returns the percentage of required skill rows the user covers, rounded
// half-up. The denominator is the raw row count: duplicate requirements are not
// collapsed. A project without requirements scores 0.
func Score(userSkills, requiredSkills []string) int {
	if len(requiredSkills) == 0 {
		return 0
	}

	have := skill.Set(userSkills)
	matched := 0
	for _, r := range requiredSkills {
		if _, ok := have[skill.Normalize(r)]; ok {
			matched++
		}
	}

	score := int(math.Floor(float64(matched)*100/float64(len(requiredSkills)) + 0.5))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
