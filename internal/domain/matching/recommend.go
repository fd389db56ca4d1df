package matching

import (
	"sort"
	"time"

	"skill-matcher/internal/domain/skill"

	"github.com/google/uuid"
)

const DefaultRecommendationLimit = 6

type ProjectSummary struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	RequiredSkills []string
	CreatedAt      time.Time
}

// Recommend selects up to limit candidates the user neither owns nor is a team
// member of. With no user skills every remaining project qualifies; otherwise a
// project needs at least one required skill in common with the user. Results are
// newest first. A non-positive limit yields an empty slice.
func Recommend(userID uuid.UUID, userSkills []string, candidates []ProjectSummary, excluded map[uuid.UUID]struct{}, limit int) []ProjectSummary {
	out := make([]ProjectSummary, 0)
	if limit <= 0 {
		return out
	}

	have := skill.Set(userSkills)
	seen := make(map[uuid.UUID]struct{}, len(candidates))
	for _, p := range candidates {
		if p.OwnerID == userID {
			continue
		}
		if _, ok := excluded[p.ID]; ok {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		if len(userSkills) > 0 && !overlaps(have, p.RequiredSkills) {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func overlaps(have map[string]struct{}, required []string) bool {
	for _, r := range required {
		if _, ok := have[skill.Normalize(r)]; ok {
			return true
		}
	}
	return false
}
