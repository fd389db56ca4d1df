package usecase

import (
	"context"

	"skill-matcher/internal/domain/skill"
	"skill-matcher/internal/repository"
)

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Labeled, error)
	Categorize(name string) skill.Category
}

type Skill struct {
	repo        repository.SkillRepository
	categorizer *skill.Categorizer
}

func NewSkillUsecase(repo repository.SkillRepository, categorizer *skill.Categorizer) *Skill {
	return &Skill{repo: repo, categorizer: categorizer}
}

// ListSkills returns every skill in use, one entry per normalized form.
func (u *Skill) ListSkills(ctx context.Context) ([]skill.Labeled, error) {
	items, err := u.repo.ListDistinct(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return u.categorizer.Label(skill.Dedupe(items)), nil
}

func (u *Skill) Categorize(name string) skill.Category {
	return u.categorizer.Categorize(name)
}
