package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill-matcher/internal/domain/project"
	"skill-matcher/internal/domain/skill"
)

type fakeSkillRepo struct {
	items []string
	err   error
}

func (f fakeSkillRepo) ListDistinct(context.Context) ([]string, error) {
	return f.items, f.err
}

func TestSkillUsecase_ListSkills(t *testing.T) {
	uc := NewSkillUsecase(fakeSkillRepo{items: []string{"Figma", "go", "Go", "SEO"}}, skill.NewCategorizer(skill.DefaultTaxonomy()))

	out, err := uc.ListSkills(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []skill.Labeled{
		{Name: "Figma", Category: skill.CategoryDesign},
		{Name: "go", Category: skill.CategoryDevelopment},
		{Name: "SEO", Category: skill.CategoryMarketing},
	}, out)
}

func TestSkillUsecase_ListSkills_Error(t *testing.T) {
	uc := NewSkillUsecase(fakeSkillRepo{err: assert.AnError}, skill.NewCategorizer(skill.DefaultTaxonomy()))
	_, err := uc.ListSkills(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSkillUsecase_Categorize(t *testing.T) {
	uc := NewSkillUsecase(fakeSkillRepo{}, skill.NewCategorizer(skill.DefaultTaxonomy()))
	assert.Equal(t, skill.CategoryManagement, uc.Categorize("Scrum Master"))
}

type fakeStatsRepo struct {
	stats project.Stats
	err   error
}

func (f fakeStatsRepo) Stats(context.Context) (project.Stats, error) {
	return f.stats, f.err
}

func TestStatsUsecase(t *testing.T) {
	s, err := NewStatsUsecase(fakeStatsRepo{stats: project.Stats{ProjectCount: 2, UserCount: 3, MatchCount: 1}}).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, s.MatchCount)

	_, err = NewStatsUsecase(fakeStatsRepo{err: assert.AnError}).Stats(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
