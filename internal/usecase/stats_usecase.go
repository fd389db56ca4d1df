package usecase

import (
	"context"

	"skill-matcher/internal/domain/project"
	"skill-matcher/internal/repository"
)

type StatsUsecase interface {
	Stats(ctx context.Context) (project.Stats, error)
}

type Stats struct {
	repo repository.StatsRepository
}

func NewStatsUsecase(repo repository.StatsRepository) *Stats {
	return &Stats{repo: repo}
}

func (u *Stats) Stats(ctx context.Context) (project.Stats, error) {
	s, err := u.repo.Stats(ctx)
	if err != nil {
		return project.Stats{}, ErrInternal
	}
	return s, nil
}
