package repository

import (
	"context"

	"skill-matcher/internal/database"
	"skill-matcher/internal/domain/project"
)

type StatsRepository interface {
	Stats(ctx context.Context) (project.Stats, error)
}

type PostgresStatsRepository struct {
	db database.DB
}

func NewPostgresStatsRepository(db database.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

// Stats counts projects, users and accepted applications in one round trip.
func (r *PostgresStatsRepository) Stats(ctx context.Context) (project.Stats, error) {
	var s project.Stats
	row := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM applications WHERE status = $1)`,
		string(project.StatusAccepted),
	)
	if err := row.Scan(&s.ProjectCount, &s.UserCount, &s.MatchCount); err != nil {
		return project.Stats{}, err
	}
	return s, nil
}
