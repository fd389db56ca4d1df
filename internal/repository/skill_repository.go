package repository

import (
	"context"

	"skill-matcher/internal/database"
)

type SkillRepository interface {
	// ListDistinct returns every skill label used by a project or a user,
	// distinct by exact spelling and ordered case-insensitively.
	ListDistinct(ctx context.Context) ([]string, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) ListDistinct(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill FROM (
			SELECT skill FROM project_skills
			UNION
			SELECT skill FROM user_skills
		 ) s
		 ORDER BY LOWER(skill) ASC, skill ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
