package repository

import (
	"context"

	"skill-matcher/internal/database"

	"github.com/google/uuid"
)

type UserSkillRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	m, err := skillsByOwner(ctx, r.db, "user_skills", "user_id", []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}
	return nonNil(m[userID]), nil
}
