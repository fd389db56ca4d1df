package repository

import (
	"context"

	"skill-matcher/internal/database"
	"skill-matcher/internal/domain/project"

	"github.com/google/uuid"
)

type TeamRepository interface {
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]project.TeamMember, error)
	IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	// ProjectIDsOfUser returns every project the user sits on, owned ones included.
	ProjectIDsOfUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type PostgresTeamRepository struct {
	db database.DB
}

func NewPostgresTeamRepository(db database.DB) *PostgresTeamRepository {
	return &PostgresTeamRepository{db: db}
}

func (r *PostgresTeamRepository) ListMembers(ctx context.Context, projectID uuid.UUID) ([]project.TeamMember, error) {
	rows, err := r.db.Query(ctx,
		`SELECT t.user_id, u.name, t.joined_at
		 FROM project_team t
		 JOIN users u ON u.id = t.user_id
		 WHERE t.project_id = $1
		 ORDER BY t.joined_at ASC, t.id ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.TeamMember, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var m project.TeamMember
		if err := rows.Scan(&m.UserID, &m.Name, &m.JoinedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
		ids = append(ids, m.UserID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skills, err := skillsByOwner(ctx, r.db, "user_skills", "user_id", ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Skills = nonNil(skills[out[i].UserID])
	}
	return out, nil
}

func (r *PostgresTeamRepository) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM project_team WHERE project_id = $1 AND user_id = $2)`,
		projectID, userID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresTeamRepository) ProjectIDsOfUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT project_id FROM project_team WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
