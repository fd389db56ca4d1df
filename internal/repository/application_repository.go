package repository

import (
	"context"
	"errors"

	"skill-matcher/internal/database"
	dbpostgres "skill-matcher/internal/database/postgres"
	"skill-matcher/internal/domain/project"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound   = errors.New("application not found")
	ErrApplicationExists     = errors.New("application already exists")
	ErrApplicationNotPending = errors.New("application is not pending")
	ErrTeamFull              = errors.New("team is full")
)

type ApplicationRepository interface {
	Create(ctx context.Context, projectID, userID uuid.UUID) (project.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (project.Application, error)
	FindByProjectAndUser(ctx context.Context, projectID, userID uuid.UUID) (project.Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]project.Application, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]project.Application, error)
	// DeletePending removes a pending application owned by userID.
	DeletePending(ctx context.Context, id, userID uuid.UUID) error
	// Accept marks a pending application accepted and seats the applicant,
	// refusing when the team already has team_size members.
	Accept(ctx context.Context, id uuid.UUID) (project.Application, error)
	Reject(ctx context.Context, id uuid.UUID) (project.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `a.id, a.project_id, p.name, a.user_id, u.name, a.status, a.created_at`

const applicationFrom = ` FROM applications a
		 JOIN projects p ON p.id = a.project_id
		 JOIN users u ON u.id = a.user_id`

func (r *PostgresApplicationRepository) Create(ctx context.Context, projectID, userID uuid.UUID) (project.Application, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, project_id, user_id, status) VALUES ($1, $2, $3, $4)`,
		id, projectID, userID, string(project.StatusPending),
	)
	if err != nil {
		if dbpostgres.IsUniqueViolation(err) {
			return project.Application{}, ErrApplicationExists
		}
		if dbpostgres.IsForeignKeyViolation(err) {
			return project.Application{}, ErrProjectNotFound
		}
		return project.Application{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Application, error) {
	return scanApplication(r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+applicationFrom+` WHERE a.id = $1`,
		id,
	))
}

func (r *PostgresApplicationRepository) FindByProjectAndUser(ctx context.Context, projectID, userID uuid.UUID) (project.Application, error) {
	return scanApplication(r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+applicationFrom+` WHERE a.project_id = $1 AND a.user_id = $2`,
		projectID, userID,
	))
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]project.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+applicationFrom+` WHERE a.user_id = $1 ORDER BY a.created_at DESC`, userID)
}

func (r *PostgresApplicationRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]project.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+applicationFrom+` WHERE a.project_id = $1 ORDER BY a.created_at DESC`, projectID)
}

func (r *PostgresApplicationRepository) DeletePending(ctx context.Context, id, userID uuid.UUID) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		var status string
		row := tx.QueryRow(ctx,
			`SELECT status FROM applications WHERE id = $1 AND user_id = $2 FOR UPDATE`,
			id, userID,
		)
		if err := row.Scan(&status); err != nil {
			if dbpostgres.IsNoRows(err) {
				return ErrApplicationNotFound
			}
			return err
		}
		if project.ApplicationStatus(status) != project.StatusPending {
			return ErrApplicationNotPending
		}
		_, err := tx.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
		return err
	})
}

func (r *PostgresApplicationRepository) Accept(ctx context.Context, id uuid.UUID) (project.Application, error) {
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		projectID, userID, err := lockPending(ctx, tx, id)
		if err != nil {
			return err
		}

		var teamSize, members int
		row := tx.QueryRow(ctx,
			`SELECT p.team_size, (SELECT COUNT(*) FROM project_team t WHERE t.project_id = p.id)
			 FROM projects p WHERE p.id = $1 FOR UPDATE`,
			projectID,
		)
		if err := row.Scan(&teamSize, &members); err != nil {
			if dbpostgres.IsNoRows(err) {
				return ErrProjectNotFound
			}
			return err
		}
		if members >= teamSize {
			return ErrTeamFull
		}

		if _, err := tx.Exec(ctx,
			`UPDATE applications SET status = $2 WHERE id = $1`,
			id, string(project.StatusAccepted),
		); err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO project_team (project_id, user_id) VALUES ($1, $2) ON CONFLICT (project_id, user_id) DO NOTHING`,
			projectID, userID,
		)
		return err
	})
	if err != nil {
		return project.Application{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresApplicationRepository) Reject(ctx context.Context, id uuid.UUID) (project.Application, error) {
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if _, _, err := lockPending(ctx, tx, id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`UPDATE applications SET status = $2 WHERE id = $1`,
			id, string(project.StatusRejected),
		)
		return err
	})
	if err != nil {
		return project.Application{}, err
	}
	return r.GetByID(ctx, id)
}

func lockPending(ctx context.Context, tx database.Tx, id uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	var (
		projectID, userID uuid.UUID
		status            string
	)
	row := tx.QueryRow(ctx,
		`SELECT project_id, user_id, status FROM applications WHERE id = $1 FOR UPDATE`,
		id,
	)
	if err := row.Scan(&projectID, &userID, &status); err != nil {
		if dbpostgres.IsNoRows(err) {
			return uuid.Nil, uuid.Nil, ErrApplicationNotFound
		}
		return uuid.Nil, uuid.Nil, err
	}
	if project.ApplicationStatus(status) != project.StatusPending {
		return uuid.Nil, uuid.Nil, ErrApplicationNotPending
	}
	return projectID, userID, nil
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, arg uuid.UUID) ([]project.Application, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row database.Row) (project.Application, error) {
	var (
		a      project.Application
		status string
	)
	if err := row.Scan(&a.ID, &a.ProjectID, &a.ProjectName, &a.UserID, &a.UserName, &status, &a.CreatedAt); err != nil {
		if dbpostgres.IsNoRows(err) {
			return project.Application{}, ErrApplicationNotFound
		}
		return project.Application{}, err
	}
	a.Status = project.ApplicationStatus(status)
	return a, nil
}
