package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"skill-matcher/internal/database"
	dbpostgres "skill-matcher/internal/database/postgres"
	"skill-matcher/internal/domain/matching"
	"skill-matcher/internal/domain/project"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrOwnerNotFound   = errors.New("owner not found")
)

const (
	DefaultProjectListLimit = 20
	MaxProjectListLimit     = 100
)

type ProjectFilter struct {
	// Query is a case-insensitive substring over name and description.
	Query string
	// Skill matches required skills by normalized form.
	Skill  string
	Limit  int
	Offset int
}

type ProjectRepository interface {
	Create(ctx context.Context, p project.Project) (project.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (project.Project, error)
	List(ctx context.Context, f ProjectFilter) ([]project.Project, error)
	// ListByIDs returns the projects in ids order, skipping unknown ids.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]project.Project, error)
	ListOwnedBy(ctx context.Context, ownerID uuid.UUID) ([]project.Owned, error)
	ListSummaries(ctx context.Context) ([]matching.ProjectSummary, error)
	RequiredSkills(ctx context.Context, projectID uuid.UUID) ([]string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

// Create stores the project, its required skills and the owner's team seat in
// one transaction.
func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		row := tx.QueryRow(ctx,
			`INSERT INTO projects (id, name, description, team_size, owner_id)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING created_at`,
			p.ID, p.Name, p.Description, p.TeamSize, p.OwnerID,
		)
		if err := row.Scan(&p.CreatedAt); err != nil {
			if dbpostgres.IsForeignKeyViolation(err) {
				return ErrOwnerNotFound
			}
			return err
		}

		if err := database.InsertSkills(ctx, tx, "project_skills", "project_id", p.ID, p.RequiredSkills); err != nil {
			return err
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO project_team (project_id, user_id) VALUES ($1, $2)`,
			p.ID, p.OwnerID,
		)
		return err
	})
	if err != nil {
		return project.Project{}, err
	}

	if p.RequiredSkills == nil {
		p.RequiredSkills = []string{}
	}
	return p, nil
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT p.id, p.name, p.description, p.team_size, p.owner_id, u.name, p.created_at
		 FROM projects p
		 JOIN users u ON u.id = p.owner_id
		 WHERE p.id = $1`,
		id,
	)

	var p project.Project
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.TeamSize, &p.OwnerID, &p.OwnerName, &p.CreatedAt); err != nil {
		if dbpostgres.IsNoRows(err) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}

	skills, err := r.RequiredSkills(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	p.RequiredSkills = skills
	return p, nil
}

func (r *PostgresProjectRepository) List(ctx context.Context, f ProjectFilter) ([]project.Project, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultProjectListLimit
	}
	if limit > MaxProjectListLimit {
		limit = MaxProjectListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	where := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if q := strings.TrimSpace(f.Query); q != "" {
		args = append(args, "%"+escapeLike(q)+"%")
		n := strconv.Itoa(len(args))
		where = append(where, `(p.name ILIKE $`+n+` OR p.description ILIKE $`+n+`)`)
	}
	if s := strings.ToLower(strings.TrimSpace(f.Skill)); s != "" {
		args = append(args, s)
		where = append(where, `EXISTS (SELECT 1 FROM project_skills ps WHERE ps.project_id = p.id AND LOWER(TRIM(ps.skill)) = $`+strconv.Itoa(len(args))+`)`)
	}

	query := `SELECT p.id, p.name, p.description, p.team_size, p.owner_id, u.name, p.created_at
		 FROM projects p
		 JOIN users u ON u.id = p.owner_id`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	args = append(args, limit, offset)
	query += ` ORDER BY p.created_at DESC, p.id ASC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	return r.queryProjects(ctx, query, args...)
}

func (r *PostgresProjectRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]project.Project, error) {
	if len(ids) == 0 {
		return []project.Project{}, nil
	}

	found, err := r.queryProjects(ctx,
		`SELECT p.id, p.name, p.description, p.team_size, p.owner_id, u.name, p.created_at
		 FROM projects p
		 JOIN users u ON u.id = p.owner_id
		 WHERE p.id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]project.Project, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	out := make([]project.Project, 0, len(found))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// queryProjects scans project rows joined with the owner name and attaches
// their required skills with one extra query.
func (r *PostgresProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.TeamSize, &p.OwnerID, &p.OwnerName, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skills, err := skillsByOwner(ctx, r.db, "project_skills", "project_id", ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].RequiredSkills = nonNil(skills[out[i].ID])
	}
	return out, nil
}

func (r *PostgresProjectRepository) ListOwnedBy(ctx context.Context, ownerID uuid.UUID) ([]project.Owned, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.name, p.team_size, COUNT(t.id), p.created_at
		 FROM projects p
		 LEFT JOIN project_team t ON t.project_id = p.id
		 WHERE p.owner_id = $1
		 GROUP BY p.id
		 ORDER BY p.created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Owned, 0)
	for rows.Next() {
		var o project.Owned
		if err := rows.Scan(&o.ID, &o.Name, &o.TeamSize, &o.TeamCount, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSummaries returns every project in the shape the recommendation selector
// consumes.
func (r *PostgresProjectRepository) ListSummaries(ctx context.Context) ([]matching.ProjectSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT id, owner_id, created_at FROM projects ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.ProjectSummary, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			s  matching.ProjectSummary
			at time.Time
		)
		if err := rows.Scan(&s.ID, &s.OwnerID, &at); err != nil {
			return nil, err
		}
		s.CreatedAt = at
		out = append(out, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skills, err := skillsByOwner(ctx, r.db, "project_skills", "project_id", ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].RequiredSkills = nonNil(skills[out[i].ID])
	}
	return out, nil
}

func (r *PostgresProjectRepository) RequiredSkills(ctx context.Context, projectID uuid.UUID) ([]string, error) {
	m, err := skillsByOwner(ctx, r.db, "project_skills", "project_id", []uuid.UUID{projectID})
	if err != nil {
		return nil, err
	}
	return nonNil(m[projectID]), nil
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
