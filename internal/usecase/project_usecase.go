package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"skill-matcher/internal/domain/matching"
	"skill-matcher/internal/domain/project"
	"skill-matcher/internal/domain/skill"
	"skill-matcher/internal/repository"
)

const (
	ActionCreated      = "created"
	ActionDeleted      = "deleted"
	ActionMemberJoined = "member_joined"
)

// ProjectEvents is told about changes clients watching the project list care about.
type ProjectEvents interface {
	ProjectsUpdated(projectID uuid.UUID, action string)
}

type CreateProjectInput struct {
	Name           string
	Description    string
	TeamSize       int
	RequiredSkills []string
}

type ListProjectsParams struct {
	Query  string
	Skill  string
	Limit  int
	Offset int
}

type ProjectDetail struct {
	Project project.Project
	Skills  []skill.Labeled
}

type RecommendedProject struct {
	Project    project.Project
	MatchScore int
}

type ProjectUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateProjectInput) (project.Project, error)
	List(ctx context.Context, p ListProjectsParams) ([]project.Project, error)
	Get(ctx context.Context, id uuid.UUID) (ProjectDetail, error)
	Team(ctx context.Context, id uuid.UUID) ([]project.TeamMember, error)
	Match(ctx context.Context, userID, projectID uuid.UUID) (int, error)
	Recommended(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedProject, error)
	ApplicationFor(ctx context.Context, userID, projectID uuid.UUID) (*project.Application, error)
	Apply(ctx context.Context, userID, projectID uuid.UUID) (project.Application, error)
	ListApplications(ctx context.Context, userID, projectID uuid.UUID) ([]project.Application, error)
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
}

type Project struct {
	projects     repository.ProjectRepository
	team         repository.TeamRepository
	applications repository.ApplicationRepository
	userSkills   repository.UserSkillRepository
	categorizer  *skill.Categorizer
	events       ProjectEvents
}

func NewProjectUsecase(
	projects repository.ProjectRepository,
	team repository.TeamRepository,
	applications repository.ApplicationRepository,
	userSkills repository.UserSkillRepository,
	categorizer *skill.Categorizer,
	events ProjectEvents,
) *Project {
	return &Project{
		projects:     projects,
		team:         team,
		applications: applications,
		userSkills:   userSkills,
		categorizer:  categorizer,
		events:       events,
	}
}

func (u *Project) Create(ctx context.Context, ownerID uuid.UUID, in CreateProjectInput) (project.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.TeamSize <= 0 {
		return project.Project{}, ErrInvalidInput
	}

	created, err := u.projects.Create(ctx, project.Project{
		ID:             uuid.New(),
		Name:           name,
		Description:    strings.TrimSpace(in.Description),
		TeamSize:       in.TeamSize,
		OwnerID:        ownerID,
		RequiredSkills: skill.Dedupe(in.RequiredSkills),
	})
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return project.Project{}, ErrUnauthorized
		}
		return project.Project{}, ErrInternal
	}

	u.notify(created.ID, ActionCreated)
	return created, nil
}

func (u *Project) List(ctx context.Context, p ListProjectsParams) ([]project.Project, error) {
	if p.Limit < 0 || p.Offset < 0 {
		return nil, ErrInvalidInput
	}
	items, err := u.projects.List(ctx, repository.ProjectFilter{
		Query:  p.Query,
		Skill:  p.Skill,
		Limit:  p.Limit,
		Offset: p.Offset,
	})
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Project) Get(ctx context.Context, id uuid.UUID) (ProjectDetail, error) {
	p, err := u.getProject(ctx, id)
	if err != nil {
		return ProjectDetail{}, err
	}
	return ProjectDetail{Project: p, Skills: u.categorizer.Label(p.RequiredSkills)}, nil
}

func (u *Project) Team(ctx context.Context, id uuid.UUID) ([]project.TeamMember, error) {
	if _, err := u.getProject(ctx, id); err != nil {
		return nil, err
	}
	members, err := u.team.ListMembers(ctx, id)
	if err != nil {
		return nil, ErrInternal
	}
	return members, nil
}

func (u *Project) Match(ctx context.Context, userID, projectID uuid.UUID) (int, error) {
	p, err := u.getProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	have, err := u.userSkills.ListByUser(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	return matching.Score(have, p.RequiredSkills), nil
}

func (u *Project) Recommended(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedProject, error) {
	have, err := u.userSkills.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	teamIDs, err := u.team.ProjectIDsOfUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	candidates, err := u.projects.ListSummaries(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	excluded := make(map[uuid.UUID]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		excluded[id] = struct{}{}
	}

	if limit > repository.MaxProjectListLimit {
		limit = repository.MaxProjectListLimit
	}
	picked := matching.Recommend(userID, have, candidates, excluded, limit)

	ids := make([]uuid.UUID, 0, len(picked))
	for _, s := range picked {
		ids = append(ids, s.ID)
	}
	projects, err := u.projects.ListByIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]RecommendedProject, 0, len(projects))
	for _, p := range projects {
		out = append(out, RecommendedProject{Project: p, MatchScore: matching.Score(have, p.RequiredSkills)})
	}
	return out, nil
}

func (u *Project) ApplicationFor(ctx context.Context, userID, projectID uuid.UUID) (*project.Application, error) {
	a, err := u.applications.FindByProjectAndUser(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, nil
		}
		return nil, ErrInternal
	}
	return &a, nil
}

func (u *Project) Apply(ctx context.Context, userID, projectID uuid.UUID) (project.Application, error) {
	if _, err := u.getProject(ctx, projectID); err != nil {
		return project.Application{}, err
	}

	member, err := u.team.IsMember(ctx, projectID, userID)
	if err != nil {
		return project.Application{}, ErrInternal
	}
	if member {
		return project.Application{}, ErrAlreadyMember
	}

	a, err := u.applications.Create(ctx, projectID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrApplicationExists):
			return project.Application{}, ErrAlreadyApplied
		case errors.Is(err, repository.ErrProjectNotFound):
			return project.Application{}, ErrProjectNotFound
		default:
			return project.Application{}, ErrInternal
		}
	}
	return a, nil
}

func (u *Project) ListApplications(ctx context.Context, userID, projectID uuid.UUID) ([]project.Application, error) {
	p, err := u.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != userID {
		return nil, ErrForbidden
	}
	items, err := u.applications.ListByProject(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Project) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	p, err := u.getProject(ctx, projectID)
	if err != nil {
		return err
	}
	if p.OwnerID != userID {
		return ErrForbidden
	}
	if err := u.projects.Delete(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return ErrInternal
	}

	u.notify(projectID, ActionDeleted)
	return nil
}

func (u *Project) getProject(ctx context.Context, id uuid.UUID) (project.Project, error) {
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}
	return p, nil
}

func (u *Project) notify(projectID uuid.UUID, action string) {
	if u.events != nil {
		u.events.ProjectsUpdated(projectID, action)
	}
}
