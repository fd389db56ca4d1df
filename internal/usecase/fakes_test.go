package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"skill-matcher/internal/domain/matching"
	"skill-matcher/internal/domain/project"
	"skill-matcher/internal/domain/user"
	"skill-matcher/internal/repository"
)

type fakeStore struct {
	users        map[uuid.UUID]user.User
	userSkills   map[uuid.UUID][]string
	projects     map[uuid.UUID]project.Project
	team         map[uuid.UUID][]uuid.UUID
	applications map[uuid.UUID]project.Application
	err          error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[uuid.UUID]user.User{},
		userSkills:   map[uuid.UUID][]string{},
		projects:     map[uuid.UUID]project.Project{},
		team:         map[uuid.UUID][]uuid.UUID{},
		applications: map[uuid.UUID]project.Application{},
	}
}

func (s *fakeStore) addUser(name string, skills ...string) uuid.UUID {
	id := uuid.New()
	s.users[id] = user.User{ID: id, Name: name, Email: name + "@example.com"}
	s.userSkills[id] = skills
	return id
}

func (s *fakeStore) addProject(owner uuid.UUID, name string, teamSize int, created time.Time, skills ...string) uuid.UUID {
	id := uuid.New()
	s.projects[id] = project.Project{
		ID:             id,
		Name:           name,
		TeamSize:       teamSize,
		OwnerID:        owner,
		OwnerName:      s.users[owner].Name,
		RequiredSkills: skills,
		CreatedAt:      created,
	}
	s.team[id] = []uuid.UUID{owner}
	return id
}

// user.Repository

func (s *fakeStore) CreateUser(_ context.Context, u user.User) error {
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return user.ErrEmailDuplicate
		}
	}
	u.CreatedAt = time.Now()
	s.users[u.ID] = u
	s.userSkills[u.ID] = u.Skills
	return nil
}

func (s *fakeStore) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if s.err != nil {
		return user.User{}, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (s *fakeStore) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (s *fakeStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (s *fakeStore) UpdateProfile(_ context.Context, id uuid.UUID, upd user.ProfileUpdate) error {
	u, ok := s.users[id]
	if !ok {
		return user.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	s.users[id] = u
	if upd.Skills != nil {
		s.userSkills[id] = *upd.Skills
	}
	return nil
}

// repository.UserSkillRepository

func (s *fakeStore) ListByUser(_ context.Context, userID uuid.UUID) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]string{}, s.userSkills[userID]...), nil
}

// repository.ProjectRepository

type fakeProjects struct{ *fakeStore }

func (f fakeProjects) Create(_ context.Context, p project.Project) (project.Project, error) {
	if f.err != nil {
		return project.Project{}, f.err
	}
	p.CreatedAt = time.Now()
	f.projects[p.ID] = p
	f.team[p.ID] = []uuid.UUID{p.OwnerID}
	return p, nil
}

func (f fakeProjects) GetByID(_ context.Context, id uuid.UUID) (project.Project, error) {
	if f.err != nil {
		return project.Project{}, f.err
	}
	p, ok := f.projects[id]
	if !ok {
		return project.Project{}, repository.ErrProjectNotFound
	}
	return p, nil
}

func (f fakeProjects) List(_ context.Context, _ repository.ProjectFilter) ([]project.Project, error) {
	out := make([]project.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f fakeProjects) ListByIDs(_ context.Context, ids []uuid.UUID) ([]project.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []project.Project{}
	for _, id := range ids {
		if p, ok := f.projects[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakeProjects) ListOwnedBy(_ context.Context, ownerID uuid.UUID) ([]project.Owned, error) {
	out := []project.Owned{}
	for _, p := range f.projects {
		if p.OwnerID == ownerID {
			out = append(out, project.Owned{ID: p.ID, Name: p.Name, TeamSize: p.TeamSize, TeamCount: len(f.team[p.ID])})
		}
	}
	return out, nil
}

func (f fakeProjects) ListSummaries(_ context.Context) ([]matching.ProjectSummary, error) {
	out := []matching.ProjectSummary{}
	for _, p := range f.projects {
		out = append(out, matching.ProjectSummary{ID: p.ID, OwnerID: p.OwnerID, RequiredSkills: p.RequiredSkills, CreatedAt: p.CreatedAt})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (f fakeProjects) RequiredSkills(_ context.Context, id uuid.UUID) ([]string, error) {
	return f.projects[id].RequiredSkills, nil
}

func (f fakeProjects) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.projects[id]; !ok {
		return repository.ErrProjectNotFound
	}
	delete(f.projects, id)
	delete(f.team, id)
	return nil
}

// repository.TeamRepository

type fakeTeam struct{ *fakeStore }

func (f fakeTeam) ListMembers(_ context.Context, projectID uuid.UUID) ([]project.TeamMember, error) {
	out := []project.TeamMember{}
	for _, id := range f.team[projectID] {
		out = append(out, project.TeamMember{UserID: id, Name: f.users[id].Name, Skills: f.userSkills[id]})
	}
	return out, nil
}

func (f fakeTeam) IsMember(_ context.Context, projectID, userID uuid.UUID) (bool, error) {
	for _, id := range f.team[projectID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeTeam) ProjectIDsOfUser(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	out := []uuid.UUID{}
	for pid, members := range f.team {
		for _, id := range members {
			if id == userID {
				out = append(out, pid)
			}
		}
	}
	return out, nil
}

// repository.ApplicationRepository

type fakeApplications struct{ *fakeStore }

func (f fakeApplications) Create(_ context.Context, projectID, userID uuid.UUID) (project.Application, error) {
	if _, ok := f.projects[projectID]; !ok {
		return project.Application{}, repository.ErrProjectNotFound
	}
	for _, a := range f.applications {
		if a.ProjectID == projectID && a.UserID == userID {
			return project.Application{}, repository.ErrApplicationExists
		}
	}
	a := project.Application{
		ID:          uuid.New(),
		ProjectID:   projectID,
		ProjectName: f.projects[projectID].Name,
		UserID:      userID,
		UserName:    f.users[userID].Name,
		Status:      project.StatusPending,
		CreatedAt:   time.Now(),
	}
	f.applications[a.ID] = a
	return a, nil
}

func (f fakeApplications) GetByID(_ context.Context, id uuid.UUID) (project.Application, error) {
	a, ok := f.applications[id]
	if !ok {
		return project.Application{}, repository.ErrApplicationNotFound
	}
	return a, nil
}

func (f fakeApplications) FindByProjectAndUser(_ context.Context, projectID, userID uuid.UUID) (project.Application, error) {
	for _, a := range f.applications {
		if a.ProjectID == projectID && a.UserID == userID {
			return a, nil
		}
	}
	return project.Application{}, repository.ErrApplicationNotFound
}

func (f fakeApplications) ListByUser(_ context.Context, userID uuid.UUID) ([]project.Application, error) {
	out := []project.Application{}
	for _, a := range f.applications {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f fakeApplications) ListByProject(_ context.Context, projectID uuid.UUID) ([]project.Application, error) {
	out := []project.Application{}
	for _, a := range f.applications {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f fakeApplications) DeletePending(_ context.Context, id, userID uuid.UUID) error {
	a, ok := f.applications[id]
	if !ok || a.UserID != userID {
		return repository.ErrApplicationNotFound
	}
	if a.Status != project.StatusPending {
		return repository.ErrApplicationNotPending
	}
	delete(f.applications, id)
	return nil
}

func (f fakeApplications) Accept(_ context.Context, id uuid.UUID) (project.Application, error) {
	a, ok := f.applications[id]
	if !ok {
		return project.Application{}, repository.ErrApplicationNotFound
	}
	if a.Status != project.StatusPending {
		return project.Application{}, repository.ErrApplicationNotPending
	}
	if len(f.team[a.ProjectID]) >= f.projects[a.ProjectID].TeamSize {
		return project.Application{}, repository.ErrTeamFull
	}
	a.Status = project.StatusAccepted
	f.applications[id] = a
	f.team[a.ProjectID] = append(f.team[a.ProjectID], a.UserID)
	return a, nil
}

func (f fakeApplications) Reject(_ context.Context, id uuid.UUID) (project.Application, error) {
	a, ok := f.applications[id]
	if !ok {
		return project.Application{}, repository.ErrApplicationNotFound
	}
	if a.Status != project.StatusPending {
		return project.Application{}, repository.ErrApplicationNotPending
	}
	a.Status = project.StatusRejected
	f.applications[id] = a
	return a, nil
}

type recordedEvent struct {
	ProjectID uuid.UUID
	Action    string
}

type eventRecorder struct {
	events []recordedEvent
}

func (r *eventRecorder) ProjectsUpdated(projectID uuid.UUID, action string) {
	r.events = append(r.events, recordedEvent{ProjectID: projectID, Action: action})
}

type fakeSessions struct {
	live map[string]string
	err  error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{live: map[string]string{}}
}

func (s *fakeSessions) SaveRefresh(_ context.Context, tokenID, userID string, _ time.Duration) error {
	s.live[tokenID] = userID
	return nil
}

func (s *fakeSessions) ConsumeRefresh(_ context.Context, tokenID, userID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	owner, ok := s.live[tokenID]
	delete(s.live, tokenID)
	return ok && owner == userID, nil
}
