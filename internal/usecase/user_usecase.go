package usecase

import (
	"context"

	"skill-matcher/internal/domain/project"
	"skill-matcher/internal/repository"
	ucuser "skill-matcher/internal/usecase/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (ucuser.Profile, error)
	ListApplications(ctx context.Context, userID uuid.UUID) ([]project.Application, error)
	ListOwnedProjects(ctx context.Context, userID uuid.UUID) ([]project.Owned, error)
}

type User struct {
	*ucuser.Service

	applications repository.ApplicationRepository
	projects     repository.ProjectRepository
}

func NewUserUsecase(svc *ucuser.Service, applications repository.ApplicationRepository, projects repository.ProjectRepository) *User {
	return &User{Service: svc, applications: applications, projects: projects}
}

func (u *User) ListApplications(ctx context.Context, userID uuid.UUID) ([]project.Application, error) {
	items, err := u.applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *User) ListOwnedProjects(ctx context.Context, userID uuid.UUID) ([]project.Owned, error) {
	items, err := u.projects.ListOwnedBy(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
