package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"skill-matcher/internal/domain/project"
	"skill-matcher/internal/repository"
)

type ApplicationUsecase interface {
	Withdraw(ctx context.Context, userID, applicationID uuid.UUID) error
	Review(ctx context.Context, userID, applicationID uuid.UUID, status project.ApplicationStatus) (project.Application, error)
}

type Application struct {
	applications repository.ApplicationRepository
	projects     repository.ProjectRepository
	events       ProjectEvents
}

func NewApplicationUsecase(applications repository.ApplicationRepository, projects repository.ProjectRepository, events ProjectEvents) *Application {
	return &Application{applications: applications, projects: projects, events: events}
}

func (u *Application) Withdraw(ctx context.Context, userID, applicationID uuid.UUID) error {
	err := u.applications.DeletePending(ctx, applicationID, userID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrApplicationNotFound):
		return ErrApplicationNotFound
	case errors.Is(err, repository.ErrApplicationNotPending):
		return ErrApplicationNotPending
	default:
		return ErrInternal
	}
}

// Review lets the project owner accept or reject a pending application.
func (u *Application) Review(ctx context.Context, userID, applicationID uuid.UUID, status project.ApplicationStatus) (project.Application, error) {
	if status != project.StatusAccepted && status != project.StatusRejected {
		return project.Application{}, ErrInvalidInput
	}

	a, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return project.Application{}, ErrApplicationNotFound
		}
		return project.Application{}, ErrInternal
	}

	p, err := u.projects.GetByID(ctx, a.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Application{}, ErrProjectNotFound
		}
		return project.Application{}, ErrInternal
	}
	if p.OwnerID != userID {
		return project.Application{}, ErrForbidden
	}

	var updated project.Application
	if status == project.StatusAccepted {
		updated, err = u.applications.Accept(ctx, applicationID)
	} else {
		updated, err = u.applications.Reject(ctx, applicationID)
	}
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrApplicationNotFound):
			return project.Application{}, ErrApplicationNotFound
		case errors.Is(err, repository.ErrApplicationNotPending):
			return project.Application{}, ErrApplicationNotPending
		case errors.Is(err, repository.ErrTeamFull):
			return project.Application{}, ErrTeamFull
		default:
			return project.Application{}, ErrInternal
		}
	}

	if status == project.StatusAccepted && u.events != nil {
		u.events.ProjectsUpdated(updated.ProjectID, ActionMemberJoined)
	}
	return updated, nil
}
