package dto

import (
	"time"

	"github.com/google/uuid"

	"skill-matcher/internal/domain/project"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	ProjectName string    `json:"project_name"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ApplicationStatusResponse struct {
	HasApplied  bool                 `json:"has_applied"`
	Application *ApplicationResponse `json:"application"`
}

func NewApplicationResponse(a project.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		ProjectName: a.ProjectName,
		UserID:      a.UserID,
		UserName:    a.UserName,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

func NewApplicationResponses(items []project.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
