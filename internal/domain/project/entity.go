package project

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID             uuid.UUID
	Name           string
	Description    string
	TeamSize       int
	OwnerID        uuid.UUID
	OwnerName      string
	RequiredSkills []string
	CreatedAt      time.Time
}

// Owned is a project listed on its owner's profile.
type Owned struct {
	ID        uuid.UUID
	Name      string
	TeamSize  int
	TeamCount int
	CreatedAt time.Time
}

type TeamMember struct {
	UserID   uuid.UUID
	Name     string
	Skills   []string
	JoinedAt time.Time
}

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	ProjectName string
	UserID      uuid.UUID
	UserName    string
	Status      ApplicationStatus
	CreatedAt   time.Time
}

type Stats struct {
	ProjectCount int
	UserCount    int
	MatchCount   int
}
