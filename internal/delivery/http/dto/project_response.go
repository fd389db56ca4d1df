package dto

import (
	"time"

	"github.com/google/uuid"

	"skill-matcher/internal/domain/project"
)

type ProjectResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	TeamSize       int       `json:"team_size"`
	OwnerID        uuid.UUID `json:"owner_id"`
	OwnerName      string    `json:"owner_name"`
	RequiredSkills []string  `json:"required_skills"`
	CreatedAt      time.Time `json:"created_at"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	SkillCategories []SkillResponse `json:"skill_categories"`
}

type RecommendedProjectResponse struct {
	ProjectResponse
	MatchScore int `json:"match_score"`
}

type OwnedProjectResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TeamSize  int       `json:"team_size"`
	TeamCount int       `json:"team_count"`
	CreatedAt time.Time `json:"created_at"`
}

type TeamMemberResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Skills   []string  `json:"skills"`
	JoinedAt time.Time `json:"joined_at"`
}

type MatchResponse struct {
	MatchScore int `json:"match_score"`
}

type StatsResponse struct {
	ProjectCount int `json:"project_count"`
	UserCount    int `json:"user_count"`
	MatchCount   int `json:"match_count"`
}

func NewProjectResponse(p project.Project) ProjectResponse {
	skills := p.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		TeamSize:       p.TeamSize,
		OwnerID:        p.OwnerID,
		OwnerName:      p.OwnerName,
		RequiredSkills: skills,
		CreatedAt:      p.CreatedAt,
	}
}

func NewProjectResponses(items []project.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewProjectResponse(p))
	}
	return out
}

func NewOwnedProjectResponses(items []project.Owned) []OwnedProjectResponse {
	out := make([]OwnedProjectResponse, 0, len(items))
	for _, o := range items {
		out = append(out, OwnedProjectResponse{ID: o.ID, Name: o.Name, TeamSize: o.TeamSize, TeamCount: o.TeamCount, CreatedAt: o.CreatedAt})
	}
	return out
}

func NewTeamMemberResponses(items []project.TeamMember) []TeamMemberResponse {
	out := make([]TeamMemberResponse, 0, len(items))
	for _, m := range items {
		skills := m.Skills
		if skills == nil {
			skills = []string{}
		}
		out = append(out, TeamMemberResponse{UserID: m.UserID, Name: m.Name, Skills: skills, JoinedAt: m.JoinedAt})
	}
	return out
}
