package dto

import (
	"time"

	"github.com/google/uuid"

	"skill-matcher/internal/domain/skill"
	"skill-matcher/internal/domain/user"
)

type SkillResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileResponse struct {
	UserResponse
	SkillCategories []SkillResponse `json:"skill_categories"`
}

type AuthResponse struct {
	User         *UserResponse `json:"user,omitempty"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}

func NewUserResponse(u user.User) UserResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Skills: skills, CreatedAt: u.CreatedAt}
}

func NewSkillResponses(items []skill.Labeled) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SkillResponse{Name: it.Name, Category: string(it.Category)})
	}
	return out
}
