package user

import (
	"context"
	"errors"
	"strings"

	"skill-matcher/internal/domain/skill"
	"skill-matcher/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

type SkillStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type Profile struct {
	User   user.User
	Skills []skill.Labeled
}

type UpdateProfileInput struct {
	Name   *string
	Skills *[]string
}

type Service struct {
	users       user.Repository
	skills      SkillStore
	categorizer *skill.Categorizer
}

func NewService(users user.Repository, skills SkillStore, categorizer *skill.Categorizer) *Service {
	return &Service{users: users, skills: skills, categorizer: categorizer}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, ErrInternal
	}

	skills, err := s.skills.ListByUser(ctx, userID)
	if err != nil {
		return Profile{}, ErrInternal
	}
	usr.Skills = skills
	usr.PasswordHash = ""

	return Profile{User: usr, Skills: s.categorizer.Label(skills)}, nil
}

// UpdateProfile writes the name and skill set together; a failure leaves both
// unchanged.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (Profile, error) {
	var upd user.ProfileUpdate
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Profile{}, ErrInvalidInput
		}
		upd.Name = &name
	}
	if in.Skills != nil {
		skills := skill.Dedupe(*in.Skills)
		upd.Skills = &skills
	}

	if upd.Name != nil || upd.Skills != nil {
		if err := s.users.UpdateProfile(ctx, userID, upd); err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return Profile{}, ErrNotFound
			}
			return Profile{}, ErrInternal
		}
	}

	return s.GetProfile(ctx, userID)
}

// Skills returns the user's stored skill labels.
func (s *Service) Skills(ctx context.Context, userID uuid.UUID) ([]string, error) {
	skills, err := s.skills.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return skills, nil
}
