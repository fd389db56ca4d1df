package handler

import (
	"skill-matcher/internal/delivery/http/dto"
	"skill-matcher/internal/delivery/http/middleware"
	"skill-matcher/internal/domain/matching"
	"skill-matcher/internal/pkg/response"
	"skill-matcher/internal/repository"
	"skill-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type createProjectRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	TeamSize       int      `json:"team_size"`
	RequiredSkills []string `json:"required_skills"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/recommended", h.Recommended)
	r.Get("/:id", h.Get)
	r.Delete("/:id", h.Delete)
	r.Get("/:id/team", h.Team)
	r.Get("/:id/match", h.Match)
	r.Get("/:id/application", h.ApplicationStatus)
	r.Post("/:id/apply", h.Apply)
	r.Get("/:id/applications", h.Applications)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.Name == "" || req.TeamSize <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Name and a positive team_size are required", nil, nil)
	}

	p, err := h.uc.Create(c.Context(), userID, usecase.CreateProjectInput{
		Name:           req.Name,
		Description:    req.Description,
		TeamSize:       req.TeamSize,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Project created", dto.NewProjectResponse(p))
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", repository.DefaultProjectListLimit)
	if err != nil {
		return err
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), usecase.ListProjectsParams{
		Query:  c.Query("q"),
		Skill:  c.Query("skill"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponses(items))
}

func (h *ProjectHandler) Recommended(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	limit, err := parseQueryIntStrict(c, "limit", matching.DefaultRecommendationLimit)
	if err != nil {
		return err
	}

	items, err := h.uc.Recommended(c.Context(), userID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.RecommendedProjectResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RecommendedProjectResponse{
			ProjectResponse: dto.NewProjectResponse(it.Project),
			MatchScore:      it.MatchScore,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	d, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProjectDetailResponse{
		ProjectResponse: dto.NewProjectResponse(d.Project),
		SkillCategories: dto.NewSkillResponses(d.Skills),
	})
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), userID, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Project deleted", nil)
}

func (h *ProjectHandler) Team(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	members, err := h.uc.Team(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTeamMemberResponses(members))
}

func (h *ProjectHandler) Match(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	score, err := h.uc.Match(c.Context(), userID, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchResponse{MatchScore: score})
}

func (h *ProjectHandler) ApplicationStatus(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	a, err := h.uc.ApplicationFor(c.Context(), userID, id)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.ApplicationStatusResponse{}
	if a != nil {
		res := dto.NewApplicationResponse(*a)
		out.HasApplied = true
		out.Application = &res
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProjectHandler) Apply(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	a, err := h.uc.Apply(c.Context(), userID, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted", dto.NewApplicationResponse(a))
}

func (h *ProjectHandler) Applications(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListApplications(c.Context(), userID, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponses(items))
}
