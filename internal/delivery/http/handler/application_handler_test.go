package handler

import (
	"context"
	"net/http"
	"testing"

	"skill-matcher/internal/delivery/http/dto"
	"skill-matcher/internal/domain/project"
	"skill-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplicationUsecase struct {
	withdrawErr error
	reviewErr   error
	reviewed    project.ApplicationStatus
}

func (f *fakeApplicationUsecase) Withdraw(context.Context, uuid.UUID, uuid.UUID) error {
	return f.withdrawErr
}

func (f *fakeApplicationUsecase) Review(_ context.Context, _ uuid.UUID, id uuid.UUID, status project.ApplicationStatus) (project.Application, error) {
	f.reviewed = status
	if f.reviewErr != nil {
		return project.Application{}, f.reviewErr
	}
	return project.Application{ID: id, Status: status}, nil
}

func applicationApp(uc usecase.ApplicationUsecase) *fiber.App {
	return newTestApp(nil, func(r fiber.Router) {
		NewApplicationHandler(uc).RegisterRoutes(r.Group("/applications"))
	})
}

func TestApplicationHandler_Withdraw(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{nil, http.StatusOK},
		{usecase.ErrApplicationNotFound, http.StatusNotFound},
		{usecase.ErrApplicationNotPending, http.StatusConflict},
	}
	for _, tc := range cases {
		app := applicationApp(&fakeApplicationUsecase{withdrawErr: tc.err})
		status, _ := doRequest(t, app, http.MethodDelete, "/applications/"+uuid.NewString(), bearer(t, uuid.New()), nil)
		assert.Equal(t, tc.status, status, "err=%v", tc.err)
	}
}

func TestApplicationHandler_UpdateStatus(t *testing.T) {
	uc := &fakeApplicationUsecase{}
	app := applicationApp(uc)
	path := "/applications/" + uuid.NewString() + "/status"
	auth := bearer(t, uuid.New())

	status, env := doRequest(t, app, http.MethodPut, path, auth, map[string]string{"status": "Accepted"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, project.StatusAccepted, uc.reviewed)
	var out dto.ApplicationResponse
	decodeData(t, env, &out)
	assert.Equal(t, "accepted", out.Status)

	status, _ = doRequest(t, app, http.MethodPut, path, auth, map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestApplicationHandler_UpdateStatusErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrForbidden, http.StatusForbidden},
		{usecase.ErrTeamFull, http.StatusConflict},
		{usecase.ErrApplicationNotPending, http.StatusConflict},
	}
	for _, tc := range cases {
		app := applicationApp(&fakeApplicationUsecase{reviewErr: tc.err})
		status, _ := doRequest(t, app, http.MethodPut, "/applications/"+uuid.NewString()+"/status", bearer(t, uuid.New()), map[string]string{"status": "rejected"})
		assert.Equal(t, tc.status, status, "err=%v", tc.err)
	}
}
