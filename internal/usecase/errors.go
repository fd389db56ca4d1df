package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInvalidInput        = errors.New("invalid input")
	ErrForbidden           = errors.New("forbidden")
	ErrInternal            = errors.New("internal error")

	ErrProjectNotFound       = errors.New("project not found")
	ErrApplicationNotFound   = errors.New("application not found")
	ErrAlreadyApplied        = errors.New("already applied")
	ErrAlreadyMember         = errors.New("already a team member")
	ErrApplicationNotPending = errors.New("application is not pending")
	ErrTeamFull              = errors.New("team is full")
)
