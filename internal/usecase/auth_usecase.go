package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"skill-matcher/internal/domain/user"
	"skill-matcher/internal/pkg/jwt"
	ucauth "skill-matcher/internal/usecase/auth"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SessionStore tracks live refresh tokens so each can be used once.
type SessionStore interface {
	SaveRefresh(ctx context.Context, tokenID, userID string, ttl time.Duration) error
	ConsumeRefresh(ctx context.Context, tokenID, userID string) (bool, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	authSvc    *ucauth.Service
	users      user.Repository
	jwt        jwt.Service
	sessions   SessionStore
	refreshTTL time.Duration
	log        *logrus.Logger
}

func NewAuthUsecase(authSvc *ucauth.Service, users user.Repository, jwtSvc jwt.Service, sessions SessionStore, refreshTTL time.Duration, log *logrus.Logger) *Auth {
	return &Auth{
		authSvc:    authSvc,
		users:      users,
		jwt:        jwtSvc,
		sessions:   sessions,
		refreshTTL: refreshTTL,
		log:        log,
	}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, TokenPair, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}

	pair, err := u.issue(ctx, usr)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return usr, pair, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, TokenPair, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}

	pair, err := u.issue(ctx, usr)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return usr, pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) || claims.ID == "" {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	if u.sessions != nil {
		live, err := u.sessions.ConsumeRefresh(ctx, claims.ID, claims.UserID.String())
		switch {
		case err != nil:
			u.logger().WithError(err).Warn("refresh session check skipped")
		case !live:
			return TokenPair{}, ErrInvalidRefreshToken
		}
	}

	usr, err := u.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrUnauthorized
		}
		return TokenPair{}, ErrInternal
	}

	return u.issue(ctx, usr)
}

func (u *Auth) issue(ctx context.Context, usr user.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, jti, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}

	if u.sessions != nil {
		if err := u.sessions.SaveRefresh(ctx, jti, usr.ID.String(), u.refreshTTL); err != nil {
			u.logger().WithError(err).Warn("refresh session not stored")
		}
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (u *Auth) logger() logrus.FieldLogger {
	if u.log == nil {
		return logrus.StandardLogger()
	}
	return u.log
}
