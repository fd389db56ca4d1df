package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"skill-matcher/internal/app"
	"skill-matcher/internal/config"
	"skill-matcher/internal/database"
	"skill-matcher/internal/database/migration"
	dbpostgres "skill-matcher/internal/database/postgres"
	"skill-matcher/internal/domain/skill"
	"skill-matcher/internal/infrastructure/cache"
	"skill-matcher/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	User struct {
		ID string `json:"id"`
	} `json:"user"`
	AccessToken string `json:"access_token"`
}

type idData struct {
	ID string `json:"id"`
}

func startPostgres(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "skill_matcher_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port.Port(),
		DBName:     "skill_matcher_test",
		DBUser:     "test",
		DBPassword: "test",
		DBSSLMode:  "disable",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	runner := migration.Runner{}
	require.NoError(t, runner.Run(ctx, db.SQLDB()))
	version, err := runner.Version(ctx, db.SQLDB())
	require.NoError(t, err)
	require.EqualValues(t, 3, version)
	return db
}

func newServer(t *testing.T, db database.DB) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{AppName: "skill-matcher-test", Environment: "test"},
		JWT: config.JWTConfig{
			AccessSecret:     "access-secret",
			RefreshSecret:    "refresh-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: time.Hour,
		},
		RateLimit: config.RateLimitConfig{AuthLimit: 100, AuthPeriod: time.Minute},
	}
	log := logger.Discard()

	c := app.Assemble(cfg, log, db, cache.NewRedisFromClient(nil, log), skill.NewCategorizer(skill.DefaultTaxonomy()))
	t.Cleanup(c.Hub.Stop)
	return app.New(c).Fiber
}

func call(t *testing.T, srv *fiber.App, method, path, token string, body any) (int, semanticResponse) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	require.NoError(t, err)
	defer resp.Body.Close()

	var out semanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func register(t *testing.T, srv *fiber.App, name string, skills []string) authData {
	t.Helper()

	status, res := call(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"name":     name,
		"email":    fmt.Sprintf("%s@example.com", name),
		"password": "password123",
		"skills":   skills,
	})
	require.Equal(t, http.StatusCreated, status, res.Message)

	var a authData
	require.NoError(t, json.Unmarshal(res.Data, &a))
	require.NotEmpty(t, a.AccessToken)
	return a
}

func TestIntegration_ProjectTeamFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	srv := newServer(t, startPostgres(t, ctx))

	owner := register(t, srv, "owner", []string{"Go", "React"})
	applicant := register(t, srv, "applicant", []string{" go ", "Figma"})
	late := register(t, srv, "late", []string{"SEO"})

	status, res := call(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"name": "dup", "email": "OWNER@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, status, res.Message)

	status, res = call(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"name": "long", "email": "long@example.com", "password": strings.Repeat("p", 73),
	})
	assert.Equal(t, http.StatusBadRequest, status, res.Message)

	status, res = call(t, srv, http.MethodPost, "/api/v1/projects", owner.AccessToken, map[string]any{
		"name":            "Team finder",
		"description":     "Match people to projects",
		"team_size":       2,
		"required_skills": []string{"Go", "Figma", "SEO"},
	})
	require.Equal(t, http.StatusCreated, status, res.Message)
	var proj idData
	require.NoError(t, json.Unmarshal(res.Data, &proj))
	base := "/api/v1/projects/" + proj.ID

	status, res = call(t, srv, http.MethodGet, base+"/match", applicant.AccessToken, nil)
	require.Equal(t, http.StatusOK, status)
	var match struct {
		MatchScore int `json:"match_score"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &match))
	assert.Equal(t, 67, match.MatchScore)

	status, res = call(t, srv, http.MethodGet, "/api/v1/projects/recommended", applicant.AccessToken, nil)
	require.Equal(t, http.StatusOK, status)
	var recs []idData
	require.NoError(t, json.Unmarshal(res.Data, &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, proj.ID, recs[0].ID)

	status, res = call(t, srv, http.MethodGet, "/api/v1/projects/recommended", owner.AccessToken, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(res.Data, &recs))
	assert.Empty(t, recs)

	status, res = call(t, srv, http.MethodPost, base+"/apply", applicant.AccessToken, nil)
	require.Equal(t, http.StatusCreated, status, res.Message)
	var application idData
	require.NoError(t, json.Unmarshal(res.Data, &application))

	status, _ = call(t, srv, http.MethodPost, base+"/apply", applicant.AccessToken, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = call(t, srv, http.MethodPost, base+"/apply", owner.AccessToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, srv, http.MethodGet, base+"/applications", applicant.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, res = call(t, srv, http.MethodPut, "/api/v1/applications/"+application.ID+"/status", owner.AccessToken, map[string]string{"status": "accepted"})
	require.Equal(t, http.StatusOK, status, res.Message)

	status, res = call(t, srv, http.MethodGet, base+"/team", owner.AccessToken, nil)
	require.Equal(t, http.StatusOK, status)
	var team []struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &team))
	assert.Len(t, team, 2)

	status, res = call(t, srv, http.MethodPost, base+"/apply", late.AccessToken, nil)
	require.Equal(t, http.StatusCreated, status, res.Message)
	var lateApp idData
	require.NoError(t, json.Unmarshal(res.Data, &lateApp))

	status, _ = call(t, srv, http.MethodPut, "/api/v1/applications/"+lateApp.ID+"/status", owner.AccessToken, map[string]string{"status": "accepted"})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = call(t, srv, http.MethodDelete, "/api/v1/applications/"+lateApp.ID, late.AccessToken, nil)
	assert.Equal(t, http.StatusOK, status)

	status, res = call(t, srv, http.MethodGet, "/api/v1/stats", "", nil)
	require.Equal(t, http.StatusOK, status)
	var stats struct {
		ProjectCount int `json:"project_count"`
		UserCount    int `json:"user_count"`
		MatchCount   int `json:"match_count"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &stats))
	assert.Equal(t, 1, stats.ProjectCount)
	assert.Equal(t, 3, stats.UserCount)
	assert.Equal(t, 1, stats.MatchCount)

	status, _ = call(t, srv, http.MethodDelete, base, applicant.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = call(t, srv, http.MethodDelete, base, owner.AccessToken, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, srv, http.MethodGet, base, owner.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
