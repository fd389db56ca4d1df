package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"skill-matcher/internal/delivery/http/middleware"
	"skill-matcher/internal/logger"
	"skill-matcher/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

var testJWT = jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)

// newTestApp mounts routes behind the error middleware; protected ones also behind auth.
func newTestApp(public, protected func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(logger.Discard()).Middleware())
	if public != nil {
		public(app)
	}
	if protected != nil {
		protected(app.Group("", middleware.NewAuthMiddleware(testJWT).Middleware()))
	}
	return app
}

func bearer(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	tok, err := testJWT.GenerateAccessToken(userID, "user@example.com")
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, method, path, auth string, body any) (int, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

