//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres"
	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/moodentry"
	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/schedulerstate"
	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/calmbird/moodtrack-backend/internal/adapter/postgres/token"
	userrepo "github.com/calmbird/moodtrack-backend/internal/adapter/postgres/user"
	authpkg "github.com/calmbird/moodtrack-backend/internal/auth"
	"github.com/calmbird/moodtrack-backend/internal/config"
	analyticssvc "github.com/calmbird/moodtrack-backend/internal/service/analytics"
	authsvc "github.com/calmbird/moodtrack-backend/internal/service/auth"
	"github.com/calmbird/moodtrack-backend/internal/service/moodlog"
	"github.com/calmbird/moodtrack-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	userRepo := userrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)
	moodRepo := moodentry.New(pool)
	stateRepo := schedulerstate.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:       "test-secret-at-least-32-chars-long!!",
		JWTIssuer:       "test-issuer",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 720 * time.Hour,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, userRepo, tokenRepo, postgres.NewTxManager(pool), jwtMgr, authCfg)
	analyticsService := analyticssvc.NewService(logger, moodRepo, stateRepo, nil)
	moodService := moodlog.NewService(logger, moodRepo, analyticsService)

	cfg := &config.Config{
		Auth: authCfg,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
	}

	handler, cleanup := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Config:    cfg,
		Health:    rest.NewHealthHandler(pool, "e2e-test"),
		Auth:      rest.NewAuthHandler(authService, logger),
		Moods:     rest.NewMoodHandler(moodService, logger),
		Analytics: rest.NewAnalyticsHandler(analyticsService, logger),
		Validator: authService,
	})
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers
// ---------------------------------------------------------------------------

// doJSON sends a JSON request and decodes the JSON response body.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()

	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		require.NoError(t, json.NewEncoder(body).Encode(payload))
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if resp.ContentLength != 0 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	}
	return resp.StatusCode, result
}

// registerUser registers a fresh account and returns its token pair.
func registerUser(t *testing.T, ts *testServer) (accessToken, refreshToken string) {
	t.Helper()

	email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())
	status, result := ts.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    email,
		"name":     "E2E User",
		"password": "a-sufficiently-long-password",
	})
	require.Equal(t, http.StatusCreated, status, "register failed: %v", result)

	accessToken, _ = result["accessToken"].(string)
	refreshToken, _ = result["refreshToken"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	return accessToken, refreshToken
}
