package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/calmbird/moodtrack-backend/internal/config"
	"github.com/calmbird/moodtrack-backend/internal/transport/middleware"
)

const authRateLimitPerMinute = 20

// tokenValidator resolves access tokens to user IDs for the auth middleware.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps holds everything the router needs to assemble the API.
type RouterDeps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Health    *HealthHandler
	Auth      *AuthHandler
	Moods     *MoodHandler
	Analytics *AnalyticsHandler
	Validator tokenValidator
}

// NewRouter assembles the HTTP routing table with the middleware stack.
// The returned cleanup func stops background middleware state.
func NewRouter(deps RouterDeps) (http.Handler, func()) {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	rl := middleware.NewRateLimiter(5 * time.Minute)
	authLimited := rl.Limit(authRateLimitPerMinute)

	mux.Handle("POST /api/v1/auth/register", authLimited(http.HandlerFunc(deps.Auth.Register)))
	mux.Handle("POST /api/v1/auth/login", authLimited(http.HandlerFunc(deps.Auth.Login)))
	mux.Handle("POST /api/v1/auth/refresh", authLimited(http.HandlerFunc(deps.Auth.Refresh)))
	mux.HandleFunc("POST /api/v1/auth/logout", deps.Auth.Logout)

	mux.HandleFunc("POST /api/v1/moods", deps.Moods.Create)
	mux.HandleFunc("GET /api/v1/moods", deps.Moods.List)

	mux.HandleFunc("GET /api/v1/analytics/snapshot", deps.Analytics.Snapshot)
	mux.HandleFunc("GET /api/v1/analytics/boosters", deps.Analytics.Boosters)

	handler := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.Config.CORS),
		middleware.Auth(deps.Validator),
	)(mux)

	return handler, rl.Stop
}
