package rest

import (
	"context"
	"net/http"
	"time"
)

// pingTimeout bounds the database probe on /ready and /health.
const pingTimeout = 3 * time.Second

// dbPinger is the slice of *pgxpool.Pool the probes need.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

type healthStatus struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]componentHealth `json:"components,omitempty"`
	CheckedAt  time.Time                  `json:"checkedAt"`
}

type componentHealth struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// pingDatabase times a bounded ping against the pool.
func (h *HealthHandler) pingDatabase(ctx context.Context) (componentHealth, bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return componentHealth{Status: "down"}, false
	}
	return componentHealth{Status: "ok", Latency: time.Since(start).String()}, true
}

// Live reports process liveness and never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthStatus{Status: "ok", CheckedAt: time.Now()})
}

// Ready reports whether the database answers a ping within the timeout.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, up := h.pingDatabase(r.Context()); !up {
		writeJSON(w, http.StatusServiceUnavailable, healthStatus{Status: "down", CheckedAt: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, healthStatus{Status: "ok", CheckedAt: time.Now()})
}

// Health returns the per-component breakdown with the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db, up := h.pingDatabase(r.Context())

	body := healthStatus{
		Status:     "ok",
		Version:    h.version,
		Components: map[string]componentHealth{"database": db},
		CheckedAt:  time.Now(),
	}
	code := http.StatusOK
	if !up {
		body.Status = "down"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, body)
}
