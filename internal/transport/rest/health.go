package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

const defaultProbeTimeout = 3 * time.Second

// Pinger is a dependency the probes can check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health probes. Each
// dependency is registered under a component name.
type HealthHandler struct {
	version    string
	timeout    time.Duration
	components map[string]Pinger
	started    time.Time
}

// NewHealthHandler creates a HealthHandler. A non-positive timeout falls
// back to three seconds per probe.
func NewHealthHandler(version string, timeout time.Duration, components map[string]Pinger) *HealthHandler {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &HealthHandler{
		version:    version,
		timeout:    timeout,
		components: components,
		started:    time.Now(),
	}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Uptime     string                     `json:"uptime,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus is the probe result of one dependency.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live handles GET /live. The process answering is the whole check.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready handles GET /ready: 503 as soon as any component is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, healthy := h.probe(r.Context())

	status, code := "ok", http.StatusOK
	if !healthy {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health handles GET /health with per-component detail.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, healthy := h.probe(r.Context())

	status, code := "ok", http.StatusOK
	if !healthy {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Uptime:     time.Since(h.started).Truncate(time.Second).String(),
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) (map[string]ComponentStatus, bool) {
	names := make([]string, 0, len(h.components))
	for name := range h.components {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make(map[string]ComponentStatus, len(names))
	healthy := true

	for _, name := range names {
		pctx, cancel := context.WithTimeout(ctx, h.timeout)
		start := time.Now()
		err := h.components[name].Ping(pctx)
		latency := time.Since(start)
		cancel()

		if err != nil {
			healthy = false
			results[name] = ComponentStatus{Status: "down", Error: err.Error()}
			continue
		}
		results[name] = ComponentStatus{Status: "ok", Latency: latency.String()}
	}

	return results, healthy
}
