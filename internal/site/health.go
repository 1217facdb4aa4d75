package site

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/samarpantrust/outreach/internal/pkg/httputil"
)

// HealthStatus represents the overall health of the site.
type HealthStatus struct {
	Status string                    `json:"status"` // "healthy", "degraded", "unhealthy"
	Uptime string                    `json:"uptime"`
	Checks map[string]ComponentCheck `json:"checks"`
}

// ComponentCheck represents the health of a single dependency.
type ComponentCheck struct {
	Status  string `json:"status"` // "up", "down", "not_configured"
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}

// GET /health
// Always 200; the body carries the verdict. /health/ready is the probe that
// fails with 503.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := s.runChecks(r.Context())
	httputil.OK(w, HealthStatus{
		Status: overallStatus(checks),
		Uptime: time.Since(s.started).Truncate(time.Second).String(),
		Checks: checks,
	})
}

// GET /health/live
func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	httputil.OK(w, map[string]string{"status": "alive"})
}

// GET /health/ready
func (s *Server) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	if !s.subs.Available() {
		httputil.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready", "reason": "actor not available"})
		return
	}
	httputil.OK(w, map[string]string{"status": "ready"})
}

func (s *Server) runChecks(ctx context.Context) map[string]ComponentCheck {
	checks := make(map[string]ComponentCheck, 2)

	if s.subs.Available() {
		checks["actor"] = ComponentCheck{Status: "up"}
	} else {
		checks["actor"] = ComponentCheck{Status: "down", Message: "connection not established"}
	}

	if s.cache == nil || !s.cache.Enabled() {
		checks["redis"] = ComponentCheck{Status: "not_configured"}
		return checks
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	start := time.Now()
	if err := s.cache.Ping(pingCtx); err != nil {
		s.log.Warn().Err(err).Msg("redis health check failed")
		checks["redis"] = ComponentCheck{Status: "down", Message: "ping failed"}
	} else {
		checks["redis"] = ComponentCheck{Status: "up", Latency: fmt.Sprintf("%dms", time.Since(start).Milliseconds())}
	}
	return checks
}

// overallStatus is unhealthy without the actor and degraded without the
// cache.
func overallStatus(checks map[string]ComponentCheck) string {
	if checks["actor"].Status != "up" {
		return "unhealthy"
	}
	if checks["redis"].Status == "down" {
		return "degraded"
	}
	return "healthy"
}
