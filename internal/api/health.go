// Copyright (c) 2026 Linkstash. All rights reserved.

package api

import (
	"context"
	"net/http"

	"github.com/tdvu/linkstash/internal/platform/constants"
	"github.com/tdvu/linkstash/internal/platform/respond"
)

// DependencyCheck probes one backing service.
type DependencyCheck func(ctx context.Context) error

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checks map[string]DependencyCheck
}

// NewHealthHandler creates the probe handler with named dependency checks.
//
// # Example
//
//	api.NewHealthHandler(map[string]api.DependencyCheck{
//	    "postgres": func(ctx context.Context) error { return postgres.Ping(ctx, pool) },
//	    "redis":    func(ctx context.Context) error { return redis.Ping(ctx, client) },
//	})
func NewHealthHandler(checks map[string]DependencyCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Liveness handles GET /health. It answers 200 as long as the process serves
// requests; backing services are deliberately not consulted.
func (h *HealthHandler) Liveness(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusOK, map[string]string{
		constants.FieldStatus: "ok",
		"name":                constants.AppName,
		"version":             constants.AppVersion,
	})
}

// Readiness handles GET /ready. It probes every registered dependency and
// answers 503 if any of them fails, so load balancers stop routing traffic
// before requests start erroring.
func (h *HealthHandler) Readiness(writer http.ResponseWriter, request *http.Request) {
	results := make(map[string]string, len(h.checks))
	healthy := true

	for name, check := range h.checks {
		if err := check(request.Context()); err != nil {
			results[name] = err.Error()
			healthy = false
			continue
		}
		results[name] = "ok"
	}

	status := http.StatusOK
	overall := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	respond.JSON(writer, status, map[string]any{
		constants.FieldStatus: overall,
		constants.FieldChecks: results,
	})
}
