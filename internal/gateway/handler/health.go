package handler

import (
	"log"
	"net/http"
)

const (
	serviceName    = "Code Review Assistant"
	serviceVersion = "1.0.0"
)

// ReadinessChecker reports whether the model client can be constructed.
// The check is configuration-only and never touches the network.
type ReadinessChecker interface {
	Ready() error
}

type HealthHandler struct {
	checker ReadinessChecker
}

func NewHealthHandler(checker ReadinessChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := h.checker.Ready(); err != nil {
		log.Printf("health check failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":         "unhealthy",
			"service":        serviceName,
			"version":        serviceVersion,
			"api_configured": false,
			"error":          err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"service":        serviceName,
		"version":        serviceVersion,
		"api_configured": true,
	})
}
