package handlers

import (
	"net/http"
	"time"

	"github.com/botsuinsure/botsuinsure-api/internal/infra/catalog"
)

type HealthHandler struct {
	Sources      []catalog.SourceStatus
	ProductCount int
	StartTime    time.Time
}

type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version"`
	Uptime   string            `json:"uptime"`
	Products int               `json:"products"`
	Catalogs map[string]string `json:"catalogs"`
}

func NewHealthHandler(table *catalog.Table) *HealthHandler {
	return &HealthHandler{
		Sources:      table.Sources,
		ProductCount: len(table.Products),
		StartTime:    time.Now(),
	}
}

// Handle reports per-source catalog status. A source that failed to load
// degrades the service but never stops it: the remaining catalogs keep
// being served.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	catalogs := make(map[string]string, len(h.Sources))

	status := "healthy"
	for _, src := range h.Sources {
		if src.Loaded {
			catalogs[src.File] = "loaded"
		} else {
			catalogs[src.File] = "unavailable"
			status = "degraded"
		}
	}

	response := HealthResponse{
		Status:   status,
		Version:  "1.0.0",
		Uptime:   time.Since(h.StartTime).Round(time.Second).String(),
		Products: h.ProductCount,
		Catalogs: catalogs,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, response)
}
