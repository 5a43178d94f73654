package http

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"blogkeeper/internal/logger"
	"blogkeeper/internal/utils"
	"blogkeeper/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	response := models.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Memory: models.HealthMemory{
			RSS:       formatMegabytes(stats.Sys),
			HeapUsed:  formatMegabytes(stats.HeapAlloc),
			HeapTotal: formatMegabytes(stats.HeapSys),
		},
		Environment: h.environment,
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing health response")
	}
}

func formatMegabytes(bytes uint64) string {
	return fmt.Sprintf("%dMB", bytes/(1<<20))
}
