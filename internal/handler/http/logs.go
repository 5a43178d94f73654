package http

import (
	"encoding/json"
	"net/http"

	"blogkeeper/internal/logger"
	"blogkeeper/internal/service"
	"blogkeeper/internal/utils"
	"blogkeeper/models"
)

// ingestLogs relays client-side log batches into the server log stream so
// client failures are observable next to the requests that caused them.
// Ingestion is fire-and-forget: a malformed batch is the only error.
func (h *Handler) ingestLogs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var batch models.ClientLogBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	for _, entry := range batch.Logs {
		event := log.Info()
		switch entry.Level {
		case "error", "fatal":
			event = log.Error()
		case "warn":
			event = log.Warn()
		case "debug":
			event = log.Debug()
		}
		event.
			Str("source", "client").
			Str("client_timestamp", entry.Timestamp).
			Fields(entry.Context).
			Msg(entry.Message)
	}

	if _, err := utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing logs response")
	}
}
