package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// headerTraceID carries the request trace id. The blog's web client does not
// send one, so most requests get a fresh uuid, but log-shipping clients and
// upstream proxies may supply their own to correlate entries across systems.
const headerTraceID = "X-Trace-ID"

// withTraceID attaches a trace id to every request: taken from the incoming
// header when present, generated otherwise. A child logger carrying the id as
// a "trace_id" field is stored in the request context so every later log
// entry for this request is correlatable, and the id is echoed back in the
// response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerTraceID)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(headerTraceID, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
