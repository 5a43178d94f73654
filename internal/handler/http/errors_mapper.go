package http

import (
	"errors"
	"net/http"

	"blogkeeper/internal/logger"
	"blogkeeper/internal/service"
	"blogkeeper/internal/store"
	"blogkeeper/internal/utils"
	"blogkeeper/models"
)

// normalizedError is one row of the closed error mapping: the HTTP status
// plus the exact message the caller is allowed to see.
type normalizedError struct {
	status  int
	message string
}

var errorResponseMap = map[error]normalizedError{
	ErrMalformedID:           {http.StatusNotFound, "Resource not found"},
	ErrUnexpectedUploadField: {http.StatusBadRequest, "Too many files or invalid field name"},

	service.ErrInvalidDataProvided:     {http.StatusBadRequest, "Invalid data provided"},
	service.ErrWrongPassword:           {http.StatusUnauthorized, "Invalid credentials"},
	service.ErrTokenIsExpired:          {http.StatusUnauthorized, "Token expired"},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, "Invalid token"},
	service.ErrNotPostAuthor:           {http.StatusForbidden, "Forbidden"},

	store.ErrDuplicateValue:   {http.StatusBadRequest, "Duplicate field value entered"},
	store.ErrPostNotFound:     {http.StatusNotFound, "Resource not found"},
	store.ErrCategoryNotFound: {http.StatusNotFound, "Resource not found"},
	store.ErrNoUserWasFound:   {http.StatusNotFound, "Resource not found"},
	store.ErrCategoryInUse:    {http.StatusBadRequest, "Category is in use"},
	store.ErrImageTooLarge:    {http.StatusBadRequest, "File too large"},
	store.ErrStoreUnavailable: {http.StatusInternalServerError, "Database connection failed"},
}

// normalizeError collapses any error from the lower layers into the closed
// set of statuses and messages the API exposes. Validation errors carry
// their joined field messages; everything unrecognized is a bare 500.
func normalizeError(err error) normalizedError {
	if ve, ok := service.AsValidationError(err); ok {
		return normalizedError{http.StatusBadRequest, ve.Error()}
	}

	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			return response
		}
	}

	return normalizedError{http.StatusInternalServerError, "Server Error"}
}

// writeError logs the original error once and sends the normalized
// envelope. The logged payload and the response body are deliberately
// different objects: internal detail reaches the response only in dev mode.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	normalized := normalizeError(err)

	caller := "anonymous"
	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		caller = identity.Username
	}

	event := log.Warn()
	if normalized.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("caller", caller).
		Int("status", normalized.status).
		Msg("request failed")

	response := models.ErrorResponse{
		Success: false,
		Error:   normalized.message,
	}
	if h.devMode {
		response.Detail = err.Error()
	}

	if _, writeErr := utils.WriteJSON(w, response, normalized.status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
