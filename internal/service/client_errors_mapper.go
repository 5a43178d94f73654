package service

import (
	"errors"
	"strings"

	"blogkeeper/internal/adapter"
	"blogkeeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into the business
// errors the rest of the client reasons about. The message literals match
// the server's error normalizer output.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractMessage(err)

	switch {
	case errors.Is(err, adapter.ErrInvalidData):
		return &ValidationError{Messages: strings.Split(msg, ", ")}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case "Invalid credentials":
			return ErrWrongPassword
		case "Token expired":
			return ErrTokenIsExpired
		default:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		return ErrNotPostAuthor

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrPostNotFound
	}

	return err
}

// extractMessage extracts the server message from an error of the form
// "sentinel: <message>".
func extractMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
