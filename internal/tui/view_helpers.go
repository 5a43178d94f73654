package tui

import (
	"errors"
	"strings"

	"blogkeeper/internal/adapter"
	"blogkeeper/internal/service"
	"blogkeeper/internal/store"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  " + helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// errorText translates service and transport errors into the short messages
// shown in the error overlay.
func errorText(err error) string {
	if err == nil {
		return ""
	}

	if ve, ok := service.AsValidationError(err); ok {
		return strings.Join(ve.Messages, "\n")
	}

	switch {
	case errors.Is(err, adapter.ErrServerUnreachable):
		return "Unable to load"
	case errors.Is(err, service.ErrWrongPassword):
		return "Invalid credentials"
	case errors.Is(err, service.ErrTokenIsExpired), errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Your session has expired, please log in again"
	case errors.Is(err, service.ErrNotPostAuthor):
		return "You can only modify your own posts"
	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"
	default:
		return err.Error()
	}
}
