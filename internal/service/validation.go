package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"blogkeeper/models"
)

const (
	maxTitleLength    = 100
	minContentLength  = 10
	minPasswordLength = 6
)

// emailPattern is deliberately loose: it rejects obvious garbage without
// trying to police the full RFC grammar.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateUser checks a registration payload and collects every failed
// field into a single *ValidationError.
func validateUser(user models.User) error {
	var messages []string

	if strings.TrimSpace(user.Username) == "" {
		messages = append(messages, "Please add a username")
	}
	if strings.TrimSpace(user.Email) == "" || !emailPattern.MatchString(user.Email) {
		messages = append(messages, "Please add a valid email")
	}
	if utf8.RuneCountInString(user.Password) < minPasswordLength {
		messages = append(messages, "Password must be at least 6 characters")
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

// validatePostDraft checks a new post before slug assignment.
func validatePostDraft(post models.Post) error {
	var messages []string

	if strings.TrimSpace(post.Title) == "" {
		messages = append(messages, "Please add a title")
	} else if utf8.RuneCountInString(post.Title) > maxTitleLength {
		messages = append(messages, "Title cannot be more than 100 characters")
	}

	if strings.TrimSpace(post.Content) == "" {
		messages = append(messages, "Please add content")
	} else if utf8.RuneCountInString(post.Content) < minContentLength {
		messages = append(messages, "Content must be at least 10 characters")
	}

	if post.CategoryID == 0 {
		messages = append(messages, "Please add a category")
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

// validatePostUpdate applies the same field rules as validatePostDraft, but
// only to the fields the update actually carries.
func validatePostUpdate(update models.PostUpdate) error {
	var messages []string

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			messages = append(messages, "Please add a title")
		} else if utf8.RuneCountInString(*update.Title) > maxTitleLength {
			messages = append(messages, "Title cannot be more than 100 characters")
		}
	}

	if update.Content != nil {
		if strings.TrimSpace(*update.Content) == "" {
			messages = append(messages, "Please add content")
		} else if utf8.RuneCountInString(*update.Content) < minContentLength {
			messages = append(messages, "Content must be at least 10 characters")
		}
	}

	if update.CategoryID != nil && *update.CategoryID == 0 {
		messages = append(messages, "Please add a category")
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

// validateCategory checks a new category.
func validateCategory(category models.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return &ValidationError{Messages: []string{"Please add a category name"}}
	}
	return nil
}
