package tui

import "blogkeeper/models"

type authDoneMsg struct {
	user models.User
}

type postsLoadedMsg struct {
	posts []models.LocalPost
	err   error
}

type categoriesLoadedMsg struct {
	categories []models.Category
	err        error
}

type refreshDoneMsg struct {
	err error
}

// mutationAcceptedMsg reports whether a mutation was accepted by the post
// controller. Acceptance only means the optimistic row was written; the
// server outcome follows as a mutationResultMsg.
type mutationAcceptedMsg struct {
	err error
}

type mutationResultMsg struct {
	result models.MutationResult
}

type categoryCreatedMsg struct {
	category models.Category
	err      error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
