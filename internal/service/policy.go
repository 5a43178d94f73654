package service

import "blogkeeper/models"

// CanModify is the single ownership rule for post mutations: only the
// author may update or delete a post. Kept as a pure function so the rule
// is trivially testable and cannot drift between update and delete.
func CanModify(identity models.Identity, post models.Post) bool {
	return identity.UserID == post.AuthorID
}
