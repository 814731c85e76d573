package domain

// Authorization rules are pure, total functions: no I/O, never fail.
// Callers translate a false result into HTTP 403.
//
// The two rules are deliberately asymmetric: comment mutation is strictly
// ownership-based with no admin override, while post deletion is admin-only
// regardless of who owns the post.

// CanModifyComment reports whether actingID may edit or delete a comment
// owned by ownerID.
func CanModifyComment(ownerID, actingID string) bool {
	return ownerID == actingID
}

// CanDeletePost reports whether the acting identity may delete a post.
// Post ownership is irrelevant here.
func CanDeletePost(actor AuthIdentity) bool {
	return actor.IsAdmin
}
