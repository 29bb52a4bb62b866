package policy

import (
	"skolmaten/internal/auth"
	"skolmaten/internal/model"
)

// Ownable is implemented by resources that belong to a user.
type Ownable interface {
	GetUserID() int64
}

// OwnsOrModerates reports whether actor wrote resource or holds Moderator
// level, which bypasses ownership.
func OwnsOrModerates(actor *model.Identity, resource Ownable) bool {
	if actor == nil || resource == nil {
		return false
	}
	return auth.CanActOn(actor, resource.GetUserID())
}
