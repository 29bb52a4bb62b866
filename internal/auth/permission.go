package auth

import (
	"skolmaten/internal/errors"
	"skolmaten/internal/model"
)

// HasPermission reports whether id's level satisfies required.
// Anonymous callers (nil) hold LevelNull and so never satisfy LevelUser or above.
func HasPermission(id *model.Identity, required model.Level) bool {
	return model.LevelOf(id) >= required
}

// CanAssign is the escalation guard: an actor may only hand out levels
// strictly below their own. This also rules out self-escalation.
func CanAssign(actor *model.Identity, level model.Level) error {
	if !level.Valid() {
		return errors.ErrInvalidLevel
	}
	if level >= model.LevelOf(actor) {
		return errors.ErrInsufficientPrivilege
	}
	return nil
}

// CanActOn reports whether actor may perform a self-service action on the
// account targetID: moderators may act on anyone, everyone else only on themselves.
func CanActOn(actor *model.Identity, targetID int64) bool {
	if actor == nil {
		return false
	}
	return HasPermission(actor, model.LevelModerator) || actor.ID == targetID
}
