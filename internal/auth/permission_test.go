package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skolmaten/internal/errors"
	"skolmaten/internal/model"
)

var allLevels = []model.Level{
	model.LevelNull,
	model.LevelUser,
	model.LevelFoodEditor,
	model.LevelModerator,
	model.LevelAdmin,
}

func identity(id int64, level model.Level) *model.Identity {
	return &model.Identity{ID: id, Name: "user", Level: level}
}

func TestHasPermission_Monotonic(t *testing.T) {
	for _, required := range allLevels {
		for i, level := range allLevels {
			if !HasPermission(identity(1, level), required) {
				continue
			}
			for _, higher := range allLevels[i:] {
				assert.True(t, HasPermission(identity(1, higher), required),
					"%s satisfies %s so %s must too", level, required, higher)
			}
		}
	}
}

func TestHasPermission_Anonymous(t *testing.T) {
	assert.True(t, HasPermission(nil, model.LevelNull))
	for _, required := range allLevels[1:] {
		assert.False(t, HasPermission(nil, required), "anonymous must not satisfy %s", required)
	}
}

func TestHasPermission_Table(t *testing.T) {
	tests := []struct {
		name     string
		level    model.Level
		required model.Level
		want     bool
	}{
		{"user reads", model.LevelUser, model.LevelUser, true},
		{"user cannot edit food", model.LevelUser, model.LevelFoodEditor, false},
		{"food editor edits food", model.LevelFoodEditor, model.LevelFoodEditor, true},
		{"food editor cannot moderate", model.LevelFoodEditor, model.LevelModerator, false},
		{"admin moderates", model.LevelAdmin, model.LevelModerator, true},
		{"deleted user cannot comment", model.LevelNull, model.LevelUser, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(identity(5, tt.level), tt.required))
		})
	}
}

func TestCanAssign_EscalationGuard(t *testing.T) {
	moderator := identity(2, model.LevelModerator)

	assert.NoError(t, CanAssign(moderator, model.LevelFoodEditor))
	assert.NoError(t, CanAssign(moderator, model.LevelUser))
	assert.NoError(t, CanAssign(moderator, model.LevelNull))
	assert.ErrorIs(t, CanAssign(moderator, model.LevelModerator), errors.ErrInsufficientPrivilege)
	assert.ErrorIs(t, CanAssign(moderator, model.LevelAdmin), errors.ErrInsufficientPrivilege)

	admin := identity(0, model.LevelAdmin)
	assert.NoError(t, CanAssign(admin, model.LevelModerator))
	assert.ErrorIs(t, CanAssign(admin, model.LevelAdmin), errors.ErrInsufficientPrivilege)

	assert.ErrorIs(t, CanAssign(nil, model.LevelNull), errors.ErrInsufficientPrivilege)
	assert.ErrorIs(t, CanAssign(admin, model.Level(7)), errors.ErrInvalidLevel)
}

func TestCanActOn_OwnershipOverride(t *testing.T) {
	assert.True(t, CanActOn(identity(4, model.LevelUser), 4), "self-service")
	assert.False(t, CanActOn(identity(4, model.LevelUser), 5))
	assert.False(t, CanActOn(identity(4, model.LevelFoodEditor), 5))
	assert.True(t, CanActOn(identity(4, model.LevelModerator), 5))
	assert.True(t, CanActOn(identity(0, model.LevelAdmin), 5))
	assert.False(t, CanActOn(nil, 5))
}
