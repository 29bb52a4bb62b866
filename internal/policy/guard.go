// Package policy applies the route-level permission rules on top of the
// stores. Every action takes the acting identity, nil for anonymous callers.
package policy

import (
	"context"

	"skolmaten/internal/auth"
	domainerrors "skolmaten/internal/errors"
	"skolmaten/internal/logging"
	"skolmaten/internal/model"
	"skolmaten/internal/service"
)

// Guard is the single entry point handlers use for mutating actions.
type Guard struct {
	credentials service.CredentialService
	tokens      service.TokenService
	menu        service.MenuService
	comments    service.CommentService
	log         logging.Logger
}

// NewGuard wires the guard to the stores it protects.
func NewGuard(
	credentials service.CredentialService,
	tokens service.TokenService,
	menu service.MenuService,
	comments service.CommentService,
	log logging.Logger,
) *Guard {
	return &Guard{
		credentials: credentials,
		tokens:      tokens,
		menu:        menu,
		comments:    comments,
		log:         log.With("component", "policy"),
	}
}

func requireIdentity(actor *model.Identity) error {
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}
	return nil
}

func requireLevel(actor *model.Identity, level model.Level) error {
	if err := requireIdentity(actor); err != nil {
		return err
	}
	if !auth.HasPermission(actor, level) {
		return domainerrors.ErrInsufficientPrivilege
	}
	return nil
}

func requireSelfOrModerator(actor *model.Identity, target int64) error {
	if err := requireIdentity(actor); err != nil {
		return err
	}
	if !auth.CanActOn(actor, target) {
		return domainerrors.ErrInsufficientPrivilege
	}
	return nil
}

// SelfRegister creates a plain User account. Anyone may call it.
func (g *Guard) SelfRegister(ctx context.Context, name, password string) (*model.User, error) {
	return g.credentials.Register(ctx, name, password, model.LevelUser)
}

// Invite registers an account on someone else's behalf with a starting level
// below the inviter's own.
func (g *Guard) Invite(ctx context.Context, actor *model.Identity, name, password string, level model.Level) (*model.User, error) {
	if err := requireLevel(actor, model.LevelModerator); err != nil {
		return nil, err
	}
	if err := auth.CanAssign(actor, level); err != nil {
		return nil, err
	}
	user, err := g.credentials.Register(ctx, name, password, level)
	if err != nil {
		return nil, err
	}
	g.log.Info(ctx, "user invited", "actor_id", actor.ID, "user_id", user.ID)
	return user, nil
}

// EditPermission sets target's level. The actor must outrank both the level
// being assigned and the target's current level.
func (g *Guard) EditPermission(ctx context.Context, actor *model.Identity, target int64, level model.Level) error {
	if err := requireLevel(actor, model.LevelModerator); err != nil {
		return err
	}
	if target == model.AdminID {
		return domainerrors.ErrAdminProtected
	}
	if err := auth.CanAssign(actor, level); err != nil {
		return err
	}

	user, err := g.credentials.Get(ctx, target)
	if err != nil {
		return err
	}
	if user.AuthLevel >= actor.Level {
		return domainerrors.ErrInsufficientPrivilege
	}
	return g.credentials.SetPermissionLevel(ctx, target, level)
}

// DeleteAccount soft-deletes target. The admin account is refused before
// anything else is looked at, including when the admin deletes themselves.
func (g *Guard) DeleteAccount(ctx context.Context, actor *model.Identity, target int64) error {
	if target == model.AdminID {
		return domainerrors.ErrAdminProtected
	}
	if err := requireSelfOrModerator(actor, target); err != nil {
		return err
	}
	return g.credentials.SoftDelete(ctx, target)
}

func (g *Guard) EditDisplayName(ctx context.Context, actor *model.Identity, target int64, display string) error {
	if err := requireSelfOrModerator(actor, target); err != nil {
		return err
	}
	return g.credentials.SetDisplayName(ctx, target, display)
}

func (g *Guard) EditLoginName(ctx context.Context, actor *model.Identity, target int64, name string) error {
	if err := requireSelfOrModerator(actor, target); err != nil {
		return err
	}
	return g.credentials.SetLoginName(ctx, target, name)
}

// ChangePassword always requires the old password, even for moderators.
func (g *Guard) ChangePassword(ctx context.Context, actor *model.Identity, target int64, oldPassword, newPassword string) error {
	if err := requireSelfOrModerator(actor, target); err != nil {
		return err
	}
	return g.credentials.ChangePassword(ctx, target, oldPassword, newPassword)
}

// RevokeSessions signs target out.
func (g *Guard) RevokeSessions(ctx context.Context, actor *model.Identity, target int64) error {
	if err := requireSelfOrModerator(actor, target); err != nil {
		return err
	}
	return g.tokens.RevokeUser(ctx, target)
}

// ListUsers returns the whole directory to moderators and only the caller's
// own account to everybody else.
func (g *Guard) ListUsers(ctx context.Context, actor *model.Identity) ([]model.User, error) {
	if err := requireIdentity(actor); err != nil {
		return nil, err
	}
	if auth.HasPermission(actor, model.LevelModerator) {
		return g.credentials.List(ctx)
	}
	self, err := g.credentials.Get(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return []model.User{*self}, nil
}

func (g *Guard) SetMenuEntry(ctx context.Context, actor *model.Identity, year, week, weekday int, text string) error {
	if err := requireLevel(actor, model.LevelFoodEditor); err != nil {
		return err
	}
	return g.menu.SetEntry(ctx, year, week, weekday, text)
}

// ClearMenuEntry blanks a day.
func (g *Guard) ClearMenuEntry(ctx context.Context, actor *model.Identity, year, week, weekday int) error {
	return g.SetMenuEntry(ctx, actor, year, week, weekday, "")
}

// AuthorizeImport reports whether actor may run a bulk import. Handlers call
// it before fetching a remote document.
func (g *Guard) AuthorizeImport(actor *model.Identity) error {
	return requireLevel(actor, model.LevelFoodEditor)
}

// ImportMenu applies a bulk import. Callers below FoodEditor are rejected
// outright; nothing is written.
func (g *Guard) ImportMenu(ctx context.Context, actor *model.Identity, entries []model.MenuEntry) (int, error) {
	if err := g.AuthorizeImport(actor); err != nil {
		return 0, err
	}
	n, err := g.menu.Import(ctx, entries)
	if err != nil {
		return 0, err
	}
	g.log.Info(ctx, "menu import applied", "actor_id", actor.ID, "entries", n)
	return n, nil
}

func (g *Guard) AddComment(ctx context.Context, actor *model.Identity, year, week, weekday int, text string) (*model.Comment, error) {
	if err := requireLevel(actor, model.LevelUser); err != nil {
		return nil, err
	}
	return g.comments.Add(ctx, year, week, weekday, actor.ID, text)
}

// DeleteComment soft-deletes a live comment and hard-deletes one that is
// already marked deleted. It reports whether the row was removed.
func (g *Guard) DeleteComment(ctx context.Context, actor *model.Identity, id int64) (bool, error) {
	if err := requireIdentity(actor); err != nil {
		return false, err
	}
	comment, err := g.comments.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if !OwnsOrModerates(actor, comment) {
		return false, domainerrors.ErrInsufficientPrivilege
	}

	if comment.IsDeleted() {
		if err := g.comments.HardDelete(ctx, id); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, g.comments.SoftDelete(ctx, id)
}
