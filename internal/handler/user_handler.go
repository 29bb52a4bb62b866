package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skolmaten/internal/model"
	"skolmaten/internal/policy"
)

// UserHandler serves account management.
type UserHandler struct {
	guard *policy.Guard
}

// NewUserHandler creates a handler layer.
func NewUserHandler(guard *policy.Guard) *UserHandler {
	return &UserHandler{guard: guard}
}

// InviteRequest registers an account with a chosen starting level.
type InviteRequest struct {
	Username string      `json:"username" validate:"required,max=64"`
	Password string      `json:"password" validate:"required,maxbytes=72"`
	Level    model.Level `json:"level"`
}

// PermissionRequest carries a level, as a number or a name.
type PermissionRequest struct {
	Level model.Level `json:"level"`
}

// DisplayNameRequest carries a new display name.
type DisplayNameRequest struct {
	Display string `json:"display" validate:"required,max=255"`
}

// LoginNameRequest carries a new login name.
type LoginNameRequest struct {
	Username string `json:"username" validate:"required,max=64"`
}

// PasswordRequest changes a password.
type PasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,maxbytes=72"`
}

// ListUsers godoc
// @Summary List users
// @Description Moderators see every account, everybody else only their own.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.guard.ListUsers(c.Request().Context(), CurrentIdentity(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Invite godoc
// @Summary Register an account on someone's behalf
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body InviteRequest true "Account data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/invite [post]
func (h *UserHandler) Invite(c echo.Context) error {
	var req InviteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.guard.Invite(c.Request().Context(), CurrentIdentity(c), req.Username, req.Password, req.Level)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// EditPermission godoc
// @Summary Set a user's permission level
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body PermissionRequest true "New level"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/permission [put]
func (h *UserHandler) EditPermission(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}
	var req PermissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.guard.EditPermission(c.Request().Context(), CurrentIdentity(c), id, req.Level); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "permission updated"})
}

// EditDisplayName godoc
// @Summary Change a display name
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body DisplayNameRequest true "New display name"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/{id}/display [put]
func (h *UserHandler) EditDisplayName(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}
	var req DisplayNameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.guard.EditDisplayName(c.Request().Context(), CurrentIdentity(c), id, req.Display); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "display name updated"})
}

// EditLoginName godoc
// @Summary Change a login name
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body LoginNameRequest true "New login name"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/{id}/login [put]
func (h *UserHandler) EditLoginName(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}
	var req LoginNameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.guard.EditLoginName(c.Request().Context(), CurrentIdentity(c), id, req.Username); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "login name updated"})
}

// ChangePassword godoc
// @Summary Change a password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body PasswordRequest true "Old and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/{id}/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}
	var req PasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.guard.ChangePassword(c.Request().Context(), CurrentIdentity(c), id, req.OldPassword, req.NewPassword); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "password changed"})
}

// RevokeSessions godoc
// @Summary Sign a user out
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/revoke [post]
func (h *UserHandler) RevokeSessions(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}
	if err := h.guard.RevokeSessions(c.Request().Context(), CurrentIdentity(c), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "sessions revoked"})
}

// DeleteAccount godoc
// @Summary Delete an account
// @Description The account is redacted, its id and comments stay.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}
	if err := h.guard.DeleteAccount(c.Request().Context(), CurrentIdentity(c), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "account deleted"})
}
