package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skolmaten/internal/model"
	"skolmaten/internal/policy"
	"skolmaten/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	guard       *policy.Guard
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, guard *policy.Guard) *AuthHandler {
	return &AuthHandler{authService: authService, guard: guard}
}

// CredentialsRequest carries a login name and password.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	Token string          `json:"token"`
	User  *model.Identity `json:"user"`
}

// Register godoc
// @Summary Register a new user and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.guard.SelfRegister(ctx, req.Username, req.Password)
	if err != nil {
		return domainError(err)
	}

	token, identity, err := h.authService.SignIn(ctx, user.Name, req.Password)
	if err != nil {
		return domainError(err)
	}

	setTokenCookie(c, token)
	return c.JSON(http.StatusCreated, AuthResponse{Token: token, User: identity})
}

// Login godoc
// @Summary Sign in
// @Description Issues a new session token; any token issued earlier stops working.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, identity, err := h.authService.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return domainError(err)
	}

	setTokenCookie(c, token)
	return c.JSON(http.StatusOK, AuthResponse{Token: token, User: identity})
}

// Logout godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.SignOut(c.Request().Context(), CurrentToken(c)); err != nil {
		return domainError(err)
	}

	c.SetCookie(&http.Cookie{Name: TokenCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

// Me godoc
// @Summary Current identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Identity
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, CurrentIdentity(c))
}

func setTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
