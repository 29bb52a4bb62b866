package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"skolmaten/internal/errors"
	"skolmaten/internal/model"
)

// Context keys set by the identity middleware.
const (
	IdentityKey = "identity"
	TokenKey    = "session_token"
)

// TokenCookie is the cookie the session token is also accepted from.
const TokenCookie = "token"

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// CurrentIdentity returns the caller, or nil for anonymous requests.
func CurrentIdentity(c echo.Context) *model.Identity {
	id, _ := c.Get(IdentityKey).(*model.Identity)
	return id
}

// CurrentToken returns the raw session token the request carried, if any.
func CurrentToken(c echo.Context) string {
	token, _ := c.Get(TokenKey).(string)
	return token
}

// ExtractToken reads the bearer token from the Authorization header and
// falls back to the token cookie. The scheme is matched case-insensitively,
// the same way echo-jwt's header extractor matches it.
func ExtractToken(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		const prefix = "Bearer "
		if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
			return strings.TrimSpace(h[len(prefix):])
		}
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// domainError converts a service or policy error into an echo HTTP error.
func domainError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message, code string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}
	return nil
}

func int64Param(c echo.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, badRequest("invalid "+name, "INVALID_PARAMETER")
	}
	return v, nil
}

func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, badRequest("invalid "+name, "INVALID_PARAMETER")
	}
	return v, nil
}

// dayParams reads the :year/:week/:weekday path segments.
func dayParams(c echo.Context) (year, week, weekday int, err error) {
	if year, err = intParam(c, "year"); err != nil {
		return
	}
	if week, err = intParam(c, "week"); err != nil {
		return
	}
	weekday, err = intParam(c, "weekday")
	return
}
