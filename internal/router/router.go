package router

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"skolmaten/internal/auth"
	"skolmaten/internal/handler"
	"skolmaten/internal/logging"
	"skolmaten/internal/service"
)

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Users    *handler.UserHandler
	Menu     *handler.MenuHandler
	Comments *handler.CommentHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	signer *auth.JWTService,
	tokens service.TokenService,
	h Handlers,
	log logging.Logger,
) {
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))
	e.Use(middleware.Recover())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", Identify(tokens, log))

	// Signature check first, then the stored-token lookup done by Identify.
	secured := []echo.MiddlewareFunc{
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  signer.Secret(),
			TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + handler.TokenCookie,
		}),
		RequireIdentity,
	}

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/menu/current", h.Menu.CurrentWeek)
	api.GET("/menu/weeks/:year/:week", h.Menu.Week)
	api.GET("/menu/years/:year", h.Menu.Year)
	api.GET("/menu/:year/:week/:weekday", h.Menu.Day)
	api.GET("/comments", h.Comments.ListAll)
	api.GET("/comments/:year/:week/:weekday", h.Comments.ListForDay)

	// Session routes
	api.POST("/auth/logout", h.Auth.Logout, secured...)
	api.GET("/me", h.Auth.Me, secured...)

	// User routes
	api.GET("/users", h.Users.ListUsers, secured...)
	api.POST("/users/invite", h.Users.Invite, secured...)
	api.PUT("/users/:id/permission", h.Users.EditPermission, secured...)
	api.PUT("/users/:id/display", h.Users.EditDisplayName, secured...)
	api.PUT("/users/:id/login", h.Users.EditLoginName, secured...)
	api.PUT("/users/:id/password", h.Users.ChangePassword, secured...)
	api.POST("/users/:id/revoke", h.Users.RevokeSessions, secured...)
	api.DELETE("/users/:id", h.Users.DeleteAccount, secured...)

	// Menu routes
	api.PUT("/menu/:year/:week/:weekday", h.Menu.SetEntry, secured...)
	api.DELETE("/menu/:year/:week/:weekday", h.Menu.ClearEntry, secured...)
	api.POST("/menu/import", h.Menu.Import, secured...)

	// Comment routes
	api.POST("/comments/:year/:week/:weekday", h.Comments.Add, secured...)
	api.DELETE("/comments/:id", h.Comments.Delete, secured...)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns the request validator used by every handler.
func NewValidator() *CustomValidator {
	v := validator.New()
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	return &CustomValidator{validator: v}
}

// maxBytes bounds a string by its encoded length; max counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
