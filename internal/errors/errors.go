package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for a bad login or a wrong current password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateUser is returned when registering a name that already exists.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrNameTaken is returned when renaming onto another user's login name.
	ErrNameTaken = errors.New("username already taken")
	// ErrAdminProtected is returned when mutating the seeded admin account.
	ErrAdminProtected = errors.New("the admin account is protected")
	// ErrInsufficientPrivilege is returned when the actor's level is too low.
	ErrInsufficientPrivilege = errors.New("insufficient privilege")
	// ErrUnauthenticated is returned when an action needs a signed-in user.
	ErrUnauthenticated = errors.New("not logged in")
	// ErrInvalidWeekday is returned for weekdays outside 1..5.
	ErrInvalidWeekday = errors.New("invalid weekday")
	// ErrInvalidWeek is returned for ISO weeks outside the year's range.
	ErrInvalidWeek = errors.New("invalid week")
	// ErrInvalidYear is returned for years outside 1..9999.
	ErrInvalidYear = errors.New("invalid year")
	// ErrInvalidLevel is returned for unknown permission levels.
	ErrInvalidLevel = errors.New("invalid permission level")
	// ErrPasswordTooLong is returned for passwords over bcrypt's 72-byte limit.
	ErrPasswordTooLong = errors.New("password longer than 72 bytes")
	// ErrInvalidName is returned when a login name is empty after canonicalisation.
	ErrInvalidName = errors.New("invalid username")
	// ErrEmptyComment is returned when a comment is blank.
	ErrEmptyComment = errors.New("comment is empty")
	// ErrMalformedImport is returned when a bulk menu import cannot be decoded.
	ErrMalformedImport = errors.New("malformed menu import")
	// ErrNotFound is returned when a user, token or comment does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStorage is matched by every StorageError.
	ErrStorage = errors.New("storage error")
)

// StorageError wraps a persistence failure that has no domain meaning.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrStorage) match any StorageError.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// Storage wraps err as a StorageError; nil stays nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

var httpMapping = []struct {
	err    error
	status int
	code   string
}{
	{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{ErrAdminProtected, http.StatusForbidden, "ADMIN_PROTECTED"},
	{ErrInsufficientPrivilege, http.StatusForbidden, "INSUFFICIENT_PRIVILEGE"},
	{ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{ErrDuplicateUser, http.StatusConflict, "DUPLICATE_USER"},
	{ErrNameTaken, http.StatusConflict, "NAME_TAKEN"},
	{ErrInvalidWeekday, http.StatusBadRequest, "INVALID_WEEKDAY"},
	{ErrInvalidWeek, http.StatusBadRequest, "INVALID_WEEK"},
	{ErrInvalidYear, http.StatusBadRequest, "INVALID_YEAR"},
	{ErrInvalidLevel, http.StatusBadRequest, "INVALID_LEVEL"},
	{ErrInvalidName, http.StatusBadRequest, "INVALID_NAME"},
	{ErrPasswordTooLong, http.StatusBadRequest, "PASSWORD_TOO_LONG"},
	{ErrEmptyComment, http.StatusBadRequest, "EMPTY_COMMENT"},
	{ErrMalformedImport, http.StatusBadRequest, "MALFORMED_IMPORT"},
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Storage failures and anything unclassified become a 500 without detail.
func MapErrorToHTTP(err error) *HTTPError {
	for _, m := range httpMapping {
		if errors.Is(err, m.err) {
			return NewHTTPError(m.status, m.err.Error(), m.code)
		}
	}
	if errors.Is(err, ErrStorage) {
		return NewHTTPError(http.StatusInternalServerError, "storage error", "STORAGE_ERROR")
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
