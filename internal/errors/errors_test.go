package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"wrapped privilege", fmt.Errorf("edit permission: %w", ErrInsufficientPrivilege), http.StatusForbidden, "INSUFFICIENT_PRIVILEGE"},
		{"admin protected", ErrAdminProtected, http.StatusForbidden, "ADMIN_PROTECTED"},
		{"duplicate", ErrDuplicateUser, http.StatusConflict, "DUPLICATE_USER"},
		{"name taken", ErrNameTaken, http.StatusConflict, "NAME_TAKEN"},
		{"weekday", ErrInvalidWeekday, http.StatusBadRequest, "INVALID_WEEKDAY"},
		{"password too long", fmt.Errorf("register: %w", ErrPasswordTooLong), http.StatusBadRequest, "PASSWORD_TOO_LONG"},
		{"empty comment", ErrEmptyComment, http.StatusBadRequest, "EMPTY_COMMENT"},
		{"malformed import", fmt.Errorf("decode: %w", ErrMalformedImport), http.StatusBadRequest, "MALFORMED_IMPORT"},
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"storage", Storage("find user", errors.New("connection refused")), http.StatusInternalServerError, "STORAGE_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := Storage("set entry", cause)

	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "set entry: disk full", err.Error())
	assert.Nil(t, Storage("noop", nil))

	var se *StorageError
	assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &se))
	assert.Equal(t, "set entry", se.Op)
}

func TestMapErrorToHTTP_StorageDoesNotLeakCause(t *testing.T) {
	httpErr := MapErrorToHTTP(Storage("find user", errors.New("password=secret")))
	assert.Equal(t, "storage error", httpErr.ToErrorResponse().Error)
}
