package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skolmaten/internal/errors"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"bearer header", "Bearer abc", "", "abc"},
		{"lowercase scheme", "bearer abc", "", "abc"},
		{"uppercase scheme", "BEARER abc", "", "abc"},
		{"header wins over cookie", "Bearer abc", "def", "abc"},
		{"cookie fallback", "", "def", "def"},
		{"other scheme falls back to cookie", "Basic xyz", "def", "def"},
		{"nothing", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: TokenCookie, Value: tt.cookie})
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.want, ExtractToken(c))
		})
	}
}

func TestDomainError(t *testing.T) {
	err := domainError(fmt.Errorf("wrapped: %w", errors.ErrAdminProtected))
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
	assert.Equal(t, "ADMIN_PROTECTED", he.Message.(errors.ErrorResponse).Code)

	he = domainError(fmt.Errorf("boom")).(*echo.HTTPError)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}

func TestImportError(t *testing.T) {
	he := importError(errors.ErrInvalidWeek).(*echo.HTTPError)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "INVALID_WEEK", he.Message.(errors.ErrorResponse).Code)

	he = importError(fmt.Errorf("fetch http://10.0.0.1/admin: unexpected status 403 Forbidden")).(*echo.HTTPError)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	resp := he.Message.(errors.ErrorResponse)
	assert.Equal(t, "MALFORMED_IMPORT", resp.Code)
	assert.NotContains(t, resp.Error, "10.0.0.1")
	assert.NotContains(t, resp.Error, "403")
}

func TestBucketLocation(t *testing.T) {
	assert.True(t, bucketLocation("s3://menus/vt.json"))
	for _, loc := range []string{
		"https://example.test/menu.json",
		"http://127.0.0.1:8080/admin",
		"http://localhost/menu.json",
		"/etc/passwd",
		"file:///etc/passwd",
		"menu.json",
		"s3://",
	} {
		assert.False(t, bucketLocation(loc), loc)
	}
}

func TestDayParams(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("year", "week", "weekday")
	c.SetParamValues("2025", "12", "3")

	year, week, weekday, err := dayParams(c)
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 12, 3}, []int{year, week, weekday})

	c.SetParamValues("2025", "twelve", "3")
	_, _, _, err = dayParams(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
