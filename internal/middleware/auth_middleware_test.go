//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{"bearer", "Bearer abc123", "abc123", true},
		{"extra spaces kept", "Bearer  abc123 ", " abc123 ", true},
		{"missing", "", "", false},
		{"basic", "Basic dXNlcjpwYXNz", "", false},
		{"lowercase scheme", "bearer abc123", "", false},
		{"empty token", "Bearer ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.header != "" {
				h.Set(echo.HeaderAuthorization, tt.header)
			}

			got, ok := ExtractBearerToken(h)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func serve(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, string) {
	e := echo.New()
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = TokenFrom(c)
		return c.NoContent(http.StatusNoContent)
	}, mw)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, seen
}

func TestRequireBearerToken(t *testing.T) {
	rec, seen := serve(RequireBearerToken(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	assert.Empty(t, seen)

	rec, seen = serve(RequireBearerToken(), "Bearer tok")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "tok", seen)
}

func TestBearerToken_Optional(t *testing.T) {
	rec, seen := serve(BearerToken(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, seen)

	_, seen = serve(BearerToken(), "Bearer tok")
	assert.Equal(t, "tok", seen)
}

func TestErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
}
