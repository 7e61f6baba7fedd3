package middleware

import (
	"net/http"
	"strings"

	jsonres "saasStackAnalyzer/pkg/response"

	"github.com/labstack/echo/v4"
)

// TokenKey is where the bearer token is stored on the echo context
const TokenKey = "token"

const bearerPrefix = "Bearer "

// ExtractBearerToken returns exactly what follows "Bearer " in the
// Authorization header, surrounding spaces included. The token itself is not
// verified.
func ExtractBearerToken(header http.Header) (string, bool) {
	authHeader := header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", false
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", false
	}

	return token, true
}

// BearerToken stores the request's bearer token, if any, on the context
func BearerToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := ExtractBearerToken(c.Request().Header); ok {
				c.Set(TokenKey, token)
			}

			return next(c)
		}
	}
}

// RequireBearerToken rejects requests without a bearer token
func RequireBearerToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := ExtractBearerToken(c.Request().Header)
			if !ok {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing authorization token", nil,
				))
			}

			c.Set(TokenKey, token)

			return next(c)
		}
	}
}

// TokenFrom reads the token stored by BearerToken or RequireBearerToken
func TokenFrom(c echo.Context) string {
	token, _ := c.Get(TokenKey).(string)
	return token
}
