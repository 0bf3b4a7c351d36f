package middleware

import (
	"net/http"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/habitpal/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "session"

// SessionAuthMiddleware checks for a valid session cookie and extracts user claims.
func SessionAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing session cookie")
			}

			// Get JWT Secret from environment or use default
			jwtSecret := os.Getenv("JWT_SECRET")
			if jwtSecret == "" {
				jwtSecret = "supersecretjwtkey" // Must match the secret used for signing
			}

			claims := &models.SessionClaims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})

			if err != nil {
				if err == jwt.ErrSignatureInvalid {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid session signature")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid session")
			}

			if !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid session")
			}

			// Store user claims in context
			c.Set("user", claims)

			return next(c)
		}
	}
}
