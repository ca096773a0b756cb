package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireUserType restricts a route to accounts of the given types. It must
// run after Auth, which injects the user_type claim.
func RequireUserType(allowedTypes ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userType, _ := c.Get("user_type").(string)
			if _, ok := allowed[userType]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "this action requires a seller account"})
			}
			return next(c)
		}
	}
}
