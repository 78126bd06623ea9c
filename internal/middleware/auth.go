package middleware

import (
	"net/http"
	"strings"

	"github.com/MrityunjayMaharana/Vendor-App/pkg/utils"
	"github.com/labstack/echo/v4"
)

func JWTAuth(jwtSecretKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			token := strings.TrimPrefix(authHeader, "Bearer ")

			if token == "" || token == authHeader {
				return writeUnauthorized(c)
			}

			userID, name, err := utils.ParseJWTToken(token, jwtSecretKey)
			if err != nil {
				return writeUnauthorized(c)
			}

			c.Set("userID", userID)
			c.Set("userName", name)

			return next(c)
		}
	}
}

func writeUnauthorized(c echo.Context) error {
	errorResponse := map[string]interface{}{
		"status":  "error",
		"message": "Invalid or expired JWT",
		"errors":  nil,
	}
	return c.JSON(http.StatusUnauthorized, errorResponse)
}
