package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/marina-vidal/gimnasio-go-api/internal/utils"
)

// JWTProtected returns a middleware that validates bearer tokens issued at
// login and binds the monitor identity to the request.
func JWTProtected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token claims")
		}

		monitorID := extractMonitorIDFromClaims(claims)
		if monitorID == nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token subject")
		}

		c.Locals("monitor_id", *monitorID)
		if email, ok := claims["email"].(string); ok {
			c.Locals("monitor_email", email)
		}

		return c.Next()
	}
}

func extractMonitorIDFromClaims(claims jwt.MapClaims) *uint {
	value, ok := claims["sub"]
	if !ok {
		return nil
	}

	switch v := value.(type) {
	case float64:
		if v < 0 {
			return nil
		}
		id := uint(v)
		return &id
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil
		}
		id := uint(parsed)
		return &id
	default:
		return nil
	}
}
