package httpapi

import (
	"strings"

	"github.com/dmitrijs2005/formhub/internal/server/auth"
	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// authenticate guards routes that require identity. The client sends the
// raw token in the Authorization header; an optional "Bearer " prefix is
// tolerated. Verified claims are stored in the request locals.
func (s *Server) authenticate(c *fiber.Ctx) error {

	token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// requestClaims returns the claims stored by the authenticate middleware.
func requestClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*auth.Claims)
	return claims, ok
}
