// Package middleware provides authentication, logging and rate limiting middleware.
package middleware

import (
	"strconv"
	"strings"

	"github.com/DylanDHubert/hotmess/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// bearerUserID extracts and verifies the bearer token, returning the subject
// user ID. The second return is the client-facing failure reason, empty on
// success. Tokens are issued by the identity gateway; this service only
// verifies them and extracts the subject.
func bearerUserID(c *fiber.Ctx) (uint, string) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, "Authorization header required"
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, "Invalid authorization header format"
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return 0, "Invalid or expired token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "Invalid token claims"
	}

	// User ID lives in the "sub" claim (subject claim per RFC 7519)
	subClaim, ok := claims["sub"]
	if !ok {
		return 0, "Invalid token structure - missing subject"
	}

	subStr, ok := subClaim.(string)
	if !ok {
		return 0, "Invalid token subject type"
	}

	userIDVal, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return 0, "Invalid user ID in token"
	}

	return uint(userIDVal), ""
}

// AuthRequired is a middleware that enforces authentication for protected routes.
func AuthRequired(c *fiber.Ctx) error {
	userID, failure := bearerUserID(c)
	if failure != "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": failure,
		})
	}

	c.Locals("userID", userID)

	return c.Next()
}

// AuthOptional resolves the viewer when a valid bearer token is present and
// leaves the request anonymous otherwise. Public read routes use it so that
// viewer-dependent fields (liked, shared) reflect the actual caller instead of
// always computing against the anonymous viewer.
func AuthOptional(c *fiber.Ctx) error {
	if userID, failure := bearerUserID(c); failure == "" {
		c.Locals("userID", userID)
	}

	return c.Next()
}
