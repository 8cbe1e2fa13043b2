package middleware

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"proofroom/pkg/utils"
)

// Protected middleware validates JWT tokens and sets the admin context
func Protected() fiber.Handler {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		adminCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			switch err {
			case utils.ErrExpiredToken:
				return utils.UnauthorizedResponse(c, "Token has expired")
			case utils.ErrInvalidToken:
				return utils.UnauthorizedResponse(c, "Invalid token")
			case utils.ErrMissingToken:
				return utils.UnauthorizedResponse(c, "Missing token")
			default:
				return utils.UnauthorizedResponse(c, "Token validation failed")
			}
		}

		c.Locals("admin", adminCtx)

		return c.Next()
	}
}

// Optional middleware sets the admin context when a valid token is present
// but never rejects the request
func Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return c.Next()
		}

		jwtSecret := os.Getenv("JWT_SECRET")
		adminCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			return c.Next()
		}

		c.Locals("admin", adminCtx)
		return c.Next()
	}
}

// OptionalWithQueryToken checks both header and query parameter for a token.
// Used for WebSocket connections where the Authorization header can't be sent.
func OptionalWithQueryToken() fiber.Handler {
	jwtSecret := os.Getenv("JWT_SECRET")

	return func(c *fiber.Ctx) error {
		var token string

		authHeader := c.Get("Authorization")
		if authHeader != "" {
			token = utils.ExtractTokenFromHeader(authHeader)
		}

		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			return c.Next() // No token, continue as anonymous
		}

		adminCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			return c.Next() // Invalid token, continue as anonymous
		}

		c.Locals("admin", adminCtx)
		return c.Next()
	}
}
