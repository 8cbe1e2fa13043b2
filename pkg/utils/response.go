package utils

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse sends a standard success envelope
func SuccessResponse(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// CreatedResponse sends a standard 201 envelope
func CreatedResponse(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// ErrorResponse sends a standard error envelope
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	errStr := ""
	if err != nil {
		errStr = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   errStr,
	})
}

// UnauthorizedResponse sends a 401 envelope
func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   "Unauthorized",
	})
}

// NotFoundResponse sends a 404 envelope
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   "Not found",
	})
}
