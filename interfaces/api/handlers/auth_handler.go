package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"proofroom/domain/dto"
	"proofroom/domain/services"
	"proofroom/pkg/utils"
)

var validate = validator.New()

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a photographer account
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	token, admin, err := h.authService.Register(c.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return utils.CreatedResponse(c, "Account created", dto.AuthResponse{
		Token: token,
		Admin: dto.AdminToResponse(admin),
	})
}

// Login verifies credentials and returns a session token
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	token, admin, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Logged in", dto.AuthResponse{
		Token: token,
		Admin: dto.AdminToResponse(admin),
	})
}

// Me returns the authenticated admin
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	adminCtx, err := utils.GetAdminFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	admin, err := h.authService.GetCurrentAdmin(c.Context(), adminCtx.ID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Admin retrieved", dto.AdminToResponse(admin))
}
