package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"proofroom/domain/apperrors"
	"proofroom/pkg/utils"
)

// respondError maps domain errors onto HTTP status codes.
func respondError(c *fiber.Ctx, err error) error {
	var (
		validationErr  *apperrors.ValidationError
		upstreamErr    *apperrors.UpstreamError
		emptyErr       *apperrors.EmptyResultError
		persistenceErr *apperrors.PersistenceError
		stateErr       *apperrors.InvalidStateError
		notFoundErr    *apperrors.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, validationErr.Msg, err)
	case errors.As(err, &upstreamErr):
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Google Drive request failed", err)
	case errors.As(err, &emptyErr):
		return utils.ErrorResponse(c, fiber.StatusNotFound, emptyErr.Msg, err)
	case errors.As(err, &stateErr):
		return utils.ErrorResponse(c, fiber.StatusConflict, stateErr.Msg, err)
	case errors.As(err, &notFoundErr):
		return utils.NotFoundResponse(c, notFoundErr.Error())
	case errors.As(err, &persistenceErr):
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Storage operation failed", err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An error occurred", err)
	}
}
