package handler

import (
	"errors"

	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/pkg/response"
	"jobscout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	case errors.Is(err, usecase.ErrSeedFingerprintMissing):
		// Precondition the caller can fix: extract a fingerprint first.
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "seed job has no fingerprint", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
