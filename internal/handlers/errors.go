package handlers

import (
	"errors"
	"log"

	domainErrors "cardvault/internal/errors"
	"cardvault/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const unexpectedMessage = "An unexpected internal error happened"

// ErrorHandler renders every error returned by a handler as
// {status, type, message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, errorType, message := classify(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("❌ %s %s failed [%s]: %v", c.Method(), c.Path(), requestID(c), err)
	}
	return response.Error(c, status, errorType, message)
}

func classify(err error) (int, string, string) {
	var domainErr *domainErrors.DomainError
	if errors.As(err, &domainErr) {
		switch {
		case errors.Is(domainErr, domainErrors.ErrNotFound):
			return fiber.StatusNotFound, response.TypeNotFound, domainErr.Message
		case errors.Is(domainErr, domainErrors.ErrAlreadyExists),
			errors.Is(domainErr, domainErrors.ErrAlreadyInactive):
			return fiber.StatusConflict, response.TypeBusinessRule, domainErr.Message
		case errors.Is(domainErr, domainErrors.ErrValidationFailed):
			return fiber.StatusBadRequest, response.TypeBadRequest, domainErr.Message
		case errors.Is(domainErr, domainErrors.ErrRemoteCallFailed):
			return fiber.StatusInternalServerError, response.TypeExternalClient, domainErr.Message
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return fiberErr.Code, response.TypeNotFound, fiberErr.Message
		case fiber.StatusUnauthorized:
			return fiberErr.Code, response.TypeUnauthorized, fiberErr.Message
		}
		if fiberErr.Code < fiber.StatusInternalServerError {
			return fiberErr.Code, response.TypeBadRequest, fiberErr.Message
		}
	}

	return fiber.StatusInternalServerError, response.TypeUnknown, unexpectedMessage
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
