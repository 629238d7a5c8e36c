package response

import (
	"github.com/gofiber/fiber/v2"
)

// Error types carried in the "type" field of an error body.
const (
	TypeBadRequest     = "bad_request"
	TypeUnauthorized   = "unauthorized"
	TypeNotFound       = "not_found"
	TypeBusinessRule   = "business_rule"
	TypeExternalClient = "external_client"
	TypeTooManyCalls   = "too_many_requests"
	TypeUnknown        = "unknown"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Status  int    `json:"status"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func Success(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func Error(c *fiber.Ctx, status int, errorType, message string) error {
	return c.Status(status).JSON(ErrorBody{
		Status:  status,
		Type:    errorType,
		Message: message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, TypeBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, TypeUnknown, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, TypeUnauthorized, "Unauthorized")
}

func TooManyRequests(c *fiber.Ctx) error {
	return Error(c, fiber.StatusTooManyRequests, TypeTooManyCalls, "Too many requests. Please try again later.")
}
