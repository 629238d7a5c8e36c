package handlers

import (
	domainErrors "cardvault/internal/errors"
	"cardvault/internal/models"
	"cardvault/internal/repositories"
	"cardvault/internal/services/creditcard"
	"cardvault/internal/utils/pagination"
	"cardvault/internal/utils/response"
	"cardvault/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CreditCardHandler struct {
	cardService creditcard.Service
}

func NewCreditCardHandler(cardService creditcard.Service) *CreditCardHandler {
	return &CreditCardHandler{cardService: cardService}
}

// GetCards lists a customer's cards: ?customer_id=&status=&page=&size=&sort=
func (h *CreditCardHandler) GetCards(c *fiber.Ctx) error {
	criteria, req, err := parseListing(c)
	if err != nil {
		return err
	}

	page, err := h.cardService.GetCardsByCriteria(c.UserContext(), criteria, req)
	if err != nil {
		return err
	}

	return response.Success(c, pagination.ToWire(pagination.MapPage(page, models.NewCardView)))
}

func (h *CreditCardHandler) GetCard(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := validation.CardID(id); err != nil {
		return err
	}

	card, err := h.cardService.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return response.Success(c, models.NewCardView(*card))
}

func (h *CreditCardHandler) CreateCard(c *fiber.Ctx) error {
	input, err := parseCardBody(c)
	if err != nil {
		return err
	}

	card, err := h.cardService.Create(c.UserContext(), input)
	if err != nil {
		return err
	}

	return response.Created(c, models.NewCardView(*card))
}

func (h *CreditCardHandler) UpdateCard(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := validation.CardID(id); err != nil {
		return err
	}

	input, err := parseCardBody(c)
	if err != nil {
		return err
	}

	card, err := h.cardService.Update(c.UserContext(), id, input)
	if err != nil {
		return err
	}

	return response.Success(c, models.NewCardView(*card))
}

// DeleteCard deactivates the card; records are never removed.
func (h *CreditCardHandler) DeleteCard(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := validation.CardID(id); err != nil {
		return err
	}

	card, err := h.cardService.Deactivate(c.UserContext(), id)
	if err != nil {
		return err
	}

	return response.Success(c, models.NewCardView(*card))
}

func parseCardBody(c *fiber.Ctx) (models.CardInput, error) {
	var req models.CardRequest
	if err := c.BodyParser(&req); err != nil {
		return models.CardInput{}, domainErrors.ErrValidationFailed.WithMessage("Validation failed: malformed request body")
	}
	if err := validation.Card(req); err != nil {
		return models.CardInput{}, err
	}
	return req.Input(), nil
}

func parseListing(c *fiber.Ctx) (models.CardCriteria, pagination.PageRequest, error) {
	criteria, err := validation.CardCriteria(c.Query("customer_id"), c.Query("status"))
	if err != nil {
		return models.CardCriteria{}, pagination.PageRequest{}, err
	}

	req, err := pagination.ParseFromRequest(c, repositories.CardSortFields()...)
	if err != nil {
		return models.CardCriteria{}, pagination.PageRequest{}, err
	}
	return criteria, req, nil
}
