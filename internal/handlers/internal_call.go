package handlers

import (
	"context"

	"cardvault/internal/models"
	"cardvault/internal/utils/pagination"
	"cardvault/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// CardFetcher retrieves a page of cards from a peer instance.
type CardFetcher interface {
	Fetch(ctx context.Context, criteria models.CardCriteria, req pagination.PageRequest) (pagination.Page[models.CardView], error)
}

type InternalCallHandler struct {
	fetcher CardFetcher
}

func NewInternalCallHandler(fetcher CardFetcher) *InternalCallHandler {
	return &InternalCallHandler{fetcher: fetcher}
}

// GetCards answers a listing by delegating it to the peer and re-wrapping
// the result in this instance's pagination.
func (h *InternalCallHandler) GetCards(c *fiber.Ctx) error {
	criteria, req, err := parseListing(c)
	if err != nil {
		return err
	}

	page, err := h.fetcher.Fetch(c.UserContext(), criteria, req)
	if err != nil {
		return err
	}

	return response.Success(c, pagination.ToWire(page))
}
