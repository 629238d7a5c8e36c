package creditcard

import (
	"context"

	"cardvault/internal/models"
	"cardvault/internal/utils/pagination"
)

// Service owns the card lifecycle: number uniqueness across every card
// ever created, and INACTIVE as a terminal state.
type Service interface {
	// Query operations
	GetCardsByCriteria(ctx context.Context, criteria models.CardCriteria, req pagination.PageRequest) (pagination.Page[models.CreditCard], error)
	GetByID(ctx context.Context, id string) (*models.CreditCard, error)

	// Mutations
	Create(ctx context.Context, input models.CardInput) (*models.CreditCard, error)
	Update(ctx context.Context, id string, input models.CardInput) (*models.CreditCard, error)
	Deactivate(ctx context.Context, id string) (*models.CreditCard, error)
}

// NumberLocker serialises work on one card number across instances.
type NumberLocker interface {
	Acquire(ctx context.Context, key string) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
}
