package repositories

import (
	"context"
	"errors"

	"cardvault/internal/models"
	"cardvault/internal/utils/pagination"
)

var (
	ErrCardNotFound    = errors.New("credit card not found")
	ErrDuplicateNumber = errors.New("credit card number already registered")
)

type CreditCardRepository interface {
	// Lookups return ErrCardNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*models.CreditCard, error)
	FindByNumber(ctx context.Context, number int64) (*models.CreditCard, error)

	// FindPage returns one page of matching cards and the total match count.
	FindPage(ctx context.Context, predicate CardPredicate, req pagination.PageRequest) ([]models.CreditCard, int64, error)

	// Save inserts or updates by id. A number collision returns ErrDuplicateNumber.
	Save(ctx context.Context, card *models.CreditCard) error

	Ping(ctx context.Context) error
}

// sortColumns maps API sort fields to columns.
var sortColumns = map[string]string{
	"id":               "id",
	"customer":         "customer_id",
	"number":           "card_number",
	"brand":            "brand",
	"status":           "status",
	"createdDate":      "created_date",
	"lastModifiedDate": "last_modified_date",
}

// CardSortFields lists the fields a card listing can be sorted by.
func CardSortFields() []string {
	return []string{"id", "customer", "number", "brand", "status", "createdDate", "lastModifiedDate"}
}
