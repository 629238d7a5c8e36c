package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"cardvault/internal/models"
	"cardvault/internal/utils/pagination"
)

// MemoryCreditCardRepository keeps cards in process. The number index
// behaves like the unique index of the postgres table.
type MemoryCreditCardRepository struct {
	mu      sync.RWMutex
	cards   map[string]models.CreditCard
	numbers map[int64]string
	saves   int
}

func NewMemoryCreditCardRepository() *MemoryCreditCardRepository {
	return &MemoryCreditCardRepository{
		cards:   make(map[string]models.CreditCard),
		numbers: make(map[int64]string),
	}
}

func (r *MemoryCreditCardRepository) FindByID(_ context.Context, id string) (*models.CreditCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	card, ok := r.cards[id]
	if !ok {
		return nil, ErrCardNotFound
	}
	return cloneCard(card), nil
}

func (r *MemoryCreditCardRepository) FindByNumber(_ context.Context, number int64) (*models.CreditCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.numbers[number]
	if !ok {
		return nil, ErrCardNotFound
	}
	return cloneCard(r.cards[id]), nil
}

func (r *MemoryCreditCardRepository) FindPage(_ context.Context, predicate CardPredicate, req pagination.PageRequest) ([]models.CreditCard, int64, error) {
	r.mu.RLock()
	matched := make([]models.CreditCard, 0)
	for _, card := range r.cards {
		if predicate.Matches(card) {
			matched = append(matched, *cloneCard(card))
		}
	}
	r.mu.RUnlock()

	less, err := cardOrdering(req.Sort)
	if err != nil {
		return nil, 0, err
	}
	sort.SliceStable(matched, func(i, j int) bool { return less(matched[i], matched[j]) })

	total := int64(len(matched))
	if req.Size <= 0 {
		return matched, total, nil
	}

	start := req.Offset()
	if start >= len(matched) {
		return []models.CreditCard{}, total, nil
	}
	end := start + req.Size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *MemoryCreditCardRepository) Save(_ context.Context, card *models.CreditCard) error {
	if card == nil || card.ID == "" {
		return fmt.Errorf("failed to save card: missing id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, taken := r.numbers[card.Number]; taken && owner != card.ID {
		return ErrDuplicateNumber
	}
	if previous, ok := r.cards[card.ID]; ok && previous.Number != card.Number {
		delete(r.numbers, previous.Number)
	}

	r.cards[card.ID] = *cloneCard(*card)
	r.numbers[card.Number] = card.ID
	r.saves++
	return nil
}

func (r *MemoryCreditCardRepository) Ping(context.Context) error {
	return nil
}

// Saves counts successful writes.
func (r *MemoryCreditCardRepository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

func cloneCard(card models.CreditCard) *models.CreditCard {
	if card.LastModifiedDate != nil {
		modified := *card.LastModifiedDate
		card.LastModifiedDate = &modified
	}
	return &card
}

func cardOrdering(s *pagination.Sort) (func(a, b models.CreditCard) bool, error) {
	byID := func(a, b models.CreditCard) bool { return a.ID < b.ID }
	if s == nil {
		return byID, nil
	}

	var cmp func(a, b models.CreditCard) int
	switch s.Field {
	case "id":
		cmp = func(a, b models.CreditCard) int { return strings.Compare(a.ID, b.ID) }
	case "customer":
		cmp = func(a, b models.CreditCard) int { return strings.Compare(a.Customer, b.Customer) }
	case "number":
		cmp = func(a, b models.CreditCard) int { return compareInt64(a.Number, b.Number) }
	case "brand":
		cmp = func(a, b models.CreditCard) int { return strings.Compare(string(a.Brand), string(b.Brand)) }
	case "status":
		cmp = func(a, b models.CreditCard) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case "createdDate":
		cmp = func(a, b models.CreditCard) int { return a.CreatedDate.Compare(b.CreatedDate) }
	case "lastModifiedDate":
		cmp = func(a, b models.CreditCard) int {
			switch {
			case a.LastModifiedDate == nil && b.LastModifiedDate == nil:
				return 0
			case a.LastModifiedDate == nil:
				return -1
			case b.LastModifiedDate == nil:
				return 1
			}
			return a.LastModifiedDate.Compare(*b.LastModifiedDate)
		}
	default:
		return nil, fmt.Errorf("unsupported sort field %q", s.Field)
	}

	desc := s.Descending()
	return func(a, b models.CreditCard) bool {
		c := cmp(a, b)
		if desc {
			c = -c
		}
		if c == 0 {
			return byID(a, b)
		}
		return c < 0
	}, nil
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
