package creditcard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	domainErrors "cardvault/internal/errors"
	"cardvault/internal/models"
	"cardvault/internal/repositories"
	"cardvault/internal/repositories/cache"
	"cardvault/internal/utils/pagination"

	"github.com/google/uuid"
)

const (
	notFoundMessage        = "Card with id %s was not found"
	alreadyInactiveMessage = "Card with id %s is already inactive"
	numberBusyMessage      = "Card number is being registered by another request"
)

type service struct {
	repo   repositories.CreditCardRepository
	locker NumberLocker
	now    func() time.Time
	newID  func() string
}

// NewService wires the lifecycle service. A nil locker disables the
// number lock; the store's unique index still rejects duplicates.
func NewService(repo repositories.CreditCardRepository, locker NumberLocker) Service {
	if repo == nil {
		panic("credit card repository is required")
	}
	if locker == nil {
		locker = cache.NoopLock{}
	}

	return &service{
		repo:   repo,
		locker: locker,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (s *service) GetCardsByCriteria(ctx context.Context, criteria models.CardCriteria, req pagination.PageRequest) (pagination.Page[models.CreditCard], error) {
	predicate := repositories.BuildCardPredicate(criteria)

	cards, total, err := s.repo.FindPage(ctx, predicate, req)
	if err != nil {
		return pagination.Page[models.CreditCard]{}, fmt.Errorf("failed to list cards: %w", err)
	}
	return pagination.NewPage(cards, req, total), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*models.CreditCard, error) {
	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, domainErrors.ErrNotFound.WithMessage(fmt.Sprintf(notFoundMessage, id))
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

func (s *service) Create(ctx context.Context, input models.CardInput) (*models.CreditCard, error) {
	release, err := s.reserveNumber(ctx, input.Number)
	if err != nil {
		return nil, err
	}
	defer release()

	// Inactive cards keep their number reserved, so status is not checked.
	if err := s.ensureNumberAvailable(ctx, input.Number); err != nil {
		return nil, err
	}

	card := &models.CreditCard{
		ID:          s.newID(),
		Customer:    input.Customer,
		Number:      input.Number,
		Brand:       input.Brand,
		Status:      models.StatusActive,
		CreatedDate: s.now(),
	}

	if err := s.save(ctx, card); err != nil {
		return nil, err
	}

	log.Printf("Card %s created for customer %s", card.ID, card.Customer)
	return card, nil
}

func (s *service) Update(ctx context.Context, id string, input models.CardInput) (*models.CreditCard, error) {
	card, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ensureActive(card); err != nil {
		return nil, err
	}

	if card.Number != input.Number {
		release, err := s.reserveNumber(ctx, input.Number)
		if err != nil {
			return nil, err
		}
		defer release()

		if err := s.ensureNumberAvailable(ctx, input.Number); err != nil {
			return nil, err
		}
	}

	// Status only changes through Deactivate.
	modified := s.now()
	card.Number = input.Number
	card.Brand = input.Brand
	card.Customer = input.Customer
	card.LastModifiedDate = &modified

	if err := s.save(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *service) Deactivate(ctx context.Context, id string) (*models.CreditCard, error) {
	card, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ensureActive(card); err != nil {
		return nil, err
	}

	modified := s.now()
	card.Status = models.StatusInactive
	card.LastModifiedDate = &modified

	if err := s.save(ctx, card); err != nil {
		return nil, err
	}

	log.Printf("Card %s deactivated", card.ID)
	return card, nil
}

// ensureActive guards every mutation: INACTIVE is terminal.
func ensureActive(card *models.CreditCard) error {
	if card.Status == models.StatusInactive {
		return domainErrors.ErrAlreadyInactive.WithMessage(fmt.Sprintf(alreadyInactiveMessage, card.ID))
	}
	return nil
}

func (s *service) ensureNumberAvailable(ctx context.Context, number int64) error {
	_, err := s.repo.FindByNumber(ctx, number)
	switch {
	case err == nil:
		return domainErrors.ErrAlreadyExists.WithMessage(domainErrors.ErrAlreadyExists.Message)
	case errors.Is(err, repositories.ErrCardNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check card number: %w", err)
	}
}

// save performs the single store write of a mutation. A unique index
// collision means another request won the race for the number.
func (s *service) save(ctx context.Context, card *models.CreditCard) error {
	if err := s.repo.Save(ctx, card); err != nil {
		if errors.Is(err, repositories.ErrDuplicateNumber) {
			return domainErrors.ErrAlreadyExists.WithMessage(domainErrors.ErrAlreadyExists.Message)
		}
		return fmt.Errorf("failed to save card: %w", err)
	}
	return nil
}

func (s *service) reserveNumber(ctx context.Context, number int64) (func(), error) {
	key := cache.CardNumberKey(number)

	token, ok, err := s.locker.Acquire(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to lock card number: %w", err)
	}
	if !ok {
		return nil, domainErrors.ErrAlreadyExists.WithMessage(numberBusyMessage)
	}

	return func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
			log.Printf("⚠️ Failed to release lock %s: %v", key, err)
		}
	}, nil
}
