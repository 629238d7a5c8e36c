package repositories

import (
	"context"
	"errors"
	"fmt"

	"cardvault/internal/models"
	"cardvault/internal/utils/pagination"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLSTATE unique_violation
const uniqueViolation = "23505"

type creditCardRepository struct {
	db *gorm.DB
}

func NewCreditCardRepository(db *gorm.DB) CreditCardRepository {
	return &creditCardRepository{
		db: db,
	}
}

func (r *creditCardRepository) FindByID(ctx context.Context, id string) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

func (r *creditCardRepository) FindByNumber(ctx context.Context, number int64) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := r.db.WithContext(ctx).Where("card_number = ?", number).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card by number: %w", err)
	}
	return &card, nil
}

func (r *creditCardRepository) FindPage(ctx context.Context, predicate CardPredicate, req pagination.PageRequest) ([]models.CreditCard, int64, error) {
	var total int64
	if err := predicate.Apply(r.db.WithContext(ctx).Model(&models.CreditCard{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cards: %w", err)
	}

	cards := make([]models.CreditCard, 0, req.Size)
	if total == 0 {
		return cards, 0, nil
	}

	query := predicate.Apply(r.db.WithContext(ctx).Model(&models.CreditCard{}))
	if req.Sort != nil {
		column, ok := sortColumns[req.Sort.Field]
		if !ok {
			return nil, 0, fmt.Errorf("unsupported sort field %q", req.Sort.Field)
		}
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: req.Sort.Descending()})
	}
	// Stable order across pages.
	query = query.Order("id")
	if req.Size > 0 {
		query = query.Limit(req.Size).Offset(req.Offset())
	}

	if err := query.Find(&cards).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, total, nil
}

func (r *creditCardRepository) Save(ctx context.Context, card *models.CreditCard) error {
	if err := r.db.WithContext(ctx).Save(card).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateNumber
		}
		return fmt.Errorf("failed to save card: %w", err)
	}
	return nil
}

func (r *creditCardRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// isUniqueViolation recognises a unique index failure whichever driver
// raised it.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return true
	}
	return false
}
