package repositories

import (
	"cardvault/internal/models"

	"gorm.io/gorm"
)

// CardField names a filterable card column.
type CardField string

const (
	FieldCustomer CardField = "customer_id"
	FieldStatus   CardField = "status"
)

// CardCondition is an exact-match constraint on one field.
type CardCondition struct {
	Field CardField
	Value string
}

// CardPredicate is a conjunction of exact-match conditions.
type CardPredicate struct {
	conditions []CardCondition
}

// BuildCardPredicate always filters by customer and adds a status filter
// only when one is given. A nil status means any status, not "status is null".
func BuildCardPredicate(criteria models.CardCriteria) CardPredicate {
	conditions := []CardCondition{{Field: FieldCustomer, Value: criteria.Customer}}
	if criteria.Status != nil {
		conditions = append(conditions, CardCondition{Field: FieldStatus, Value: string(*criteria.Status)})
	}
	return CardPredicate{conditions: conditions}
}

func (p CardPredicate) Conditions() []CardCondition {
	return append([]CardCondition(nil), p.conditions...)
}

// Apply adds one WHERE clause per condition.
func (p CardPredicate) Apply(db *gorm.DB) *gorm.DB {
	for _, c := range p.conditions {
		db = db.Where(string(c.Field)+" = ?", c.Value)
	}
	return db
}

// Matches evaluates the predicate against a card in memory.
func (p CardPredicate) Matches(card models.CreditCard) bool {
	for _, c := range p.conditions {
		switch c.Field {
		case FieldCustomer:
			if card.Customer != c.Value {
				return false
			}
		case FieldStatus:
			if string(card.Status) != c.Value {
				return false
			}
		default:
			return false
		}
	}
	return true
}
