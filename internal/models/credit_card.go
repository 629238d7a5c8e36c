package models

import (
	"strings"
	"time"
)

type CardBrand string
type CardStatus string

const (
	BrandVisa            CardBrand = "VISA"
	BrandMastercard      CardBrand = "MASTERCARD"
	BrandAmericanExpress CardBrand = "AMERICAN_EXPRESS"

	StatusActive   CardStatus = "ACTIVE"
	StatusInactive CardStatus = "INACTIVE"
)

// Card numbers are 16 digits.
const (
	MinCardNumber int64 = 1000000000000000
	MaxCardNumber int64 = 9999999999999999
)

var cardBrands = []CardBrand{BrandVisa, BrandMastercard, BrandAmericanExpress}

// CreditCard represents a stored credit card
type CreditCard struct {
	ID               string     `gorm:"primaryKey;type:varchar(36)"`
	Customer         string     `gorm:"column:customer_id;type:varchar(64);not null;index"`
	Number           int64      `gorm:"column:card_number;not null;uniqueIndex"`
	Brand            CardBrand  `gorm:"type:varchar(32);not null"`
	Status           CardStatus `gorm:"type:varchar(16);not null;index"`
	CreatedDate      time.Time  `gorm:"column:created_date;not null"`
	LastModifiedDate *time.Time `gorm:"column:last_modified_date"`
}

func (CreditCard) TableName() string {
	return "credit_cards"
}

// IsActive reports whether the card can still be mutated.
func (c *CreditCard) IsActive() bool {
	return c.Status == StatusActive
}

// CardInput holds the fields a caller may set on create and update.
type CardInput struct {
	Customer string
	Number   int64
	Brand    CardBrand
}

// CardCriteria filters card listings. A nil Status matches every status.
type CardCriteria struct {
	Customer string
	Status   *CardStatus
}

// CardView is the wire representation of a card.
type CardView struct {
	ID          string     `json:"id"`
	Customer    string     `json:"customer"`
	Number      int64      `json:"number"`
	Brand       CardBrand  `json:"brand"`
	Status      CardStatus `json:"status"`
	CreatedDate time.Time  `json:"createdDate"`
}

func NewCardView(card CreditCard) CardView {
	return CardView{
		ID:          card.ID,
		Customer:    card.Customer,
		Number:      card.Number,
		Brand:       card.Brand,
		Status:      card.Status,
		CreatedDate: card.CreatedDate,
	}
}

// CardRequest is the create/update request body. Pointers distinguish
// missing values from zero values during validation; id, status and
// createdDate may be present but are ignored.
type CardRequest struct {
	ID          *string     `json:"id,omitempty"`
	Customer    string      `json:"customer"`
	Number      *int64      `json:"number"`
	Brand       *CardBrand  `json:"brand"`
	Status      *CardStatus `json:"status,omitempty"`
	CreatedDate *time.Time  `json:"createdDate,omitempty"`
}

// Input converts a validated request into a CardInput.
func (r CardRequest) Input() CardInput {
	input := CardInput{Customer: strings.TrimSpace(r.Customer)}
	if r.Number != nil {
		input.Number = *r.Number
	}
	if r.Brand != nil {
		input.Brand = *r.Brand
	}
	return input
}

func (b CardBrand) Valid() bool {
	for _, brand := range cardBrands {
		if b == brand {
			return true
		}
	}
	return false
}

func (b CardBrand) String() string {
	return string(b)
}

func (s CardStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s CardStatus) String() string {
	return string(s)
}

// ParseStatus accepts the enum name case-insensitively.
func ParseStatus(value string) (CardStatus, bool) {
	status := CardStatus(strings.ToUpper(strings.TrimSpace(value)))
	return status, status.Valid()
}

// ParseBrand accepts the enum name case-insensitively.
func ParseBrand(value string) (CardBrand, bool) {
	brand := CardBrand(strings.ToUpper(strings.TrimSpace(value)))
	return brand, brand.Valid()
}

// CardBrands lists the supported networks.
func CardBrands() []CardBrand {
	return append([]CardBrand(nil), cardBrands...)
}
