package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	status, ok := ParseStatus("active")
	assert.True(t, ok)
	assert.Equal(t, StatusActive, status)

	_, ok = ParseStatus("CLOSED")
	assert.False(t, ok)
}

func TestParseBrand(t *testing.T) {
	for _, brand := range CardBrands() {
		parsed, ok := ParseBrand(string(brand))
		assert.True(t, ok)
		assert.Equal(t, brand, parsed)
	}

	_, ok := ParseBrand("DINERS")
	assert.False(t, ok)
}

func TestCardRequestInputIgnoresServiceOwnedFields(t *testing.T) {
	id := "caller-id"
	number := int64(4578122134435665)
	brand := BrandVisa
	status := StatusInactive

	input := CardRequest{
		ID:       &id,
		Customer: "  customer_id ",
		Number:   &number,
		Brand:    &brand,
		Status:   &status,
	}.Input()

	assert.Equal(t, CardInput{Customer: "customer_id", Number: number, Brand: BrandVisa}, input)
}

func TestNewCardView(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	modified := created.Add(time.Hour)
	card := CreditCard{
		ID:               "CARD_1",
		Customer:         "C1",
		Number:           5000000000000004,
		Brand:            BrandMastercard,
		Status:           StatusInactive,
		CreatedDate:      created,
		LastModifiedDate: &modified,
	}

	view := NewCardView(card)

	assert.Equal(t, "CARD_1", view.ID)
	assert.Equal(t, int64(5000000000000004), view.Number)
	assert.Equal(t, StatusInactive, view.Status)
	assert.Equal(t, created, view.CreatedDate)
}
