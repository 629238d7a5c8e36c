package internalcall

import (
	"testing"
	"time"

	"cardvault/internal/models"
	"cardvault/internal/utils/pagination"

	"github.com/stretchr/testify/assert"
)

func TestOutboundQuery(t *testing.T) {
	t.Run("unsorted without status", func(t *testing.T) {
		params := OutboundQuery(models.CardCriteria{Customer: "cust1"}, pagination.NewPageRequest(0, 20))

		assert.Equal(t, "cust1", params.Get("customer_id"))
		assert.Equal(t, "0", params.Get("page"))
		assert.Equal(t, "20", params.Get("size"))
		assert.False(t, params.Has("status"))
		assert.False(t, params.Has("sort"))
	})

	t.Run("status is sent by name", func(t *testing.T) {
		status := models.StatusInactive
		params := OutboundQuery(models.CardCriteria{Customer: "cust1", Status: &status}, pagination.NewPageRequest(3, 5))

		assert.Equal(t, "INACTIVE", params.Get("status"))
		assert.Equal(t, "3", params.Get("page"))
		assert.Equal(t, "5", params.Get("size"))
	})

	t.Run("sort is rewritten to field,direction", func(t *testing.T) {
		req := pagination.NewPageRequest(0, 10).SortedBy("createdDate", pagination.Desc)

		params := OutboundQuery(models.CardCriteria{Customer: "cust1"}, req)

		assert.Equal(t, []string{"createdDate,desc"}, params["sort"])
		assert.Contains(t, params.Encode(), "sort=createdDate%2Cdesc")
	})
}

func TestFromWireRecomputesTotalPages(t *testing.T) {
	c1 := models.CardView{ID: "c1", Customer: "cust1", Number: 5000000000000001, Brand: models.BrandVisa, Status: models.StatusActive, CreatedDate: time.Now()}
	c2 := models.CardView{ID: "c2", Customer: "cust1", Number: 5000000000000002, Brand: models.BrandVisa, Status: models.StatusActive, CreatedDate: time.Now()}
	payload := pagination.WirePage[models.CardView]{
		Content:       []models.CardView{c1, c2},
		TotalPages:    3,
		TotalElements: 25,
		Number:        1,
		Size:          2,
	}

	page := FromWire(payload, pagination.NewPageRequest(1, 2))

	assert.Equal(t, []models.CardView{c1, c2}, page.Content)
	assert.Equal(t, int64(25), page.TotalElements)
	assert.Equal(t, 13, page.TotalPages())
}

func TestFromWireUsesRequestNotEcho(t *testing.T) {
	payload := pagination.WirePage[models.CardView]{TotalElements: 7, Number: 9, Size: 50}

	page := FromWire(payload, pagination.NewPageRequest(2, 3))

	assert.Equal(t, 2, page.Number())
	assert.Equal(t, 3, page.Size())
	assert.Equal(t, 3, page.TotalPages())
	assert.NotNil(t, page.Content)
}
