package internalcall

import (
	"net/url"
	"strconv"
	"strings"

	"cardvault/internal/models"
	"cardvault/internal/utils/pagination"
)

// OutboundQuery renders criteria and a page request as the peer's query string.
func OutboundQuery(criteria models.CardCriteria, req pagination.PageRequest) url.Values {
	params := url.Values{}
	params.Add("customer_id", criteria.Customer)

	if criteria.Status != nil {
		params.Add("status", criteria.Status.String())
	}

	params.Add("page", strconv.Itoa(req.Page))
	params.Add("size", strconv.Itoa(req.Size))

	// The peer expects "field,direction", not the internal "field: direction".
	if req.Sorted() {
		params.Add("sort", strings.Replace(req.Sort.String(), ": ", ",", 1))
	}

	return params
}

// FromWire rebuilds a page from the peer payload. Page number and size come
// from the request that was sent; the payload's totalPages, number and size
// are ignored and total pages is recomputed from totalElements.
func FromWire(payload pagination.WirePage[models.CardView], req pagination.PageRequest) pagination.Page[models.CardView] {
	return pagination.NewPage(payload.Content, req, payload.TotalElements)
}
