package validation

import (
	"strings"

	domainErrors "cardvault/internal/errors"
	"cardvault/internal/models"
)

// Card validates a create or update body. All failing rules are reported
// together, joined by MessageSeparator in field order.
func Card(req models.CardRequest) error {
	v := New()

	if v.Required("customer", req.Customer, msgCustomerMandatory) {
		v.MaxLength("customer", strings.TrimSpace(req.Customer), MaxCustomerLength, msgCustomerTooLong)
	}

	if req.Number == nil {
		v.AddError("number", msgNumberMandatory)
	} else {
		v.Range("number", *req.Number, models.MinCardNumber, models.MaxCardNumber, msgNumberTooLow, msgNumberTooHigh)
	}

	switch {
	case req.Brand == nil || *req.Brand == "":
		v.AddError("brand", msgBrandMandatory)
	case !req.Brand.Valid():
		v.AddError("brand", msgBrandInvalid)
	}

	return v.Err()
}

// CardCriteria reads the listing filter from raw query values. customer_id
// is required; status, when present, must name a card status.
func CardCriteria(customer, status string) (models.CardCriteria, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return models.CardCriteria{}, queryError("customer_id is required")
	}

	criteria := models.CardCriteria{Customer: customer}
	if strings.TrimSpace(status) == "" {
		return criteria, nil
	}

	parsed, ok := models.ParseStatus(status)
	if !ok {
		return models.CardCriteria{}, queryError("status must be ACTIVE or INACTIVE")
	}
	criteria.Status = &parsed
	return criteria, nil
}

// CardID rejects blank path ids.
func CardID(id string) error {
	if strings.TrimSpace(id) == "" {
		return queryError("id is required")
	}
	return nil
}

func queryError(message string) error {
	return domainErrors.ErrValidationFailed.WithMessage(queryPrefix + message)
}
