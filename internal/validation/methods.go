package validation

import (
	"fmt"
	"strings"

	domainErrors "cardvault/internal/errors"
)

// FieldError is one failed rule on one field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator collects failures in the order the rules were checked.
type Validator struct {
	Errors []FieldError
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make([]FieldError, 0)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator
func (v *Validator) AddError(field, message string) {
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks that a string is not blank.
func (v *Validator) Required(field, value, message string) bool {
	ok := strings.TrimSpace(value) != ""
	v.Check(ok, field, message)
	return ok
}

// Range checks that value lies in [min, max], reporting which bound was crossed.
func (v *Validator) Range(field string, value, min, max int64, belowMessage, aboveMessage string) {
	v.Check(value >= min, field, belowMessage)
	v.Check(value <= max, field, aboveMessage)
}

// MaxLength checks if a string has at most n characters
func (v *Validator) MaxLength(field, value string, n int, message string) {
	v.Check(len(value) <= n, field, message)
}

// Messages returns the failure messages in check order.
func (v *Validator) Messages() []string {
	messages := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		messages = append(messages, e.Message)
	}
	return messages
}

// Err converts the collected failures into ErrValidationFailed, or nil.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return domainErrors.ErrValidationFailed.WithMessage(strings.Join(v.Messages(), MessageSeparator))
}
