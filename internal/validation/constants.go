package validation

const (
	// MessageSeparator joins field messages into one error message.
	MessageSeparator = " - "

	// Customer ids are stored as varchar(64).
	MaxCustomerLength = 64

	// Query parameter failures carry this prefix.
	queryPrefix = "Validation failed: "
)

const (
	msgCustomerMandatory = "customer is mandatory"
	msgCustomerTooLong   = "customer is too long"
	msgNumberMandatory   = "number is mandatory"
	msgNumberTooLow      = "number is lower than minimum"
	msgNumberTooHigh     = "number is higher than maximum"
	msgBrandMandatory    = "brand is mandatory"
	msgBrandInvalid      = "brand is invalid"
)
