package errors

var (
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "record not found",
	}
	ErrAlreadyExists = &DomainError{
		Code:    "ALREADY_EXISTS",
		Message: "There is already a registered card with the given number",
	}
	ErrAlreadyInactive = &DomainError{
		Code:    "ALREADY_INACTIVE",
		Message: "card is already inactive",
	}
	ErrValidationFailed = &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
	}
	ErrRemoteCallFailed = &DomainError{
		Code:    "REMOTE_CALL_FAILED",
		Message: "Error on internal api client call",
	}
)
