package utils

import "errors"

var (
	ErrOperationTypeNotFound = errors.New("operation type not found")
	ErrPlanNotFound          = errors.New("follow-up plan not found")
	ErrFollowupItemNotFound  = errors.New("follow-up item not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrMeetingNotFound       = errors.New("meeting not found")
	ErrLanguageNotFound      = errors.New("language not found")
	ErrTranslationNotFound   = errors.New("translation not found")
	ErrAccountNotFound       = errors.New("account not found")

	ErrMissingContact     = errors.New("either phone or email is required")
	ErrInvalidDate        = errors.New("invalid date format")
	ErrInvalidFollowKind  = errors.New("kind must be day or month")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrInvalidInput       = errors.New("invalid input")

	ErrDatabaseError = errors.New("database error")
)
