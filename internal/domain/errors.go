package domain

import "errors"

// Validation errors. Recoverable: the caller can re-prompt and retry.
var (
	ErrUnderage        = errors.New("passenger must be 18 or older")
	ErrInvalidPhone    = errors.New("phone number must contain digits only")
	ErrInvalidPassport = errors.New("passport number must contain digits only")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidCard     = errors.New("card number must be exactly 16 digits")
	ErrInvalidWeight   = errors.New("baggage weight must be positive")
	ErrInvalidClass    = errors.New("unknown seat class")
)

// Business-rule errors. None of these leave partial state behind.
var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrDuplicateFlight   = errors.New("flight number already exists")
	ErrSeatNotFound      = errors.New("seat not found")
	ErrSeatExists        = errors.New("seat number already exists on this flight")
	ErrSeatUnavailable   = errors.New("seat is not available")
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrTicketCancelled   = errors.New("ticket is cancelled")
	ErrNotOwner          = errors.New("ticket belongs to another passenger")
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrDuplicatePassport = errors.New("passport number already registered")
	ErrAlreadySettled    = errors.New("payment is already settled")
)
