package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airreserve/internal/domain"
)

// statusFor maps core sentinel errors onto HTTP status codes. Everything the
// core returns is recoverable; nothing maps to a 5xx.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrSeatNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrPassengerNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSeatUnavailable),
		errors.Is(err, domain.ErrDuplicateFlight),
		errors.Is(err, domain.ErrSeatExists),
		errors.Is(err, domain.ErrDuplicatePassport),
		errors.Is(err, domain.ErrAlreadySettled),
		errors.Is(err, domain.ErrTicketCancelled):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
