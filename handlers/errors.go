package handlers

import (
	"errors"
	"net/http"

	"nepwork/services/backend"
	"nepwork/services/booking"
	"nepwork/services/catalog"
	"nepwork/services/kyc"
	"nepwork/services/session"
)

// statusFor maps a service error onto the HTTP status returned to the UI.
// Backend 4xx answers pass through; anything the backend could not answer
// is a bad gateway.
func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrInvalidRating):
		return http.StatusUnprocessableEntity
	case errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrUnknownAction),
		errors.Is(err, session.ErrUnknownRole),
		errors.Is(err, kyc.ErrMissingFields),
		errors.Is(err, catalog.ErrInvalidPrice):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrRoleNotAllowed),
		errors.Is(err, booking.ErrAlreadyRated):
		return http.StatusConflict
	case errors.Is(err, session.ErrAnonymous):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrAdminClaimRequired),
		errors.Is(err, catalog.ErrProviderOnly),
		errors.Is(err, catalog.ErrKYCRequired):
		return http.StatusForbidden
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && !apiErr.ServerSide() && apiErr.StatusCode >= http.StatusBadRequest {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
