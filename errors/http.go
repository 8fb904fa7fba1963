package errors

import (
	"errors"
	"net/http"
)

// HTTPStatus maps a service error to the status code exposed by the REST
// layer. Unknown errors are reported as internal to avoid leaking details.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrInvalidRoomEvent):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidUserOrChat):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
