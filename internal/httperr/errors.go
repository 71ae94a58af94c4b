package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the service layer. Handlers translate them into HTTP
// statuses; anything unrecognized is an internal error surfaced as-is.
var (
	ErrAlreadyExists     = errors.New("already_exists")
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("Invalid password")
	ErrUnsupportedFormat = errors.New("Only .xlsx files are allowed")
)

func Status(err error) int {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// NotFound wraps ErrNotFound with an entity-specific message, e.g.
// "Order not found".
func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}
