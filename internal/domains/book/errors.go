package book

import (
	"errors"
	"net/http"

	"library-api/internal/shared/serializer"
)

var (
	ErrBookNotFound = errors.New("book not found")
)

// ToHTTPStatus converts a service error to an HTTP status code.
func ToHTTPStatus(err error) int {
	if _, ok := serializer.AsFieldErrors(err); ok {
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
