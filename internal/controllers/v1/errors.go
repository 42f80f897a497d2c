package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack-app/backend/internal/store"
)

type httpError struct {
	Error string `json:"error" example:"there is no record with this ID"`
}

// status returns the appropriate HTTP status for a store error
func status(err error) int {
	if errors.Is(err, store.ErrRemote) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrCategoryNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, store.ErrNoNamespace) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// Session errors
var (
	errUserIDNotSet = errors.New("the userId field must be set")
	errNoSession    = errors.New("nobody is signed in")
)

// Expense errors
var errCategoryUnknown = errors.New("the specified category does not exist")
