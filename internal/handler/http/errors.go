package http

import (
	"errors"
	"net/http"

	"github.com/stefpopov/go-wine-cellar/internal/store"
	"github.com/stefpopov/go-wine-cellar/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrEmptyName:             http.StatusBadRequest,
	validators.ErrNegativePrice:         http.StatusBadRequest,
	validators.ErrInvalidAlcoholDegree:  http.StatusBadRequest,
	validators.ErrInvalidProductionDate: http.StatusBadRequest,

	store.ErrNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// internal details stay in the logs
		message = http.StatusText(http.StatusInternalServerError)
	}
	http.Error(w, message, status)
}
