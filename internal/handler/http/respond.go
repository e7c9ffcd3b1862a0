package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/feastly/feastly/internal/models"
)

// writeJSON encodes v with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return
	}
}

// respondError maps service errors onto the HTTP status taxonomy
func respondError(w http.ResponseWriter, err error) {
	var errTooManyReq models.TooManyRequestsError

	switch {
	case errors.Is(err, models.ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, models.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, models.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrDataNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, models.ErrConflictData):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrGatewayRejected):
		http.Error(w, "payment gateway rejected request", http.StatusBadGateway)
	case errors.Is(err, models.ErrGatewayUnavailable):
		http.Error(w, "payment gateway unavailable", http.StatusServiceUnavailable)
	case errors.As(err, &errTooManyReq):
		http.Error(w, "payment gateway unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// checkFilterKeys rejects query parameters outside the closed set for the
// endpoint, so illegal filter keys fail at the boundary instead of being
// ignored downstream
func checkFilterKeys(query url.Values, allowed ...string) error {
	for key := range query {
		found := false
		for _, a := range allowed {
			if key == a {
				found = true
				break
			}
		}
		if !found {
			return models.ErrBadFilter
		}
	}
	return nil
}
