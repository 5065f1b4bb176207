package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"isin-grid-service/internal/domain"
	"isin-grid-service/internal/ports"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDomainError maps service errors onto HTTP statuses: domain range and
// resolution violations are caller bugs (400), unknown satellites are 404,
// everything else is a 500 with the cause logged.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var rangeErr *domain.RangeError
	var resErr *domain.ResolutionError

	switch {
	case errors.As(err, &rangeErr):
		writeError(w, r, http.StatusBadRequest, rangeErr.Error())
	case errors.As(err, &resErr):
		writeError(w, r, http.StatusBadRequest, resErr.Error())
	case errors.Is(err, ports.ErrSatelliteNotFound):
		writeError(w, r, http.StatusNotFound, "unknown satellite")
	default:
		log.Printf("request failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
