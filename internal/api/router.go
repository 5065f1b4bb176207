package api

import (
	"net/http"

	"isin-grid-service/internal/api/handlers"
	"isin-grid-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.BinningService) http.Handler {
	mux := http.NewServeMux()

	binHandler := &handlers.BinHandler{Service: svc}
	satHandler := &handlers.SatelliteHandler{Service: svc}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/satellites", satHandler.List)
	mux.HandleFunc("/bins", binHandler.Lookup)
	mux.HandleFunc("/bins/centers", binHandler.Centers)
	mux.HandleFunc("/bins/bounds", binHandler.Bounds)

	return loggingMiddleware(mux)
}
