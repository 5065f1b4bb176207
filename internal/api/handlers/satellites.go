package handlers

import (
	"net/http"

	"isin-grid-service/internal/api/dto"
	"isin-grid-service/internal/services"
)

// SatelliteHandler exposes read-only preset retrieval endpoints.
type SatelliteHandler struct {
	Service *services.BinningService
}

func (h *SatelliteHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	presets, err := h.Service.ListSatellites(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListSatellitesResponse{
		Satellites: make([]dto.SatelliteResponse, 0, len(presets)),
	}
	for _, p := range presets {
		res.Satellites = append(res.Satellites, dto.SatelliteResponse{
			Name: p.Name,
			Rows: p.Rows,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
