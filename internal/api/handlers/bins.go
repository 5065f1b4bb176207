package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"isin-grid-service/internal/api/dto"
	"isin-grid-service/internal/services"
)

// BinHandler exposes the grid transforms over HTTP.
type BinHandler struct {
	Service *services.BinningService
}

// decodeStrict decodes exactly one JSON object into v.
func decodeStrict(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

func selectorFrom(satellite string, rows int) (services.GridSelector, string) {
	if satellite == "" && rows == 0 {
		return services.GridSelector{}, "satellite or rows is required"
	}
	return services.GridSelector{Satellite: satellite, Rows: rows}, ""
}

// Lookup maps coordinate pairs to bin ids.
func (h *BinHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.LookupBinsRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	sel, msg := selectorFrom(req.Satellite, req.Rows)
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	if len(req.Lons) == 0 || len(req.Lons) != len(req.Lats) {
		writeError(w, r, http.StatusBadRequest, "lons and lats must be non-empty and of equal length")
		return
	}

	bins, err := h.Service.LookupBins(r.Context(), sel, req.Lons, req.Lats)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LookupBinsResponse{Bins: bins})
}

// Centers returns the center coordinate of each requested bin.
func (h *BinHandler) Centers(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.BinQueryRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	sel, msg := selectorFrom(req.Satellite, req.Rows)
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	if len(req.Bins) == 0 {
		writeError(w, r, http.StatusBadRequest, "bins must be non-empty")
		return
	}

	centers, err := h.Service.BinCenters(r.Context(), sel, req.Bins)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListCentersResponse{Centers: make([]dto.CenterResponse, 0, len(centers))}
	for _, c := range centers {
		res.Centers = append(res.Centers, dto.CenterResponse{Lon: c.Lon, Lat: c.Lat})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Bounds returns the rectangular extent of each requested bin.
func (h *BinHandler) Bounds(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.BinQueryRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	sel, msg := selectorFrom(req.Satellite, req.Rows)
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	if len(req.Bins) == 0 {
		writeError(w, r, http.StatusBadRequest, "bins must be non-empty")
		return
	}

	bounds, err := h.Service.BinBounds(r.Context(), sel, req.Bins)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListBoundsResponse{Bounds: make([]dto.BoundsResponse, 0, len(bounds))}
	for _, b := range bounds {
		res.Bounds = append(res.Bounds, dto.BoundsResponse{
			North: b.North,
			South: b.South,
			West:  b.West,
			East:  b.East,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
