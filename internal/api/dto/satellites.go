package dto

type SatelliteResponse struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

type ListSatellitesResponse struct {
	Satellites []SatelliteResponse `json:"satellites"`
}
