package dto

// Every bin query selects its grid the same way: a named satellite preset,
// or a custom row count when satellite is empty.
type LookupBinsRequest struct {
	Satellite string    `json:"satellite"`
	Rows      int       `json:"rows"`
	Lons      []float64 `json:"lons"`
	Lats      []float64 `json:"lats"`
}

type LookupBinsResponse struct {
	Bins []int `json:"bins"`
}

type BinQueryRequest struct {
	Satellite string `json:"satellite"`
	Rows      int    `json:"rows"`
	Bins      []int  `json:"bins"`
}

type CenterResponse struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type ListCentersResponse struct {
	Centers []CenterResponse `json:"centers"`
}

type BoundsResponse struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	West  float64 `json:"west"`
	East  float64 `json:"east"`
}

type ListBoundsResponse struct {
	Bounds []BoundsResponse `json:"bounds"`
}
