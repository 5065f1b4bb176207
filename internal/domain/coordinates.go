package domain

// Immutable geographic coordinates (longitude, latitude), in degrees.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Rectangular lat/lon extent of a single bin, in degrees.
// North/South bound the row's angular height, West/East the bin's width.
type Bounds struct {
	North float64
	South float64
	West  float64
	East  float64
}
