package domain

import "fmt"

// SatellitePreset names an instrument and the grid row count its standard
// Level-3 binned products use.
type SatellitePreset struct {
	Name string
	Rows int
}

// Row counts of the standard ocean color Level-3 binned products.
var builtinSatellites = []SatellitePreset{
	{Name: "czcs", Rows: 1080},
	{Name: "meris", Rows: 2160},
	{Name: "modis", Rows: 4320},
	{Name: "seawifs", Rows: 2160},
	{Name: "sentinel3", Rows: 4320},
	{Name: "viirs", Rows: 4320},
}

// BuiltinSatellites returns a copy of the built-in instrument preset table.
func BuiltinSatellites() []SatellitePreset {
	out := make([]SatellitePreset, len(builtinSatellites))
	copy(out, builtinSatellites)
	return out
}

// ResolutionError reports a custom row count that cannot serve as a grid
// resolution.
type ResolutionError struct {
	Rows int
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolution must be divisible by 360, got %d", e.Rows)
}

// CustomRows validates a caller-supplied row count for use as a custom grid
// resolution. Standard products use multiples of 360 rows so that bin
// boundaries align across resolutions.
func CustomRows(rows int) (int, error) {
	if rows <= 0 || rows%360 != 0 {
		return 0, &ResolutionError{Rows: rows}
	}
	return rows, nil
}
