package domain

import (
	"errors"
	"math"
	"sort"
)

// Valid input domains for geographic coordinates, in degrees.
const (
	MinLon = -180.0
	MaxLon = 180.0
	MinLat = -90.0
	MaxLat = 90.0
)

// Grid is an Integerized Sinusoidal (ISIN) binning grid: a fixed number of
// latitude rows of equal angular height, each split into a cos(lat)-scaled
// number of longitude columns so that every bin covers approximately the
// same surface area. Bins are numbered 1..TotalBins row-major from the
// southernmost row.
//
// A Grid is immutable once built and safe for unlimited concurrent queries.
//
// See appendix A: https://ntrs.nasa.gov/api/citations/19960007721/downloads/19960007721.pdf
type Grid struct {
	rows    int
	latBin  []float64 // center latitude per row
	numBin  []int     // column count per row
	baseBin []int     // smallest bin id per row, strictly increasing
	totBin  int
}

// NewGrid builds the per-row geometry for a grid with the given number of
// latitude rows. MODIS uses 4320 rows, SeaWiFS 2160.
func NewGrid(rows int) (*Grid, error) {
	if rows <= 0 {
		return nil, &GridConfigError{Rows: rows}
	}

	latBin := make([]float64, rows)
	numBin := make([]int, rows)
	baseBin := make([]int, rows)

	baseBin[0] = 1
	for row := 0; row < rows; row++ {
		lat := ((float64(row) + 0.5) * 180.0 / float64(rows)) - 90.0
		latBin[row] = lat
		// Round-half-up of the ideal equal-area column count.
		numBin[row] = int(2.0*float64(rows)*math.Cos(lat*math.Pi/180.0) + 0.5)
		if row > 0 {
			baseBin[row] = baseBin[row-1] + numBin[row-1]
		}
	}

	return &Grid{
		rows:    rows,
		latBin:  latBin,
		numBin:  numBin,
		baseBin: baseBin,
		totBin:  baseBin[rows-1] + numBin[rows-1] - 1,
	}, nil
}

// Rows returns the number of latitude rows spanning pole to pole.
func (g *Grid) Rows() int { return g.rows }

// TotalBins returns the total number of bins in the grid.
func (g *Grid) TotalBins() int { return g.totBin }

// LatToRow maps a latitude in [-90, 90] to the zero-based row containing it.
//
// At exactly lat = 90 the placement formula yields Rows(), one past the last
// valid row. That boundary value is returned as-is; LonLatToBin folds it into
// the top row before indexing the per-row tables.
func (g *Grid) LatToRow(lat float64) (int, error) {
	if !withinBounds(lat, MinLat, MaxLat) {
		return 0, &RangeError{Kind: RangeLatitude, Min: MinLat, Max: MaxLat}
	}
	return g.rowForLat(lat), nil
}

func (g *Grid) rowForLat(lat float64) int {
	return int((90.0 + lat) * float64(g.rows) / 180.0)
}

// LonLatToBin maps equal-length slices of longitudes and latitudes to one
// 1-based bin id per pair, in input order. Any value outside its valid domain
// fails the whole call before any bin is computed.
func (g *Grid) LonLatToBin(lons, lats []float64) ([]int, error) {
	if len(lons) != len(lats) {
		return nil, errors.New("lonlat to bin: lons and lats must have equal length")
	}
	if err := checkRange(lons, RangeLongitude, MinLon, MaxLon); err != nil {
		return nil, err
	}
	if err := checkRange(lats, RangeLatitude, MinLat, MaxLat); err != nil {
		return nil, err
	}

	bins := make([]int, 0, len(lats))
	for i := range lats {
		row := g.rowForLat(lats[i])
		if row >= g.rows {
			// lat = 90 lands one past the last row; fold it into the top row.
			row = g.rows - 1
		}

		col := int((lons[i] + 180.0) * float64(g.numBin[row]) / 360.0)
		if col >= g.numBin[row] {
			// Absorbs floating-point rounding at lon = 180.
			col = g.numBin[row] - 1
		}

		bins = append(bins, g.baseBin[row]+col)
	}

	return bins, nil
}

// BinToLonLat returns the center coordinates of each bin, in input order.
// Every bin id must lie in [1, TotalBins]; an out-of-range id fails the
// whole call.
func (g *Grid) BinToLonLat(bins []int) ([]Coordinates, error) {
	if err := g.checkBins(bins); err != nil {
		return nil, err
	}

	out := make([]Coordinates, 0, len(bins))
	for _, b := range bins {
		row := g.rowForBin(b)
		out = append(out, Coordinates{
			Lon: 360.0*(float64(b-g.baseBin[row])+0.5)/float64(g.numBin[row]) - 180.0,
			Lat: g.latBin[row],
		})
	}

	return out, nil
}

// BinToBounds returns the rectangular lat/lon extent of each bin, in input
// order. Input validation is identical to BinToLonLat.
func (g *Grid) BinToBounds(bins []int) ([]Bounds, error) {
	if err := g.checkBins(bins); err != nil {
		return nil, err
	}

	halfHeight := 90.0 / float64(g.rows)

	out := make([]Bounds, 0, len(bins))
	for _, b := range bins {
		row := g.rowForBin(b)

		lon := 360.0*(float64(b-g.baseBin[row])+0.5)/float64(g.numBin[row]) - 180.0
		halfWidth := 180.0 / float64(g.numBin[row])

		out = append(out, Bounds{
			North: g.latBin[row] + halfHeight,
			South: g.latBin[row] - halfHeight,
			West:  lon - halfWidth,
			East:  lon + halfWidth,
		})
	}

	return out, nil
}

// rowForBin locates the row owning bin b by binary search over baseBin.
// baseBin is strictly increasing, so an exact match is the row itself and
// any other insertion point is one past it.
func (g *Grid) rowForBin(b int) int {
	row := sort.SearchInts(g.baseBin, b)
	if row == g.rows || g.baseBin[row] != b {
		row--
	}
	return row
}

func (g *Grid) checkBins(bins []int) error {
	for _, b := range bins {
		if b < 1 || b > g.totBin {
			return &RangeError{Kind: RangeBin, Min: 1, Max: float64(g.totBin)}
		}
	}
	return nil
}
