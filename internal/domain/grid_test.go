package domain

import (
	"errors"
	"math"
	"testing"
)

const modisRows = 4320

func mustGrid(t *testing.T, rows int) *Grid {
	t.Helper()
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid(%d): unexpected error: %v", rows, err)
	}
	return g
}

func TestNewGridRejectsNonPositiveRows(t *testing.T) {
	for _, rows := range []int{0, -1} {
		_, err := NewGrid(rows)
		if err == nil {
			t.Fatalf("NewGrid(%d): expected error, got nil", rows)
		}

		var cfgErr *GridConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("NewGrid(%d): error = %v, want *GridConfigError", rows, err)
		}
		if cfgErr.Rows != rows {
			t.Errorf("NewGrid(%d): cfgErr.Rows = %d", rows, cfgErr.Rows)
		}
	}
}

func TestNewGridModisTotalBins(t *testing.T) {
	g := mustGrid(t, modisRows)

	if g.Rows() != modisRows {
		t.Errorf("Rows() = %d, want %d", g.Rows(), modisRows)
	}
	if g.TotalBins() != 23761676 {
		t.Errorf("TotalBins() = %d, want 23761676", g.TotalBins())
	}
}

// The row table must partition [1, TotalBins] with no gaps or overlaps.
func TestGridRowPartition(t *testing.T) {
	for _, rows := range []int{18, 360, 2160, modisRows} {
		g := mustGrid(t, rows)

		if g.baseBin[0] != 1 {
			t.Fatalf("rows=%d: baseBin[0] = %d, want 1", rows, g.baseBin[0])
		}

		for r := 0; r < rows; r++ {
			if g.numBin[r] < 1 {
				t.Fatalf("rows=%d: numBin[%d] = %d, want >= 1", rows, r, g.numBin[r])
			}
			if r > 0 {
				if g.baseBin[r] <= g.baseBin[r-1] {
					t.Fatalf("rows=%d: baseBin not strictly increasing at row %d", rows, r)
				}
				if g.baseBin[r-1]+g.numBin[r-1] != g.baseBin[r] {
					t.Fatalf(
						"rows=%d: row %d leaves a gap: base %d + count %d != next base %d",
						rows, r-1, g.baseBin[r-1], g.numBin[r-1], g.baseBin[r],
					)
				}
			}
		}

		if want := g.baseBin[rows-1] + g.numBin[rows-1] - 1; g.totBin != want {
			t.Fatalf("rows=%d: totBin = %d, want %d", rows, g.totBin, want)
		}
	}
}

func TestGridRowLatitudesSymmetric(t *testing.T) {
	g := mustGrid(t, 360)

	for r := 1; r < g.rows; r++ {
		if g.latBin[r] <= g.latBin[r-1] {
			t.Fatalf("latBin not strictly increasing at row %d", r)
		}
	}
	for r := 0; r < g.rows; r++ {
		mirror := g.latBin[g.rows-1-r]
		if math.Abs(g.latBin[r]+mirror) > 1e-12 {
			t.Fatalf("latBin[%d] = %v not symmetric with %v", r, g.latBin[r], mirror)
		}
	}
}

func TestLatToRow(t *testing.T) {
	g := mustGrid(t, modisRows)

	cases := []struct {
		lat  float64
		want int
	}{
		{0.0, modisRows / 2},
		{-90.0, 0},
		{45.0, 3240},
		// Documented boundary edge case: lat = 90 yields one past the last row.
		{90.0, modisRows},
	}

	for _, c := range cases {
		row, err := g.LatToRow(c.lat)
		if err != nil {
			t.Fatalf("LatToRow(%v): unexpected error: %v", c.lat, err)
		}
		if row != c.want {
			t.Errorf("LatToRow(%v) = %d, want %d", c.lat, row, c.want)
		}
	}
}

func TestLatToRowOutOfRange(t *testing.T) {
	g := mustGrid(t, modisRows)

	for _, lat := range []float64{91.0, -91.0} {
		_, err := g.LatToRow(lat)

		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("LatToRow(%v): error = %v, want *RangeError", lat, err)
		}
		if rangeErr.Kind != RangeLatitude {
			t.Errorf("LatToRow(%v): Kind = %v, want RangeLatitude", lat, rangeErr.Kind)
		}
		if rangeErr.Min != MinLat || rangeErr.Max != MaxLat {
			t.Errorf("LatToRow(%v): bounds = [%v, %v], want [-90, 90]", lat, rangeErr.Min, rangeErr.Max)
		}
	}
}

func TestLonLatToBinRejectsOutOfRange(t *testing.T) {
	g := mustGrid(t, modisRows)

	cases := []struct {
		name string
		lons []float64
		lats []float64
		kind RangeKind
	}{
		{"lon high", []float64{181.0, 0.0}, []float64{0.0, 0.0}, RangeLongitude},
		{"lon low", []float64{-181.0, 0.0}, []float64{0.0, 0.0}, RangeLongitude},
		{"lat high", []float64{0.0, 0.0}, []float64{91.0, 0.0}, RangeLatitude},
		{"lat low", []float64{0.0, 0.0}, []float64{-91.0, 0.0}, RangeLatitude},
	}

	for _, c := range cases {
		bins, err := g.LonLatToBin(c.lons, c.lats)
		if bins != nil {
			t.Fatalf("%s: expected no partial output, got %v", c.name, bins)
		}

		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("%s: error = %v, want *RangeError", c.name, err)
		}
		if rangeErr.Kind != c.kind {
			t.Errorf("%s: Kind = %v, want %v", c.name, rangeErr.Kind, c.kind)
		}
	}

	if _, err := g.LonLatToBin([]float64{0.0}, []float64{0.0, 1.0}); err == nil {
		t.Fatal("mismatched slice lengths: expected error, got nil")
	}
}

// Latitude 90 maps one past the last row; the conversion must fold it into
// the top row instead of indexing out of bounds.
func TestLonLatToBinNorthPole(t *testing.T) {
	g := mustGrid(t, modisRows)

	bins, err := g.LonLatToBin([]float64{0.0}, []float64{90.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	top := g.baseBin[g.rows-1]
	if bins[0] < top || bins[0] > g.totBin {
		t.Fatalf("bin %d for lat=90 not in top row [%d, %d]", bins[0], top, g.totBin)
	}

	centers, err := g.BinToLonLat(bins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := centers[0].Lat, g.latBin[g.rows-1]; got != want {
		t.Errorf("center latitude = %v, want top row center %v", got, want)
	}
}

// Longitude 180 sits on the seam between the last and (wrapped) first
// column; the column clamp must keep it inside the row.
func TestLonLatToBinDateLineClamp(t *testing.T) {
	g := mustGrid(t, modisRows)

	bins, err := g.LonLatToBin([]float64{180.0, -180.0}, []float64{0.0, 0.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := g.rowForLat(0.0)
	first := g.baseBin[row]
	last := g.baseBin[row] + g.numBin[row] - 1

	if bins[0] != last {
		t.Errorf("lon=180 bin = %d, want last column %d", bins[0], last)
	}
	if bins[1] != first {
		t.Errorf("lon=-180 bin = %d, want first column %d", bins[1], first)
	}
}

// Regression vectors from the croc R package test suite:
// https://github.com/sosoc/croc/blob/e91fcd64017e955922615244577fc8c803cb9a76/tests/testthat/test-bins.R
func TestBinToLonLatKnownValues(t *testing.T) {
	g := mustGrid(t, modisRows)

	bins := []int{
		6308931, 8842288, 13611957, 21580540, 4792301,
		21347245, 22447068, 15701664, 14948805, 1468146,
	}
	want := []Coordinates{
		{Lon: 94.38794233289644, Lat: -27.979166666666664},
		{Lon: -48.701065485454336, Lat: -14.8125},
		{Lon: -152.3903123903124, Lat: 8.395833333333329},
		{Lon: -14.143114852675893, Lat: 54.72916666666666},
		{Lon: 142.32256203115986, Lat: -36.645833333333336},
		{Lon: 95.85982382229031, Lat: 52.8125},
		{Lon: -179.68085106382978, Lat: 62.8125},
		{Lon: -98.6479217603912, Lat: 18.77083333333333},
		{Lon: -123.04097771387491, Lat: 14.979166666666671},
		{Lon: 128.35497835497836, Lat: -61.22916666666667},
	}

	got, err := g.BinToLonLat(bins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}

	for i := range want {
		if math.Abs(got[i].Lon-want[i].Lon) > 1e-6 {
			t.Errorf("bin %d: Lon = %v, want %v", bins[i], got[i].Lon, want[i].Lon)
		}
		if math.Abs(got[i].Lat-want[i].Lat) > 1e-6 {
			t.Errorf("bin %d: Lat = %v, want %v", bins[i], got[i].Lat, want[i].Lat)
		}
	}
}

func TestBinToLonLatDeterministic(t *testing.T) {
	g := mustGrid(t, modisRows)

	bins := []int{1, 6308931, g.TotalBins()}

	first, err := g.BinToLonLat(bins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := g.BinToLonLat(bins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range bins {
		if first[i] != second[i] {
			t.Errorf("bin %d: %v != %v across calls", bins[i], first[i], second[i])
		}
	}
}

func TestBinRangeRejection(t *testing.T) {
	g := mustGrid(t, modisRows)

	for _, b := range []int{0, g.TotalBins() + 1} {
		for name, call := range map[string]func([]int) error{
			"BinToLonLat": func(bins []int) error { _, err := g.BinToLonLat(bins); return err },
			"BinToBounds": func(bins []int) error { _, err := g.BinToBounds(bins); return err },
		} {
			err := call([]int{b, 1})

			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("%s(%d): error = %v, want *RangeError", name, b, err)
			}
			if rangeErr.Kind != RangeBin {
				t.Errorf("%s(%d): Kind = %v, want RangeBin", name, b, rangeErr.Kind)
			}
			if int(rangeErr.Max) != g.TotalBins() {
				t.Errorf("%s(%d): Max = %v, want %d", name, b, rangeErr.Max, g.TotalBins())
			}
		}
	}
}

// Converting a coordinate to its bin and back must land within half a bin
// of the original, and the bin's bounds must enclose both points.
// Inputs sitting exactly on a row or column seam are exactly half a bin from
// the center, so the comparison allows for floating-point noise in the
// center formulas.
func TestLonLatRoundTrip(t *testing.T) {
	g := mustGrid(t, 2160)

	lons := []float64{0.0, 45.0, -45.0, 179.9, -179.9, 78.0, -0.01}
	lats := []float64{0.0, 45.0, -45.0, 89.9, -89.9, -36.0, 0.01}

	bins, err := g.LonLatToBin(lons, lats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	centers, err := g.BinToLonLat(bins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bounds, err := g.BinToBounds(bins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const seamTolerance = 1e-9

	for i := range bins {
		halfHeight := (bounds[i].North - bounds[i].South) / 2
		halfWidth := (bounds[i].East - bounds[i].West) / 2

		if d := math.Abs(centers[i].Lat - lats[i]); d > halfHeight+seamTolerance {
			t.Errorf("bin %d: |lat delta| = %v exceeds half height %v", bins[i], d, halfHeight)
		}
		if d := math.Abs(centers[i].Lon - lons[i]); d > halfWidth+seamTolerance {
			t.Errorf("bin %d: |lon delta| = %v exceeds half width %v", bins[i], d, halfWidth)
		}

		if centers[i].Lat < bounds[i].South || centers[i].Lat > bounds[i].North {
			t.Errorf("bin %d: center lat %v outside [%v, %v]", bins[i], centers[i].Lat, bounds[i].South, bounds[i].North)
		}
		if centers[i].Lon < bounds[i].West || centers[i].Lon > bounds[i].East {
			t.Errorf("bin %d: center lon %v outside [%v, %v]", bins[i], centers[i].Lon, bounds[i].West, bounds[i].East)
		}
	}
}

func TestBinToBoundsOrdering(t *testing.T) {
	g := mustGrid(t, 2160)

	// First bin, a low-row bin, the equator row's base bin, and the last bin.
	bins := []int{1, 367, g.baseBin[g.rows/2], g.TotalBins()}

	bounds, err := g.BinToBounds(bins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, b := range bounds {
		if b.North <= b.South {
			t.Errorf("bin %d: North %v <= South %v", bins[i], b.North, b.South)
		}
		if b.East <= b.West {
			t.Errorf("bin %d: East %v <= West %v", bins[i], b.East, b.West)
		}
	}
}

// Every bin id must resolve to the row whose [base, base+count) range holds it.
func TestRowForBinAgreesWithPartition(t *testing.T) {
	g := mustGrid(t, 360)

	for r := 0; r < g.rows; r++ {
		for _, b := range []int{g.baseBin[r], g.baseBin[r] + g.numBin[r] - 1} {
			if got := g.rowForBin(b); got != r {
				t.Fatalf("rowForBin(%d) = %d, want %d", b, got, r)
			}
		}
	}
}
