package domain

// withinBounds reports whether v lies in [lo, hi].
func withinBounds(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// checkRange validates every value against [lo, hi], returning a RangeError
// of the given kind on the first violation.
func checkRange(vals []float64, kind RangeKind, lo, hi float64) error {
	for _, v := range vals {
		if !withinBounds(v, lo, hi) {
			return &RangeError{Kind: kind, Min: lo, Max: hi}
		}
	}
	return nil
}
