package domain

import "fmt"

// RangeKind identifies which input domain a RangeError refers to.
type RangeKind int

const (
	RangeLatitude RangeKind = iota
	RangeLongitude
	RangeBin
)

// RangeError reports an input scalar outside its valid domain. The violated
// bounds are carried so callers can build a precise diagnostic without
// re-deriving the grid's limits.
type RangeError struct {
	Kind RangeKind
	Min  float64
	Max  float64
}

func (e *RangeError) Error() string {
	switch e.Kind {
	case RangeLatitude:
		return fmt.Sprintf("latitude must be between %g and %g", e.Min, e.Max)
	case RangeLongitude:
		return fmt.Sprintf("longitude must be between %g and %g", e.Min, e.Max)
	case RangeBin:
		return fmt.Sprintf("bin id is out of range, maximum allowed is %d", int(e.Max))
	default:
		return fmt.Sprintf("value must be between %g and %g", e.Min, e.Max)
	}
}

// GridConfigError reports an invalid grid construction parameter.
// No partial grid is produced when it is returned.
type GridConfigError struct {
	Rows int
}

func (e *GridConfigError) Error() string {
	return fmt.Sprintf("grid rows must be a positive integer, got %d", e.Rows)
}
