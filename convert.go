package microns

import (
	"math"
	"strconv"

	"github.com/calebcase/oops"
)

// InRange returns true if f can be converted to Microns: f is not NaN and
// lies strictly between MinFloat64 and MaxFloat64.
//
// The comparison is against the float equivalents of Min and Max rather
// than the raw integer bounds because float precision loss near the
// boundary matters: a float that merely rounds to the boundary must still
// be rejected.
func InRange(f float64) bool {
	if math.IsNaN(f) {
		return false
	}

	return f > MinFloat64 && f < MaxFloat64
}

// FromFloat64 converts a measurement in the source unit to Microns by
// scaling by 1000 and truncating toward zero. It never rounds:
// 0.0019 becomes 1 and -0.0019 becomes -1.
//
// It returns ErrOutOfRange if f is NaN or not strictly inside the
// (MinFloat64, MaxFloat64) interval.
func FromFloat64(f float64) (Microns, error) {
	if !InRange(f) {
		return 0, oops.Trace(ErrOutOfRange)
	}

	return Microns(math.Trunc(f * PerMillimeter)), nil
}

// MustFromFloat64 is like FromFloat64 but panics on out of range input. It
// is intended for hot paths where f is already known to be valid.
func MustFromFloat64(f float64) Microns {
	m, err := FromFloat64(f)
	if err != nil {
		given := strconv.FormatFloat(f, 'f', -1, 64)
		panic("microns: can't convert " + given)
	}

	return m
}

// Float64 returns the measurement in the source unit: the raw integer
// divided by 1000. It is total, but only a lossy inverse of FromFloat64:
// the round trip reproduces the float whose scaled truncated form matches,
// not necessarily the original float.
func (m Microns) Float64() float64 {
	return float64(m) / PerMillimeter
}
