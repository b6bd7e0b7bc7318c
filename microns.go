package microns

import (
	"github.com/calebcase/oops"
)

// Microns is a measurement in thousandths of the source unit. It wraps a
// single int32 and nothing else, so ==, < and map-key hashing all operate
// on the raw integer.
type Microns int32

// PerMillimeter is the number of raw units per source unit.
const PerMillimeter = 1000

// Value range constants.
const (
	Zero Microns = 0
	Max  Microns = 0x7FFFFFFF
	Min  Microns = -0x7FFFFFFF - 1

	// MaxFloat64 and MinFloat64 are the float equivalents of Max and
	// Min (2147483.647 and -2147483.648). Conversion accepts only floats
	// strictly between them.
	MaxFloat64 float64 = float64(Max) / PerMillimeter
	MinFloat64 float64 = float64(Min) / PerMillimeter
)

// Add returns m + o. Overflow wraps per two's complement.
func (m Microns) Add(o Microns) Microns {
	return m + o
}

// Sub returns m - o. Overflow wraps per two's complement.
func (m Microns) Sub(o Microns) Microns {
	return m - o
}

// Mul returns the raw integer product m * o.
//
// The product of two measurements is units-squared, not a measurement at
// the same scale. Use MulFloat64 to scale a measurement.
func (m Microns) Mul(o Microns) Microns {
	return m * o
}

// Div returns the raw integer quotient m / o, truncated toward zero. It
// returns ErrDivideByZero if o is zero. Min.Div(-1) wraps to Min.
func (m Microns) Div(o Microns) (Microns, error) {
	if o == 0 {
		return 0, oops.Trace(ErrDivideByZero)
	}

	return m / o, nil
}

// AddFloat64 converts f and adds it to m. It returns ErrOutOfRange if f
// cannot be converted.
func (m Microns) AddFloat64(f float64) (Microns, error) {
	o, err := FromFloat64(f)
	if err != nil {
		return 0, err
	}

	return m + o, nil
}

// SubFloat64 converts f and subtracts it from m. It returns ErrOutOfRange
// if f cannot be converted.
func (m Microns) SubFloat64(f float64) (Microns, error) {
	o, err := FromFloat64(f)
	if err != nil {
		return 0, err
	}

	return m - o, nil
}

// MulFloat64 scales m by f in float space and reconverts, preserving the
// thousandth precision. It returns ErrOutOfRange if the result cannot be
// represented.
func (m Microns) MulFloat64(f float64) (Microns, error) {
	return FromFloat64(m.Float64() * f)
}

// DivFloat64 divides m by f in float space and reconverts. It returns
// ErrDivideByZero if f is zero and ErrOutOfRange if the result cannot be
// represented.
func (m Microns) DivFloat64(f float64) (Microns, error) {
	if f == 0 {
		return 0, oops.Trace(ErrDivideByZero)
	}

	return FromFloat64(m.Float64() / f)
}

// Abs returns the absolute value of m, saturating to Max for Min (the most
// negative int32 has no positive counterpart).
func (m Microns) Abs() Microns {
	switch {
	case m == Min:
		return Max
	case m < 0:
		return -m
	}

	return m
}

// Neg returns -m. Min.Neg() wraps to Min.
func (m Microns) Neg() Microns {
	return -m
}

// Sign returns -1 if m is negative, 0 if zero, and +1 if positive.
func (m Microns) Sign() int {
	switch {
	case m < 0:
		return -1
	case m > 0:
		return 1
	}

	return 0
}

// IsZero returns true if m is zero.
func (m Microns) IsZero() bool {
	return m == 0
}
