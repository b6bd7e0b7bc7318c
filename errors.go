package microns

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("microns")

var (
	// ErrOutOfRange is returned when a float to Microns conversion is
	// given NaN or a value outside the representable scaled range.
	ErrOutOfRange = Error.New("out of range")

	// ErrDivideByZero is returned when a divisor is zero, either as a
	// raw zero Microns value or as a float scalar of 0.
	ErrDivideByZero = Error.New("divide by zero")
)
