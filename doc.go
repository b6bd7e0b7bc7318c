// Package microns provides a fixed-precision numeric type for physical
// measurements backed by a single signed 32 bit integer.
//
// A Microns value stores thousandths of the source unit: when the source
// floats are millimeters, one raw unit is one micron. Converting a float to
// Microns multiplies by 1000 and truncates toward zero, so repeated
// arithmetic never accumulates floating point rounding drift and values
// remain exactly comparable and usable as map keys.
//
// Representation
//
// Microns is a defined integer type, not a struct. Equality, ordering and
// hashing are therefore the raw integer's, which is exactly the intended
// semantics: two values are equal iff their raw integers are equal.
// Construction from a raw integer is the plain conversion Microns(n); any
// int32 is a valid value.
//
// Conversion
//
// FromFloat64 is the primary conversion and is fallible: NaN and any float
// at or beyond the float equivalents of Min and Max are rejected with
// ErrOutOfRange. MustFromFloat64 is the trusting variant for inputs already
// known to be in range; it panics instead.
//
// Truncation is always toward zero and never rounds:
//
//  FromFloat64(0.0019)  // 1, not 2
//  FromFloat64(-0.0019) // -1, not -2
//
// Arithmetic
//
// All operations are pure and produce new values. Same-type Add, Sub and
// Mul use wrapping two's-complement int32 arithmetic. Div fails with
// ErrDivideByZero on a zero divisor and otherwise truncates toward zero.
//
// The float-scalar forms (AddFloat64, MulFloat64, ...) route through
// FromFloat64 and inherit its range checking, preserving micron precision
// for scalar multiply and divide.
//
// Multiplying or dividing two Microns values operates on the raw integers
// and is blind to units: the product of two lengths is not a length at the
// same scale. This matches the reference semantics and is a documented
// modeling caveat, not something the package corrects silently. Prefer the
// float-scalar forms for scaling a measurement.
//
// Serialization
//
// The value serializes as a structurally transparent single-integer record:
// the binary form is the raw int32 as 4 big-endian bytes, the JSON form is
// the bare raw integer, and the text form is the decimal millimeter string
// produced by String.
package microns
