package microns

import (
	"errors"
	"strconv"
	"strings"

	"github.com/calebcase/oops"
)

// String returns the measurement in the source unit as a plain decimal
// with exactly three fractional digits: Microns(1500) is "1.500" and
// Microns(-1) is "-0.001".
func (m Microns) String() string {
	u := uint64(int64(m))
	if m < 0 {
		u = uint64(-int64(m))
	}

	b := make([]byte, 0, 12)
	if m < 0 {
		b = append(b, '-')
	}

	b = strconv.AppendUint(b, u/PerMillimeter, 10)
	b = append(b, '.')

	frac := u % PerMillimeter
	if frac < 100 {
		b = append(b, '0')
	}
	if frac < 10 {
		b = append(b, '0')
	}
	b = strconv.AppendUint(b, frac, 10)

	return string(b)
}

// Parse converts a plain decimal measurement in the source unit to
// Microns. The input is an optionally signed integer part with an optional
// fraction of at most three digits ("1.5", "-0.001", "12").
//
// Parsing is exact: more than three fractional digits is an error rather
// than a silent truncation. Values beyond the representable range return
// ErrOutOfRange.
func Parse(s string) (Microns, error) {
	rest := s
	neg := false

	if len(rest) > 0 {
		switch rest[0] {
		case '+':
			rest = rest[1:]
		case '-':
			neg = true
			rest = rest[1:]
		}
	}

	intPart := rest
	fracPart := ""
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		intPart, fracPart = rest[:i], rest[i+1:]
	}

	if intPart == "" && fracPart == "" {
		return 0, Error.New("invalid syntax: %q", s)
	}
	if len(fracPart) > 3 {
		return 0, Error.New("too many fractional digits: %q", s)
	}

	whole := uint64(0)
	if intPart != "" {
		var err error

		whole, err = strconv.ParseUint(intPart, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, oops.Trace(ErrOutOfRange)
			}

			return 0, Error.New("invalid syntax: %q", s)
		}
	}

	frac := uint64(0)
	for _, c := range []byte(fracPart) {
		if c < '0' || c > '9' {
			return 0, Error.New("invalid syntax: %q", s)
		}
		frac = frac*10 + uint64(c-'0')
	}
	for i := len(fracPart); i < 3; i++ {
		frac *= 10
	}

	if whole > uint64(Max)/PerMillimeter+1 {
		return 0, oops.Trace(ErrOutOfRange)
	}

	raw := whole*PerMillimeter + frac
	if neg {
		if raw > uint64(Max)+1 {
			return 0, oops.Trace(ErrOutOfRange)
		}

		return Microns(-int64(raw)), nil
	}

	if raw > uint64(Max) {
		return 0, oops.Trace(ErrOutOfRange)
	}

	return Microns(raw), nil
}
