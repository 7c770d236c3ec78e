package rf

import (
	"fmt"
	"strconv"
	"strings"
)

// Hertz is a frequency in Hz. The int64 range comfortably covers FR1 and FR2.
type Hertz int64

// KHz returns v kilohertz as Hertz.
func KHz(v int64) Hertz { return Hertz(v * 1_000) }

// MHz returns v megahertz as Hertz.
func MHz(v int64) Hertz { return Hertz(v * 1_000_000) }

// ParseMHz parses a decimal megahertz string ("4060", "3924.48") into Hertz
// without going through floating point. At most six fractional digits are
// accepted, anything finer than 1 Hz is rejected.
func ParseMHz(s string) (Hertz, error) {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		return 0, fmt.Errorf("invalid frequency %q", s)
	}
	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency %q: %w", s, err)
	}
	hz := whole * 1_000_000
	if hasFrac {
		if fracPart == "" || len(fracPart) > 6 {
			return 0, fmt.Errorf("invalid frequency %q: fractional part must be 1 to 6 digits", s)
		}
		frac, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid frequency %q: %w", s, err)
		}
		for i := len(fracPart); i < 6; i++ {
			frac *= 10
		}
		hz += frac
	}
	return Hertz(hz), nil
}

// String renders the frequency as plain Hz digits, matching how derived
// values appear in the workload configuration and contract data.
func (h Hertz) String() string {
	return strconv.FormatInt(int64(h), 10)
}

// divRoundHalfEven divides num by den rounding halves to even. Both must be
// positive.
func divRoundHalfEven(num, den int64) int64 {
	q := num / den
	r := num % den
	switch {
	case 2*r < den:
		return q
	case 2*r > den:
		return q + 1
	default:
		if q%2 == 0 {
			return q
		}
		return q + 1
	}
}
