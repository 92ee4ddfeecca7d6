package i18n

import (
	"math"
	"strconv"
	"strings"
)

// NumberOptions controls how numeric formatting arguments are rendered.
// The zero value formats integers without grouping; use
// DefaultNumberOptions for conventional "1,234.5" output.
type NumberOptions struct {
	GroupingSeparator string
	DecimalSeparator  string
	MinFractionDigits int
	MaxFractionDigits int
}

// DefaultNumberOptions returns grouping with "," and decimal "." with up to
// three fraction digits.
func DefaultNumberOptions() NumberOptions {
	return NumberOptions{
		GroupingSeparator: ",",
		DecimalSeparator:  ".",
		MinFractionDigits: 0,
		MaxFractionDigits: 3,
	}
}

// Format renders n according to the options.
func (o NumberOptions) Format(n float64) string {
	negative := math.Signbit(n)
	if negative {
		n = -n
	}

	maxDigits := o.MaxFractionDigits
	if maxDigits < o.MinFractionDigits {
		maxDigits = o.MinFractionDigits
	}

	s := strconv.FormatFloat(n, 'f', maxDigits, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	fracPart = strings.TrimRight(fracPart, "0")

	// A magnitude that rounds away entirely must not keep its sign.
	if negative && intPart == "0" && fracPart == "" {
		negative = false
	}

	for len(fracPart) < o.MinFractionDigits {
		fracPart += "0"
	}

	if o.GroupingSeparator != "" {
		intPart = groupDigits(intPart, o.GroupingSeparator)
	}

	result := intPart
	if fracPart != "" {
		sep := o.DecimalSeparator
		if sep == "" {
			sep = "."
		}
		result += sep + fracPart
	}

	if negative {
		result = "-" + result
	}
	return result
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var groups []string
	for i := len(digits); i > 0; i -= 3 {
		start := max(0, i-3)
		groups = append([]string{digits[start:i]}, groups...)
	}
	return strings.Join(groups, sep)
}
