package section

import (
	"fmt"
	"math"
	"strconv"
)

// Placeholder is the fixed display string substituted for any missing or
// invalid scalar. It is only ever produced, never reinterpreted as data.
const Placeholder = "no data obtained"

// Display returns the printable form of v, or the placeholder when v is
// missing. Missing means nil, a nil typed pointer, or a NaN number.
func Display(v any) string {
	return DisplayOr(v, Placeholder)
}

// DisplayOr is Display with a caller-chosen fallback.
func DisplayOr(v any, fallback string) string {
	switch t := v.(type) {
	case nil:
		return fallback
	case string:
		return t
	case *string:
		if t == nil {
			return fallback
		}
		return *t
	case float64:
		if math.IsNaN(t) {
			return fallback
		}
		return formatNumber(t)
	case *float64:
		if t == nil || math.IsNaN(*t) {
			return fallback
		}
		return formatNumber(*t)
	default:
		return fmt.Sprint(v)
	}
}

// formatNumber renders a float without trailing zeros, so 5.0 prints as "5".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// percentFromFraction formats a 0-1 fraction as a percentage with exactly
// one decimal digit, e.g. 0.345 -> "34.5%".
func percentFromFraction(p *float64) string {
	if p == nil || math.IsNaN(*p) {
		return Placeholder
	}
	return strconv.FormatFloat(*p*100, 'f', 1, 64) + "%"
}

// percentDirect formats a value already expressed in percent units by
// suffixing "%" without rescaling, e.g. 5 -> "5%".
func percentDirect(p *float64) string {
	if p == nil || math.IsNaN(*p) {
		return Placeholder
	}
	return formatNumber(*p) + "%"
}
