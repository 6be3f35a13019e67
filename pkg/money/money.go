// Package money normalizes the loosely typed monetary values coming back from
// the commerce store. Rows may carry cents as integers, floats, or numeric
// strings; anything unreadable coerces to zero rather than erroring, so the
// leniency lives here instead of leaking into aggregation logic.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CentsToRand converts a minor-unit amount to Rand. Numeric strings are
// accepted; nil and non-numeric inputs yield 0.
func CentsToRand(value any) float64 {
	d, ok := toDecimal(value)
	if !ok {
		return 0
	}
	out, _ := d.Div(oneHundred).Float64()
	return out
}

// ToNumber coerces value to a float64 with the same zero fallback.
func ToNumber(value any) float64 {
	d, ok := toDecimal(value)
	if !ok {
		return 0
	}
	out, _ := d.Float64()
	return out
}

func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case nil:
		return decimal.Decimal{}, false
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case float64:
		return decimal.NewFromFloat(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}
