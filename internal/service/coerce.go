package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// toFloat coerces a decoded JSON value to a finite number.  Booleans
// count as 0/1 and numeric strings are parsed; anything else is invalid.
func toFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = n
	case bool:
		if t {
			f = 1
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CoercePrice turns client input into a price.  Invalid or negative
// values become 0.
func CoercePrice(v any) float64 {
	f, ok := toFloat(v)
	if !ok || f < 0 {
		return 0
	}
	return f
}

// CoerceQuantity turns client input into a positive whole quantity.
// Missing, invalid, fractional-below-one and non-positive values become 1.
func CoerceQuantity(v any) int {
	f, ok := toFloat(v)
	if !ok {
		return 1
	}
	f = math.Trunc(f)
	if f < 1 {
		return 1
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
