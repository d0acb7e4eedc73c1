package engine

import (
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Coerce turns a value of unknown shape into a finite number. Strings are
// parsed as floats; anything absent, unparsable, NaN or infinite becomes
// def. strconv.ParseFloat returns +Inf for "Infinity" with a nil error, so
// the finite check cannot be skipped. Negative zero normalizes to zero.
func Coerce(v any, def float64) float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return def
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		p, err := strconv.ParseFloat(x.String(), 64)
		if err != nil {
			return def
		}
		f = p
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return def
		}
		f = p
	default:
		return def
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	if f == 0 {
		return 0
	}
	return f
}

// CoerceAmount is Coerce for currency and rate fields: negative values are
// treated as missing and replaced by the default.
func CoerceAmount(v any, def float64) float64 {
	f := Coerce(v, def)
	if f < 0 {
		return def
	}
	return f
}
