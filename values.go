package finskema

import (
	"encoding/json"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/reoring/finskema/codec"
)

// Values is the canonical object handed to refinements. Accessors report
// ok=false when the field is absent, null, or of an unexpected type, so
// rules can treat missing operands as "nothing to check".
type Values map[string]any

// Has reports whether name is present with a non-null value.
func (v Values) Has(name string) bool {
	x, ok := v[name]
	return ok && x != nil
}

func (v Values) String(name string) (string, bool) {
	s, ok := v[name].(string)
	return s, ok
}

func (v Values) Bool(name string) (bool, bool) {
	b, ok := v[name].(bool)
	return b, ok
}

// Decimal returns a numeric field as a decimal.
func (v Values) Decimal(name string) (decimal.Decimal, bool) {
	return ToDecimal(v[name])
}

func (v Values) Int(name string) (int64, bool) {
	switch n := v[name].(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	}
	return 0, false
}

// Time parses a canonical date field.
func (v Values) Time(name string) (time.Time, bool) {
	s, ok := v[name].(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := codec.ParseISO(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ToDecimal converts the numeric representations accepted by the number
// primitive into a decimal.
func ToDecimal(x any) (decimal.Decimal, bool) {
	switch n := x.(type) {
	case decimal.Decimal:
		return n, true
	case *decimal.Decimal:
		if n == nil {
			return decimal.Decimal{}, false
		}
		return *n, true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(n), true
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return decimal.NewFromUint64(uint64(n)), true
	case uint8:
		return decimal.NewFromUint64(uint64(n)), true
	case uint16:
		return decimal.NewFromUint64(uint64(n)), true
	case uint32:
		return decimal.NewFromUint64(uint64(n)), true
	case uint64:
		return decimal.NewFromUint64(n), true
	case json.Number:
		d, err := decimal.NewFromString(string(n))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	}
	return decimal.Decimal{}, false
}
