package jsonschema

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/goccy/go-json"
)

// Rat wraps big.Rat so numeric keywords (multipleOf, minimum, maximum, ...)
// compare values as exact decimals instead of floating point, avoiding the
// precision loss that would otherwise make e.g. 0.1 + 0.2's multipleOf checks
// unreliable.
type Rat struct {
	*big.Rat
}

// UnmarshalJSON implements json.Unmarshaler for Rat.
func (r *Rat) UnmarshalJSON(data []byte) error {
	var tmp any
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	converted, err := convertToBigRat(tmp)
	if err != nil {
		return err
	}
	r.Rat = converted
	return nil
}

// MarshalJSON implements json.Marshaler for Rat.
func (r *Rat) MarshalJSON() ([]byte, error) {
	formatted := FormatRat(r)
	if strings.Contains(formatted, "/") {
		return json.Marshal(formatted)
	}
	return []byte(formatted), nil
}

// convertToBigRat converts a decoded JSON scalar (or a Go numeric literal) to big.Rat.
func convertToBigRat(data any) (*big.Rat, error) {
	var str string
	switch v := data.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case json.Number:
		str = string(v)
	case string:
		str = v
	default:
		return nil, ErrUnsupportedRatType
	}

	rat := new(big.Rat)
	if _, ok := rat.SetString(str); !ok {
		return nil, ErrInvalidRatValue
	}
	return rat, nil
}

// NewRat converts value to a Rat, or returns nil if value isn't numeric.
func NewRat(value any) *Rat {
	converted, err := convertToBigRat(value)
	if err != nil {
		return nil
	}
	return &Rat{converted}
}

// FormatRat renders r as a plain decimal string, trimming trailing zeros.
func FormatRat(r *Rat) string {
	if r == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	dec := r.FloatString(20)
	trimmed := strings.TrimRight(dec, "0")
	trimmed = strings.TrimRight(trimmed, ".")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// IsMultipleOf reports whether value is an exact multiple of divisor using
// rational arithmetic: value / divisor must reduce to an integer.
func IsMultipleOf(value, divisor *Rat) bool {
	if divisor.Sign() == 0 {
		return false
	}
	quotient := new(big.Rat).Quo(value.Rat, divisor.Rat)
	return quotient.IsInt()
}
