package service

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// EnsureNumeric coerces a loosely typed JSON value to a float64 balance.
// Absent, empty and non-numeric values become 0.
func EnsureNumeric(value interface{}) float64 {
	switch v := value.(type) {
	case nil, bool:
		return 0
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0
		}
		value = v
	}
	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseAmount accepts a JSON number or numeric string and requires it to be
// strictly positive.
func ParseAmount(value interface{}) (float64, error) {
	if value == nil {
		return 0, ErrInvalidAmount
	}
	if _, ok := value.(bool); ok {
		return 0, ErrInvalidAmount
	}
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, ErrInvalidAmount
	}
	return f, nil
}

// WithdrawalFee is amount*rate rounded to cents.
func WithdrawalFee(amount, rate float64) float64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Round(2).InexactFloat64()
}

func sameCents(a, b float64) bool {
	return decimal.NewFromFloat(a).Round(2).Equal(decimal.NewFromFloat(b).Round(2))
}
