// Package money is the exact base-10 arithmetic layer for every money and
// voltage-drop figure in the engine. Operations keep full decimal precision
// through multi-step chains; rounding happens only at an explicit Round or
// RoundTo boundary, so repeated add/subtract chains cannot drift the way
// binary floating point does.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrDivisionByZero indicates a division or percentage with a zero
	// divisor. The layer fails fast rather than returning a sentinel,
	// because a silent zero or infinity in a cost figure is a financial
	// and safety risk downstream.
	ErrDivisionByZero = errors.New("money: division by zero")

	// ErrInvalidNumber indicates an operand that could not be interpreted
	// as a decimal value.
	ErrInvalidNumber = errors.New("money: invalid numeric value")
)

// MoneyPlaces is the currency precision applied by Round
const MoneyPlaces = 2

// divPlaces is the internal precision retained by division before any
// final money rounding
const divPlaces = 8

// Operand converts a decimal-string or numeric value into a decimal.
// Accepted types are string, float64, int, int64, and decimal.Decimal.
func Operand(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case string:
		d, err := decimal.NewFromString(x)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, x)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrInvalidNumber, v)
	}
}

// FromString parses a decimal-string operand
func FromString(s string) (decimal.Decimal, error) {
	return Operand(s)
}

// FromFloat converts a float operand to an exact decimal
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// FromInt converts an integer operand to a decimal
func FromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// Add returns a + b at full precision
func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

// Sub returns a - b at full precision
func Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b)
}

// Mul returns a * b at full precision
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b)
}

// Div returns a / b carried to the internal division precision.
// Returns ErrDivisionByZero when b is zero.
func Div(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	return a.DivRound(b, divPlaces), nil
}

// Sum adds a series of values at full precision
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Round rounds a value to currency precision
func Round(v decimal.Decimal) decimal.Decimal {
	return v.Round(MoneyPlaces)
}

// RoundTo rounds a value to the given number of decimal places
func RoundTo(v decimal.Decimal, places int32) decimal.Decimal {
	return v.Round(places)
}

// PercentOf returns part / whole * 100. Returns ErrDivisionByZero when
// whole is zero.
func PercentOf(part, whole decimal.Decimal) (decimal.Decimal, error) {
	ratio, err := Div(part, whole)
	if err != nil {
		return decimal.Zero, err
	}
	return ratio.Mul(decimal.NewFromInt(100)), nil
}

// Variance returns current - baseline at full precision
func Variance(current, baseline decimal.Decimal) decimal.Decimal {
	return current.Sub(baseline)
}
