package entity

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// BasisPointsDenominator is 100% expressed in basis points
const BasisPointsDenominator = 10000

var maxPaise = decimal.NewFromInt(math.MaxInt64)

// Money is an amount of Indian Rupees counted in paise.
// All ledger arithmetic is integral; decimals only appear at the edges.
type Money int64

// ParseMoney converts a rupee string such as "10", "10.5" or "10.50" into paise.
// Negative values and more than two fraction digits are rejected.
func ParseMoney(amount string) (Money, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	return MoneyFromDecimal(d)
}

// MoneyFromDecimal converts a rupee decimal into paise
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: negative value %s", errs.ErrInvalidAmount, d.String())
	}
	paise := d.Shift(MaxDecimalPlaces)
	if !paise.IsInteger() {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	if paise.GreaterThan(maxPaise) {
		return 0, errs.ErrAmountOverflow
	}
	return Money(paise.IntPart()), nil
}

// Rupees builds a Money value from whole rupees
func Rupees(r int64) Money {
	return Money(r * 100)
}

// Paise returns the raw amount in paise
func (m Money) Paise() int64 {
	return int64(m)
}

// Decimal returns the amount in rupees
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -MaxDecimalPlaces)
}

// String formats the amount with exactly two fraction digits, e.g. "26.67"
func (m Money) String() string {
	return m.Decimal().StringFixed(MaxDecimalPlaces)
}

// Display formats the amount for people, e.g. "₹1,234.50"
func (m Money) Display() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s₹%s.%02d", sign, humanize.Comma(v/100), v%100)
}

// MarshalJSON encodes the amount as a JSON number with two fraction digits
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" {
		*m = 0
		return nil
	}
	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Times multiplies a unit price by a count, guarding against overflow
func (m Money) Times(n int64) (Money, error) {
	if n < 0 || m < 0 {
		return 0, errs.ErrInvalidAmount
	}
	if n != 0 && int64(m) > math.MaxInt64/n {
		return 0, errs.ErrAmountOverflow
	}
	return Money(int64(m) * n), nil
}

// Negate returns the signed opposite of the amount
func (m Money) Negate() Money {
	return -m
}

// FeeFor returns amount * basisPoints / 10000 rounded half-up to the nearest paisa
func FeeFor(amount Money, basisPoints int64) Money {
	fee := amount.Decimal().
		Mul(decimal.NewFromInt(basisPoints)).
		Div(decimal.NewFromInt(BasisPointsDenominator)).
		Round(MaxDecimalPlaces)
	return Money(fee.Shift(MaxDecimalPlaces).IntPart())
}

// Percentage returns part/whole*100 rounded to one decimal, or 0 when whole is 0
func Percentage(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(whole), 1).
		InexactFloat64()
}
