package crowdfund

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of all project targets.
const DefaultCurrency = "EGP"

// Money represents a monetary value, such as a project funding target.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a numeric value and a currency code.
func M[T float32 | float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a user-typed amount into a Money in the default
// currency. The sign is deliberately not checked.
func ParseMoney(s string) (Money, error) {
	if err := CheckRequired("total target", s); err != nil {
		return Money{}, err
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("total target %q: %w", s, ErrInvalidNumber)
	}
	return Money{value: value, cur: DefaultCurrency}, nil
}

// currency returns the money's full currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency we need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted for the money's currency.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }

// MarshalJSON writes the bare numeric value: currency is implicit in the
// ledger file format.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON reads a bare numeric value in the default currency.
func (m *Money) UnmarshalJSON(bytes []byte) error {
	var value decimal.Decimal
	if err := value.UnmarshalJSON(bytes); err != nil {
		return err
	}
	*m = Money{value: value, cur: DefaultCurrency}
	return nil
}

var _ json.Marshaler = (*Money)(nil)
var _ json.Unmarshaler = (*Money)(nil)
