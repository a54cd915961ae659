package transactions

import "github.com/shopspring/decimal"

// Price is an exact-decimal unit price of an instrument, always >= 0.
// It is a bare number, not a currency amount: mutual fund NAVs carry four
// decimals and must survive arithmetic without currency rounding.
type Price struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

// ParsePrice parses an exact decimal price from its string form.
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{value: d}, nil
}

func (p Price) Equal(o Price) bool { return p.value.Equal(o.value) }
func (p Price) IsNegative() bool   { return p.value.IsNegative() }
func (p Price) IsZero() bool       { return p.value.IsZero() }
func (p Price) String() string     { return p.value.String() }

// Cost returns the monetary value of q units at this price, in the given
// currency. Used by the run summary only; the booking core never prices lots.
func (p Price) Cost(q Quantity, currency string) Money {
	return M(p.value.Mul(q.value), currency)
}

// MarshalJSON implements the json.Marshaler interface for Price.
func (p Price) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}
func (p *Price) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}
