package transactions

import "github.com/adnanhakim/process-transactions-script/date"

// Row is one raw ledger line for an instrument, as produced by a row source.
// The side is fixed at construction, either from the source's explicit
// buy/sell field or from the sign of the quantity; it is never re-derived
// from the quantity afterwards. Quantity is always stored positive.
type Row struct {
	Name     string
	Side     Side
	Quantity Quantity
	Date     date.Date
	Price    Price
}

// NewRow builds a row from a signed quantity: positive is a buy, negative a
// sell, and the stored quantity is normalized to its absolute value.
func NewRow(name string, quantity Quantity, on date.Date, price Price) Row {
	side := Buy
	if quantity.IsNegative() {
		side = Sell
	}
	return Row{Name: name, Side: side, Quantity: quantity.Abs(), Date: on, Price: price}
}

// NewSidedRow builds a row from an explicitly sided source quantity.
func NewSidedRow(name string, side Side, quantity Quantity, on date.Date, price Price) Row {
	return Row{Name: name, Side: side, Quantity: quantity.Abs(), Date: on, Price: price}
}
