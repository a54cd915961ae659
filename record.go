package transactions

import "github.com/adnanhakim/process-transactions-script/date"

// OutputDateLayout is the date format used in the output sheet.
const OutputDateLayout = "02-01-2006"

// Header is the 7-column header row of the output sheet.
var Header = []string{"Fund Name", "Buy/Sell", "Units", "Buy Date", "Buy Price", "Sell Date", "Sell Price"}

// Record is one matched round-trip: a buy lot paired, if booked, with its
// sell leg. A record with side Buy is still open and has no sell leg; a
// record with side Sell carries both legs. Records are never mutated once
// they leave the booking engine.
type Record struct {
	Name      string
	Side      Side
	Quantity  Quantity
	BuyDate   date.Date
	BuyPrice  Price
	SellDate  date.Date // zero unless Side == Sell
	SellPrice Price     // zero unless Side == Sell
}

// Columns returns the record as output sheet cells, in Header order.
// Dates are formatted dd-mm-yyyy; open records leave the sell cells empty.
func (r Record) Columns() []string {
	sellDate, sellPrice := "", ""
	if r.Side == Sell {
		sellDate = r.SellDate.Text(OutputDateLayout)
		sellPrice = r.SellPrice.String()
	}
	return []string{
		r.Name,
		r.Side.String(),
		r.Quantity.String(),
		r.BuyDate.Text(OutputDateLayout),
		r.BuyPrice.String(),
		sellDate,
		sellPrice,
	}
}

// sameLegs reports whether two records can be merged by CompressRecords:
// same side and same buy leg, and for booked records the same sell leg too.
func sameLegs(a, b Record) bool {
	if a.Side != b.Side || !a.BuyDate.Equal(b.BuyDate) || !a.BuyPrice.Equal(b.BuyPrice) {
		return false
	}
	if a.Side == Sell {
		return a.SellDate.Equal(b.SellDate) && a.SellPrice.Equal(b.SellPrice)
	}
	return true
}

// CompressRecords merges adjacent records of one instrument that share the
// same legs into a single record with summed quantity. Broker exports that
// split one order into many fills produce runs of identical records after
// booking; compression keeps the output sheet readable. Order-preserving.
func CompressRecords(records []Record) []Record {
	var out []Record
	i := 0
	for i < len(records) {
		merged := records[i]
		j := i + 1
		for j < len(records) && sameLegs(merged, records[j]) {
			merged.Quantity = merged.Quantity.Add(records[j].Quantity)
			j++
		}
		out = append(out, merged)
		i = j
	}
	return out
}
