package transactions

import (
	"fmt"
	"log"
	"slices"
	"strings"
)

// Summary holds the diagnostic totals of one processing run. It is reported
// alongside the records but never gates success or failure.
type Summary struct {
	Records  int      // total number of match records
	Held     Quantity // sum of quantities still open (side = BUY)
	Booked   Quantity // sum of quantities fully booked (side = SELL)
	Invested Money    // cost of the still-open quantity, at buy prices
	Realized Money    // proceeds of the booked quantity, at sell prices
}

func (s Summary) String() string {
	return fmt.Sprintf("%d records, %s held (%s), %s booked (%s)",
		s.Records, s.Held, s.Invested, s.Booked, s.Realized)
}

// Process runs the full pipeline over a flat row sequence: group rows by
// instrument name (first-appearance order), aggregate same-day fills when
// the format asks for it, classify into buys and sells, book sells against
// buy lots FIFO, optionally compress the per-instrument output, then
// concatenate everything and stable-sort by (buy date, instrument name).
func Process(rows []Row, format Format) ([]Record, Summary) {
	names, byName := groupByName(rows)

	var all []Record
	for _, name := range names {
		instrumentRows := byName[name]
		log.Printf("processing %d transactions for %s", len(instrumentRows), name)

		if format.Aggregate {
			instrumentRows = AggregateRows(instrumentRows)
		}
		buys, sells := ClassifyRows(instrumentRows)
		records := BookRows(name, buys, sells)
		if format.Compress {
			records = CompressRecords(records)
		}
		all = append(all, records...)
	}

	slices.SortStableFunc(all, func(a, b Record) int {
		if c := a.BuyDate.Compare(b.BuyDate); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	summary := summarize(all, format.Currency)
	log.Printf("final count of all transactions: %d", summary.Records)
	return all, summary
}

// groupByName buckets rows per instrument, keeping instruments in the order
// of their first appearance so a rerun yields an identical sequence.
func groupByName(rows []Row) ([]string, map[string][]Row) {
	var names []string
	byName := make(map[string][]Row)
	for _, row := range rows {
		if _, seen := byName[row.Name]; !seen {
			names = append(names, row.Name)
		}
		byName[row.Name] = append(byName[row.Name], row)
	}
	return names, byName
}

func summarize(records []Record, currency string) Summary {
	s := Summary{Records: len(records)}
	for _, r := range records {
		switch r.Side {
		case Buy:
			s.Held = s.Held.Add(r.Quantity)
			s.Invested = s.Invested.Add(r.BuyPrice.Cost(r.Quantity, currency))
		case Sell:
			s.Booked = s.Booked.Add(r.Quantity)
			s.Realized = s.Realized.Add(r.SellPrice.Cost(r.Quantity, currency))
		}
	}
	return s
}
