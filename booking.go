package transactions

import "slices"

// BookRows applies an instrument's sell rows against its buy rows using
// FIFO matching, and returns the instrument's match records.
//
// The accumulator is seeded with one open (Buy) record per buy row, in
// input order, and doubles as the output: fully consumed lots are converted
// to Sell records in place rather than removed. A partial fill splits the
// lot: the sold slice keeps the lot's position, and the unsold remainder is
// inserted immediately after it so it stays eligible for later sells in
// FIFO order.
//
// A sell that exceeds the total open quantity is absorbed silently: the
// excess quantity is not represented in any record. This mirrors the
// documented behavior of the current design; see DESIGN.md before changing it.
func BookRows(name string, buys, sells []Row) []Record {
	records := make([]Record, 0, len(buys))
	for _, buy := range buys {
		records = append(records, Record{
			Name:     name,
			Side:     Buy,
			Quantity: buy.Quantity,
			BuyDate:  buy.Date,
			BuyPrice: buy.Price,
		})
	}

	for _, sell := range sells {
		remaining := sell.Quantity

		for i := 0; i < len(records); i++ {
			record := &records[i]

			// Ignore already booked lots.
			if record.Side == Sell {
				continue
			}

			if remaining.GreaterThanOrEqual(record.Quantity) {
				// Enough left to consume the whole lot.
				record.Side = Sell
				record.SellDate = sell.Date
				record.SellPrice = sell.Price

				remaining = remaining.Sub(record.Quantity)
				if remaining.IsZero() {
					break
				}
				continue
			}

			// The sell only covers part of this lot: book the sold slice in
			// place and insert the unsold remainder right after it.
			remainder := Record{
				Name:     name,
				Side:     Buy,
				Quantity: record.Quantity.Sub(remaining),
				BuyDate:  record.BuyDate,
				BuyPrice: record.BuyPrice,
			}
			record.Side = Sell
			record.Quantity = remaining
			record.SellDate = sell.Date
			record.SellPrice = sell.Price

			records = slices.Insert(records, i+1, remainder)
			break
		}
		// remaining may still be positive here (oversell); it is dropped.
	}

	return records
}
