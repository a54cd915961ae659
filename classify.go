package transactions

// ClassifyRows splits an instrument's ordered rows into buy rows and sell
// rows, preserving relative order within each sequence. The side was fixed
// when the row was constructed (explicit field or quantity sign), so
// classification is a pure partition. Zero-quantity rows are filtered
// upstream; the re-check here is defensive only.
func ClassifyRows(rows []Row) (buys, sells []Row) {
	for _, row := range rows {
		if row.Quantity.IsZero() {
			continue
		}
		switch row.Side {
		case Buy:
			buys = append(buys, row)
		case Sell:
			sells = append(sells, row)
		}
	}
	return buys, sells
}
