package transactions

// AggregateRows merges every maximal run of consecutive rows sharing side,
// date and price into a single row whose quantity is the sum. The merged row
// keeps the position of the first row of the run.
//
// Some broker exports record one order as several same-day executions at the
// same price; those must be treated as one event before booking. The pass
// runs on the original input order, before classification separates buys
// from sells, because a row of the other side terminates a run. Formats
// whose exports have no such quirk skip this pass entirely.
func AggregateRows(rows []Row) []Row {
	var out []Row
	i := 0
	for i < len(rows) {
		merged := rows[i]
		j := i + 1
		for j < len(rows) &&
			rows[j].Side == merged.Side &&
			rows[j].Date.Equal(merged.Date) &&
			rows[j].Price.Equal(merged.Price) {
			merged.Quantity = merged.Quantity.Add(rows[j].Quantity)
			j++
		}
		out = append(out, merged)
		i = j
	}
	return out
}
