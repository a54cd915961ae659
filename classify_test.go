package transactions

import (
	"testing"

	"github.com/adnanhakim/process-transactions-script/date"
)

func TestClassifyRows(t *testing.T) {
	rows := []Row{
		buy("FundX", 10, "2023-01-01", 10),
		sell("FundX", 5, "2023-02-01", 11),
		buy("FundX", 20, "2023-03-01", 12),
		sell("FundX", 25, "2023-04-01", 13),
	}

	buys, sells := ClassifyRows(rows)

	if len(buys) != 2 || len(sells) != 2 {
		t.Fatalf("got %d buys and %d sells, want 2 and 2", len(buys), len(sells))
	}
	// relative order within each side is preserved
	if !buys[0].Date.Equal(date.MustParse("2023-01-01")) || !buys[1].Date.Equal(date.MustParse("2023-03-01")) {
		t.Errorf("buy order not preserved: %v", buys)
	}
	if !sells[0].Date.Equal(date.MustParse("2023-02-01")) || !sells[1].Date.Equal(date.MustParse("2023-04-01")) {
		t.Errorf("sell order not preserved: %v", sells)
	}
}

// TestClassifyRowsFromSign checks that rows built from signed quantities
// carry their side and positive quantity from construction.
func TestClassifyRowsFromSign(t *testing.T) {
	rows := []Row{
		NewRow("FundX", Q(10), date.MustParse("2023-01-01"), P(10)),
		NewRow("FundX", Q(-5), date.MustParse("2023-02-01"), P(11)),
	}

	buys, sells := ClassifyRows(rows)

	if len(buys) != 1 || len(sells) != 1 {
		t.Fatalf("got %d buys and %d sells, want 1 and 1", len(buys), len(sells))
	}
	if !buys[0].Quantity.Equal(Q(10)) {
		t.Errorf("buy quantity = %s, want 10", buys[0].Quantity)
	}
	if !sells[0].Quantity.Equal(Q(5)) {
		t.Errorf("sell quantity = %s, want 5 (normalized from -5)", sells[0].Quantity)
	}
}

func TestClassifyRowsDropsZeroQuantity(t *testing.T) {
	rows := []Row{
		buy("FundX", 10, "2023-01-01", 10),
		{Name: "FundX", Side: Buy, Quantity: Q(0), Date: date.MustParse("2023-01-02"), Price: P(10)},
	}

	buys, sells := ClassifyRows(rows)
	if len(buys) != 1 || len(sells) != 0 {
		t.Errorf("got %d buys and %d sells, want the zero row dropped", len(buys), len(sells))
	}
}

// TestClassifyRowsIdempotent checks that classification is a pure partition:
// reclassifying either output leaves it unchanged.
func TestClassifyRowsIdempotent(t *testing.T) {
	rows := []Row{
		buy("FundX", 10, "2023-01-01", 10),
		sell("FundX", 5, "2023-02-01", 11),
		buy("FundX", 20, "2023-03-01", 12),
	}

	buys, sells := ClassifyRows(rows)

	rebuys, none := ClassifyRows(buys)
	if len(none) != 0 || len(rebuys) != len(buys) {
		t.Errorf("reclassifying buys changed the partition: %d buys, %d sells", len(rebuys), len(none))
	}
	none2, resells := ClassifyRows(sells)
	if len(none2) != 0 || len(resells) != len(sells) {
		t.Errorf("reclassifying sells changed the partition: %d buys, %d sells", len(none2), len(resells))
	}
}
