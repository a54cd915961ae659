package transactions

import (
	"strings"
	"testing"
)

func TestProcessSortsByBuyDateThenName(t *testing.T) {
	rows := []Row{
		buy("FundB", 10, "2023-02-01", 10),
		buy("FundA", 10, "2023-02-01", 20),
		buy("FundC", 10, "2023-01-01", 30),
	}

	records, _ := Process(rows, Format{Currency: "INR"})

	var got []string
	for _, r := range records {
		got = append(got, r.Name)
	}
	want := "FundC,FundA,FundB"
	if strings.Join(got, ",") != want {
		t.Errorf("record order = %s, want %s", strings.Join(got, ","), want)
	}
}

// TestProcessSplitOrder checks that an instrument's split remainder keeps
// its position right after the sold slice in the final output, since both
// share the same buy date and name.
func TestProcessSplitOrder(t *testing.T) {
	rows := []Row{
		buy("FundX", 100, "2023-01-01", 10),
		sell("FundX", 40, "2023-03-01", 11),
	}

	records, _ := Process(rows, Format{Currency: "INR"})

	assertRecords(t, records, []Record{
		booked("FundX", 40, "2023-01-01", 10, "2023-03-01", 11),
		open("FundX", 60, "2023-01-01", 10),
	})
}

// TestProcessStable checks that two runs over the same input produce
// byte-identical output sequences.
func TestProcessStable(t *testing.T) {
	rows := []Row{
		buy("FundB", 10, "2023-01-01", 10),
		buy("FundA", 20, "2023-01-01", 11),
		sell("FundB", 5, "2023-02-01", 12),
		buy("FundA", 30, "2023-01-01", 11),
		sell("FundA", 45, "2023-03-01", 13),
	}

	render := func() string {
		records, _ := Process(rows, Format{Currency: "INR"})
		var b strings.Builder
		for _, r := range records {
			b.WriteString(strings.Join(r.Columns(), "|"))
			b.WriteString("\n")
		}
		return b.String()
	}

	first, second := render(), render()
	if first != second {
		t.Errorf("two runs differ:\n%s\nvs\n%s", first, second)
	}
}

func TestProcessSummary(t *testing.T) {
	rows := []Row{
		buy("FundX", 100, "2023-01-01", 10),
		sell("FundX", 40, "2023-03-01", 11),
		buy("FundY", 50, "2023-02-01", 20),
	}

	records, summary := Process(rows, Format{Currency: "INR"})

	if summary.Records != len(records) {
		t.Errorf("summary.Records = %d, want %d", summary.Records, len(records))
	}
	if !summary.Held.Equal(Q(110)) {
		t.Errorf("summary.Held = %s, want 110", summary.Held)
	}
	if !summary.Booked.Equal(Q(40)) {
		t.Errorf("summary.Booked = %s, want 40", summary.Booked)
	}
	// held: 60 @ 10 + 50 @ 20 = 1600; booked: 40 @ 11 = 440
	if want := M(1600, "INR"); !summary.Invested.Equal(want) {
		t.Errorf("summary.Invested = %s, want %s", summary.Invested, want)
	}
	if want := M(440, "INR"); !summary.Realized.Equal(want) {
		t.Errorf("summary.Realized = %s, want %s", summary.Realized, want)
	}
}

// TestProcessAggregates checks the pre-aggregation pass is applied per
// instrument before booking when the format asks for it.
func TestProcessAggregates(t *testing.T) {
	rows := []Row{
		buy("FundX", 10, "2023-01-01", 10),
		buy("FundX", 20, "2023-01-01", 10),
		sell("FundX", 30, "2023-02-01", 12),
	}

	records, _ := Process(rows, Format{Currency: "INR", Aggregate: true})

	// one merged lot of 30, fully booked
	assertRecords(t, records, []Record{
		booked("FundX", 30, "2023-01-01", 10, "2023-02-01", 12),
	})
}

func TestProcessInstrumentsAreIndependent(t *testing.T) {
	// FundY's sell must not consume FundX's lot.
	rows := []Row{
		buy("FundX", 100, "2023-01-01", 10),
		sell("FundY", 100, "2023-02-01", 12),
	}

	records, _ := Process(rows, Format{Currency: "INR"})

	assertRecords(t, records, []Record{
		open("FundX", 100, "2023-01-01", 10),
	})
}

func TestSummaryString(t *testing.T) {
	_, summary := Process([]Row{buy("FundX", 100, "2023-01-01", 10)}, Format{Currency: "INR"})
	s := summary.String()
	if !strings.Contains(s, "1 records") || !strings.Contains(s, "100 held") {
		t.Errorf("Summary.String() = %q, want record and held counts", s)
	}
}
