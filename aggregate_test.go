package transactions

import "testing"

func TestAggregateRows(t *testing.T) {
	testCases := []struct {
		name string
		rows []Row
		want []Row
	}{
		{
			name: "empty input yields empty output",
			rows: nil,
			want: nil,
		},
		{
			name: "single row passes through",
			rows: []Row{buy("FundX", 10, "2023-01-01", 10)},
			want: []Row{buy("FundX", 10, "2023-01-01", 10)},
		},
		{
			name: "consecutive same-day fills merge into one",
			rows: []Row{
				buy("FundX", 10, "2023-01-01", 10),
				buy("FundX", 15, "2023-01-01", 10),
				buy("FundX", 5, "2023-01-01", 10),
			},
			want: []Row{buy("FundX", 30, "2023-01-01", 10)},
		},
		{
			name: "a different price breaks the run",
			rows: []Row{
				buy("FundX", 10, "2023-01-01", 10),
				buy("FundX", 15, "2023-01-01", 11),
			},
			want: []Row{
				buy("FundX", 10, "2023-01-01", 10),
				buy("FundX", 15, "2023-01-01", 11),
			},
		},
		{
			name: "a different date breaks the run",
			rows: []Row{
				buy("FundX", 10, "2023-01-01", 10),
				buy("FundX", 15, "2023-01-02", 10),
			},
			want: []Row{
				buy("FundX", 10, "2023-01-01", 10),
				buy("FundX", 15, "2023-01-02", 10),
			},
		},
		{
			name: "an opposite side row breaks the run",
			rows: []Row{
				buy("FundX", 10, "2023-01-01", 10),
				sell("FundX", 5, "2023-01-01", 10),
				buy("FundX", 15, "2023-01-01", 10),
			},
			want: []Row{
				buy("FundX", 10, "2023-01-01", 10),
				sell("FundX", 5, "2023-01-01", 10),
				buy("FundX", 15, "2023-01-01", 10),
			},
		},
		{
			name: "runs merge independently on both sides",
			rows: []Row{
				buy("FundX", 10, "2023-01-01", 10),
				buy("FundX", 20, "2023-01-01", 10),
				sell("FundX", 5, "2023-02-01", 12),
				sell("FundX", 5, "2023-02-01", 12),
			},
			want: []Row{
				buy("FundX", 30, "2023-01-01", 10),
				sell("FundX", 10, "2023-02-01", 12),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := AggregateRows(tc.rows)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d rows, want %d: %v", len(got), len(tc.want), got)
			}
			for i := range tc.want {
				if got[i].Side != tc.want[i].Side ||
					!got[i].Quantity.Equal(tc.want[i].Quantity) ||
					!got[i].Date.Equal(tc.want[i].Date) ||
					!got[i].Price.Equal(tc.want[i].Price) {
					t.Errorf("row %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}
