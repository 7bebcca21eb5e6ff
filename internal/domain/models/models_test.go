package models

import "testing"

func TestQuoteNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Quote
		want Quote
	}{
		{
			name: "already valid",
			in:   Quote{Ticker: "AAPL", Price: 100, High52W: 120, Low52W: 80},
			want: Quote{Ticker: "AAPL", Price: 100, High52W: 120, Low52W: 80},
		},
		{
			name: "negative fields floored",
			in:   Quote{Price: -1, MarketCap: -2, Volume: -3},
			want: Quote{Price: 0, MarketCap: 0, Volume: 0},
		},
		{
			name: "inverted 52w range swapped",
			in:   Quote{High52W: 80, Low52W: 120},
			want: Quote{High52W: 120, Low52W: 80},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalize(); got != tc.want {
				t.Fatalf("Normalize()=%+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestHistoricalSeriesReverse(t *testing.T) {
	s := HistoricalSeries{
		{Date: "2024-09-03", Price: 3},
		{Date: "2024-09-02", Price: 2},
		{Date: "2024-09-01", Price: 1},
	}
	r := s.Reverse()
	if r[0].Date != "2024-09-01" || r[2].Date != "2024-09-03" {
		t.Fatalf("unexpected order: %+v", r)
	}
	// original untouched
	if s[0].Date != "2024-09-03" {
		t.Fatalf("Reverse mutated its receiver: %+v", s)
	}
	if len(HistoricalSeries(nil).Reverse()) != 0 {
		t.Fatalf("nil series should reverse to empty")
	}
}

func TestParseTimeSpan(t *testing.T) {
	valid := []string{"1D", "5D", "1M", "6M", "YTD", "1Y", "ALL"}
	for _, v := range valid {
		got, err := ParseTimeSpan(v)
		if err != nil || string(got) != v {
			t.Fatalf("ParseTimeSpan(%q)=%v,%v", v, got, err)
		}
	}
	if got, err := ParseTimeSpan(""); err != nil || got != Span1Y {
		t.Fatalf("empty span should default to 1Y, got %v,%v", got, err)
	}
	for _, bad := range []string{"2D", "1d", "ytd", "MAX"} {
		if _, err := ParseTimeSpan(bad); err == nil {
			t.Fatalf("expected error for span %q", bad)
		}
	}
}

func TestLookbackDays(t *testing.T) {
	cases := map[TimeSpan]int{
		Span5D:  5,
		Span1M:  30,
		Span6M:  182,
		Span1Y:  365,
		Span1D:  0,
		SpanYTD: 0,
		SpanAll: 0,
	}
	for span, want := range cases {
		if got := span.LookbackDays(); got != want {
			t.Fatalf("LookbackDays(%s)=%d, want %d", span, got, want)
		}
	}
}
