package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/marketsight/marketsight/config"
	"github.com/marketsight/marketsight/internal/domain/models"
)

// demoGateway returns a gateway with no credential, so every operation runs
// the synthetic path.
func demoGateway() *Gateway {
	return New(config.MarketConfig{APIKey: ""}, nil)
}

func TestSyntheticQuote_InternallyConsistent(t *testing.T) {
	g := demoGateway()
	for i := 0; i < 100; i++ {
		q, ok := g.FetchQuote(context.Background(), "test")
		if !ok {
			t.Fatalf("demo quote must always be present")
		}
		if q.Ticker != "TEST" {
			t.Fatalf("ticker not uppercased: %q", q.Ticker)
		}
		if q.Price < 50 || q.Price > 500 {
			t.Fatalf("price out of range: %f", q.Price)
		}
		if q.ChangePercent < -5 || q.ChangePercent > 5 {
			t.Fatalf("changePercent out of range: %f", q.ChangePercent)
		}
		wantChange := q.Price * q.ChangePercent / 100
		if diff := q.Change - wantChange; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("change %f inconsistent with price*pct/100=%f", q.Change, wantChange)
		}
		if q.MarketCap < 0 || q.Volume < 0 {
			t.Fatalf("negative cap/volume: %+v", q)
		}
		if q.High52W < q.Low52W || q.Low52W < 0 {
			t.Fatalf("invalid 52w range: high=%f low=%f", q.High52W, q.Low52W)
		}
		if q.High52W < q.Price {
			t.Fatalf("52w high %f below price %f", q.High52W, q.Price)
		}
		if q.DividendYield != nil && (*q.DividendYield < 0.005 || *q.DividendYield > 0.04) {
			t.Fatalf("yield out of fraction range: %f", *q.DividendYield)
		}
	}
}

func TestSyntheticSeries_1D(t *testing.T) {
	g := demoGateway()
	frozen := time.Date(2024, 9, 2, 15, 30, 0, 0, time.UTC)
	g.now = func() time.Time { return frozen }

	series := g.FetchHistoricalSeries(context.Background(), "AAPL", models.Span1D)
	if len(series) != 480 {
		t.Fatalf("expected 480 points, got %d", len(series))
	}
	const layout = "2006-01-02 15:04:05"
	last, err := time.Parse(layout, series[len(series)-1].Date)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", series[len(series)-1].Date, err)
	}
	if !last.Equal(frozen.Truncate(time.Second)) {
		t.Fatalf("series should end at the current time, got %v", last)
	}
	prev, _ := time.Parse(layout, series[0].Date)
	for _, p := range series[1:] {
		cur, err := time.Parse(layout, p.Date)
		if err != nil {
			t.Fatalf("bad timestamp %q: %v", p.Date, err)
		}
		if cur.Sub(prev) != time.Minute {
			t.Fatalf("expected one-minute spacing, got %v between %v and %v", cur.Sub(prev), prev, cur)
		}
		if p.Price < 0 {
			t.Fatalf("negative price %f", p.Price)
		}
		prev = cur
	}
}

func TestSyntheticSeries_DailySpans(t *testing.T) {
	g := demoGateway()
	frozen := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) // day-of-year 70
	g.now = func() time.Time { return frozen }

	cases := []struct {
		span models.TimeSpan
		want int
	}{
		{models.Span5D, 5},
		{models.Span1M, 30},
		{models.Span6M, 182},
		{models.Span1Y, 365},
		{models.SpanYTD, 70},
		{models.SpanAll, 1825},
	}
	for _, tc := range cases {
		t.Run(string(tc.span), func(t *testing.T) {
			series := g.FetchHistoricalSeries(context.Background(), "AAPL", tc.span)
			if len(series) != tc.want {
				t.Fatalf("span %s: expected %d points, got %d", tc.span, tc.want, len(series))
			}
			for i := 1; i < len(series); i++ {
				if series[i].Date <= series[i-1].Date {
					t.Fatalf("span %s: not strictly ascending at %d: %q then %q", tc.span, i, series[i-1].Date, series[i].Date)
				}
			}
			if series[len(series)-1].Date != "2024-03-10" {
				t.Fatalf("span %s: should end today, got %q", tc.span, series[len(series)-1].Date)
			}
		})
	}
}

func TestSyntheticSearch(t *testing.T) {
	g := demoGateway()
	ctx := context.Background()

	if got := g.SearchStocks(ctx, ""); len(got) != 0 {
		t.Fatalf("empty query must yield empty list, got %+v", got)
	}

	// "apple" is both <=5 chars (pseudo ticker APPLE) and a substring of
	// "Apple Inc." (AAPL); AAPL must appear exactly once.
	results := g.SearchStocks(ctx, "apple")
	var aapl int
	for _, r := range results {
		if r.Symbol == "AAPL" {
			aapl++
		}
	}
	if aapl != 1 {
		t.Fatalf("expected AAPL exactly once, got %d in %+v", aapl, results)
	}

	// short query becomes an uppercased pseudo ticker
	results = g.SearchStocks(ctx, "tsla")
	if len(results) == 0 || results[0].Symbol != "TSLA" {
		t.Fatalf("expected pseudo ticker TSLA first, got %+v", results)
	}

	// long non-matching query yields nothing
	if got := g.SearchStocks(ctx, "definitely-not-a-company"); len(got) != 0 {
		t.Fatalf("expected no results, got %+v", got)
	}

	// name fragment longer than 5 chars still matches by substring
	results = g.SearchStocks(ctx, "microsoft")
	if len(results) != 1 || results[0].Symbol != "MSFT" {
		t.Fatalf("expected only MSFT, got %+v", results)
	}
}

func TestSyntheticMovers(t *testing.T) {
	g := demoGateway()
	m := g.FetchMarketMovers(context.Background())

	if len(m.Gainers) != 50 || len(m.Losers) != 50 {
		t.Fatalf("expected 50/50 movers, got %d/%d", len(m.Gainers), len(m.Losers))
	}
	for _, q := range m.Gainers {
		if q.ChangePercent < 1 || q.ChangePercent > 5 {
			t.Fatalf("gainer pct out of [1,5]: %f", q.ChangePercent)
		}
		if len(q.Ticker) != 3 {
			t.Fatalf("expected 3-letter ticker, got %q", q.Ticker)
		}
	}
	for _, q := range m.Losers {
		if q.ChangePercent < -5 || q.ChangePercent > -1 {
			t.Fatalf("loser pct out of [-5,-1]: %f", q.ChangePercent)
		}
	}
}
