package gateway

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/marketsight/marketsight/internal/domain/models"
)

// Synthetic data path: when no upstream credential is configured, every
// gateway operation serves pseudo-random but internally consistent records of
// the exact shape the live path would produce. This keeps the rest of the
// system demoable and testable without a key.

const (
	intradaySteps = 480  // one-minute steps for the 1D span
	allSpanDays   = 1825 // fixed day count for the unbounded ALL span
	maxStepPct    = 0.02 // per-step random walk bound, ±2%
)

// demoCompanies backs the heuristic search matching: query substrings are
// checked against these names and the known ticker is appended on a hit.
var demoCompanies = []struct {
	name   string
	symbol string
}{
	{"Apple Inc.", "AAPL"},
	{"Alphabet Inc. (Google)", "GOOGL"},
	{"Microsoft Corporation", "MSFT"},
	{"Amazon.com, Inc.", "AMZN"},
}

// syntheticQuote fabricates a consistent quote: change derives from price and
// percent, the 52-week range brackets the price.
func (g *Gateway) syntheticQuote(ticker string) models.Quote {
	price := 50 + rand.Float64()*450
	changePct := -5 + rand.Float64()*10
	q := models.Quote{
		Ticker:        ticker,
		Name:          fmt.Sprintf("%s Inc.", ticker),
		Price:         price,
		Change:        price * changePct / 100,
		ChangePercent: changePct,
		MarketCap:     1e9 * math.Pow(10, rand.Float64()*3.5),
		Volume:        1e5 * math.Pow(10, rand.Float64()*3),
		High52W:       price * (1.1 + rand.Float64()*0.4),
		Low52W:        price * (0.7 + rand.Float64()*0.2),
	}
	if rand.Float64() < 0.8 {
		pe := 8 + rand.Float64()*32
		q.PERatio = &pe
	}
	if rand.Float64() < 0.5 {
		// fraction of 1, not percent
		y := 0.005 + rand.Float64()*0.035
		q.DividendYield = &y
	}
	return q.Normalize()
}

// syntheticSeries fabricates a multiplicative random walk, oldest first.
// 1D emits 480 one-minute points ending at the current time; every other span
// emits one point per calendar day of its window.
func (g *Gateway) syntheticSeries(span models.TimeSpan) models.HistoricalSeries {
	now := g.now()
	price := 100 + rand.Float64()*300

	if span == models.Span1D {
		series := make(models.HistoricalSeries, 0, intradaySteps)
		for i := 0; i < intradaySteps; i++ {
			ts := now.Add(-time.Duration(intradaySteps-1-i) * time.Minute)
			price = walkStep(price)
			series = append(series, models.HistoricalPoint{
				Date:  ts.Format("2006-01-02 15:04:05"),
				Price: price,
			})
		}
		return series
	}

	days := span.LookbackDays()
	switch span {
	case models.SpanYTD:
		days = now.YearDay()
	case models.SpanAll:
		days = allSpanDays
	}
	if days == 0 {
		days = models.DefaultSpan.LookbackDays()
	}

	series := make(models.HistoricalSeries, 0, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, -(days - 1 - i))
		price = walkStep(price)
		series = append(series, models.HistoricalPoint{
			Date:  day.Format("2006-01-02"),
			Price: price,
		})
	}
	return series
}

// syntheticSearch matches heuristically: a query short enough to plausibly be
// a ticker becomes one, and substring hits against the demo company names
// append their known symbols. De-duplicated by symbol, first occurrence wins.
func syntheticSearch(query string) []models.SearchResult {
	results := []models.SearchResult{}
	seen := map[string]bool{}
	add := func(r models.SearchResult) {
		if !seen[r.Symbol] {
			seen[r.Symbol] = true
			results = append(results, r)
		}
	}

	if len(query) <= 5 {
		sym := strings.ToUpper(query)
		add(models.SearchResult{
			Symbol:            sym,
			Name:              fmt.Sprintf("%s Inc.", sym),
			Currency:          "USD",
			StockExchange:     "NASDAQ Global Select",
			ExchangeShortName: "NASDAQ",
		})
	}

	lower := strings.ToLower(query)
	for _, company := range demoCompanies {
		if strings.Contains(strings.ToLower(company.name), lower) {
			add(models.SearchResult{
				Symbol:            company.symbol,
				Name:              company.name,
				Currency:          "USD",
				StockExchange:     "NASDAQ Global Select",
				ExchangeShortName: "NASDAQ",
			})
		}
	}
	return results
}

// syntheticMovers fabricates 50 gainers with percent change in [1,5] and 50
// losers in [-5,-1], under random 3-letter tickers.
func (g *Gateway) syntheticMovers() models.MarketMovers {
	movers := models.MarketMovers{
		Gainers: make([]models.Quote, 0, moversLimit),
		Losers:  make([]models.Quote, 0, moversLimit),
	}
	for i := 0; i < moversLimit; i++ {
		up := g.syntheticQuote(randomTicker())
		up.ChangePercent = 1 + rand.Float64()*4
		up.Change = up.Price * up.ChangePercent / 100
		movers.Gainers = append(movers.Gainers, up)

		down := g.syntheticQuote(randomTicker())
		down.ChangePercent = -5 + rand.Float64()*4
		down.Change = down.Price * down.ChangePercent / 100
		movers.Losers = append(movers.Losers, down)
	}
	return movers
}

func walkStep(price float64) float64 {
	next := price * (1 + (rand.Float64()*2-1)*maxStepPct)
	if next < 0 {
		return 0
	}
	return next
}

func randomTicker() string {
	b := make([]byte, 3)
	for i := range b {
		b[i] = byte('A' + rand.Intn(26))
	}
	return string(b)
}
