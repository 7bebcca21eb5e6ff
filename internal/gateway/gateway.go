// Package gateway is the market data gateway: it translates ticker/time-span
// requests into normalized domain records and isolates every caller from the
// upstream API shape, partial failure, and the absence of a live credential.
//
// Error contract: no error values cross this boundary. Every failure cause
// (network, non-2xx status, zero rows, unrecognized envelope) collapses into
// the operation's empty result and is logged with enough context to diagnose.
// Callers differentiate "no data" from "success", never failure causes.
package gateway

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/marketsight/marketsight/config"
	"github.com/marketsight/marketsight/internal/domain/models"
	"github.com/marketsight/marketsight/internal/fmp"
	"github.com/marketsight/marketsight/internal/logger"
)

const (
	intradayInterval = "15min"
	searchLimit      = 10
	moversLimit      = 50
)

// Gateway serves quotes, historical series, search results and market movers.
//
// It is stateless: every operation is an idempotent-per-call translation with
// no shared mutable state, so a single Gateway is safe for concurrent use.
// When the configured credential is missing or still the placeholder, all
// operations serve synthetic data of identical shape instead of failing.
type Gateway struct {
	cfg config.MarketConfig
	fmp *fmp.Client
	now func() time.Time // injectable clock for the synthetic generators
}

// New constructs a Gateway over the given upstream client. cfg is an explicit
// value (not read from the environment) so both the live and the demo code
// paths are testable without process-level env manipulation.
func New(cfg config.MarketConfig, client *fmp.Client) *Gateway {
	return &Gateway{cfg: cfg, fmp: client, now: time.Now}
}

// FetchQuote returns the normalized quote for ticker, or ok=false when no
// data is available. Absence is a legitimate outcome, not an error: any
// upstream failure on either sub-call collapses into it.
//
// Live path: the quote lookup and the trailing-twelve-month key-metrics
// lookup run in parallel; price/change/cap/volume/PE/52-week range come from
// the quote, dividend yield from the metrics (absent when the metrics call
// returns no rows).
func (g *Gateway) FetchQuote(ctx context.Context, ticker string) (models.Quote, bool) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return models.Quote{}, false
	}
	if g.cfg.DemoMode() {
		return g.syntheticQuote(ticker), true
	}

	var (
		quoteRows   []fmp.QuoteRow
		metricsRows []fmp.KeyMetricsRow
	)

	// Plain errgroup (no shared cancel): once started, neither sub-call is
	// cancelled by its sibling failing, and each failure is logged on its own.
	var eg errgroup.Group
	eg.Go(func() error {
		rows, err := g.fmp.Quote(ctx, ticker)
		if err != nil {
			g.logFailure("fetch_quote", ticker, "", err)
			return err
		}
		quoteRows = rows
		return nil
	})
	eg.Go(func() error {
		rows, err := g.fmp.KeyMetricsTTM(ctx, ticker)
		if err != nil {
			g.logFailure("fetch_key_metrics", ticker, "", err)
			return err
		}
		metricsRows = rows
		return nil
	})
	if err := eg.Wait(); err != nil {
		return models.Quote{}, false
	}

	if len(quoteRows) == 0 {
		logger.L().Warn().Str("op", "fetch_quote").Str("ticker", ticker).Msg("upstream returned zero rows")
		return models.Quote{}, false
	}
	row := quoteRows[0]

	q := models.Quote{
		Ticker:        row.Symbol,
		Name:          row.Name,
		Price:         row.Price,
		Change:        row.Change,
		ChangePercent: row.ChangesPercentage,
		MarketCap:     row.MarketCap,
		Volume:        row.Volume,
		High52W:       row.YearHigh,
		Low52W:        row.YearLow,
	}
	if row.PE != 0 {
		pe := row.PE
		q.PERatio = &pe
	}
	if len(metricsRows) > 0 && metricsRows[0].DividendYieldTTM != 0 {
		y := metricsRows[0].DividendYieldTTM
		q.DividendYield = &y
	}
	return q.Normalize(), true
}

// FetchHistoricalSeries returns the closing-price series for ticker over the
// given span, strictly ascending by timestamp. Failures yield an empty
// series.
//
// Span mapping: 1D requests intraday 15-minute bars for the current session;
// 5D/1M/6M/1Y request daily closes over fixed calendar lookbacks; YTD starts
// January 1 of the current year; ALL is the full unbounded daily history.
func (g *Gateway) FetchHistoricalSeries(ctx context.Context, ticker string, span models.TimeSpan) models.HistoricalSeries {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return models.HistoricalSeries{}
	}
	if span == "" {
		span = models.DefaultSpan
	}
	if g.cfg.DemoMode() {
		return g.syntheticSeries(span)
	}

	if span == models.Span1D {
		rows, err := g.fmp.Intraday(ctx, ticker, intradayInterval)
		if err != nil {
			g.logFailure("fetch_historical", ticker, span, err)
			return models.HistoricalSeries{}
		}
		series := make(models.HistoricalSeries, 0, len(rows))
		for _, r := range rows {
			series = append(series, models.HistoricalPoint{Date: r.Date, Price: r.Close})
		}
		return series.Reverse()
	}

	from, to := g.dailyRange(span)
	env, err := g.fmp.HistoricalDaily(ctx, ticker, from, to)
	if err != nil {
		g.logFailure("fetch_historical", ticker, span, err)
		return models.HistoricalSeries{}
	}
	if len(env.Historical) == 0 {
		// A bare {"symbol": ...} envelope is a valid ticker with no data in
		// range; anything else is an upstream shape we do not recognize.
		if env.Symbol == "" {
			logger.L().Error().
				Str("op", "fetch_historical").
				Str("ticker", ticker).
				Str("span", string(span)).
				Msg("unrecognized upstream envelope")
		}
		return models.HistoricalSeries{}
	}

	series := make(models.HistoricalSeries, 0, len(env.Historical))
	for _, r := range env.Historical {
		series = append(series, models.HistoricalPoint{Date: r.Date, Price: r.Close})
	}
	return series.Reverse()
}

// SearchStocks resolves a free-text query (ticker fragment or company-name
// fragment) into at most 10 results in upstream order. An empty query yields
// an empty list under every configuration.
func (g *Gateway) SearchStocks(ctx context.Context, query string) []models.SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.SearchResult{}
	}
	if g.cfg.DemoMode() {
		return syntheticSearch(query)
	}

	rows, err := g.fmp.SearchTicker(ctx, query, searchLimit)
	if err != nil {
		g.logFailure("search_stocks", query, "", err)
		return []models.SearchResult{}
	}
	results := make([]models.SearchResult, 0, len(rows))
	for _, r := range rows {
		results = append(results, models.SearchResult{
			Symbol:            r.Symbol,
			Name:              r.Name,
			Currency:          r.Currency,
			StockExchange:     r.StockExchange,
			ExchangeShortName: r.ExchangeShortName,
		})
	}
	return results
}

// FetchMarketMovers returns the day's top 50 gainers and losers as fully
// populated quotes, in the relative order the movers lists returned them.
//
// The movers endpoints only carry symbol/name/price/change, so every symbol
// gets a follow-up FetchQuote, fanned out concurrently with order preserved.
// If either list call fails the whole operation yields empty gainers and
// empty losers; individual per-symbol quote failures drop just that entry.
func (g *Gateway) FetchMarketMovers(ctx context.Context) models.MarketMovers {
	if g.cfg.DemoMode() {
		return g.syntheticMovers()
	}

	var gainerRows, loserRows []fmp.MoverRow
	var eg errgroup.Group
	eg.Go(func() error {
		rows, err := g.fmp.Gainers(ctx)
		if err != nil {
			g.logFailure("fetch_gainers", "", "", err)
			return err
		}
		gainerRows = rows
		return nil
	})
	eg.Go(func() error {
		rows, err := g.fmp.Losers(ctx)
		if err != nil {
			g.logFailure("fetch_losers", "", "", err)
			return err
		}
		loserRows = rows
		return nil
	})
	if err := eg.Wait(); err != nil {
		return models.MarketMovers{Gainers: []models.Quote{}, Losers: []models.Quote{}}
	}

	return models.MarketMovers{
		Gainers: g.quotesFor(ctx, moverSymbols(gainerRows)),
		Losers:  g.quotesFor(ctx, moverSymbols(loserRows)),
	}
}

// quotesFor fans out FetchQuote over symbols and returns the present results
// in input order.
func (g *Gateway) quotesFor(ctx context.Context, symbols []string) []models.Quote {
	results := make([]*models.Quote, len(symbols))
	var eg errgroup.Group
	for i, sym := range symbols {
		eg.Go(func() error {
			if q, ok := g.FetchQuote(ctx, sym); ok {
				results[i] = &q
			}
			return nil
		})
	}
	_ = eg.Wait()

	quotes := make([]models.Quote, 0, len(symbols))
	for _, q := range results {
		if q != nil {
			quotes = append(quotes, *q)
		}
	}
	return quotes
}

func moverSymbols(rows []fmp.MoverRow) []string {
	if len(rows) > moversLimit {
		rows = rows[:moversLimit]
	}
	symbols := make([]string, 0, len(rows))
	for _, r := range rows {
		symbols = append(symbols, r.Symbol)
	}
	return symbols
}

// dailyRange maps a daily-close span to from/to bounds in YYYY-MM-DD.
// ALL returns empty bounds (full history).
func (g *Gateway) dailyRange(span models.TimeSpan) (from, to string) {
	const layout = "2006-01-02"
	today := g.now()
	switch span {
	case models.SpanAll:
		return "", ""
	case models.SpanYTD:
		yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return yearStart.Format(layout), today.Format(layout)
	default:
		days := span.LookbackDays()
		if days == 0 {
			days = models.DefaultSpan.LookbackDays()
		}
		return today.AddDate(0, 0, -days).Format(layout), today.Format(layout)
	}
}

// logFailure records one failed upstream sub-call with its cause. Non-2xx
// statuses carry the upstream code.
func (g *Gateway) logFailure(op, subject string, span models.TimeSpan, err error) {
	ev := logger.L().Error().Str("op", op)
	if subject != "" {
		ev = ev.Str("ticker", subject)
	}
	if span != "" {
		ev = ev.Str("span", string(span))
	}
	var se *fmp.StatusError
	if errors.As(err, &se) {
		ev = ev.Int("status", se.Code)
	}
	ev.Err(err).Msg("upstream call failed")
}
