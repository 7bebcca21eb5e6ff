package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/marketsight/marketsight/internal/domain/models"
)

// DefaultWatchlist seeds the dashboard before a user has picked anything.
var DefaultWatchlist = []string{"AAPL", "GOOGL", "TSLA", "AMZN", "MSFT", "NVDA"}

// MarketGateway is the slice of the gateway the dashboard composition needs.
type MarketGateway interface {
	FetchQuote(ctx context.Context, ticker string) (models.Quote, bool)
	FetchHistoricalSeries(ctx context.Context, ticker string, span models.TimeSpan) models.HistoricalSeries
}

// Dashboard is the composed result backing the dashboard view: the watchlist
// quotes, the currently selected quote, and its historical series.
//
// Selected nil with empty Watchlist means every upstream lookup failed; the
// caller renders its empty state.
type Dashboard struct {
	Watchlist []models.Quote
	Selected  *models.Quote
	Series    models.HistoricalSeries
}

// DashboardService composes gateway calls into view-ready bundles. It holds
// no state beyond its dependencies.
type DashboardService interface {
	InitialDashboard(ctx context.Context) Dashboard
	StockData(ctx context.Context, ticker string) Dashboard
}

type dashboardService struct {
	gw        MarketGateway
	watchlist []string
}

// NewDashboardService builds the service over the gateway with the default
// watchlist.
func NewDashboardService(gw MarketGateway) DashboardService {
	return &dashboardService{gw: gw, watchlist: DefaultWatchlist}
}

// InitialDashboard fans out a quote fetch per watchlist ticker, keeps the
// present results in watchlist order, selects the first, and loads its
// default-span history.
func (s *dashboardService) InitialDashboard(ctx context.Context) Dashboard {
	results := make([]*models.Quote, len(s.watchlist))
	var eg errgroup.Group
	for i, ticker := range s.watchlist {
		eg.Go(func() error {
			if q, ok := s.gw.FetchQuote(ctx, ticker); ok {
				results[i] = &q
			}
			return nil
		})
	}
	_ = eg.Wait()

	watchlist := make([]models.Quote, 0, len(results))
	for _, q := range results {
		if q != nil {
			watchlist = append(watchlist, *q)
		}
	}
	if len(watchlist) == 0 {
		return Dashboard{Watchlist: []models.Quote{}, Series: models.HistoricalSeries{}}
	}

	selected := watchlist[0]
	return Dashboard{
		Watchlist: watchlist,
		Selected:  &selected,
		Series:    s.gw.FetchHistoricalSeries(ctx, selected.Ticker, models.DefaultSpan),
	}
}

// StockData loads the quote and default-span history for one ticker in
// parallel. An absent quote yields an empty result regardless of the series.
func (s *dashboardService) StockData(ctx context.Context, ticker string) Dashboard {
	var (
		quote  models.Quote
		ok     bool
		series models.HistoricalSeries
	)
	var eg errgroup.Group
	eg.Go(func() error {
		quote, ok = s.gw.FetchQuote(ctx, ticker)
		return nil
	})
	eg.Go(func() error {
		series = s.gw.FetchHistoricalSeries(ctx, ticker, models.DefaultSpan)
		return nil
	})
	_ = eg.Wait()

	if !ok {
		return Dashboard{Series: models.HistoricalSeries{}}
	}
	return Dashboard{Selected: &quote, Series: series}
}
