package dto

import "github.com/marketsight/marketsight/internal/domain/models"

// QuoteResponse represents the JSON structure returned by GET /api/v1/quote.
//
// It mirrors models.Quote with one presentation-boundary conversion: dividend
// yield is exposed as a percentage (0.55 = 0.55%), while the domain model
// carries a fraction of 1. This keeps the unit decision in exactly one place.
//
// swagger:model QuoteResponse
type QuoteResponse struct {
	Ticker              string   `json:"ticker" example:"AAPL"`
	Name                string   `json:"name" example:"Apple Inc."`
	Price               float64  `json:"price" example:"189.84"`
	Change              float64  `json:"change" example:"2.31"`
	ChangePercent       float64  `json:"change_percent" example:"1.23"`
	MarketCap           float64  `json:"market_cap" example:"2950000000000"`
	Volume              float64  `json:"volume" example:"53000000"`
	PERatio             *float64 `json:"pe_ratio,omitempty" example:"29.4"`
	DividendYieldPct    *float64 `json:"dividend_yield_pct,omitempty" example:"0.55"`
	High52W             float64  `json:"high_52w" example:"199.62"`
	Low52W              float64  `json:"low_52w" example:"124.17"`
}

// NewQuoteResponse maps a domain Quote into its API shape, converting the
// dividend yield fraction to percent.
func NewQuoteResponse(q models.Quote) QuoteResponse {
	resp := QuoteResponse{
		Ticker:        q.Ticker,
		Name:          q.Name,
		Price:         q.Price,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
		MarketCap:     q.MarketCap,
		Volume:        q.Volume,
		PERatio:       q.PERatio,
		High52W:       q.High52W,
		Low52W:        q.Low52W,
	}
	if q.DividendYield != nil {
		pct := *q.DividendYield * 100
		resp.DividendYieldPct = &pct
	}
	return resp
}

// HistoricalResponse represents the JSON structure returned by GET /api/v1/historical.
//
// swagger:model HistoricalResponse
type HistoricalResponse struct {
	Ticker string                   `json:"ticker" example:"AAPL"`
	Span   string                   `json:"span" example:"1Y"`
	Points []models.HistoricalPoint `json:"points"`
}

// SearchResponse represents the JSON structure returned by GET /api/v1/search.
//
// swagger:model SearchResponse
type SearchResponse struct {
	Query   string                `json:"query" example:"apple"`
	Results []models.SearchResult `json:"results"`
}

// MoversResponse represents the JSON structure returned by GET /api/v1/movers.
//
// swagger:model MoversResponse
type MoversResponse struct {
	Gainers []QuoteResponse `json:"gainers"`
	Losers  []QuoteResponse `json:"losers"`
}

// NewMoversResponse maps domain movers into their API shape.
func NewMoversResponse(m models.MarketMovers) MoversResponse {
	resp := MoversResponse{
		Gainers: make([]QuoteResponse, 0, len(m.Gainers)),
		Losers:  make([]QuoteResponse, 0, len(m.Losers)),
	}
	for _, q := range m.Gainers {
		resp.Gainers = append(resp.Gainers, NewQuoteResponse(q))
	}
	for _, q := range m.Losers {
		resp.Losers = append(resp.Losers, NewQuoteResponse(q))
	}
	return resp
}

// DashboardResponse represents the JSON structure returned by GET /api/v1/dashboard
// and GET /api/v1/dashboard/{ticker}.
//
// Watchlist is empty on the per-ticker variant. A null Selected means the
// quote was unavailable; Points is empty in that case.
//
// swagger:model DashboardResponse
type DashboardResponse struct {
	Watchlist []QuoteResponse          `json:"watchlist,omitempty"`
	Selected  *QuoteResponse           `json:"selected"`
	Points    []models.HistoricalPoint `json:"points"`
}

// RecommendationRequest is the payload for POST /api/v1/recommendations.
//
// swagger:model RecommendationRequest
type RecommendationRequest struct {
	UserStocks      []string `json:"user_stocks" example:"AAPL,MSFT"`
	MarketSentiment string   `json:"market_sentiment" example:"bullish"`
	NewsSummary     string   `json:"news_summary" example:"Fed holds rates steady."`
}

// RecommendationResponse is the advisor's answer: tickers plus free-text reasoning.
//
// swagger:model RecommendationResponse
type RecommendationResponse struct {
	Recommendations []string `json:"recommendations" example:"NVDA,AMD"`
	Reasoning       string   `json:"reasoning" example:"Semiconductor demand remains strong."`
}
