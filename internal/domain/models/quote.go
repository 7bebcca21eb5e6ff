package models

// Quote represents a normalized point-in-time snapshot for a single ticker.
//
// Fields:
//   - Ticker: the symbol, also the natural key (e.g., "AAPL").
//   - Name: issuer display name.
//   - Price, Change, ChangePercent: last price and its movement over the session.
//   - MarketCap, Volume: capitalization and traded volume.
//   - PERatio: trailing price/earnings ratio; nil for unprofitable or untracked issuers.
//   - DividendYield: trailing-twelve-month yield as a fraction of 1 (0.004 = 0.4%);
//     nil for non-dividend payers. Presentation layers convert to percent.
//   - High52W, Low52W: 52-week price range.
//
// Quotes are value objects: constructed fresh per request, never mutated after
// Normalize, never persisted.
//
// swagger:model Quote
type Quote struct {
	Ticker        string   `json:"ticker" example:"AAPL"`
	Name          string   `json:"name" example:"Apple Inc."`
	Price         float64  `json:"price" example:"189.84"`
	Change        float64  `json:"change" example:"2.31"`
	ChangePercent float64  `json:"changePercent" example:"1.23"`
	MarketCap     float64  `json:"marketCap" example:"2950000000000"`
	Volume        float64  `json:"volume" example:"53000000"`
	PERatio       *float64 `json:"peRatio,omitempty" example:"29.4"`
	DividendYield *float64 `json:"dividendYield,omitempty" example:"0.0055"`
	High52W       float64  `json:"high52W" example:"199.62"`
	Low52W        float64  `json:"low52W" example:"124.17"`
}

// Normalize defensively repairs invariants the upstream does not enforce:
// price, market cap, volume and the 52-week bounds are floored at zero, and
// an inverted 52-week range is swapped. Returns the receiver for chaining.
func (q Quote) Normalize() Quote {
	if q.Price < 0 {
		q.Price = 0
	}
	if q.MarketCap < 0 {
		q.MarketCap = 0
	}
	if q.Volume < 0 {
		q.Volume = 0
	}
	if q.High52W < 0 {
		q.High52W = 0
	}
	if q.Low52W < 0 {
		q.Low52W = 0
	}
	if q.High52W < q.Low52W {
		q.High52W, q.Low52W = q.Low52W, q.High52W
	}
	return q
}
