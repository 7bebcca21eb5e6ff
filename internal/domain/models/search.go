package models

// SearchResult is one ticker-search hit. Symbol is the only field with an
// invariant (non-empty); everything else is display metadata.
//
// swagger:model SearchResult
type SearchResult struct {
	Symbol            string `json:"symbol" example:"AAPL"`
	Name              string `json:"name" example:"Apple Inc."`
	Currency          string `json:"currency" example:"USD"`
	StockExchange     string `json:"stockExchange" example:"NASDAQ Global Select"`
	ExchangeShortName string `json:"exchangeShortName" example:"NASDAQ"`
}

// MarketMovers pairs the day's top gaining and losing quotes, at most 50 of
// each, in the relative order the upstream movers lists returned them.
//
// swagger:model MarketMovers
type MarketMovers struct {
	Gainers []Quote `json:"gainers"`
	Losers  []Quote `json:"losers"`
}
