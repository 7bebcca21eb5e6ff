package models

// HistoricalPoint is a single closing price at a point in time.
//
// Date is an ISO-8601 string as returned by the upstream ("2024-09-01" for
// daily bars, "2024-09-01 15:30:00" for intraday bars).
//
// swagger:model HistoricalPoint
type HistoricalPoint struct {
	Date  string  `json:"date" example:"2024-09-01"`
	Price float64 `json:"price" example:"189.84"`
}

// HistoricalSeries is an ordered sequence of closing prices, strictly
// ascending by timestamp. The upstream returns newest-first; the gateway
// reverses before handing a series to callers.
type HistoricalSeries []HistoricalPoint

// Reverse returns a copy of the series in opposite order. Used to flip the
// upstream's descending payloads into ascending order.
func (s HistoricalSeries) Reverse() HistoricalSeries {
	out := make(HistoricalSeries, len(s))
	for i, p := range s {
		out[len(s)-1-i] = p
	}
	return out
}
