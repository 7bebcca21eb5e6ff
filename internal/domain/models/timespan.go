package models

import "fmt"

// TimeSpan selects the lookback window for a historical series request.
// Exactly seven values exist; anything else is rejected by ParseTimeSpan.
type TimeSpan string

const (
	Span1D  TimeSpan = "1D" // intraday, 15-minute bars for the current session
	Span5D  TimeSpan = "5D" // daily close, last 5 calendar days
	Span1M  TimeSpan = "1M" // daily close, last 30 calendar days
	Span6M  TimeSpan = "6M" // daily close, last 182 calendar days
	SpanYTD TimeSpan = "YTD" // daily close since January 1 of the current year
	Span1Y  TimeSpan = "1Y" // daily close, last 365 calendar days
	SpanAll TimeSpan = "ALL" // full available daily history
)

// DefaultSpan is used when a caller does not specify a span.
const DefaultSpan = Span1Y

// ParseTimeSpan validates s against the seven known spans. An empty string
// maps to DefaultSpan.
func ParseTimeSpan(s string) (TimeSpan, error) {
	if s == "" {
		return DefaultSpan, nil
	}
	switch TimeSpan(s) {
	case Span1D, Span5D, Span1M, Span6M, SpanYTD, Span1Y, SpanAll:
		return TimeSpan(s), nil
	}
	return "", fmt.Errorf("invalid time span %q", s)
}

// LookbackDays returns the fixed calendar-day window for the daily-close
// spans. Zero for 1D (intraday), YTD (computed from the calendar) and ALL
// (unbounded).
func (t TimeSpan) LookbackDays() int {
	switch t {
	case Span5D:
		return 5
	case Span1M:
		return 30
	case Span6M:
		return 182
	case Span1Y:
		return 365
	}
	return 0
}
