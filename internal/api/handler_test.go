package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/marketsight/marketsight/internal/advisor"
	"github.com/marketsight/marketsight/internal/domain/models"
	"github.com/marketsight/marketsight/internal/service"
)

type mockGateway struct {
	quote   models.Quote
	ok      bool
	series  models.HistoricalSeries
	results []models.SearchResult
	movers  models.MarketMovers
}

func (m *mockGateway) FetchQuote(_ context.Context, _ string) (models.Quote, bool) {
	return m.quote, m.ok
}

func (m *mockGateway) FetchHistoricalSeries(_ context.Context, _ string, _ models.TimeSpan) models.HistoricalSeries {
	return m.series
}

func (m *mockGateway) SearchStocks(_ context.Context, query string) []models.SearchResult {
	if query == "" {
		return []models.SearchResult{}
	}
	return m.results
}

func (m *mockGateway) FetchMarketMovers(_ context.Context) models.MarketMovers {
	return m.movers
}

var _ MarketGateway = (*mockGateway)(nil)

type mockDash struct {
	d service.Dashboard
}

func (m *mockDash) InitialDashboard(_ context.Context) service.Dashboard         { return m.d }
func (m *mockDash) StockData(_ context.Context, _ string) service.Dashboard      { return m.d }

var _ service.DashboardService = (*mockDash)(nil)

type mockAdvisor struct {
	out advisor.Output
	err error
}

func (m *mockAdvisor) Recommend(_ context.Context, _ advisor.Input) (advisor.Output, error) {
	return m.out, m.err
}

func setupRouter(gw MarketGateway, dash service.DashboardService, adv Recommender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(gw, dash, adv)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/quote", h.GetQuote)
	v1.GET("/historical", h.GetHistorical)
	v1.GET("/search", h.Search)
	v1.GET("/movers", h.GetMovers)
	v1.GET("/dashboard", h.GetDashboard)
	v1.GET("/dashboard/:ticker", h.GetDashboardTicker)
	v1.POST("/recommendations", h.Recommend)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetQuote_TableDriven(t *testing.T) {
	yield := 0.0125
	cases := []struct {
		name   string
		gw     *mockGateway
		query  string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "missing ticker",
			gw:     &mockGateway{},
			query:  "/api/v1/quote",
			status: http.StatusBadRequest,
		},
		{
			name:   "absent quote",
			gw:     &mockGateway{ok: false},
			query:  "/api/v1/quote?ticker=ZZZZ",
			status: http.StatusNotFound,
		},
		{
			name:   "present quote with yield converted to percent",
			gw:     &mockGateway{quote: models.Quote{Ticker: "KO", Price: 60, DividendYield: &yield}, ok: true},
			query:  "/api/v1/quote?ticker=ko",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var resp map[string]any
				if err := json.Unmarshal(body, &resp); err != nil {
					t.Fatalf("bad body: %v", err)
				}
				if resp["ticker"] != "KO" {
					t.Fatalf("unexpected ticker: %v", resp["ticker"])
				}
				if resp["dividend_yield_pct"] != 1.25 {
					t.Fatalf("expected yield 1.25, got %v", resp["dividend_yield_pct"])
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(tc.gw, &mockDash{}, &mockAdvisor{})
			w := doGet(r, tc.query)
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tc.status, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetHistorical(t *testing.T) {
	gw := &mockGateway{series: models.HistoricalSeries{{Date: "2024-01-02", Price: 1}}}
	r := setupRouter(gw, &mockDash{}, &mockAdvisor{})

	w := doGet(r, "/api/v1/historical?ticker=aapl&span=5D")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"span":"5D"`) || !strings.Contains(w.Body.String(), `"ticker":"AAPL"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	// invalid span
	if w := doGet(r, "/api/v1/historical?ticker=AAPL&span=2W"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad span, got %d", w.Code)
	}
	// missing ticker
	if w := doGet(r, "/api/v1/historical"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing ticker, got %d", w.Code)
	}
	// empty span defaults to 1Y
	if w := doGet(r, "/api/v1/historical?ticker=AAPL"); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"span":"1Y"`) {
		t.Fatalf("expected default 1Y span, got %d %s", w.Code, w.Body.String())
	}
}

func TestSearch(t *testing.T) {
	gw := &mockGateway{results: []models.SearchResult{{Symbol: "AAPL"}}}
	r := setupRouter(gw, &mockDash{}, &mockAdvisor{})

	w := doGet(r, "/api/v1/search?q=apple")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "AAPL") {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}

	// empty query is 200 with empty results, not an error
	w = doGet(r, "/api/v1/search")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"results":[]`) {
		t.Fatalf("unexpected empty-query response: %d %s", w.Code, w.Body.String())
	}
}

func TestGetMovers(t *testing.T) {
	gw := &mockGateway{movers: models.MarketMovers{
		Gainers: []models.Quote{{Ticker: "UP", ChangePercent: 3}},
		Losers:  []models.Quote{{Ticker: "DN", ChangePercent: -3}},
	}}
	r := setupRouter(gw, &mockDash{}, &mockAdvisor{})

	w := doGet(r, "/api/v1/movers")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"UP"`) || !strings.Contains(w.Body.String(), `"DN"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestGetDashboard(t *testing.T) {
	sel := models.Quote{Ticker: "AAPL", Price: 190}
	dash := &mockDash{d: service.Dashboard{
		Watchlist: []models.Quote{sel},
		Selected:  &sel,
		Series:    models.HistoricalSeries{{Date: "2024-01-02", Price: 1}},
	}}
	r := setupRouter(&mockGateway{}, dash, &mockAdvisor{})

	w := doGet(r, "/api/v1/dashboard")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"AAPL"`) {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}

	w = doGet(r, "/api/v1/dashboard/AAPL")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	// absent selection on the per-ticker variant is 404
	r = setupRouter(&mockGateway{}, &mockDash{d: service.Dashboard{}}, &mockAdvisor{})
	if w := doGet(r, "/api/v1/dashboard/ZZZZ"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRecommend(t *testing.T) {
	cases := []struct {
		name   string
		adv    *mockAdvisor
		body   string
		status int
	}{
		{
			name:   "success",
			adv:    &mockAdvisor{out: advisor.Output{Recommendations: []string{"NVDA"}, Reasoning: "ok"}},
			body:   `{"user_stocks":["AAPL"],"market_sentiment":"bullish","news_summary":"up"}`,
			status: http.StatusOK,
		},
		{
			name:   "bad body",
			adv:    &mockAdvisor{},
			body:   `{not json`,
			status: http.StatusBadRequest,
		},
		{
			name:   "advisor failure",
			adv:    &mockAdvisor{err: errors.New("model unavailable")},
			body:   `{"user_stocks":[]}`,
			status: http.StatusBadGateway,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(&mockGateway{}, &mockDash{}, tc.adv)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tc.status, w.Body.String())
			}
			if tc.status == http.StatusOK && !strings.Contains(w.Body.String(), "NVDA") {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}
