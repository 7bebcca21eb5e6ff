package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/marketsight/marketsight/internal/advisor"
	"github.com/marketsight/marketsight/internal/domain/dto"
	"github.com/marketsight/marketsight/internal/domain/models"
	"github.com/marketsight/marketsight/internal/service"
)

// MarketGateway is the gateway surface the HTTP layer consumes.
type MarketGateway interface {
	FetchQuote(ctx context.Context, ticker string) (models.Quote, bool)
	FetchHistoricalSeries(ctx context.Context, ticker string, span models.TimeSpan) models.HistoricalSeries
	SearchStocks(ctx context.Context, query string) []models.SearchResult
	FetchMarketMovers(ctx context.Context) models.MarketMovers
}

// Recommender is the advisor surface the HTTP layer consumes.
type Recommender interface {
	Recommend(ctx context.Context, in advisor.Input) (advisor.Output, error)
}

// Handler provides HTTP handlers for the market data and recommendation endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP parameters
//   - Interact with the gateway, dashboard service and advisor
//   - Translate domain results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	gw   MarketGateway
	dash service.DashboardService
	adv  Recommender
}

// NewHandler constructs a new Handler instance.
func NewHandler(gw MarketGateway, dash service.DashboardService, adv Recommender) *Handler {
	return &Handler{gw: gw, dash: dash, adv: adv}
}

// GetQuote handles GET /api/v1/quote requests.
//
// The gateway never surfaces failure causes; a missing quote is a plain 404
// whether the upstream was down, returned zero rows, or the ticker does not
// exist.
//
// GetQuote godoc
// @Summary      Get quote by ticker
// @Description  Returns the normalized quote for a ticker, merging price data and trailing dividend yield
// @Tags         market
// @Produce      json
// @Param        ticker  query     string  true  "Stock ticker" example(AAPL)
// @Success      200     {object}  dto.QuoteResponse    "Success"
// @Failure      400     {object}  dto.ErrorResponse    "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse    "No data"
// @Router       /api/v1/quote [get]
func (h *Handler) GetQuote(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	quote, ok := h.gw.FetchQuote(c.Request.Context(), ticker)
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data found", nil))
		return
	}
	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// GetHistorical handles GET /api/v1/historical requests.
//
// GetHistorical godoc
// @Summary      Get historical price series
// @Description  Returns closing prices for a ticker over a time span, oldest first
// @Tags         market
// @Produce      json
// @Param        ticker  query     string  true   "Stock ticker" example(AAPL)
// @Param        span    query     string  false  "Time span: 1D, 5D, 1M, 6M, YTD, 1Y, ALL (default 1Y)" example(1Y)
// @Success      200     {object}  dto.HistoricalResponse  "Success (points may be empty)"
// @Failure      400     {object}  dto.ErrorResponse       "Bad Request"
// @Router       /api/v1/historical [get]
func (h *Handler) GetHistorical(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}
	span, err := models.ParseTimeSpan(c.Query("span"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid span, expected one of 1D,5D,1M,6M,YTD,1Y,ALL", err))
		return
	}

	series := h.gw.FetchHistoricalSeries(c.Request.Context(), ticker, span)
	c.JSON(http.StatusOK, dto.HistoricalResponse{
		Ticker: ticker,
		Span:   string(span),
		Points: series,
	})
}

// Search handles GET /api/v1/search requests. An empty query is a valid
// request with an empty result list.
//
// Search godoc
// @Summary      Search stocks
// @Description  Resolves a ticker or company-name fragment into up to 10 matches
// @Tags         market
// @Produce      json
// @Param        q  query     string  false  "Search query" example(apple)
// @Success      200  {object}  dto.SearchResponse  "Success"
// @Router       /api/v1/search [get]
func (h *Handler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	results := h.gw.SearchStocks(c.Request.Context(), query)
	c.JSON(http.StatusOK, dto.SearchResponse{Query: query, Results: results})
}

// GetMovers handles GET /api/v1/movers requests.
//
// GetMovers godoc
// @Summary      Get market movers
// @Description  Returns the day's top gainers and losers as fully populated quotes
// @Tags         market
// @Produce      json
// @Success      200  {object}  dto.MoversResponse  "Success (both lists empty on upstream failure)"
// @Router       /api/v1/movers [get]
func (h *Handler) GetMovers(c *gin.Context) {
	movers := h.gw.FetchMarketMovers(c.Request.Context())
	c.JSON(http.StatusOK, dto.NewMoversResponse(movers))
}

// GetDashboard handles GET /api/v1/dashboard requests.
//
// GetDashboard godoc
// @Summary      Get initial dashboard data
// @Description  Returns quotes for the default watchlist, the selected stock, and its history
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse  "Success (empty when every lookup failed)"
// @Router       /api/v1/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, dashboardResponse(h.dash.InitialDashboard(c.Request.Context())))
}

// GetDashboardTicker handles GET /api/v1/dashboard/{ticker} requests.
//
// GetDashboardTicker godoc
// @Summary      Get dashboard data for one ticker
// @Description  Returns the quote and historical series for a single ticker
// @Tags         dashboard
// @Produce      json
// @Param        ticker  path      string  true  "Stock ticker" example(AAPL)
// @Success      200     {object}  dto.DashboardResponse  "Success"
// @Failure      404     {object}  dto.ErrorResponse      "No data"
// @Router       /api/v1/dashboard/{ticker} [get]
func (h *Handler) GetDashboardTicker(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
	d := h.dash.StockData(c.Request.Context(), ticker)
	if d.Selected == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data found", nil))
		return
	}
	c.JSON(http.StatusOK, dashboardResponse(d))
}

// Recommend handles POST /api/v1/recommendations requests.
//
// Recommend godoc
// @Summary      Get AI stock recommendations
// @Description  Produces recommended tickers and reasoning from holdings, sentiment and news
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RecommendationRequest  true  "Recommendation input"
// @Success      200      {object}  dto.RecommendationResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse           "Bad Request"
// @Failure      502      {object}  dto.ErrorResponse           "Advisor failure"
// @Router       /api/v1/recommendations [post]
func (h *Handler) Recommend(c *gin.Context) {
	var req dto.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	out, err := h.adv.Recommend(c.Request.Context(), advisor.Input{
		UserStocks:      req.UserStocks,
		MarketSentiment: req.MarketSentiment,
		NewsSummary:     req.NewsSummary,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("recommendation failed", err))
		return
	}
	c.JSON(http.StatusOK, dto.RecommendationResponse{
		Recommendations: out.Recommendations,
		Reasoning:       out.Reasoning,
	})
}

func dashboardResponse(d service.Dashboard) dto.DashboardResponse {
	resp := dto.DashboardResponse{Points: d.Series}
	for _, q := range d.Watchlist {
		resp.Watchlist = append(resp.Watchlist, dto.NewQuoteResponse(q))
	}
	if d.Selected != nil {
		sel := dto.NewQuoteResponse(*d.Selected)
		resp.Selected = &sel
	}
	if resp.Points == nil {
		resp.Points = []models.HistoricalPoint{}
	}
	return resp
}
