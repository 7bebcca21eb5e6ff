package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marketsight/marketsight/config"
	"github.com/marketsight/marketsight/internal/advisor"
	"github.com/marketsight/marketsight/internal/api"
	"github.com/marketsight/marketsight/internal/fmp"
	"github.com/marketsight/marketsight/internal/gateway"
	"github.com/marketsight/marketsight/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream FMP client from configuration.
//   - Constructs the market data gateway (live or demo depending on the key).
//   - Constructs the AI advisor with the gateway as its quote tool.
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes (readiness pings the upstream
//     only when a real credential is configured).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Upstream client over the configured base URL and credential
	client := fmp.New(cfg.Market.BaseURL, cfg.Market.APIKey, time.Duration(cfg.Market.TimeoutSeconds)*time.Second)

	// Market data gateway (switches to synthetic data without a credential)
	gw := gateway.New(cfg.Market, client)

	// AI advisor, with the gateway backing its getStockDetails tool
	adv := advisor.New(cfg.Advisor, gw)

	// Dashboard composition service
	dash := service.NewDashboardService(gw)

	// HTTP handler and router
	handler := api.NewHandler(gw, dash, adv)
	router := api.NewRouter(handler)

	// Register health and readiness probes. In demo mode there is no upstream
	// to ping, so readiness always succeeds.
	var ping func() error
	if !cfg.Market.DemoMode() {
		ping = func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return client.Ping(ctx)
		}
	}
	api.NewHealthHandler(ping).Register(router)

	// No resources to release yet; kept for symmetry with shutdown handling.
	cleanup := func() {}

	return router, cleanup, nil
}
