package config

import (
	"log"

	"github.com/spf13/viper"
)

// PlaceholderAPIKey is the sentinel value shipped in .env.example. When the
// configured FMP key is empty or still set to this value, the gateway serves
// synthetic demo data instead of calling the upstream API.
const PlaceholderAPIKey = "YOUR_FINANCIAL_MODELING_PREP_API_KEY"

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system:
// the HTTP server, the upstream market-data API, and the AI advisor.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	FMP_API_KEY=abc123
//	FMP_BASE_URL=https://financialmodelingprep.com/api/v3
//	HTTP_TIMEOUT_SECONDS=10
//	OPENAI_API_KEY=sk-...
//	OPENAI_MODEL=gpt-4o
type Config struct {
	Server  ServerConfig  // HTTP server configuration
	Market  MarketConfig  // Upstream market-data API settings
	Advisor AdvisorConfig // AI advisor settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// MarketConfig defines access to the upstream Financial Modeling Prep API.
//
// Fields:
//   - APIKey: FMP credential, passed as a query parameter on every call.
//     Empty or PlaceholderAPIKey switches the gateway into demo mode.
//   - BaseURL: API root, overridable for testing against a fake upstream.
//   - TimeoutSeconds: per-request timeout for upstream HTTP calls.
type MarketConfig struct {
	APIKey         string
	BaseURL        string
	TimeoutSeconds int
}

// AdvisorConfig defines access to the OpenAI API used for stock recommendations.
type AdvisorConfig struct {
	APIKey string
	Model  string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all fields that have a sensible default.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Note: FMP_API_KEY and OPENAI_API_KEY have no defaults on purpose; an unset
// FMP key is a supported configuration (demo mode), not an error.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("FMP_BASE_URL", "https://financialmodelingprep.com/api/v3")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 10)

	viper.SetDefault("OPENAI_MODEL", "gpt-4o")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Market: MarketConfig{
			APIKey:         viper.GetString("FMP_API_KEY"),
			BaseURL:        viper.GetString("FMP_BASE_URL"),
			TimeoutSeconds: viper.GetInt("HTTP_TIMEOUT_SECONDS"),
		},
		Advisor: AdvisorConfig{
			APIKey: viper.GetString("OPENAI_API_KEY"),
			Model:  viper.GetString("OPENAI_MODEL"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// DemoMode reports whether the upstream credential is absent or still the
// documented placeholder, in which case every gateway operation serves
// synthetic data.
func (c MarketConfig) DemoMode() bool {
	return c.APIKey == "" || c.APIKey == PlaceholderAPIKey
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
// The FMP and OpenAI keys are deliberately not required: a missing FMP key
// enables demo mode, and the advisor endpoint reports its own failure when
// called without a key.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Market.BaseURL == "" {
		missing = append(missing, "FMP_BASE_URL")
	}
	if AppConfig.Market.TimeoutSeconds <= 0 {
		missing = append(missing, "HTTP_TIMEOUT_SECONDS")
	}
	if AppConfig.Advisor.Model == "" {
		missing = append(missing, "OPENAI_MODEL")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
