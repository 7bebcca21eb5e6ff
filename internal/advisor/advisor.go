// Package advisor produces AI stock recommendations from the user's holdings,
// a market sentiment label and a news summary. During its reasoning the model
// may call a getStockDetails tool, which resolves through the market data
// gateway so recommendations are grounded in current quotes.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	oa "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/marketsight/marketsight/config"
	"github.com/marketsight/marketsight/internal/domain/models"
	"github.com/marketsight/marketsight/internal/logger"
)

// maxToolRounds bounds the tool-call loop so a misbehaving model cannot spin
// the advisor forever.
const maxToolRounds = 5

const systemPrompt = `You are an AI investment advisor. Analyze the user's current stock picks, current market sentiment, and recent news to provide stock recommendations.

You may call the getStockDetails tool to look up current price and key financial metrics for any ticker before deciding.

Respond ONLY with a JSON object of the form {"recommendations": ["TICKER", ...], "reasoning": "..."} where recommendations is a list of stock tickers and reasoning explains your choices.`

// Input is the fixed request shape of the recommendation collaborator.
type Input struct {
	UserStocks      []string
	MarketSentiment string
	NewsSummary     string
}

// Output is the fixed response shape: recommended tickers plus free-text
// rationale.
type Output struct {
	Recommendations []string `json:"recommendations"`
	Reasoning       string   `json:"reasoning"`
}

// QuoteFetcher is the slice of the gateway the advisor needs for its tool.
type QuoteFetcher interface {
	FetchQuote(ctx context.Context, ticker string) (models.Quote, bool)
}

// Advisor wraps an OpenAI chat model with the getStockDetails tool.
type Advisor struct {
	cli    oa.Client
	model  string
	quotes QuoteFetcher
}

// New constructs an Advisor. Extra request options (e.g. a base URL override)
// are passed through to the OpenAI client, which tests use to point at a fake
// server.
func New(cfg config.AdvisorConfig, quotes QuoteFetcher, opts ...option.RequestOption) *Advisor {
	opts = append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	return &Advisor{
		cli:    oa.NewClient(opts...),
		model:  cfg.Model,
		quotes: quotes,
	}
}

// Recommend runs the chat completion loop, resolving tool calls against the
// gateway, until the model produces its final JSON answer.
func (a *Advisor) Recommend(ctx context.Context, in Input) (Output, error) {
	params := oa.ChatCompletionNewParams{
		Model: oa.ChatModel(a.model),
		Messages: []oa.ChatCompletionMessageParamUnion{
			oa.SystemMessage(systemPrompt),
			oa.UserMessage(userPrompt(in)),
		},
		Tools: []oa.ChatCompletionToolParam{
			{
				Function: oa.FunctionDefinitionParam{
					Name:        "getStockDetails",
					Description: oa.String("Gets current price and key financial metrics for a stock ticker."),
					Parameters: oa.FunctionParameters{
						"type": "object",
						"properties": map[string]any{
							"ticker": map[string]string{
								"type":        "string",
								"description": "The stock ticker symbol, e.g., AAPL.",
							},
						},
						"required": []string{"ticker"},
					},
				},
			},
		},
	}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.cli.Chat.Completions.New(ctx, params)
		if err != nil {
			return Output{}, fmt.Errorf("advisor: chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return Output{}, fmt.Errorf("advisor: no choices in response")
		}
		msg := resp.Choices[0].Message

		if len(msg.ToolCalls) == 0 {
			return parseOutput(msg.Content)
		}

		params.Messages = append(params.Messages, msg.ToParam())
		for _, tc := range msg.ToolCalls {
			if tc.Function.Name != "getStockDetails" {
				params.Messages = append(params.Messages, oa.ToolMessage("unknown tool", tc.ID))
				continue
			}
			params.Messages = append(params.Messages, oa.ToolMessage(a.stockDetails(ctx, tc.Function.Arguments), tc.ID))
		}
	}
	return Output{}, fmt.Errorf("advisor: tool-call loop exceeded %d rounds", maxToolRounds)
}

// stockDetails resolves one getStockDetails call. Result is JSON: the quote
// record, or null when the gateway reports no data.
func (a *Advisor) stockDetails(ctx context.Context, rawArgs string) string {
	var args struct {
		Ticker string `json:"ticker"`
	}
	if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
		logger.L().Warn().Str("args", rawArgs).Err(err).Msg("advisor: bad tool arguments")
		return "null"
	}
	q, ok := a.quotes.FetchQuote(ctx, args.Ticker)
	if !ok {
		return "null"
	}
	b, err := json.Marshal(q)
	if err != nil {
		return "null"
	}
	return string(b)
}

func userPrompt(in Input) string {
	return fmt.Sprintf(
		"User's current stocks: %s\nMarket sentiment: %s\nRecent news: %s\n\nProvide your recommendations as the specified JSON object.",
		strings.Join(in.UserStocks, ", "), in.MarketSentiment, in.NewsSummary,
	)
}

// parseOutput extracts the JSON answer from the model's final message,
// tolerating surrounding prose and markdown fences.
func parseOutput(content string) (Output, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return Output{}, fmt.Errorf("advisor: no JSON object in reply: %q", content)
	}
	var out Output
	if err := json.Unmarshal([]byte(content[start:end+1]), &out); err != nil {
		return Output{}, fmt.Errorf("advisor: parse reply: %w", err)
	}
	return out, nil
}
