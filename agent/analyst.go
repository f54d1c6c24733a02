package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"incomelens"
	"incomelens/renderer"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and of solving the user's request.

			Learn about the expert skills you can reach through the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand the performance of his income ETF portfolio:
			total return, dividends collected, and how much each price could be trusted.

			The user will assume that you know about his fund tickers, check the analysis first
			to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns an expert grounded on Google Search for market news.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		very well aware of financial products and institutions,
		and of the latest news about the different funds or companies.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in trading, you can search and find about anything related to
			financial institutions, companies, markets, funds etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's income portfolio
// analysis. The analysis is produced by run on the first tool call and kept
// for the rest of the session.
func NewAnalyst(run func(context.Context) (*incomelens.Report, error)) *Expert {
	loader := newReportLoader(run)

	lib := []Function{
		portfolioReport(loader),
		fundPosition(loader),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's income
		portfolio analysis: positions, dividends, total returns and the confidence
		attached to every price. Ask him anything about the user's funds and figures.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's income ETF portfolio.
				You know how to use the Tools to extract relevant information about the portfolio.
				You are part of a team of experts, yours is everything about the portfolio figures.
				They might ask you questions in approximative language, figure out what they meant.

				Mind the confidence labels: a VERIFIED price was cross-validated by two sources,
				an ALT SOURCE price comes from a single fallback source, and NO DATA means the
				price is genuinely unknown, never zero. Dividends flagged as incomplete must not
				be presented as a true zero.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// reportLoader runs the analysis once and caches the result.
type reportLoader struct {
	once   sync.Once
	run    func(context.Context) (*incomelens.Report, error)
	report *incomelens.Report
	err    error
}

func newReportLoader(run func(context.Context) (*incomelens.Report, error)) *reportLoader {
	return &reportLoader{run: run}
}

func (l *reportLoader) load(ctx context.Context) (*incomelens.Report, error) {
	l.once.Do(func() { l.report, l.err = l.run(ctx) })
	return l.report, l.err
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func portfolioReport(loader *reportLoader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "portfolio_report",
			Description: `portfolio_report returns the full analysis of the user's income portfolio:
			every fund with its prices, shares, dividends, total return and price confidence,
			plus the portfolio totals and the verification summary.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of the whole portfolio.",
			},
		},
		Func: func(ctx context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			report, err := loader.load(ctx)
			if err != nil {
				return errResponse(id, "portfolio_report", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "portfolio_report",
				Response: map[string]any{
					"output": renderer.AnalysisMarkdown(report),
				},
			}
		},
	}
}

func fundPosition(loader *reportLoader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "fund_position",
			Description: `fund_position returns the detailed figures of a single fund of the
			portfolio: prices with their confidence labels, shares, dividends collected and
			total return.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"symbol": {
						Type:        genai.TypeString,
						Description: "The ticker of the fund, as configured in the portfolio.",
					},
				},
				Required: []string{"symbol"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A JSON object with the fund's figures.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			symbol, ok := args["symbol"].(string)
			if !ok {
				return errResponse(id, "fund_position", fmt.Errorf("argument 'symbol' is not a string but %T", args["symbol"]))
			}
			report, err := loader.load(ctx)
			if err != nil {
				return errResponse(id, "fund_position", err)
			}
			for i := range report.Positions {
				p := &report.Positions[i]
				if p.Symbol != symbol {
					continue
				}
				out, err := json.Marshal(p)
				if err != nil {
					return errResponse(id, "fund_position", err)
				}
				return &genai.FunctionResponse{
					ID:   id,
					Name: "fund_position",
					Response: map[string]any{
						"output": string(out),
					},
				}
			}
			return errResponse(id, "fund_position", fmt.Errorf("unknown fund %q", symbol))
		},
	}
}
