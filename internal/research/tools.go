package research

import (
	"encoding/json"
	"fmt"

	"github.com/user/companyscout/pkg/linkup"
)

// Definition describes one research tool: its fixed search depth,
// default source cap, and which optional parameters it accepts.
type Definition struct {
	Name              string
	Description       string
	Depth             linkup.Depth
	DefaultMaxResults int
	AcceptsImages     bool
	AcceptsProduct    bool
	AcceptsDates      bool
	AcceptsTopic      bool
	AcceptsDomains    bool
}

var definitions = []Definition{
	{
		Name:              "company_overview",
		Description:       "Get a comprehensive overview of a company. Researches the company's website, LinkedIn, and press coverage to provide detailed information about what they do, their industry, size, and business model.",
		Depth:             linkup.DepthDeep,
		DefaultMaxResults: 10,
		AcceptsImages:     true,
	},
	{
		Name:              "company_products",
		Description:       "Get information about a company's products and services. Researches the company's product pages, pricing, and documentation to provide detailed information about their offerings, pricing models, and use cases.",
		Depth:             linkup.DepthStandard,
		DefaultMaxResults: 15,
		AcceptsProduct:    true,
	},
	{
		Name:              "company_business_model",
		Description:       "Get information about a company's business model. Researches how the company makes money, their revenue streams, unit economics, and go-to-market strategy.",
		Depth:             linkup.DepthStandard,
		DefaultMaxResults: 12,
	},
	{
		Name:              "company_target_market",
		Description:       "Get information about a company's target market. Researches the company's ideal customer profile, customer segments, geographic markets, and vertical focus.",
		Depth:             linkup.DepthStandard,
		DefaultMaxResults: 12,
	},
	{
		Name:              "company_financials",
		Description:       "Get financial information about a company. Researches revenue, profitability, key business metrics (ARR, MRR, GMV, NRR), and financial health indicators.",
		Depth:             linkup.DepthDeep,
		DefaultMaxResults: 15,
		AcceptsDates:      true,
	},
	{
		Name:              "company_funding",
		Description:       "Get funding and valuation information about a company. Researches funding history, funding rounds, valuation, and investors through Crunchbase, PitchBook, press releases, and financial news.",
		Depth:             linkup.DepthDeep,
		DefaultMaxResults: 15,
		AcceptsDates:      true,
	},
	{
		Name:              "company_leadership",
		Description:       "Get information about a company's leadership team. Identifies CEO, C-suite executives, founders, board members, key hires, and notable departures.",
		Depth:             linkup.DepthStandard,
		DefaultMaxResults: 12,
		AcceptsImages:     true,
	},
	{
		Name:              "company_culture",
		Description:       "Get information about a company's culture and employer reputation. Researches Glassdoor ratings, employer awards, culture attributes, work policy (remote/hybrid/in-office), and benefits.",
		Depth:             linkup.DepthStandard,
		DefaultMaxResults: 15,
	},
	{
		Name:              "company_clients",
		Description:       "Find known clients, customers, and case studies for a company. Researches customer pages, case studies, press releases, and review sites to identify verified customers and their use cases.",
		Depth:             linkup.DepthDeep,
		DefaultMaxResults: 15,
	},
	{
		Name:              "company_partnerships",
		Description:       "Find partnerships, integrations, and strategic alliances for a company. Researches partner pages, integration marketplaces, press releases, and partner programs to map the company's ecosystem.",
		Depth:             linkup.DepthDeep,
		DefaultMaxResults: 15,
	},
	{
		Name:              "company_technology",
		Description:       "Research a company's technology stack, patents, and technical approach. Analyzes engineering blogs, job postings, tech detection tools, patents, and open source contributions to understand technical capabilities.",
		Depth:             linkup.DepthDeep,
		DefaultMaxResults: 15,
	},
	{
		Name:              "competitive_landscape",
		Description:       "Analyze a company's competitive position in their market. Identifies competitors, market positioning, differentiators, and competitive advantages through research of industry reports, review sites, and company materials.",
		Depth:             linkup.DepthDeep,
		DefaultMaxResults: 15,
		AcceptsImages:     true,
	},
	{
		Name:              "company_market",
		Description:       "Get information about the market and industry context for a company. Researches industry classification, market size (TAM/SAM/SOM), industry growth rate, market trends, and regulatory environment.",
		Depth:             linkup.DepthDeep,
		DefaultMaxResults: 15,
	},
	{
		Name:              "company_news",
		Description:       "Get the latest news and developments about a company. Searches news sources, press releases, and publications for recent coverage including product launches, funding, partnerships, and M&A activity.",
		Depth:             linkup.DepthStandard,
		DefaultMaxResults: 15,
		AcceptsDates:      true,
		AcceptsTopic:      true,
		AcceptsDomains:    true,
	},
	{
		Name:              "company_strategy",
		Description:       "Get information about a company's strategic direction. Researches growth strategy, expansion plans (geographic, product, vertical), M&A history, acquisition rumors, and IPO signals.",
		Depth:             linkup.DepthDeep,
		DefaultMaxResults: 15,
	},
	{
		Name:              "company_risks",
		Description:       "Assess risk factors for a company. Researches competitive risks, regulatory risks, legal exposure, key person dependency, customer concentration, technology risks, and market risks.",
		Depth:             linkup.DepthDeep,
		DefaultMaxResults: 15,
	},
	{
		Name:              "company_esg",
		Description:       "Get ESG and reputation information about a company. Researches ESG initiatives, sustainability commitments, environmental programs, social initiatives, governance, controversies, and brand perception.",
		Depth:             linkup.DepthStandard,
		DefaultMaxResults: 12,
	},
}

// Definitions returns the tool definitions in registration order.
func Definitions() []Definition {
	return definitions
}

// Lookup returns the definition for a tool name.
func Lookup(name string) (Definition, bool) {
	for _, d := range definitions {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// InputSchema builds the JSON schema advertising the tool's accepted
// arguments.
func (d Definition) InputSchema() json.RawMessage {
	props := map[string]any{
		"company_name": map[string]any{
			"type":        "string",
			"description": "Name of the company to research",
		},
		"output_format": map[string]any{
			"type":        "string",
			"enum":        []string{"answer", "structured"},
			"description": "\"answer\" for natural language with sources, \"structured\" for JSON",
		},
		"max_results": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"maximum":     50,
			"description": fmt.Sprintf("Maximum number of sources to consider (default %d)", d.DefaultMaxResults),
		},
	}
	if d.AcceptsImages {
		props["include_images"] = map[string]any{
			"type":        "boolean",
			"description": "Include relevant images in the results",
		}
	}
	if d.AcceptsProduct {
		props["product_name"] = map[string]any{
			"type":        "string",
			"description": "Optional filter for a specific product",
		}
	}
	if d.AcceptsDates {
		props["from_date"] = map[string]any{
			"type":        "string",
			"description": "Start date filter (YYYY-MM-DD)",
		}
		props["to_date"] = map[string]any{
			"type":        "string",
			"description": "End date filter (YYYY-MM-DD)",
		}
	}
	if d.AcceptsTopic {
		props["topic"] = map[string]any{
			"type":        "string",
			"description": "Optional topic filter (e.g., 'funding', 'product launch', 'partnerships')",
		}
	}
	if d.AcceptsDomains {
		props["include_domains"] = map[string]any{
			"type":        "string",
			"description": "Comma-separated domains to include (e.g., \"techcrunch.com,reuters.com\")",
		}
		props["exclude_domains"] = map[string]any{
			"type":        "string",
			"description": "Comma-separated domains to exclude",
		}
	}
	doc := map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []string{"company_name"},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("marshal input schema for %s: %v", d.Name, err))
	}
	return raw
}
