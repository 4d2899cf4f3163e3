package prompts

import (
	"fmt"
	"strings"
	"text/template"
)

// Vars carries the substitution values for a prompt. CompanyName is
// required; the rest only apply to the tools that accept them and
// render as empty clauses when unset.
type Vars struct {
	CompanyName string
	ProductName string
	Topic       string
	FromDate    string
	ToDate      string
}

// promptData is what the templates actually see: the company name plus
// pre-rendered filter clauses.
type promptData struct {
	CompanyName   string
	ProductFilter string
	DateFilter    string
	TopicFilter   string
}

var templates = map[string]*template.Template{
	"company_overview":       mustParse("company_overview", companyOverviewPrompt),
	"company_products":       mustParse("company_products", companyProductsPrompt),
	"company_business_model": mustParse("company_business_model", companyBusinessModelPrompt),
	"company_target_market":  mustParse("company_target_market", companyTargetMarketPrompt),
	"company_financials":     mustParse("company_financials", companyFinancialsPrompt),
	"company_funding":        mustParse("company_funding", companyFundingPrompt),
	"company_leadership":     mustParse("company_leadership", companyLeadershipPrompt),
	"company_culture":        mustParse("company_culture", companyCulturePrompt),
	"company_clients":        mustParse("company_clients", companyClientsPrompt),
	"company_partnerships":   mustParse("company_partnerships", companyPartnershipsPrompt),
	"company_technology":     mustParse("company_technology", companyTechnologyPrompt),
	"competitive_landscape":  mustParse("competitive_landscape", competitiveLandscapePrompt),
	"company_market":         mustParse("company_market", companyMarketPrompt),
	"company_news":           mustParse("company_news", companyNewsPrompt),
	"company_strategy":       mustParse("company_strategy", companyStrategyPrompt),
	"company_risks":          mustParse("company_risks", companyRisksPrompt),
	"company_esg":            mustParse("company_esg", companyESGPrompt),
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

// Names returns the registered tool names in no particular order.
func Names() []string {
	out := make([]string, 0, len(templates))
	for name := range templates {
		out = append(out, name)
	}
	return out
}

// Render produces the research prompt for the named tool. Unknown tool
// names are an error, not a silent empty prompt.
func Render(tool string, vars Vars) (string, error) {
	tmpl, ok := templates[tool]
	if !ok {
		return "", fmt.Errorf("no prompt registered for tool %q", tool)
	}
	data := promptData{
		CompanyName:   vars.CompanyName,
		ProductFilter: productFilter(vars.ProductName),
		DateFilter:    dateFilter(vars.FromDate, vars.ToDate),
		TopicFilter:   topicFilter(vars.Topic),
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render prompt for %s: %w", tool, err)
	}
	return sb.String(), nil
}

func productFilter(productName string) string {
	if productName == "" {
		return ""
	}
	return fmt.Sprintf("Focus specifically on the product: %s", productName)
}

func dateFilter(fromDate, toDate string) string {
	if fromDate == "" && toDate == "" {
		return ""
	}
	from := fromDate
	if from == "" {
		from = "the beginning"
	}
	to := toDate
	if to == "" {
		to = "now"
	}
	return fmt.Sprintf("Search for news from %s to %s.", from, to)
}

func topicFilter(topic string) string {
	if topic == "" {
		return ""
	}
	return fmt.Sprintf("Focus specifically on news about: %s", topic)
}
