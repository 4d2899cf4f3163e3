package research

import (
	"encoding/json"
	"fmt"
	"strings"
)

const maxDomainFilters = 50

// callArgs is the superset of arguments a tool call may carry. Each
// tool only honors the fields its definition accepts.
type callArgs struct {
	CompanyName    string `json:"company_name"`
	OutputFormat   string `json:"output_format"`
	ProductName    string `json:"product_name"`
	Topic          string `json:"topic"`
	FromDate       string `json:"from_date"`
	ToDate         string `json:"to_date"`
	IncludeDomains string `json:"include_domains"`
	ExcludeDomains string `json:"exclude_domains"`
	IncludeImages  bool   `json:"include_images"`
	MaxResults     int    `json:"max_results"`
}

func decodeArgs(raw json.RawMessage) (callArgs, error) {
	var args callArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return callArgs{}, fmt.Errorf("decode tool arguments: %w", err)
		}
	}
	if args.CompanyName == "" {
		return callArgs{}, fmt.Errorf("company_name is required")
	}
	switch args.OutputFormat {
	case "":
		args.OutputFormat = formatAnswer
	case formatAnswer, formatStructured:
	default:
		return callArgs{}, fmt.Errorf("invalid output_format %q: must be %q or %q", args.OutputFormat, formatAnswer, formatStructured)
	}
	return args, nil
}

// parseDomainList splits a comma-separated domain string, trimming
// whitespace and dropping empties, capped at maxDomainFilters entries.
func parseDomainList(domains string) []string {
	if domains == "" {
		return nil
	}
	var out []string
	for _, d := range strings.Split(domains, ",") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		out = append(out, d)
		if len(out) == maxDomainFilters {
			break
		}
	}
	return out
}

// clampMaxResults applies the tool default when unset and caps the
// value to the API's accepted range.
func clampMaxResults(requested, fallback int) int {
	if requested <= 0 {
		return fallback
	}
	if requested > 50 {
		return 50
	}
	return requested
}
