// Package research implements the company research tools: fixed
// per-tool search policy, prompt rendering, the upstream search call,
// and response formatting.
package research

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/user/companyscout/internal/research/prompts"
	"github.com/user/companyscout/internal/research/schema"
	"github.com/user/companyscout/pkg/linkup"
)

const (
	formatAnswer     = "answer"
	formatStructured = "structured"

	maxSourceLines = 5
)

// ErrSchemaMissing is returned when structured output is requested for
// a tool with no registered schema. It is raised before any network
// call is made.
var ErrSchemaMissing = errors.New("no structured output schema registered for tool")

// Searcher is the upstream search dependency. The API key is supplied
// per call, not at construction, because each session carries its own
// credential.
type Searcher interface {
	Search(ctx context.Context, apiKey string, req *linkup.SearchRequest) (*linkup.SearchResponse, error)
}

// Dispatcher routes tool invocations to the search backend.
type Dispatcher struct {
	searcher Searcher
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher backed by the given searcher.
func NewDispatcher(searcher Searcher, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{searcher: searcher, logger: logger}
}

// Invoke runs one research tool and returns the formatted result text.
func (d *Dispatcher) Invoke(ctx context.Context, apiKey, name string, rawArgs json.RawMessage) (string, error) {
	def, ok := Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown tool %q", name)
	}
	args, err := decodeArgs(rawArgs)
	if err != nil {
		return "", err
	}

	vars := prompts.Vars{CompanyName: args.CompanyName}
	if def.AcceptsProduct {
		vars.ProductName = args.ProductName
	}
	if def.AcceptsTopic {
		vars.Topic = args.Topic
	}
	if def.AcceptsDates {
		vars.FromDate = args.FromDate
		vars.ToDate = args.ToDate
	}
	prompt, err := prompts.Render(name, vars)
	if err != nil {
		return "", err
	}

	req := &linkup.SearchRequest{
		Query:      prompt,
		Depth:      def.Depth,
		OutputType: linkup.OutputSourcedAnswer,
		MaxResults: clampMaxResults(args.MaxResults, def.DefaultMaxResults),
	}
	if args.OutputFormat == formatStructured {
		raw, ok := schema.Get(name)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrSchemaMissing, name)
		}
		req.OutputType = linkup.OutputStructured
		req.Schema = raw
	}
	if def.AcceptsDates {
		req.FromDate = args.FromDate
		req.ToDate = args.ToDate
	}
	if def.AcceptsDomains {
		req.IncludeDomains = parseDomainList(args.IncludeDomains)
		req.ExcludeDomains = parseDomainList(args.ExcludeDomains)
	}
	if def.AcceptsImages {
		req.IncludeImages = args.IncludeImages
	}

	resp, err := d.searcher.Search(ctx, apiKey, req)
	if err != nil {
		return "", fmt.Errorf("tool %s: %w", name, err)
	}
	if args.OutputFormat == formatStructured {
		return d.formatStructured(name, resp)
	}
	return formatAnswerResponse(resp), nil
}

// formatStructured pretty-prints the upstream payload. A response that
// fails schema validation is still returned: the upstream owns the
// data, we only log the drift.
func (d *Dispatcher) formatStructured(name string, resp *linkup.SearchResponse) (string, error) {
	var doc any
	if err := json.Unmarshal(resp.Raw, &doc); err != nil {
		return "", fmt.Errorf("tool %s: decode structured response: %w", name, err)
	}
	if err := schema.Validate(name, doc); err != nil {
		d.logger.Warn("structured response does not match schema", "tool", name, "error", err)
	}
	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("tool %s: encode structured response: %w", name, err)
	}
	return string(pretty), nil
}

func formatAnswerResponse(resp *linkup.SearchResponse) string {
	answer := resp.Answer
	if answer == "" {
		answer = "No answer found."
	}
	if len(resp.Sources) == 0 {
		return answer
	}
	var sb strings.Builder
	sb.WriteString(answer)
	sb.WriteString("\n\n**Sources:**\n")
	for i, src := range resp.Sources {
		if i == maxSourceLines {
			break
		}
		name := src.Name
		if name == "" {
			name = src.Title
		}
		if name == "" {
			name = "Source"
		}
		fmt.Fprintf(&sb, "- [%s](%s)\n", name, src.URL)
	}
	return sb.String()
}
