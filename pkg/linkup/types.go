package linkup

import "encoding/json"

// Depth selects how thoroughly the search API researches a query.
type Depth string

const (
	DepthStandard Depth = "standard"
	DepthDeep     Depth = "deep"
)

// Output types accepted by the search API.
const (
	OutputSourcedAnswer = "sourcedAnswer"
	OutputStructured    = "structured"
)

// maxDomainFilters caps the include/exclude domain lists the API accepts.
const maxDomainFilters = 50

// SearchRequest describes one outbound search call.
type SearchRequest struct {
	Query      string
	Depth      Depth
	OutputType string
	// Schema is the JSON schema for structured output. Required when
	// OutputType is OutputStructured.
	Schema         json.RawMessage
	FromDate       string
	ToDate         string
	IncludeDomains []string
	ExcludeDomains []string
	IncludeImages  bool
	MaxResults     int
}

// Source is one citation attached to a sourced answer.
type Source struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchResponse is the parsed API answer. Raw always holds the full
// response body; Answer and Sources are populated in sourcedAnswer mode.
type SearchResponse struct {
	Answer  string          `json:"answer"`
	Sources []Source        `json:"sources"`
	Raw     json.RawMessage `json:"-"`
}

// payload is the wire format of a search request.
type payload struct {
	Query                  string   `json:"q"`
	Depth                  string   `json:"depth"`
	OutputType             string   `json:"outputType"`
	StructuredOutputSchema string   `json:"structuredOutputSchema,omitempty"`
	FromDate               string   `json:"fromDate,omitempty"`
	ToDate                 string   `json:"toDate,omitempty"`
	IncludeDomains         []string `json:"includeDomains,omitempty"`
	ExcludeDomains         []string `json:"excludeDomains,omitempty"`
	IncludeImages          bool     `json:"includeImages,omitempty"`
	MaxResults             int      `json:"maxResults,omitempty"`
}
