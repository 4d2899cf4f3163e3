package gateway

import "net/http"

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>CompanyScout MCP</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        code { background: #f4f4f4; padding: 2px 6px; border-radius: 4px; }
        pre { background: #f4f4f4; padding: 15px; border-radius: 8px; overflow-x: auto; }
        .tools { display: grid; grid-template-columns: repeat(2, 1fr); gap: 10px; margin: 20px 0; }
        .tool { background: #e8f4fd; padding: 10px; border-radius: 6px; }
        a { color: #0066cc; }
    </style>
</head>
<body>
    <h1>CompanyScout MCP</h1>
    <p>A comprehensive company research platform powered by <a href="https://linkup.so">Linkup's</a> agentic search API.</p>

    <h2>Free Tier</h2>
    <p>Try it without an API key (rate limited to 50 requests/day):</p>
    <pre>https://YOUR_DEPLOYMENT_URL/sse</pre>
    <p>For unlimited access, add your own API key:</p>
    <pre>https://YOUR_DEPLOYMENT_URL/sse?apiKey=YOUR_LINKUP_API_KEY</pre>

    <h2>Get Your API Key</h2>
    <p>Get a Linkup API key at <a href="https://linkup.so">linkup.so</a></p>

    <h2>Available Tools (17)</h2>
    <div class="tools">
        <div class="tool"><strong>company_overview</strong> - Identity, location, size</div>
        <div class="tool"><strong>company_products</strong> - Products, services, pricing</div>
        <div class="tool"><strong>company_business_model</strong> - Revenue streams, GTM</div>
        <div class="tool"><strong>company_target_market</strong> - ICP, segments, geos</div>
        <div class="tool"><strong>company_financials</strong> - Revenue, metrics</div>
        <div class="tool"><strong>company_funding</strong> - Funding, valuation, investors</div>
        <div class="tool"><strong>company_leadership</strong> - C-suite, board, hires</div>
        <div class="tool"><strong>company_culture</strong> - Glassdoor, employer brand</div>
        <div class="tool"><strong>company_clients</strong> - Customers, case studies</div>
        <div class="tool"><strong>company_partnerships</strong> - Partners, integrations</div>
        <div class="tool"><strong>company_technology</strong> - Tech stack, patents</div>
        <div class="tool"><strong>competitive_landscape</strong> - Competitors, positioning</div>
        <div class="tool"><strong>company_market</strong> - TAM/SAM/SOM, trends</div>
        <div class="tool"><strong>company_news</strong> - Recent activity, news</div>
        <div class="tool"><strong>company_strategy</strong> - Growth plans, M&amp;A, IPO</div>
        <div class="tool"><strong>company_risks</strong> - Risk assessment</div>
        <div class="tool"><strong>company_esg</strong> - ESG, sustainability</div>
    </div>

    <h2>API Endpoints</h2>
    <ul>
        <li><code>GET /sse</code> - SSE endpoint (free tier with rate limits)</li>
        <li><code>GET /sse?apiKey=xxx</code> - SSE endpoint (unlimited with your key)</li>
        <li><code>GET /health</code> - Health check</li>
        <li><code>GET /metrics</code> - Prometheus metrics</li>
    </ul>
</body>
</html>
`

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(homePage))
}
