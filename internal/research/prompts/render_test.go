package prompts

import (
	"strings"
	"testing"
)

func TestRenderSubstitutesCompanyName(t *testing.T) {
	out, err := Render("company_overview", Vars{CompanyName: "Acme Corp"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "Acme Corp") {
		t.Error("prompt should contain the company name")
	}
	if strings.Contains(out, "{{") {
		t.Error("prompt should not contain unexpanded placeholders")
	}
}

func TestRenderUnknownTool(t *testing.T) {
	_, err := Render("company_astrology", Vars{CompanyName: "Acme"})
	if err == nil {
		t.Fatal("expected error for unregistered tool")
	}
}

func TestRenderAllRegisteredTools(t *testing.T) {
	for _, name := range Names() {
		out, err := Render(name, Vars{CompanyName: "Acme"})
		if err != nil {
			t.Errorf("Render(%s) failed: %v", name, err)
			continue
		}
		if !strings.Contains(out, "Acme") {
			t.Errorf("prompt for %s missing company name", name)
		}
	}
}

func TestProductFilter(t *testing.T) {
	out, err := Render("company_products", Vars{CompanyName: "Acme", ProductName: "Widget Pro"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "Focus specifically on the product: Widget Pro") {
		t.Error("product filter clause missing")
	}

	out, err = Render("company_products", Vars{CompanyName: "Acme"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(out, "Focus specifically on the product") {
		t.Error("product filter should be empty when no product given")
	}
}

func TestDateFilterDefaults(t *testing.T) {
	out, err := Render("company_news", Vars{CompanyName: "Acme", FromDate: "2025-01-01"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "Search for news from 2025-01-01 to now.") {
		t.Error("date filter should default missing to-date to now")
	}

	out, err = Render("company_news", Vars{CompanyName: "Acme", ToDate: "2025-06-30"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "Search for news from the beginning to 2025-06-30.") {
		t.Error("date filter should default missing from-date to the beginning")
	}

	out, err = Render("company_news", Vars{CompanyName: "Acme"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(out, "Search for news from") {
		t.Error("date filter should be empty when no dates given")
	}
}

func TestTopicFilter(t *testing.T) {
	out, err := Render("company_news", Vars{CompanyName: "Acme", Topic: "layoffs"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "Focus specifically on news about: layoffs") {
		t.Error("topic filter clause missing")
	}
}
