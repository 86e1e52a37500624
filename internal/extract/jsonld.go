package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fixed confidence tiers. The tier says which strategy produced a result,
// not how many fields it filled.
const (
	ConfidenceStructured = 90
	ConfidenceOpenGraph  = 60
	ConfidenceHeuristic  = 30
	ConfidenceNone       = 0
)

// strategyResult is what each extraction strategy hands to fusion. Strategies
// never surface errors; a failed parse is just an empty result at tier 0.
type strategyResult struct {
	Role        string
	Company     string
	Location    string
	Description string
	Confidence  int
}

// extractJSONLD scans ld+json script blocks for a schema.org JobPosting.
// Roots may be a single object or an array; the first JobPosting entry wins.
func extractJSONLD(doc *goquery.Document) strategyResult {
	var out strategyResult

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var root any
		if err := json.Unmarshal([]byte(s.Text()), &root); err != nil {
			return true // malformed block; keep scanning
		}

		posting := findJobPosting(root)
		if posting == nil {
			return true
		}

		if title := jsonString(posting["title"]); title != "" {
			out.Role = cleanText(title)
		}
		if org, ok := posting["hiringOrganization"].(map[string]any); ok {
			if name := jsonString(org["name"]); name != "" {
				out.Company = cleanText(name)
			}
		}
		if loc := jobLocationText(posting["jobLocation"]); loc != "" {
			out.Location = cleanText(loc)
		}
		if desc := jsonString(posting["description"]); desc != "" {
			out.Description = truncate(desc, maxDescriptionLen)
		}

		out.Confidence = ConfidenceStructured
		return false
	})

	return out
}

func findJobPosting(root any) map[string]any {
	switch t := root.(type) {
	case map[string]any:
		if jsonString(t["@type"]) == "JobPosting" {
			return t
		}
	case []any:
		for _, item := range t {
			if m, ok := item.(map[string]any); ok && jsonString(m["@type"]) == "JobPosting" {
				return m
			}
		}
	}
	return nil
}

// jobLocationText renders jobLocation however the page chose to shape it:
// nested postal address, plain-text address, or a bare string.
func jobLocationText(v any) string {
	loc, ok := v.(map[string]any)
	if !ok {
		return jsonString(v)
	}

	addr, ok := loc["address"].(map[string]any)
	if !ok {
		return jsonString(loc["address"])
	}

	var parts []string
	for _, key := range []string{"addressLocality", "addressRegion", "addressCountry"} {
		if p := jsonString(addr[key]); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func jsonString(v any) string {
	s, _ := v.(string)
	return s
}
