package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selector patterns common across applicant-tracking systems, tried in order.
var (
	companySelectors = []string{
		".company-name",
		".employer-name",
		"[data-company]",
		".topcard__org-name",
	}
	locationSelectors = []string{
		".location",
		".job-location",
		"[data-location]",
		".topcard__flavor--bullet",
	}
)

// extractHeuristic is the last-resort strategy: page title patterns, the
// first h1, and ATS selector guesses.
func extractHeuristic(doc *goquery.Document) strategyResult {
	var out strategyResult
	fields := 0

	// "Job Title - Company" and "Job Title | Company" are the usual shapes.
	pageTitle := doc.Find("title").First().Text()
	if pageTitle != "" {
		sep := ""
		switch {
		case strings.Contains(pageTitle, " - "):
			sep = " - "
		case strings.Contains(pageTitle, " | "):
			sep = " | "
		}
		if sep != "" {
			parts := strings.SplitN(pageTitle, sep, 2)
			out.Role = cleanText(parts[0])
			if len(parts) > 1 {
				out.Company = cleanText(parts[1])
				fields++
			}
		} else {
			out.Role = cleanText(pageTitle)
		}
		fields++
	}

	if out.Role == "" {
		if h1 := cleanText(doc.Find("h1").First().Text()); h1 != "" {
			out.Role = h1
			fields++
		}
	}

	if out.Company == "" {
		if company := trySelectors(doc, companySelectors); company != "" {
			out.Company = cleanText(company)
			fields++
		}
	}

	if location := trySelectors(doc, locationSelectors); location != "" {
		out.Location = cleanText(location)
		fields++
	}

	if fields > 0 {
		out.Confidence = ConfidenceHeuristic
	}
	return out
}

func trySelectors(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if t := strings.TrimSpace(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}
