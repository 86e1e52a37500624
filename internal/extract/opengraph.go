package extract

import "github.com/PuerkitoBio/goquery"

// extractOpenGraph reads og:* (and twitter:*) summary tags. Description alone
// is not enough to claim the tier; at least role or company must land.
func extractOpenGraph(doc *goquery.Document) strategyResult {
	var out strategyResult
	fields := 0

	if title := metaContent(doc, "og:title"); title != "" {
		out.Role = cleanText(title)
		fields++
	}
	if siteName := metaContent(doc, "og:site_name"); siteName != "" {
		out.Company = cleanText(siteName)
		fields++
	}
	if desc := metaContent(doc, "og:description"); desc != "" {
		out.Description = truncate(desc, maxDescriptionLen)
	}

	// twitter:title only backstops a missing og:title
	if out.Role == "" {
		if title := metaContent(doc, "twitter:title"); title != "" {
			out.Role = cleanText(title)
			fields++
		}
	}

	if fields > 0 {
		out.Confidence = ConfidenceOpenGraph
	}
	return out
}

// metaContent looks a meta tag up by property= first, then name=; pages are
// inconsistent about which attribute carries og/twitter keys.
func metaContent(doc *goquery.Document, property string) string {
	sel := doc.Find(`meta[property="` + property + `"]`).First()
	if sel.Length() == 0 {
		sel = doc.Find(`meta[name="` + property + `"]`).First()
	}
	content, _ := sel.Attr("content")
	return content
}
