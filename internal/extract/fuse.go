package extract

import "apptrack-engine/internal/domain"

// Warnings attached when a field survives fusion empty.
const (
	WarnNoRole     = "Job title not detected"
	WarnNoCompany  = "Company name not detected"
	WarnNoLocation = "Location not detected"
)

// fuse merges the three strategy results into one record. The base strategy
// is the highest-confidence one, ties broken JSON-LD > OpenGraph > HTML via
// >= comparisons; downstream consumers depend on that exact order. Missing
// fields are backfilled JSON-LD first, then OpenGraph, then HTML, regardless
// of which was the base. Confidence stays the base strategy's tier and is not
// recomputed after backfill: it reports the best single source, not a blend.
func fuse(sourceURL string, jsonld, og, html strategyResult) domain.JobRecord {
	var base strategyResult
	switch {
	case jsonld.Confidence >= og.Confidence && jsonld.Confidence >= html.Confidence:
		base = jsonld
	case og.Confidence >= html.Confidence:
		base = og
	default:
		base = html
	}

	rec := domain.JobRecord{
		SourceURL:   sourceURL,
		Role:        base.Role,
		Company:     base.Company,
		Location:    base.Location,
		Description: base.Description,
		Confidence:  base.Confidence,
	}

	ordered := []strategyResult{jsonld, og, html}
	rec.Role = backfill(rec.Role, ordered, func(r strategyResult) string { return r.Role })
	rec.Company = backfill(rec.Company, ordered, func(r strategyResult) string { return r.Company })
	rec.Location = backfill(rec.Location, ordered, func(r strategyResult) string { return r.Location })
	rec.Description = backfill(rec.Description, ordered, func(r strategyResult) string { return r.Description })

	if rec.Company == "" {
		rec.AddWarning(WarnNoCompany)
	}
	if rec.Role == "" {
		rec.AddWarning(WarnNoRole)
	}
	if rec.Location == "" {
		rec.AddWarning(WarnNoLocation)
	}

	return rec
}

func backfill(current string, ordered []strategyResult, field func(strategyResult) string) string {
	if current != "" {
		return current
	}
	for _, r := range ordered {
		if v := field(r); v != "" {
			return v
		}
	}
	return ""
}
