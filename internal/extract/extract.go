package extract

import (
	"context"
	"errors"

	"apptrack-engine/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Warnings for the failure paths that short-circuit extraction.
const (
	WarnUnsafeURL = "Invalid or unsafe URL"
	WarnFetchFail = "Could not fetch the page. Site may block automated access or require login."
	WarnParseFail = "Failed to parse page"
)

// FromURL runs the whole webpage pipeline: guard, fetch, three strategies,
// fusion. It never returns an error; every failure degrades to a record
// carrying the source URL and a warning.
func (c *Client) FromURL(ctx context.Context, url string) domain.JobRecord {
	if !IsSafeURL(url) {
		rec := domain.JobRecord{SourceURL: url}
		rec.AddWarning(WarnUnsafeURL)
		return rec
	}

	doc, err := c.fetchDocument(ctx, url)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("import fetch failed")
		rec := domain.JobRecord{SourceURL: url}
		if errors.Is(err, errParsePage) {
			rec.AddWarning(WarnParseFail)
		} else {
			rec.AddWarning(WarnFetchFail)
		}
		return rec
	}

	jsonld, og, html := runStrategies(doc)
	return fuse(url, jsonld, og, html)
}

// runStrategies fans the three extractors out over the same parsed document.
// Each is isolated: a panic in one becomes an empty tier-0 result and the
// others still run.
func runStrategies(doc *goquery.Document) (jsonld, og, html strategyResult) {
	var g errgroup.Group

	run := func(dst *strategyResult, name string, fn func(*goquery.Document) strategyResult) {
		g.Go(func() error {
			defer func() {
				if rec := recover(); rec != nil {
					log.Warn().Str("strategy", name).Interface("panic", rec).Msg("extractor panicked")
					*dst = strategyResult{}
				}
			}()
			*dst = fn(doc)
			return nil
		})
	}

	run(&jsonld, "jsonld", extractJSONLD)
	run(&og, "opengraph", extractOpenGraph)
	run(&html, "heuristic", extractHeuristic)

	_ = g.Wait()
	return jsonld, og, html
}
