// Package research - enrich.go resolves citation URLs before extraction:
// pages are fetched once, their main text backfills citations that arrived
// without usable text, and citations whose pages cannot be fetched lose
// their URL so the extractor no longer treats them as citable.
package research

import (
	"context"
	"strings"
)

// Fetcher retrieves citation pages. *CachedFetcher satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, urlStr string) (*CachedResult, error)
}

// maxSnippetLen bounds the citation text backfilled from a fetched page.
const maxSnippetLen = 280

// EnrichCitations returns a copy of src with every citation URL resolved
// through f. Citations without a URL, and all non-citation collections, pass
// through untouched. Enrichment is best-effort: a failed fetch demotes the
// citation rather than failing the run.
func EnrichCitations(ctx context.Context, f Fetcher, src RawSources) RawSources {
	if f == nil || len(src.Citations) == 0 {
		return src
	}

	enriched := make([]CitationRecord, len(src.Citations))
	copy(enriched, src.Citations)

	for i := range enriched {
		if enriched[i].URL == "" {
			continue
		}
		result, err := f.Fetch(ctx, enriched[i].URL)
		if err != nil {
			// Unreachable page: the URL can no longer back the claim.
			enriched[i].URL = ""
			continue
		}
		if strings.TrimSpace(enriched[i].Text) == "" {
			enriched[i].Text = snippet(result.Text)
		}
	}

	src.Citations = enriched
	return src
}

// snippet trims page text to a claim-sized excerpt on a word boundary
func snippet(text string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if len(text) <= maxSnippetLen {
		return text
	}
	cut := text[:maxSnippetLen]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut
}
