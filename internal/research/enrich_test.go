package research

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher serves canned page text per URL and errors for anything else.
type stubFetcher struct {
	pages   map[string]string
	fetched []string
}

func (s *stubFetcher) Fetch(_ context.Context, urlStr string) (*CachedResult, error) {
	s.fetched = append(s.fetched, urlStr)
	text, ok := s.pages[urlStr]
	if !ok {
		return nil, &FetchError{URL: urlStr, Message: "HTTP status 404"}
	}
	return &CachedResult{FetchResult: &FetchResult{URL: urlStr, Text: text, StatusCode: 200}}, nil
}

func TestEnrichCitations_BackfillsEmptyText(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{
		"https://news.example.com/acme-audit": "Acme Foods fails FDA audit\nThe Columbus plant received a warning letter.",
	}}

	src := RawSources{
		Citations: []CitationRecord{
			{URL: "https://news.example.com/acme-audit"},
		},
	}

	out := EnrichCitations(context.Background(), fetcher, src)

	require.Len(t, out.Citations, 1)
	assert.Equal(t, "https://news.example.com/acme-audit", out.Citations[0].URL)
	assert.Contains(t, out.Citations[0].Text, "Acme Foods fails FDA audit")
	assert.NotContains(t, out.Citations[0].Text, "\n")
}

func TestEnrichCitations_KeepsExistingText(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{
		"https://news.example.com/acme-audit": "Completely different page text",
	}}

	src := RawSources{
		Citations: []CitationRecord{
			{Text: "Acme Foods failed an FDA audit", URL: "https://news.example.com/acme-audit"},
		},
	}

	out := EnrichCitations(context.Background(), fetcher, src)

	assert.Equal(t, "Acme Foods failed an FDA audit", out.Citations[0].Text)
	assert.Equal(t, "https://news.example.com/acme-audit", out.Citations[0].URL)
}

func TestEnrichCitations_ClearsURLOnFetchFailure(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{}}

	src := RawSources{
		Citations: []CitationRecord{
			{Text: "Acme Foods failed an FDA audit", URL: "https://gone.example.com/404"},
		},
	}

	out := EnrichCitations(context.Background(), fetcher, src)

	assert.Empty(t, out.Citations[0].URL)
	assert.Equal(t, "Acme Foods failed an FDA audit", out.Citations[0].Text)
}

func TestEnrichCitations_SkipsRecordsWithoutURL(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{}}

	src := RawSources{
		Citations: []CitationRecord{
			{Text: "No URL on this record"},
		},
	}

	out := EnrichCitations(context.Background(), fetcher, src)

	assert.Empty(t, fetcher.fetched)
	assert.Equal(t, src.Citations, out.Citations)
}

func TestEnrichCitations_DoesNotMutateInput(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{}}

	src := RawSources{
		Citations: []CitationRecord{
			{Text: "Acme Foods failed an FDA audit", URL: "https://gone.example.com/404"},
		},
	}

	out := EnrichCitations(context.Background(), fetcher, src)

	assert.Equal(t, "https://gone.example.com/404", src.Citations[0].URL)
	assert.Empty(t, out.Citations[0].URL)
}

func TestEnrichCitations_NilFetcherPassesThrough(t *testing.T) {
	src := RawSources{
		Citations: []CitationRecord{
			{Text: "Acme Foods failed an FDA audit", URL: "https://news.example.com/acme-audit"},
		},
	}

	out := EnrichCitations(context.Background(), nil, src)

	assert.Equal(t, src, out)
}

func TestSnippet_TrimsOnWordBoundary(t *testing.T) {
	long := strings.Repeat("regulatory ", 40)

	got := snippet(long)

	assert.LessOrEqual(t, len(got), maxSnippetLen)
	assert.False(t, strings.HasSuffix(got, " "))
	assert.True(t, strings.HasSuffix(got, "regulatory"))
}
