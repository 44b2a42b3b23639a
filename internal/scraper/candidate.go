package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Candidate is one (title, start, url, description) tuple produced by an
// extraction strategy before it becomes a calendar event.
type Candidate struct {
	Title       string
	Start       time.Time
	URL         string
	Description string
}

// ExtractPage runs the full cascade against one page: structured data first,
// then the text fallback, only if structured data yielded nothing. The two
// strategies are never merged, so a site's structured feed is never mixed
// with noisy text matches. Candidates without a URL of their own inherit the
// page URL.
func ExtractPage(raw, pageURL string, loc *time.Location, now time.Time) ([]Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	cands := FromJSONLD(doc, loc)
	if len(cands) == 0 {
		cands = FromText(doc, raw, loc, now)
	}
	for i := range cands {
		if cands[i].URL == "" {
			cands[i].URL = pageURL
		}
	}
	return cands, nil
}

// dedupe collapses candidates sharing title, start instant, and URL.
// Unrelated fields (description) do not distinguish candidates.
func dedupe(in []Candidate) []Candidate {
	type key struct {
		title string
		start string
		url   string
	}
	seen := make(map[key]bool, len(in))
	out := make([]Candidate, 0, len(in))
	for _, c := range in {
		k := key{c.Title, c.Start.UTC().Format(time.RFC3339), c.URL}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}
