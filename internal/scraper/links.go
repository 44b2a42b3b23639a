package scraper

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CollectLinks discovers event detail URLs referenced by a listing page.
// Anchor hrefs are checked first, with relative hrefs resolved against
// baseURL; the raw document text is then scanned for the same pattern to
// catch links embedded in script blocks rather than anchors. Matches are
// normalized and deduplicated; the result is sorted for a stable fetch
// order.
func CollectLinks(doc *goquery.Document, raw, baseURL string, pattern *regexp.Regexp) []string {
	if pattern == nil {
		return nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	seen := make(map[string]bool)
	add := func(link string) {
		if link = normalizeLink(link); link != "" {
			seen[link] = true
		}
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" {
			return
		}
		if base != nil {
			if ref, err := url.Parse(href); err == nil {
				href = base.ResolveReference(ref).String()
			}
		}
		if m := pattern.FindString(href); m != "" {
			add(m)
		}
	})

	for _, m := range pattern.FindAllString(raw, -1) {
		add(m)
	}

	links := make([]string, 0, len(seen))
	for link := range seen {
		links = append(links, link)
	}
	sort.Strings(links)
	return links
}

// normalizeLink strips query parameters and fragments and ensures exactly
// one trailing slash so the same page never appears twice.
func normalizeLink(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/") + "/"
}
