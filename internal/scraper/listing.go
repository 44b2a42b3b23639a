package scraper

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/cnyfeeds/venue-ics/internal/event"
)

// dateHeaderRE matches a day header line such as "Sat, Oct 25" or
// "Saturday, October 25".
var dateHeaderRE = regexp.MustCompile(`^(?:Mon|Tue|Wed|Thu|Fri|Sat|Sun)[a-z]*,\s+([A-Za-z]{3,9}\.?)\s+(\d{1,2})$`)

// timeLineRE matches a bare 12-hour show time line such as "7:30 PM" or "7pm".
var timeLineRE = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*([APap][mM])$`)

// FromListing parses a listing page whose schedule is laid out as visible
// text: a weekday/month/day header opens each day section, a bare 12-hour
// time line announces a show, and the next non-time line is the show title.
// An anchor with identical text supplies the show URL.
//
// Headers carry no year. Months are assumed chronologically non-decreasing,
// so a month lower than its predecessor rolls the year forward.
func FromListing(doc *goquery.Document, baseURL string, loc *time.Location, now time.Time) []Candidate {
	lines := strippedStrings(doc)

	type header struct {
		idx   int
		month time.Month
		day   int
	}
	var headers []header
	for i, line := range lines {
		m := dateHeaderRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		month, ok := monthByName(m[1])
		if !ok {
			continue
		}
		day, _ := strconv.Atoi(m[2])
		headers = append(headers, header{idx: i, month: month, day: day})
	}
	if len(headers) == 0 {
		return nil
	}

	years := make([]int, len(headers))
	year := now.In(loc).Year()
	for i, h := range headers {
		if i > 0 && h.month < headers[i-1].month {
			year++
		}
		years[i] = year
	}

	var out []Candidate
	for i, h := range headers {
		end := len(lines)
		if i+1 < len(headers) {
			end = headers[i+1].idx
		}

		var pending time.Time
		for j := h.idx + 1; j < end; j++ {
			line := lines[j]
			if m := timeLineRE.FindStringSubmatch(line); m != nil {
				hour, _ := strconv.Atoi(m[1])
				minute := 0
				if m[2] != "" {
					minute, _ = strconv.Atoi(m[2])
				}
				hour = event.Clock24(hour, m[3])
				pending = time.Date(years[i], h.month, h.day, hour, minute, 0, 0, loc)
				continue
			}
			if !pending.IsZero() {
				out = append(out, Candidate{
					Title: line,
					Start: pending,
					URL:   anchorFor(doc, line, baseURL),
				})
				pending = time.Time{}
			}
		}
	}
	return out
}

// strippedStrings returns every non-empty trimmed text node in document
// order, skipping script and style content.
func strippedStrings(doc *goquery.Document) []string {
	var out []string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				out = append(out, s)
			}
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for _, n := range doc.Nodes {
		visit(n)
	}
	return out
}

// anchorFor finds an anchor whose text equals the show title and resolves
// its href against the page URL. Returns "" when no anchor matches.
func anchorFor(doc *goquery.Document, title, baseURL string) string {
	var href string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.TrimSpace(sel.Text()) != title {
			return true
		}
		href = sel.AttrOr("href", "")
		return false
	})
	if href == "" {
		return ""
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
