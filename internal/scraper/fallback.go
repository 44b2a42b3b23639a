package scraper

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/cnyfeeds/venue-ics/internal/event"
)

// FallbackTitle is used when a page exposes no heading, Open Graph title,
// or title tag.
const FallbackTitle = "Venue Event"

// genericStartRE sniffs a quoted startDate key/value pair anywhere in the
// raw document, the last resort before visible-text scanning.
var genericStartRE = regexp.MustCompile(`"startDate"\s*:\s*["']([^"']+)["']`)

// monthNames recognizes full and abbreviated month names, with or without a
// trailing period.
const monthNames = `(January|February|March|April|May|June|July|August|September|October|November|December|` +
	`Jan\.?|Feb\.?|Mar\.?|Apr\.?|May|Jun\.?|Jul\.?|Aug\.?|Sep\.?|Sept\.?|Oct\.?|Nov\.?|Dec\.?)`

// dateTextRE matches visible-text date patterns such as
// "Oct 24, 2025 | 7:00 PM", "Oct 24 • 7:00 PM", and "October 24 at 7:00 PM".
var dateTextRE = regexp.MustCompile(
	`\b` + monthNames + `\s+(\d{1,2})(?:,\s*(\d{4}))?(?:\s*(?:[•@\-–|])\s*|\s+at\s+)(\d{1,2})(?::(\d{2}))?\s*([AaPp][Mm])\b`)

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// monthByName resolves a month name as it appears in page text.
func monthByName(name string) (time.Month, bool) {
	m, ok := monthsByName[strings.ToLower(strings.TrimSuffix(name, "."))]
	return m, ok
}

// FromText extracts candidates from a page with no usable structured data.
// Stages run in strict fallback order, and the first stage yielding at
// least one date short-circuits the rest:
//
//  1. attribute-embedded explicit values (itemprop, <time datetime>, meta)
//  2. a quoted startDate pair anywhere in the raw text
//  3. visible text matching month-name + day [+ year] + time-of-day
//
// Every candidate shares the page-level title; the orchestrator supplies
// the page URL.
func FromText(doc *goquery.Document, raw string, loc *time.Location, now time.Time) []Candidate {
	dates := attributeDates(doc, loc)
	if len(dates) == 0 {
		dates = rawStartDates(raw, loc)
	}
	if len(dates) == 0 {
		dates = visibleTextDates(visibleText(doc), loc, now)
	}
	if len(dates) == 0 {
		return nil
	}

	title := PageTitle(doc)
	out := make([]Candidate, 0, len(dates))
	for _, d := range dates {
		out = append(out, Candidate{Title: title, Start: d})
	}
	return dedupe(out)
}

// attributeDates reads explicit machine-readable date values: microdata
// startDate itemprops, datetime attributes on time elements, and
// event:start_time meta tags.
func attributeDates(doc *goquery.Document, loc *time.Location) []time.Time {
	var out []time.Time
	add := func(raw string) {
		if t, ok := event.ParseWhen(raw, loc); ok {
			out = append(out, t)
		}
	}

	doc.Find(`[itemprop="startDate"]`).Each(func(_ int, sel *goquery.Selection) {
		if v, ok := sel.Attr("datetime"); ok && v != "" {
			add(v)
			return
		}
		if v, ok := sel.Attr("content"); ok && v != "" {
			add(v)
		}
	})
	doc.Find("time[datetime]").Each(func(_ int, sel *goquery.Selection) {
		if v, ok := sel.Attr("datetime"); ok && v != "" {
			add(v)
		}
	})
	doc.Find(`meta[property="event:start_time"]`).Each(func(_ int, sel *goquery.Selection) {
		if v, ok := sel.Attr("content"); ok && v != "" {
			add(v)
		}
	})
	return out
}

// rawStartDates scans the raw document text for quoted startDate values,
// catching structured data the block parser could not decode.
func rawStartDates(raw string, loc *time.Location) []time.Time {
	var out []time.Time
	for _, m := range genericStartRE.FindAllStringSubmatch(raw, -1) {
		if t, ok := event.ParseWhen(m[1], loc); ok {
			out = append(out, t)
		}
	}
	return out
}

// visibleTextDates matches free-text date patterns. A missing year means
// the current year.
func visibleTextDates(text string, loc *time.Location, now time.Time) []time.Time {
	var out []time.Time
	for _, m := range dateTextRE.FindAllStringSubmatch(text, -1) {
		month, ok := monthByName(m[1])
		if !ok {
			continue
		}
		day, _ := strconv.Atoi(m[2])
		year := now.In(loc).Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		hour, _ := strconv.Atoi(m[4])
		minute := 0
		if m[5] != "" {
			minute, _ = strconv.Atoi(m[5])
		}
		hour = event.Clock24(hour, m[6])
		out = append(out, time.Date(year, month, day, hour, minute, 0, 0, loc))
	}
	return out
}

// visibleText returns the rendered text of the page body, falling back to
// the whole document for fragments without one.
func visibleText(doc *goquery.Document) string {
	if body := doc.Find("body"); body.Length() > 0 {
		return body.Text()
	}
	return doc.Text()
}

// PageTitle resolves a display title for a page: the primary heading, else
// the Open Graph title, else the document title with any trailing "| site
// name" suffix stripped, else FallbackTitle.
func PageTitle(doc *goquery.Document) string {
	if h := strings.TrimSpace(doc.Find("h1").First().Text()); h != "" {
		return h
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			return og
		}
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		if i := strings.LastIndex(t, "|"); i > 0 {
			t = strings.TrimSpace(t[:i])
		}
		if t != "" {
			return t
		}
	}
	return FallbackTitle
}
