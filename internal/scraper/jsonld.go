package scraper

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/cnyfeeds/venue-ics/internal/event"
	"github.com/cnyfeeds/venue-ics/internal/logger"
)

// Candidate keys tried in order when reading an event node. The first
// present (and usable) key wins.
var (
	titleKeys = []string{"name", "headline"}
	startKeys = []string{"startDate", "startTime", "start"}
	urlKeys   = []string{"url", "mainEntityOfPage"}
)

// concatObjectsRE finds the seam between back-to-back JSON objects that some
// sites emit inside a single ld+json script tag.
var concatObjectsRE = regexp.MustCompile(`}\s*{`)

// FromJSONLD extracts event candidates from every structured-data block in
// the document. Matching nodes are any whose @type tag contains the literal
// substring "Event"; the match is deliberately loose so schema.org subtypes
// (MusicEvent, TheaterEvent, ...) are not dropped. Results are deduplicated
// by (title, start, url).
func FromJSONLD(doc *goquery.Document, loc *time.Location) []Candidate {
	var out []Candidate
	for _, block := range jsonBlocks(doc) {
		walk(block, func(node map[string]any) {
			if !isEventNode(node) {
				return
			}
			if c, ok := candidateFromNode(node, loc); ok {
				out = append(out, c)
			}
		})
	}
	return dedupe(out)
}

// jsonBlocks decodes each ld+json script tag in the document. A block that
// fails to decode gets one repair attempt (splicing concatenated objects
// into an array) and is otherwise skipped; one bad block never discards the
// rest of the document's blocks.
func jsonBlocks(doc *goquery.Document) []any {
	var blocks []any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		text := strings.Trim(strings.TrimSpace(sel.Text()), ";")
		if text == "" {
			return
		}
		var block any
		if err := json.Unmarshal([]byte(text), &block); err == nil {
			blocks = append(blocks, block)
			return
		}
		repaired := "[" + concatObjectsRE.ReplaceAllString(text, "},{") + "]"
		if err := json.Unmarshal([]byte(repaired), &block); err == nil {
			blocks = append(blocks, block)
			return
		}
		logger.Debug("skipping malformed structured-data block", logger.Fields{
			"bytes": len(text),
		})
	})
	return blocks
}

// walk performs a depth-first traversal over a decoded JSON graph, invoking
// fn on every object node: objects recurse into all values, arrays into all
// elements.
func walk(node any, fn func(map[string]any)) {
	switch n := node.(type) {
	case map[string]any:
		fn(n)
		for _, v := range n {
			walk(v, fn)
		}
	case []any:
		for _, v := range n {
			walk(v, fn)
		}
	}
}

// isEventNode tests the node's @type tag, which may be a string or a list
// of strings, for the "Event" marker.
func isEventNode(node map[string]any) bool {
	switch t := node["@type"].(type) {
	case string:
		return strings.Contains(t, "Event")
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && strings.Contains(s, "Event") {
				return true
			}
		}
	}
	return false
}

// candidateFromNode pulls title, start, url, and description out of one
// matched event node. Nodes missing a title or a parseable start are
// dropped.
func candidateFromNode(node map[string]any, loc *time.Location) (Candidate, bool) {
	var c Candidate

	for _, key := range titleKeys {
		if s, ok := node[key].(string); ok && strings.TrimSpace(s) != "" {
			c.Title = strings.TrimSpace(s)
			break
		}
	}

	for _, key := range startKeys {
		raw, ok := node[key].(string)
		if !ok || raw == "" {
			continue
		}
		c.Start, _ = event.ParseWhen(raw, loc)
		break
	}

	if c.Title == "" || c.Start.IsZero() {
		return Candidate{}, false
	}

	for _, key := range urlKeys {
		switch v := node[key].(type) {
		case string:
			if strings.HasPrefix(v, "http") {
				c.URL = v
			}
		case map[string]any:
			// Canonical URL hidden behind an object's identifier field.
			if id, ok := v["@id"].(string); ok && strings.HasPrefix(id, "http") {
				c.URL = id
			}
		}
		if c.URL != "" {
			break
		}
	}

	if d, ok := node["description"].(string); ok {
		c.Description = d
	}

	return c, true
}
