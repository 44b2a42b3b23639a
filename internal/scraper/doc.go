// Package scraper provides HTTP fetching and HTML extraction for venue event pages.
//
// The scraper package fetches venue pages with browser-like headers and
// extracts event candidates through an ordered cascade: embedded JSON-LD
// structured data first, then attribute-embedded date values, a raw
// startDate scan, and finally visible-text date patterns. It also discovers
// event detail links on listing pages and parses visible-text show
// schedules. Each strategy short-circuits the ones after it; results from
// different strategies are never merged.
package scraper
