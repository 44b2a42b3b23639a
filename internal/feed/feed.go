package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/cnyfeeds/venue-ics/internal/event"
	"github.com/cnyfeeds/venue-ics/internal/ics"
	"github.com/cnyfeeds/venue-ics/internal/logger"
	"github.com/cnyfeeds/venue-ics/internal/scraper"
	"github.com/cnyfeeds/venue-ics/internal/site"
)

// ErrNoEvents is returned when a strict site yields nothing; such runs fail
// instead of emitting the placeholder event.
var ErrNoEvents = errors.New("no events parsed")

// Builder runs the scrape pipeline for one site profile:
// fetch listing, collect detail links, fetch and extract each detail page,
// filter by recency, and serialize the calendar. Everything is sequential
// and stateless; a Builder owns the only accumulating collection.
type Builder struct {
	site    site.Site
	fetcher *scraper.Fetcher
	loc     *time.Location
	now     func() time.Time
}

// New creates a Builder for the given site profile.
func New(s site.Site) (*Builder, error) {
	loc, err := s.Location()
	if err != nil {
		return nil, fmt.Errorf("loading site timezone: %w", err)
	}
	return &Builder{
		site:    s,
		fetcher: scraper.NewFetcher(s.Headers),
		loc:     loc,
		now:     time.Now,
	}, nil
}

// Result is the outcome of one feed build.
type Result struct {
	Events      []*event.Event
	Calendar    string
	Placeholder bool
}

// Build fetches listingURL (the site default when empty), extracts events,
// applies the recency cutoff, and serializes the calendar document.
// A listing fetch failure is fatal to the run; per-detail-page failures are
// logged and skipped.
func (b *Builder) Build(ctx context.Context, listingURL string) (*Result, error) {
	if listingURL == "" {
		listingURL = b.site.ListingURL
	}
	now := b.now()

	raw, err := b.fetcher.Fetch(ctx, listingURL)
	if err != nil {
		return nil, fmt.Errorf("fetching listing page: %w", err)
	}

	candidates, err := b.collect(ctx, raw, listingURL, now)
	if err != nil {
		return nil, err
	}

	events := event.FilterRecent(b.toEvents(candidates), now)
	logger.Info("extraction complete", logger.Fields{
		"site":       b.site.Key,
		"candidates": len(candidates),
		"recent":     len(events),
	})

	placeholder := false
	if len(events) == 0 {
		if b.site.Strict {
			return nil, ErrNoEvents
		}
		logger.Warn("no events found; emitting placeholder", logger.Fields{"site": b.site.Key})
		events = []*event.Event{event.Placeholder(now, b.loc, listingURL)}
		placeholder = true
	}

	cal := ics.Calendar{
		Name:     b.site.CalendarName,
		ProdID:   b.site.ProducerID,
		Timezone: b.site.TimezoneName,
		UIDHost:  b.site.UIDHost,
	}
	return &Result{
		Events:      events,
		Calendar:    cal.Encode(events, now),
		Placeholder: placeholder,
	}, nil
}

// collect gathers candidates according to the site's extraction mode.
func (b *Builder) collect(ctx context.Context, raw, listingURL string, now time.Time) ([]scraper.Candidate, error) {
	switch b.site.Mode {
	case site.ModeSchedule:
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing listing page: %w", err)
		}
		return scraper.FromListing(doc, listingURL, b.loc, now), nil

	case site.ModeDirect:
		return scraper.ExtractPage(raw, listingURL, b.loc, now)
	}

	// ModeFollow: walk the detail pages found on the listing.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing listing page: %w", err)
	}
	links := scraper.CollectLinks(doc, raw, listingURL, b.site.DetailLinkRE)
	if len(links) == 0 {
		// The listing page's own structured data is the only source left.
		logger.Info("no detail links found; extracting from listing page", logger.Fields{
			"site": b.site.Key,
		})
		return scraper.ExtractPage(raw, listingURL, b.loc, now)
	}
	logger.Debug("collected detail links", logger.Fields{
		"site":  b.site.Key,
		"count": len(links),
	})

	var all []scraper.Candidate
	for _, link := range links {
		page, err := b.fetcher.Fetch(ctx, link)
		if err != nil {
			logger.Error("detail page fetch failed; skipping", logger.Fields{"url": link}, err)
			continue
		}
		cands, err := scraper.ExtractPage(page, link, b.loc, now)
		if err != nil {
			logger.Error("detail page parse failed; skipping", logger.Fields{"url": link}, err)
			continue
		}
		if len(cands) == 0 {
			logger.Info("no date found on detail page", logger.Fields{"url": link})
			continue
		}
		all = append(all, cands...)
	}
	return all, nil
}

// toEvents converts candidates into event records, applying the site's
// title prefix and default duration.
func (b *Builder) toEvents(cands []scraper.Candidate) []*event.Event {
	events := make([]*event.Event, 0, len(cands))
	for _, c := range cands {
		events = append(events, event.New(
			b.site.TitlePrefix+c.Title, c.Start, b.site.EventDuration, c.URL, c.Description))
	}
	return events
}
