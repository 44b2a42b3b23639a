package event

import "time"

// PlaceholderTitle names the synthetic entry emitted when a run finds no
// events, so subscribers can verify the feed is still live.
const PlaceholderTitle = "Feed Connected - awaiting events"

const placeholderDescription = "No upcoming events yet."

// Placeholder synthesizes the keep-alive entry: tomorrow at 09:00 in loc,
// one hour long, pointing back at the scraped page.
func Placeholder(now time.Time, loc *time.Location, sourceURL string) *Event {
	tomorrow := now.In(loc).AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 9, 0, 0, 0, loc)
	return New(PlaceholderTitle, start, time.Hour, sourceURL, placeholderDescription)
}
