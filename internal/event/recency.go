package event

import "time"

// RecencyWindow is how far into the past an event may start and still be
// included in the output feed.
const RecencyWindow = 24 * time.Hour

// IsRecent reports whether the event starts after the rolling cutoff
// (RecencyWindow before now). Both sides of the comparison are resolved
// instants, so the zone the start was parsed in does not matter here.
func (e *Event) IsRecent(now time.Time) bool {
	cutoff := now.Add(-RecencyWindow)
	return !e.Start.Before(cutoff)
}

// FilterRecent returns the events that pass the recency cutoff.
func FilterRecent(events []*Event, now time.Time) []*Event {
	kept := make([]*Event, 0, len(events))
	for _, e := range events {
		if e.IsRecent(now) {
			kept = append(kept, e)
		}
	}
	return kept
}
