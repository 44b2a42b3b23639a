package event

import (
	"sort"
	"strings"
	"time"
)

// DefaultDuration is applied when a source provides a start time but no end.
const DefaultDuration = 2 * time.Hour

// Event represents a single show occurrence discovered on a venue page.
type Event struct {
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	SourceURL   string    `json:"source_url,omitempty"`
	Description string    `json:"description,omitempty"`
}

// New creates an Event ending duration after start. A non-positive duration
// falls back to DefaultDuration.
func New(title string, start time.Time, duration time.Duration, sourceURL, description string) *Event {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Event{
		Title:       strings.TrimSpace(title),
		Start:       start,
		End:         start.Add(duration),
		SourceURL:   sourceURL,
		Description: description,
	}
}

// SortByStart orders events by start time ascending, in place.
func SortByStart(events []*Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
}
