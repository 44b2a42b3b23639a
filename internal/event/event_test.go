package event

import (
	"testing"
	"time"
)

func TestNewDefaultsEnd(t *testing.T) {
	start := time.Date(2025, time.November, 20, 19, 30, 0, 0, time.UTC)

	evt := New("  Sample Show  ", start, 0, "https://example.com/show", "")
	if evt.Title != "Sample Show" {
		t.Errorf("title = %q, want trimmed %q", evt.Title, "Sample Show")
	}
	if want := start.Add(DefaultDuration); !evt.End.Equal(want) {
		t.Errorf("end = %v, want %v", evt.End, want)
	}

	evt = New("Sample Show", start, time.Hour, "", "")
	if want := start.Add(time.Hour); !evt.End.Equal(want) {
		t.Errorf("end = %v, want %v", evt.End, want)
	}
}

func TestSortByStart(t *testing.T) {
	base := time.Date(2025, time.November, 1, 19, 0, 0, 0, time.UTC)
	events := []*Event{
		New("third", base.Add(48*time.Hour), 0, "", ""),
		New("first", base, 0, "", ""),
		New("second", base.Add(24*time.Hour), 0, "", ""),
	}

	SortByStart(events)

	want := []string{"first", "second", "third"}
	for i, title := range want {
		if events[i].Title != title {
			t.Errorf("events[%d].Title = %q, want %q", i, events[i].Title, title)
		}
	}
}

func TestFilterRecent(t *testing.T) {
	now := time.Date(2025, time.November, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		kept  bool
	}{
		{"36 hours past", now.Add(-36 * time.Hour), false},
		{"12 hours past", now.Add(-12 * time.Hour), true},
		{"exactly at cutoff", now.Add(-RecencyWindow), true},
		{"future", now.Add(72 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := New("show", tt.start, 0, "", "")
			if got := evt.IsRecent(now); got != tt.kept {
				t.Errorf("IsRecent = %v, want %v", got, tt.kept)
			}
			kept := FilterRecent([]*Event{evt}, now)
			if (len(kept) == 1) != tt.kept {
				t.Errorf("FilterRecent kept %d events, want kept=%v", len(kept), tt.kept)
			}
		})
	}
}

func TestPlaceholder(t *testing.T) {
	loc := nyLocation(t)
	now := time.Date(2025, time.November, 10, 22, 30, 0, 0, time.UTC)

	evt := Placeholder(now, loc, "https://example.com/events")

	local := now.In(loc).AddDate(0, 0, 1)
	want := time.Date(local.Year(), local.Month(), local.Day(), 9, 0, 0, 0, loc)
	if !evt.Start.Equal(want) {
		t.Errorf("start = %v, want tomorrow 09:00 local (%v)", evt.Start, want)
	}
	if got := evt.End.Sub(evt.Start); got != time.Hour {
		t.Errorf("duration = %v, want 1h", got)
	}
	if evt.Title != PlaceholderTitle {
		t.Errorf("title = %q, want %q", evt.Title, PlaceholderTitle)
	}
	if evt.SourceURL != "https://example.com/events" {
		t.Errorf("source URL = %q", evt.SourceURL)
	}
	if evt.Description == "" {
		t.Error("placeholder should carry a description")
	}
}
