package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cnyfeeds/venue-ics/internal/event"
)

// Calendar carries the feed-level metadata wrapped around the event blocks.
type Calendar struct {
	Name     string // X-WR-CALNAME display name
	ProdID   string // PRODID producer identifier
	Timezone string // X-WR-TIMEZONE display timezone label
	UIDHost  string // host suffix appended to generated UIDs
}

// Encode serializes events into an iCalendar document. Events are sorted by
// start time ascending; every VEVENT receives a freshly generated UID and a
// DTSTAMP equal to now (the serialization instant, not the event's time).
// All timestamps are written as UTC in compact basic format.
func (c Calendar) Encode(events []*event.Event, now time.Time) string {
	sorted := make([]*event.Event, len(events))
	copy(sorted, events)
	event.SortByStart(sorted)

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:" + c.ProdID)
	line("CALSCALE:GREGORIAN")
	line("METHOD:PUBLISH")
	line("X-WR-CALNAME:" + c.Name)
	line("X-WR-TIMEZONE:" + c.Timezone)

	stamp := formatUTC(now)
	for _, evt := range sorted {
		line("BEGIN:VEVENT")
		line(fmt.Sprintf("UID:%s@%s", uuid.NewString(), c.UIDHost))
		line("DTSTAMP:" + stamp)
		line("DTSTART:" + formatUTC(evt.Start))
		line("DTEND:" + formatUTC(evt.End))
		line("SUMMARY:" + Escape(evt.Title))
		if evt.SourceURL != "" {
			line("URL:" + Escape(evt.SourceURL))
		}
		if evt.Description != "" {
			line("DESCRIPTION:" + Escape(evt.Description))
		}
		line("END:VEVENT")
	}
	line("END:VCALENDAR")

	return b.String()
}

// formatUTC renders a time as an iCalendar UTC datetime, e.g. 20251120T003000Z.
func formatUTC(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// Escape applies RFC 5545 text escaping: backslash, semicolon, and comma
// are backslash-escaped and newlines become the literal \n sequence.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// Unescape reverses Escape, recovering the original text of a field.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
