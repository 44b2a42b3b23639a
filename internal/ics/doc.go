// Package ics serializes event records into iCalendar (RFC 5545) documents.
package ics
