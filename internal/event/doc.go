// Package event provides the event record type and date handling for venue feeds.
//
// The event package defines the Event record emitted into calendar feeds, the
// normalizer that resolves loosely-formatted date strings into timezone-aware
// times, the recency cutoff used to drop stale events, and the placeholder
// entry synthesized when a run discovers nothing.
package event
