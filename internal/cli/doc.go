// Package cli implements the command-line interface for venue-ics.
//
// The cli package provides the Cobra-based CLI that selects a site profile,
// applies URL/output/name overrides, runs the feed builder, and writes the
// resulting calendar file. A strict site that parses zero events makes the
// run exit non-zero with a message on stderr.
package cli
