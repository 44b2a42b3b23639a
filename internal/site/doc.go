// Package site holds the compiled-in per-venue scraping profiles.
package site
