// Package feed orchestrates the scrape-to-calendar pipeline for one site.
package feed
