package main

import "github.com/cnyfeeds/venue-ics/internal/cli"

func main() {
	cli.Execute()
}
