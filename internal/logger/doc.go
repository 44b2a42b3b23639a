// Package logger provides structured JSON logging for the feed generator.
//
// The logger supports multiple log levels (DEBUG, INFO, WARN, ERROR) and
// outputs one JSON object per line. The --debug CLI flag swaps in a
// DEBUG-level logger appending to a side file.
package logger
