package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cnyfeeds/venue-ics/internal/feed"
	"github.com/cnyfeeds/venue-ics/internal/logger"
	"github.com/cnyfeeds/venue-ics/internal/output"
	"github.com/cnyfeeds/venue-ics/internal/site"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// DebugLogPath is the side file that receives verbose traces under --debug.
const DebugLogPath = "venue-ics-debug.log"

var (
	flagSite   string
	flagOut    string
	flagName   string
	flagPrefix string
	flagDebug  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venue-ics [listing-url]",
		Short: "Scrape venue event listings into an iCalendar feed",
		Long: `Scrapes event listings from venue websites and writes a standards-compliant
iCalendar (.ics) feed file. The optional positional argument overrides the
selected site's compiled-in listing URL.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}

	cmd.Flags().StringVar(&flagSite, "site", site.DefaultKey,
		fmt.Sprintf("Site profile to scrape (one of %v)", site.Keys()))
	cmd.Flags().StringVar(&flagOut, "out", "", "Output .ics path (default: site profile's path)")
	cmd.Flags().StringVar(&flagName, "name", "", "Calendar display name override")
	cmd.Flags().StringVar(&flagPrefix, "prefix", "", "Prefix prepended to every event title")
	cmd.Flags().BoolVar(&flagDebug, "debug", false,
		fmt.Sprintf("Write verbose logs to %s", DebugLogPath))

	return cmd
}

// runBuild is the main command logic
func runBuild(cmd *cobra.Command, args []string) error {
	if flagDebug {
		debugLog, err := logger.NewFileLogger(DebugLogPath)
		if err != nil {
			return err
		}
		defer debugLog.Close()
		logger.SetDefault(debugLog)
	}

	profile, err := site.Lookup(flagSite)
	if err != nil {
		return err
	}
	if flagName != "" {
		profile.CalendarName = flagName
	}
	if flagPrefix != "" {
		profile.TitlePrefix = flagPrefix
	}
	if flagOut != "" {
		profile.OutputPath = flagOut
	}

	listingURL := ""
	if len(args) > 0 {
		listingURL = args[0]
	}

	builder, err := feed.New(profile)
	if err != nil {
		return err
	}

	result, err := builder.Build(cmd.Context(), listingURL)
	if err != nil {
		return err
	}

	if err := output.Write(profile.OutputPath, []byte(result.Calendar)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %d events\n", profile.OutputPath, len(result.Events))
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
