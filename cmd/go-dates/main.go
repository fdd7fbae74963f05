// Command go-dates filters the events of an iCalendar or vCard feed through
// a calendar window: the current week, month or any other unit bucket, or an
// explicit [from, to] range.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/tartampluch/go-dates"
	"github.com/tartampluch/go-dates/internal/config"
	"github.com/tartampluch/go-dates/internal/feed"
)

// options carries the parsed CLI configuration into run.
type options struct {
	input     string
	url       string
	user      string
	pass      string
	from      string
	to        string
	unitName  string
	weekStart string
}

// main delegates to runMain so deferred calls execute before the process
// terminates; os.Exit does not run defers.
func main() {
	os.Exit(runMain())
}

// runMain manages argument parsing, logging setup and exit codes.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)

	var opts options
	flag.StringVar(&opts.input, config.FlagInput, "", config.FlagDescInput)
	flag.StringVar(&opts.url, config.FlagURL, "", config.FlagDescURL)
	flag.StringVar(&opts.user, config.FlagUser, "", config.FlagDescUser)
	flag.StringVar(&opts.pass, config.FlagPass, "", config.FlagDescPass)
	flag.StringVar(&opts.from, config.FlagFrom, "", config.FlagDescFrom)
	flag.StringVar(&opts.to, config.FlagTo, "", config.FlagDescTo)
	flag.StringVar(&opts.unitName, config.FlagUnit, config.DefaultUnit, config.FlagDescUnit)
	flag.StringVar(&opts.weekStart, config.FlagWeekStart, config.DefaultWeekStart, config.FlagDescWeekStart)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	setupLogging(*debugMode)

	// Root context cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx, opts); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run loads the feed, resolves the window and prints the matching entries.
func run(ctx context.Context, opts options) error {
	start := time.Now()

	weekday, ok := config.WeekStartDays[strings.ToLower(opts.weekStart)]
	if !ok {
		return fmt.Errorf("%s: %q", config.ErrBadWeekStart, opts.weekStart)
	}
	cal := dates.Calendar{WeekStart: weekday}

	unit, err := dates.ParseUnit(opts.unitName)
	if err != nil {
		return err
	}

	clock := feed.RealClock{}

	entries, err := loadEntries(ctx, opts, clock)
	if err != nil {
		return err
	}

	min, max, err := feed.Window(clock, cal, unit)
	if err != nil {
		return err
	}
	if opts.from != "" {
		if min, err = dates.ToTime(opts.from); err != nil {
			return fmt.Errorf("%s: %w", config.ErrBadBound, err)
		}
	}
	if opts.to != "" {
		if max, err = dates.ToTime(opts.to); err != nil {
			return fmt.Errorf("%s: %w", config.ErrBadBound, err)
		}
	}

	matched, err := feed.Filter(cal, entries, min, max, unit)
	if err != nil {
		return err
	}

	for _, e := range matched {
		fmt.Printf("%s  %s\n", e.Start.Format(config.DateFormatDisplay), e.Name)
	}

	slog.Debug("Run finished",
		config.LogKeyComponent, config.CompMain,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return nil
}

// loadEntries opens the configured source and decodes it by file extension.
func loadEntries(ctx context.Context, opts options, clock feed.Clock) ([]feed.Entry, error) {
	reader, sourceName, err := openSource(ctx, opts)
	if err != nil {
		return nil, err
	}
	// Best effort close; read-only sources rarely fail here.
	defer func() { _ = reader.Close() }()

	switch path.Ext(sourceName) {
	case config.ExtICS:
		return feed.DecodeICS(ctx, reader, time.Local)
	case config.ExtVCF:
		return feed.DecodeVCF(ctx, reader, clock.Now().Year(), time.Local)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrUnknownExt, sourceName)
	}
}

// openSource resolves the local/web source mode and returns the stream plus
// the name used for extension sniffing.
func openSource(ctx context.Context, opts options) (io.ReadCloser, string, error) {
	switch {
	case opts.input == "" && opts.url == "":
		return nil, "", errors.New(config.ErrNoSource)
	case opts.input != "" && opts.url != "":
		return nil, "", errors.New(config.ErrBothSources)
	case opts.input != "":
		slog.Debug("Opening source",
			config.LogKeyComponent, config.CompMain,
			config.LogKeyMode, config.SourceModeLocal,
		)
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, "", err
		}
		return f, opts.input, nil
	default:
		slog.Debug("Opening source",
			config.LogKeyComponent, config.CompMain,
			config.LogKeyMode, config.SourceModeWeb,
		)
		u, err := url.Parse(opts.url)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
		}
		rc, err := feed.NewHTTPFetcher().Fetch(ctx, opts.url, opts.user, opts.pass)
		if err != nil {
			return nil, "", err
		}
		return rc, u.Path, nil
	}
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
	)
}

// setupLogging configures the default slog logger. Diagnostics go to stderr
// so stdout stays clean for the matched entries.
func setupLogging(debugMode bool) {
	level := slog.LevelWarn
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
}
