package config

import "time"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Dates/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName = "Go Dates"
	AppID   = "com.github.tartampluch.go-dates"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion   = "version"
	FlagDebug     = "debug"
	FlagInput     = "input"
	FlagURL       = "url"
	FlagUser      = "user"
	FlagPass      = "pass"
	FlagFrom      = "from"
	FlagTo        = "to"
	FlagUnit      = "unit"
	FlagWeekStart = "week-start"

	FlagDescVersion   = "Show application version and exit"
	FlagDescDebug     = "Enable debug logging"
	FlagDescInput     = "Path to a local .ics or .vcf file"
	FlagDescURL       = "HTTP(S) URL of an .ics or .vcf feed"
	FlagDescUser      = "HTTP Basic Auth username"
	FlagDescPass      = "HTTP Basic Auth password"
	FlagDescFrom      = "Lower window bound (e.g. 2023-06-01); empty means the start of the current unit"
	FlagDescTo        = "Upper window bound; empty means the end of the current unit"
	FlagDescUnit      = "Window granularity: millisecond, second, minute, hour, day, week, month, year, decade or century"
	FlagDescWeekStart = "First day of the week: sunday, monday, ..."

	MsgVersionOutput = "%s version %s (%s/%s)\n"

	DefaultUnit      = "week"
	DefaultWeekStart = "sunday"
)

// WeekStartDays maps the -week-start flag values to weekdays.
var WeekStartDays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// -----------------------------------------------------------------------------
// Source Modes
// -----------------------------------------------------------------------------

const (
	SourceModeLocal = "local"
	SourceModeWeb   = "web"

	// File extensions that select the decoder.
	ExtICS = ".ics"
	ExtVCF = ".vcf"
)

// -----------------------------------------------------------------------------
// Network & Limits
// -----------------------------------------------------------------------------

const (
	HTTPTimeout = 30 * time.Second

	// MaxHTTPResponseSize caps feed downloads. Calendar feeds are text;
	// 64MB covers even pathological exports.
	MaxHTTPResponseSize = int64(64 * 1024 * 1024)

	SchemeHTTP      = "http"
	SchemeHTTPS     = "https"
	HeaderUserAgent = "User-Agent"
)

// -----------------------------------------------------------------------------
// Date Layouts
// -----------------------------------------------------------------------------

const (
	// Layouts accepted for vCard BDAY fields.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// DefaultLeapYear anchors year-less birthdays so Feb 29 stays parseable.
	DefaultLeapYear = 2000

	// DateFormatDisplay is the CLI output layout for matched entries.
	DateFormatDisplay = "2006-01-02 15:04"
)

// FallbackName labels entries whose source carries no usable name.
const FallbackName = "Unknown"

// -----------------------------------------------------------------------------
// Logging Keys & Components
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyValue     = "value"
	LogKeyURL       = "url"
	LogKeyStatus    = "status"
	LogKeyMode      = "mode"
	LogKeyUnit      = "unit"
	LogKeyDuration  = "duration_ms"
	LogKeyEntries   = "entries"
	LogKeyMatched   = "matched"
	LogKeyBuild     = "build"
	LogKeyApp       = "app"
	LogKeyVersion   = "version"
	LogKeyGoVer     = "go_version"

	CompMain    = "main"
	CompFeed    = "feed"
	CompFetcher = "fetcher"
)

// -----------------------------------------------------------------------------
// Log & Error Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting  = "Application starting"
	MsgAppStop      = "Application stopped"
	MsgFilterDone   = "Window filter finished"
	MsgSkippedCard  = "Skipping malformed vCard"
	MsgSkippedDate  = "Skipping unparseable birthday"
	MsgSkippedEvent = "Skipping event without usable start"

	ErrAppFailed     = "application failed unexpectedly"
	ErrNoSource      = "configuration error: provide -input or -url"
	ErrBothSources   = "configuration error: -input and -url are mutually exclusive"
	ErrUnknownExt    = "configuration error: source must end in .ics or .vcf"
	ErrBadWeekStart  = "configuration error: unknown week start"
	ErrBadBound      = "configuration error: unparseable window bound"
	ErrInvalidURL    = "invalid URL structure"
	ErrProtocol      = "unsupported protocol scheme (http/https only)"
	ErrICalDecode    = "failed to decode iCalendar stream"
	ErrVCardDecode   = "failed to decode vCard stream"
	ErrDateParse     = "unable to parse date"
	ErrFetcherStatus = "server returned unexpected status"
)
