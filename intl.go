package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Bundle carries the locale data the formatting facility renders from. The
// shipped bundles live in cldr_bundles.go (regenerate with
// cmd/datetime-bundles); additional bundles can be registered directly or
// loaded from YAML/JSON files through BundleLoader.
type Bundle struct {
	Locale          string `json:"locale" yaml:"locale"`
	NumberingSystem string `json:"numbering_system" yaml:"numbering_system"`
	// HourCycle is the locale's explicit preference ("h11", "h12", "h23",
	// "h24") or empty when the locale has none recorded.
	HourCycle string `json:"hour_cycle" yaml:"hour_cycle"`
	// FirstDay is the first day of the week, ISO numbered (1=Monday..7=Sunday).
	FirstDay int `json:"first_day" yaml:"first_day"`

	MonthsShort    []string `json:"months_short" yaml:"months_short"`
	MonthsLong     []string `json:"months_long" yaml:"months_long"`
	WeekdaysShort  []string `json:"weekdays_short" yaml:"weekdays_short"`
	WeekdaysLong   []string `json:"weekdays_long" yaml:"weekdays_long"`
	WeekdaysNarrow []string `json:"weekdays_narrow" yaml:"weekdays_narrow"`
	DayPeriods     []string `json:"day_periods" yaml:"day_periods"`

	Patterns BundlePatterns `json:"patterns" yaml:"patterns"`
}

// BundlePatterns holds the CLDR pattern strings backing each option set the
// engine requests.
type BundlePatterns struct {
	KeyboardDate string `json:"keyboard_date" yaml:"keyboard_date"`
	TimeH12      string `json:"time_h12" yaml:"time_h12"`
	TimeH24      string `json:"time_h24" yaml:"time_h24"`
	DateTimeGlue string `json:"date_time_glue" yaml:"date_time_glue"`
	FullDate     string `json:"full_date" yaml:"full_date"`
	ShortDate    string `json:"short_date" yaml:"short_date"`
	NormalDate   string `json:"normal_date" yaml:"normal_date"`
	WeekdayDate  string `json:"weekday_date" yaml:"weekday_date"`
	HourClock    string `json:"hour_clock" yaml:"hour_clock"`
}

func (b *Bundle) numberingSystem() string {
	if b.NumberingSystem == "" {
		return "latn"
	}
	return b.NumberingSystem
}

func (b *Bundle) firstDay() int {
	if b.FirstDay < 1 || b.FirstDay > 7 {
		return 1
	}
	return b.FirstDay
}

type bundleRegistry struct {
	mu      sync.RWMutex
	bundles map[string]*Bundle
}

var bundles = newBundleRegistry()

func newBundleRegistry() *bundleRegistry {
	registry := &bundleRegistry{bundles: make(map[string]*Bundle, len(cldrBundles))}
	for locale := range cldrBundles {
		bundle := cldrBundles[locale]
		registry.bundles[locale] = &bundle
	}
	return registry
}

// RegisterBundle installs or replaces the bundle for its locale.
func RegisterBundle(bundle Bundle) error {
	if strings.TrimSpace(bundle.Locale) == "" {
		return fmt.Errorf("datetime: bundle has no locale")
	}
	bundles.register(&bundle)
	return nil
}

func (r *bundleRegistry) register(bundle *Bundle) {
	locale := normalizeLocale(bundle.Locale)
	bundle.Locale = locale

	r.mu.Lock()
	defer r.mu.Unlock()
	r.bundles[locale] = bundle
}

func (r *bundleRegistry) lookup(locale string) (*Bundle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bundle, ok := r.bundles[locale]
	return bundle, ok
}

// resolve finds the bundle for a locale, walking the locale's parent chain
// when there is no exact entry.
func (r *bundleRegistry) resolve(locale string) (*Bundle, error) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	if bundle, ok := r.lookup(normalized); ok {
		return bundle, nil
	}

	for _, parent := range localeParentChain(normalized) {
		if bundle, ok := r.lookup(parent); ok {
			return bundle, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

// partType labels one rendered substring of a locale-formatted value, the way
// a formatToParts facility would.
type partType string

const (
	partLiteral      partType = "literal"
	partYear         partType = "year"
	partMonth        partType = "month"
	partDay          partType = "day"
	partHour         partType = "hour"
	partMinute       partType = "minute"
	partSecond       partType = "second"
	partDayPeriod    partType = "dayPeriod"
	partWeekday      partType = "weekday"
	partEra          partType = "era"
	partTimeZoneName partType = "timeZoneName"
)

type formattedPart struct {
	Type  partType
	Value string
}

// formatOptions is the fixed option record of a facility request. Each field
// is empty or one of "numeric", "2-digit", "short", "long", "narrow".
type formatOptions struct {
	Year      string
	Month     string
	Day       string
	Hour      string
	Minute    string
	Second    string
	Weekday   string
	HourCycle string
}

// dateTimeFields is the value projection the facility renders. Plain kinds
// widen missing fields before calling in.
type dateTimeFields struct {
	Year, Month, Day     int
	Hour, Minute, Second int
}

func (f dateTimeFields) weekday() int {
	return isoDayOfWeek(f.Year, f.Month, f.Day)
}

// formatToParts renders the option set against the bundle's pattern for it,
// returning the ordered labeled parts covering the whole rendering.
func formatToParts(bundle *Bundle, opts formatOptions, fields dateTimeFields) ([]formattedPart, error) {
	pattern, glue, err := selectPattern(bundle, opts)
	if err != nil {
		return nil, err
	}

	if glue == "" {
		return renderPattern(bundle, pattern, opts.HourCycle, fields)
	}

	datePart, err := renderPattern(bundle, bundle.Patterns.KeyboardDate, "", fields)
	if err != nil {
		return nil, err
	}
	timePart, err := renderPattern(bundle, pattern, opts.HourCycle, fields)
	if err != nil {
		return nil, err
	}
	return renderGlue(glue, datePart, timePart), nil
}

// selectPattern maps an option record to the bundle pattern serving it. The
// second return is the date-time glue pattern when the request combines date
// and time fields.
func selectPattern(bundle *Bundle, opts formatOptions) (string, string, error) {
	p := bundle.Patterns

	switch {
	case opts.Hour != "" && opts.Minute != "" && opts.Year != "":
		glue := p.DateTimeGlue
		if glue == "" {
			glue = "{1}, {0}"
		}
		if is12HourCycleOption(opts.HourCycle) {
			return p.TimeH12, glue, nil
		}
		return p.TimeH24, glue, nil

	case opts.Hour != "" && opts.Minute != "":
		if is12HourCycleOption(opts.HourCycle) {
			return p.TimeH12, "", nil
		}
		return p.TimeH24, "", nil

	case opts.Hour != "":
		return p.HourClock, "", nil

	case opts.Weekday != "" && opts.Day != "":
		return p.WeekdayDate, "", nil

	case opts.Year != "" && opts.Month == "2-digit" && opts.Day == "2-digit":
		return p.KeyboardDate, "", nil

	case opts.Year != "" && opts.Month == "short" && opts.Day == "numeric":
		return p.FullDate, "", nil

	case opts.Month == "short" && opts.Day == "numeric":
		return p.ShortDate, "", nil

	case opts.Month == "long" && opts.Day == "numeric":
		return p.NormalDate, "", nil

	case opts.Month == "short":
		return "MMM", "", nil

	case opts.Month == "long":
		return "MMMM", "", nil

	case opts.Weekday == "short":
		return "EEE", "", nil

	case opts.Weekday == "long":
		return "EEEE", "", nil

	case opts.Weekday == "narrow":
		return "EEEEE", "", nil
	}

	return "", "", fmt.Errorf("datetime: no pattern for option set %+v", opts)
}

func is12HourCycleOption(cycle string) bool {
	return cycle == "h11" || cycle == "h12"
}

// renderPattern interprets a CLDR pattern string into labeled parts. Quoted
// runs follow the same doubling convention the token grammar uses.
func renderPattern(bundle *Bundle, pattern, hourCycle string, fields dateTimeFields) ([]formattedPart, error) {
	var parts []formattedPart
	appendLiteral := func(text string) {
		if text == "" {
			return
		}
		if n := len(parts); n > 0 && parts[n-1].Type == partLiteral {
			parts[n-1].Value += text
			return
		}
		parts = append(parts, formattedPart{Type: partLiteral, Value: text})
	}

	i := 0
	for i < len(pattern) {
		ch := pattern[i]

		if ch == '\'' {
			value, next := readQuotedLiteral(pattern, i+1)
			if value == "" && next == i+2 {
				value = "'"
			}
			appendLiteral(value)
			i = next
			continue
		}

		if !isPatternLetter(ch) {
			start := i
			for i < len(pattern) && pattern[i] != '\'' && !isPatternLetter(pattern[i]) {
				i++
			}
			appendLiteral(pattern[start:i])
			continue
		}

		start := i
		for i < len(pattern) && pattern[i] == ch {
			i++
		}
		count := i - start

		part, err := renderPatternField(bundle, ch, count, hourCycle, fields)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	return parts, nil
}

func isPatternLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func renderPatternField(bundle *Bundle, letter byte, count int, hourCycle string, fields dateTimeFields) (formattedPart, error) {
	switch letter {
	case 'y':
		if count == 2 {
			return formattedPart{partYear, padNumber(fields.Year%100, 2)}, nil
		}
		return formattedPart{partYear, padNumber(fields.Year, 4)}, nil

	case 'M', 'L':
		switch count {
		case 3:
			return formattedPart{partMonth, monthName(bundle.MonthsShort, fields.Month)}, nil
		case 4:
			return formattedPart{partMonth, monthName(bundle.MonthsLong, fields.Month)}, nil
		default:
			return formattedPart{partMonth, padNumber(fields.Month, count)}, nil
		}

	case 'd':
		return formattedPart{partDay, padNumber(fields.Day, count)}, nil

	case 'H', 'k':
		return formattedPart{partHour, padNumber(cycleHour(fields.Hour, defaultCycle(hourCycle, "h23")), count)}, nil

	case 'h', 'K':
		return formattedPart{partHour, padNumber(cycleHour(fields.Hour, defaultCycle(hourCycle, "h12")), count)}, nil

	case 'm':
		return formattedPart{partMinute, padNumber(fields.Minute, count)}, nil

	case 's':
		return formattedPart{partSecond, padNumber(fields.Second, count)}, nil

	case 'a':
		return formattedPart{partDayPeriod, dayPeriodName(bundle, fields.Hour)}, nil

	case 'E', 'c', 'e':
		return formattedPart{partWeekday, weekdayName(bundle, count, fields.weekday())}, nil

	case 'G':
		return formattedPart{partEra, "AD"}, nil

	case 'z', 'Z', 'v', 'V':
		return formattedPart{partTimeZoneName, "UTC"}, nil
	}

	return formattedPart{}, fmt.Errorf("datetime: unsupported pattern field %q", string(letter))
}

func defaultCycle(cycle, fallback string) string {
	if cycle == "" {
		return fallback
	}
	return cycle
}

// cycleHour maps a 24-hour value into the requested hour cycle.
func cycleHour(hour int, cycle string) int {
	switch cycle {
	case "h11":
		return hour % 12
	case "h12":
		if hour%12 == 0 {
			return 12
		}
		return hour % 12
	case "h24":
		if hour == 0 {
			return 24
		}
		return hour
	default:
		return hour
	}
}

func padNumber(value, width int) string {
	text := strconv.Itoa(value)
	for len(text) < width {
		text = "0" + text
	}
	return text
}

func monthName(names []string, month int) string {
	if month < 1 || month > len(names) {
		return ""
	}
	return names[month-1]
}

func weekdayName(bundle *Bundle, count, weekday int) string {
	var names []string
	switch {
	case count >= 5:
		names = bundle.WeekdaysNarrow
	case count == 4:
		names = bundle.WeekdaysLong
	default:
		names = bundle.WeekdaysShort
	}
	if weekday < 1 || weekday > len(names) {
		return ""
	}
	return names[weekday-1]
}

func dayPeriodName(bundle *Bundle, hour int) string {
	periods := bundle.DayPeriods
	if len(periods) < 2 {
		periods = []string{"AM", "PM"}
	}
	if hour < 12 {
		return periods[0]
	}
	return periods[1]
}

func renderGlue(glue string, date, timeParts []formattedPart) []formattedPart {
	var parts []formattedPart
	rest := glue

	for rest != "" {
		idx := strings.IndexByte(rest, '{')
		if idx < 0 || idx+2 >= len(rest) || rest[idx+2] != '}' {
			parts = append(parts, formattedPart{Type: partLiteral, Value: rest})
			break
		}
		if idx > 0 {
			parts = append(parts, formattedPart{Type: partLiteral, Value: rest[:idx]})
		}
		switch rest[idx+1] {
		case '0':
			parts = append(parts, timeParts...)
		case '1':
			parts = append(parts, date...)
		default:
			parts = append(parts, formattedPart{Type: partLiteral, Value: rest[idx : idx+3]})
		}
		rest = rest[idx+3:]
	}

	return parts
}

func joinParts(parts []formattedPart) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part.Value)
	}
	return b.String()
}

// referenceFields is the fixed reference date-time every skeleton derivation
// formats: 2018-01-01T01:01:01, a Monday.
var referenceFields = dateTimeFields{Year: 2018, Month: 1, Day: 1, Hour: 1, Minute: 1, Second: 1}

// isoDayOfWeek returns the ISO weekday (1=Monday..7=Sunday).
func isoDayOfWeek(year, month, day int) int {
	weekday := int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}
