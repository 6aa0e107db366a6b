package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// tokenFormatOptions carries the facility option set behind every token that
// has no direct renderer, plus the meta tokens.
var tokenFormatOptions = map[Token]formatOptions{
	TokenMonthShort:    {Month: "short"},
	TokenMonthLong:     {Month: "long"},
	TokenWeekdayShort:  {Weekday: "short"},
	TokenWeekdayLong:   {Weekday: "long"},
	TokenWeekdayNarrow: {Weekday: "narrow"},

	TokenFullDate:          {Day: "numeric", Month: "short", Year: "numeric"},
	TokenKeyboardDate:      {Year: "numeric", Month: "2-digit", Day: "2-digit"},
	TokenShortDate:         {Day: "numeric", Month: "short"},
	TokenNormalDate:        {Day: "numeric", Month: "long"},
	TokenNormalDateWeekday: {Weekday: "short", Day: "numeric", Month: "short"},
	TokenFullTime12h:       {Hour: "2-digit", Minute: "2-digit", HourCycle: "h11"},
	TokenFullTime24h:       {Hour: "2-digit", Minute: "2-digit", HourCycle: "h23"},
	TokenKeyboardDateTime12h: {
		Year: "numeric", Month: "2-digit", Day: "2-digit",
		Hour: "2-digit", Minute: "2-digit", HourCycle: "h12",
	},
	TokenKeyboardDateTime24h: {
		Year: "numeric", Month: "2-digit", Day: "2-digit",
		Hour: "2-digit", Minute: "2-digit", HourCycle: "h23",
	},
}

// Formatter renders and parses values for one resolved locale.
type Formatter struct {
	locale  string
	bundle  *Bundle
	formats Formats

	shortMonthAlternation string
	longMonthAlternation  string
}

// NewFormatter derives the locale's skeleton table and month names. It fails
// with ErrUnsupportedLocale when the locale's numbering system is not latn,
// and with ErrUnknownLocale when no bundle resolves.
func NewFormatter(locale string) (*Formatter, error) {
	bundle, err := bundles.resolve(locale)
	if err != nil {
		return nil, err
	}

	if bundle.numberingSystem() != "latn" {
		return nil, fmt.Errorf("%w: %s uses %s", ErrUnsupportedLocale, locale, bundle.numberingSystem())
	}

	formats, err := collectFormats(bundle)
	if err != nil {
		return nil, fmt.Errorf("datetime: derive skeletons for %s: %w", locale, err)
	}

	return &Formatter{
		locale:                normalizeLocale(locale),
		bundle:                bundle,
		formats:               formats,
		shortMonthAlternation: monthAlternation(formats.MonthNamesShort),
		longMonthAlternation:  monthAlternation(formats.MonthNamesLong),
	}, nil
}

// Locale returns the formatter's resolved locale identifier.
func (f *Formatter) Locale() string { return f.locale }

// Formats returns the derived skeleton table.
func (f *Formatter) Formats() Formats { return f.formats }

func monthAlternation(names []string) string {
	escaped := make([]string, len(names))
	for i, name := range names {
		escaped[i] = regexp.QuoteMeta(name)
	}
	return "(?:" + strings.Join(escaped, "|") + ")"
}

// Format renders the value through the format string. Literal nodes pass
// through; token nodes use the direct renderer, falling back to the locale
// facility for name and meta tokens. Tokens whose field the kind lacks render
// empty rather than failing.
func (f *Formatter) Format(value Value, format string) string {
	var out strings.Builder

	for _, node := range ParseFormat(format) {
		if node.IsLiteral() {
			out.WriteString(node.Literal)
			continue
		}

		if text, ok := f.renderToken(node.Token, value); ok {
			out.WriteString(text)
			continue
		}

		opts, ok := tokenFormatOptions[node.Token]
		if !ok {
			continue
		}
		parts, err := formatToParts(f.bundle, opts, value.fields())
		if err != nil {
			continue
		}
		out.WriteString(joinParts(parts))
	}

	return out.String()
}

// renderToken is the direct, kind-aware renderer. The second return is false
// when the token needs the locale facility instead; a token the kind has no
// field for yields ("", true).
func (f *Formatter) renderToken(token Token, v Value) (string, bool) {
	hasDate := v.hasDateFields()

	if v.kind == KindPlainYearMonth || hasDate {
		switch token {
		case TokenYearShort:
			return padNumber(v.year%100, 2), true
		case TokenYear:
			return strconv.Itoa(v.year), true
		}
	}

	if v.kind == KindPlainYearMonth || v.kind == KindPlainMonthDay || hasDate {
		switch token {
		case TokenMonth:
			return strconv.Itoa(v.month), true
		case TokenMonthPadded:
			return padNumber(v.month, 2), true
		case TokenMonthShort:
			return monthName(f.formats.MonthNamesShort, v.month), true
		case TokenMonthLong:
			return monthName(f.formats.MonthNamesLong, v.month), true
		}
	}

	if v.kind == KindPlainMonthDay || hasDate {
		switch token {
		case TokenDay:
			return strconv.Itoa(v.day), true
		case TokenDayPadded:
			return padNumber(v.day, 2), true
		case TokenWeekdayShort, TokenWeekdayLong, TokenWeekdayNarrow:
			return "", false
		}
	}

	if v.hasTimeFields() {
		switch token {
		case TokenMeridiem:
			if v.hour < 12 {
				return "AM", true
			}
			return "PM", true
		case TokenHour24:
			return strconv.Itoa(v.hour), true
		case TokenHour24Padded:
			return padNumber(v.hour, 2), true
		case TokenHour12:
			return strconv.Itoa(cycleHour(v.hour, "h12")), true
		case TokenHour12Padded:
			return padNumber(cycleHour(v.hour, "h12"), 2), true
		case TokenMinute:
			return strconv.Itoa(v.minute), true
		case TokenMinutePadded:
			return padNumber(v.minute, 2), true
		case TokenSecond:
			return strconv.Itoa(v.second), true
		case TokenSecondPadded:
			return padNumber(v.second, 2), true
		}
	}

	if isMetaToken(token) {
		return "", false
	}

	// The token exists but this kind has no field for it; degrade silently.
	return "", true
}

// ExpandFormat replaces the five keyboard/time meta tokens with the locale's
// derived skeleton, re-escaping literals so the result stays well formed. The
// four display-date meta tokens have no context-free skeleton and error.
func (f *Formatter) ExpandFormat(format string) (string, error) {
	var out strings.Builder

	for _, node := range ParseFormat(format) {
		if node.IsLiteral() {
			out.WriteString(escapeLiteral(node.Literal))
			continue
		}

		switch node.Token {
		case TokenKeyboardDate:
			out.WriteString(f.formats.KeyboardDate)
		case TokenFullTime12h:
			out.WriteString(f.formats.FullTime12h)
		case TokenFullTime24h:
			out.WriteString(f.formats.FullTime24h)
		case TokenKeyboardDateTime12h:
			out.WriteString(f.formats.KeyboardDateTime12h)
		case TokenKeyboardDateTime24h:
			out.WriteString(f.formats.KeyboardDateTime24h)
		case TokenFullDate, TokenShortDate, TokenNormalDate, TokenNormalDateWeekday:
			return "", fmt.Errorf("%w: %q", ErrNonExpandableToken, node.Token)
		default:
			out.WriteString(string(node.Token))
		}
	}

	return out.String(), nil
}

// fieldSet is the intermediate result of matching input against a compiled
// pattern. At most one of hour12/hour24 is populated by a well-formed format.
type fieldSet struct {
	year, month, day  int
	hour12, hour24    int
	minute, second    int
	hasYear, hasMonth bool
	hasDay            bool
	hasHour12         bool
	hasHour24         bool
	hasMinute         bool
	hasSecond         bool
	meridiem          string
}

// to24Hours converts the parsed hour fields to a 24-hour value. A 12-hour
// value without a meridiem marker is an error; no hour at all reports ok
// false so callers fall back to the default.
func (fs fieldSet) to24Hours() (int, bool, error) {
	if fs.hasHour24 {
		return fs.hour24, true, nil
	}
	if !fs.hasHour12 {
		return 0, false, nil
	}
	switch fs.meridiem {
	case "AM":
		if fs.hour12 == 12 {
			return 0, true, nil
		}
		return fs.hour12, true, nil
	case "PM":
		if fs.hour12 == 12 {
			return 12, true, nil
		}
		return fs.hour12 + 12, true, nil
	}
	return 0, false, ErrMissingMeridiem
}

// compilePattern builds the anchored matching pattern for a token sequence,
// returning the capture-group order alongside.
func (f *Formatter) compilePattern(nodes []Node) (*regexp.Regexp, []Token, error) {
	var pattern strings.Builder
	pattern.WriteByte('^')
	var groups []Token

	for _, node := range nodes {
		if node.IsLiteral() {
			pattern.WriteString(regexp.QuoteMeta(node.Literal))
			continue
		}

		switch node.Token {
		case TokenMonthShort:
			pattern.WriteString("(" + f.shortMonthAlternation + ")")
		case TokenMonthLong:
			pattern.WriteString("(" + f.longMonthAlternation + ")")
		default:
			fragment, ok := tokenPatterns[node.Token]
			if !ok {
				return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedToken, node.Token)
			}
			pattern.WriteString("(" + fragment + ")")
		}
		groups = append(groups, node.Token)
	}

	pattern.WriteByte('$')

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, nil, fmt.Errorf("datetime: compile pattern: %w", err)
	}
	return re, groups, nil
}

// parseFields matches input against the expanded format and maps captured
// groups back to fields positionally. A later capture for the same field
// overwrites the earlier one. A nil result with nil error means no match.
func (f *Formatter) parseFields(input, format string) (*fieldSet, error) {
	expanded, err := f.ExpandFormat(format)
	if err != nil {
		return nil, err
	}

	nodes := ParseFormat(expanded)
	re, groups, err := f.compilePattern(nodes)
	if err != nil {
		return nil, err
	}

	match := re.FindStringSubmatch(input)
	if match == nil {
		return nil, nil
	}

	var fs fieldSet
	for i, token := range groups {
		raw := match[i+1]

		switch token {
		case TokenMonthShort:
			fs.month, fs.hasMonth = monthIndex(f.formats.MonthNamesShort, raw), true
		case TokenMonthLong:
			fs.month, fs.hasMonth = monthIndex(f.formats.MonthNamesLong, raw), true
		case TokenMeridiem:
			fs.meridiem = raw
		default:
			number, err := strconv.Atoi(raw)
			if err != nil {
				return nil, nil
			}
			switch tokenFields[token] {
			case fieldYear:
				fs.year, fs.hasYear = number, true
			case fieldMonth:
				fs.month, fs.hasMonth = number, true
			case fieldDay:
				fs.day, fs.hasDay = number, true
			case fieldHour12:
				fs.hour12, fs.hasHour12 = number, true
			case fieldHour24:
				fs.hour24, fs.hasHour24 = number, true
			case fieldMinute:
				fs.minute, fs.hasMinute = number, true
			case fieldSecond:
				fs.second, fs.hasSecond = number, true
			}
		}
	}

	return &fs, nil
}

func monthIndex(names []string, name string) int {
	for i, candidate := range names {
		if candidate == name {
			return i + 1
		}
	}
	return 0
}

// ParsePlainTime parses input against the format as a wall-clock time.
// No match or invalid fields yield (nil, nil); a malformed format errors.
func (f *Formatter) ParsePlainTime(input, format string) (*Value, error) {
	fs, err := f.parseFields(input, format)
	if err != nil || fs == nil {
		return nil, err
	}

	hour, _, err := fs.to24Hours()
	if err != nil {
		return nil, nil
	}
	value, err := NewPlainTime(hour, fs.minute, fs.second, 0)
	if err != nil {
		return nil, nil
	}
	return &value, nil
}

// ParsePlainDate parses input against the format as a calendar date, with
// absent fields defaulting to year 2000, month 1, day 1.
func (f *Formatter) ParsePlainDate(input, format string) (*Value, error) {
	fs, err := f.parseFields(input, format)
	if err != nil || fs == nil {
		return nil, err
	}

	value, err := NewPlainDate(defaulted(fs.year, fs.hasYear, referenceYear),
		defaulted(fs.month, fs.hasMonth, 1), defaulted(fs.day, fs.hasDay, 1))
	if err != nil {
		return nil, nil
	}
	return &value, nil
}

// ParsePlainDateTime parses input against the format as a date plus time.
func (f *Formatter) ParsePlainDateTime(input, format string) (*Value, error) {
	fs, err := f.parseFields(input, format)
	if err != nil || fs == nil {
		return nil, err
	}

	hour, _, err := fs.to24Hours()
	if err != nil {
		return nil, nil
	}
	value, err := NewPlainDateTime(defaulted(fs.year, fs.hasYear, referenceYear),
		defaulted(fs.month, fs.hasMonth, 1), defaulted(fs.day, fs.hasDay, 1),
		hour, fs.minute, fs.second, 0)
	if err != nil {
		return nil, nil
	}
	return &value, nil
}

// ParseZonedDateTime parses like ParsePlainDateTime and attaches the resolved
// time zone.
func (f *Formatter) ParseZonedDateTime(input, format, zone string) (*Value, error) {
	parsed, err := f.ParsePlainDateTime(input, format)
	if err != nil || parsed == nil {
		return nil, err
	}

	value, err := NewZonedDateTime(parsed.year, parsed.month, parsed.day,
		parsed.hour, parsed.minute, parsed.second, parsed.milli, resolveTimeZoneID(zone))
	if err != nil {
		return nil, nil
	}
	return &value, nil
}

// ParsePlainYearMonth parses input against the format as a year-month.
func (f *Formatter) ParsePlainYearMonth(input, format string) (*Value, error) {
	fs, err := f.parseFields(input, format)
	if err != nil || fs == nil {
		return nil, err
	}

	value, err := NewPlainYearMonth(defaulted(fs.year, fs.hasYear, referenceYear),
		defaulted(fs.month, fs.hasMonth, 1))
	if err != nil {
		return nil, nil
	}
	return &value, nil
}

// ParsePlainMonthDay parses input against the format as a month-day.
func (f *Formatter) ParsePlainMonthDay(input, format string) (*Value, error) {
	fs, err := f.parseFields(input, format)
	if err != nil || fs == nil {
		return nil, err
	}

	value, err := NewPlainMonthDay(defaulted(fs.month, fs.hasMonth, 1),
		defaulted(fs.day, fs.hasDay, 1))
	if err != nil {
		return nil, nil
	}
	return &value, nil
}

func defaulted(value int, has bool, fallback int) int {
	if has {
		return value
	}
	return fallback
}

// resolveTimeZoneID maps the "default"/"system" sentinels to the process
// zone; anything else passes through as an IANA identifier.
func resolveTimeZoneID(zone string) string {
	if zone == "" || zone == "default" || zone == "system" {
		return time.Local.String()
	}
	return zone
}
