package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type bundlePayload struct {
	Locale          string
	NumberingSystem string
	HourCycle       string
	FirstDay        int

	MonthsShort    []string
	MonthsLong     []string
	WeekdaysShort  []string
	WeekdaysLong   []string
	WeekdaysNarrow []string
	DayPeriods     []string

	KeyboardDate string
	TimeH12      string
	TimeH24      string
	DateTimeGlue string
	FullDate     string
	ShortDate    string
	NormalDate   string
	WeekdayDate  string
	HourClock    string
}

var emptyRegion language.Region

// isoWeekdayKeys is the emit order of weekday arrays; CLDR keys them sun..sat.
var isoWeekdayKeys = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var isoDayNumbers = map[string]int{
	"mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6, "sun": 7,
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "datetime-bundles: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "datetime", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "cldr_bundles.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/ and supplemental/)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag or comma-separate to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}
	for _, locale := range localeList.items {
		cfg.locales = append(cfg.locales, strings.ReplaceAll(locale, "_", "-"))
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	supplemental := data.Supplemental()
	var bundles []bundlePayload

	for _, locale := range cfg.locales {
		payload, err := buildBundle(data, supplemental, locale)
		if err != nil {
			return fmt.Errorf("build bundle for %s: %w", locale, err)
		}
		bundles = append(bundles, payload)
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Locale < bundles[j].Locale
	})

	source, err := renderSource(cfg.pkg, bundles)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main", "supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}
	candidate := strings.ReplaceAll(locale, "-", "_")
	for candidate != "" {
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		idx := strings.LastIndex(candidate, "_")
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}
	return data.RawLDML("root")
}

func buildBundle(data *cldr.CLDR, supplemental *cldr.SupplementalData, locale string) (bundlePayload, error) {
	payload := bundlePayload{Locale: locale}

	ldml := findLDML(data, locale)
	if ldml == nil {
		return payload, fmt.Errorf("missing LDML data")
	}

	payload.NumberingSystem = extractNumberingSystem(ldml)
	payload.FirstDay = extractFirstDay(supplemental, locale)

	calendar := findGregorian(ldml)
	if calendar == nil {
		return payload, fmt.Errorf("missing gregorian calendar")
	}

	payload.MonthsShort = extractMonths(calendar, "abbreviated")
	payload.MonthsLong = extractMonths(calendar, "wide")
	payload.WeekdaysShort = extractWeekdays(calendar, "abbreviated")
	payload.WeekdaysLong = extractWeekdays(calendar, "wide")
	payload.WeekdaysNarrow = extractWeekdays(calendar, "narrow")
	payload.DayPeriods = extractDayPeriods(calendar)

	shortTime := extractLengthPattern(timeLengths(calendar), "short")
	payload.HourCycle = detectHourCycle(shortTime)

	available := extractAvailableFormats(calendar)
	payload.KeyboardDate = widenPattern(available["yMd"])
	payload.TimeH12 = fallback(available["hm"], "hh:mm a")
	payload.TimeH24 = fallback(available["Hm"], "HH:mm")
	payload.FullDate = available["yMMMd"]
	payload.ShortDate = available["MMMd"]
	payload.NormalDate = available["MMMMd"]
	payload.WeekdayDate = available["MMMEd"]
	if payload.HourCycle == "h12" || payload.HourCycle == "h11" {
		payload.HourClock = available["h"]
	} else {
		payload.HourClock = available["H"]
	}

	payload.DateTimeGlue = extractLengthPattern(dateTimeLengths(calendar), "short")
	if payload.DateTimeGlue == "" {
		payload.DateTimeGlue = "{1}, {0}"
	}

	return payload, nil
}

func findGregorian(ldml *cldr.LDML) *cldr.Calendar {
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil
	}
	for _, calendar := range ldml.Dates.Calendars.Calendar {
		if calendar != nil && calendar.Type == "gregorian" {
			return calendar
		}
	}
	return nil
}

func extractNumberingSystem(ldml *cldr.LDML) string {
	if ldml.Numbers == nil {
		return "latn"
	}
	for _, system := range ldml.Numbers.DefaultNumberingSystem {
		if system == nil {
			continue
		}
		if value := system.Data(); value != "" {
			return value
		}
	}
	return "latn"
}

// extractFirstDay maps the supplemental week data onto the ISO numbering the
// bundles use. Entries carrying an alt attribute are variants and skipped.
func extractFirstDay(supplemental *cldr.SupplementalData, locale string) int {
	if supplemental == nil || supplemental.WeekData == nil {
		return 1
	}

	territory := "001"
	if tag, err := language.Parse(locale); err == nil {
		if region, _ := tag.Region(); region != emptyRegion {
			territory = strings.ToUpper(region.String())
		}
	}

	worldDefault := 1
	for _, entry := range supplemental.WeekData.FirstDay {
		if entry == nil || entry.Alt != "" {
			continue
		}
		day, ok := isoDayNumbers[strings.ToLower(entry.Day)]
		if !ok {
			continue
		}
		for _, candidate := range strings.Fields(entry.Territories) {
			if candidate == "001" {
				worldDefault = day
			}
			if strings.EqualFold(candidate, territory) {
				return day
			}
		}
	}
	return worldDefault
}

func extractMonths(calendar *cldr.Calendar, width string) []string {
	if calendar.Months == nil {
		return nil
	}

	names := make([]string, 12)
	for _, context := range calendar.Months.MonthContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, monthWidth := range context.MonthWidth {
			if monthWidth == nil || monthWidth.Type != width {
				continue
			}
			for _, month := range monthWidth.Month {
				if month == nil {
					continue
				}
				index, err := strconv.Atoi(month.Type)
				if err != nil || index < 1 || index > 12 {
					continue
				}
				names[index-1] = month.Data()
			}
		}
	}

	for _, name := range names {
		if name == "" {
			return nil
		}
	}
	return names
}

func extractWeekdays(calendar *cldr.Calendar, width string) []string {
	if calendar.Days == nil {
		return nil
	}

	byKey := make(map[string]string, 7)
	for _, context := range calendar.Days.DayContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, dayWidth := range context.DayWidth {
			if dayWidth == nil || dayWidth.Type != width {
				continue
			}
			for _, day := range dayWidth.Day {
				if day == nil {
					continue
				}
				byKey[strings.ToLower(day.Type)] = day.Data()
			}
		}
	}

	names := make([]string, 0, 7)
	for _, key := range isoWeekdayKeys {
		name, ok := byKey[key]
		if !ok {
			return nil
		}
		names = append(names, name)
	}
	return names
}

func extractDayPeriods(calendar *cldr.Calendar) []string {
	if calendar.DayPeriods == nil {
		return nil
	}

	var am, pm string
	for _, context := range calendar.DayPeriods.DayPeriodContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, periodWidth := range context.DayPeriodWidth {
			if periodWidth == nil || periodWidth.Type != "abbreviated" {
				continue
			}
			for _, period := range periodWidth.DayPeriod {
				if period == nil || period.Alt != "" {
					continue
				}
				switch period.Type {
				case "am":
					am = period.Data()
				case "pm":
					pm = period.Data()
				}
			}
		}
	}

	if am == "" || pm == "" {
		return nil
	}
	return []string{am, pm}
}

// lengthPattern is one named pattern of a dateFormats/timeFormats/
// dateTimeFormats length block.
type lengthPattern struct {
	Type    string
	Pattern string
}

func timeLengths(calendar *cldr.Calendar) []lengthPattern {
	if calendar.TimeFormats == nil {
		return nil
	}
	var patterns []lengthPattern
	for _, length := range calendar.TimeFormats.TimeFormatLength {
		if length == nil {
			continue
		}
		for _, timeFormat := range length.TimeFormat {
			if timeFormat == nil {
				continue
			}
			for _, pattern := range timeFormat.Pattern {
				if pattern == nil {
					continue
				}
				patterns = append(patterns, lengthPattern{Type: length.Type, Pattern: pattern.Data()})
			}
		}
	}
	return patterns
}

func dateTimeLengths(calendar *cldr.Calendar) []lengthPattern {
	if calendar.DateTimeFormats == nil {
		return nil
	}
	var patterns []lengthPattern
	for _, length := range calendar.DateTimeFormats.DateTimeFormatLength {
		if length == nil {
			continue
		}
		for _, dateTimeFormat := range length.DateTimeFormat {
			if dateTimeFormat == nil {
				continue
			}
			for _, pattern := range dateTimeFormat.Pattern {
				if pattern == nil {
					continue
				}
				patterns = append(patterns, lengthPattern{Type: length.Type, Pattern: pattern.Data()})
			}
		}
	}
	return patterns
}

func extractLengthPattern(patterns []lengthPattern, lengthType string) string {
	for _, pattern := range patterns {
		if pattern.Type == lengthType {
			return pattern.Pattern
		}
	}
	return ""
}

func extractAvailableFormats(calendar *cldr.Calendar) map[string]string {
	formats := make(map[string]string)
	if calendar.DateTimeFormats == nil {
		return formats
	}
	for _, available := range calendar.DateTimeFormats.AvailableFormats {
		if available == nil {
			continue
		}
		for _, item := range available.DateFormatItem {
			if item == nil || item.Alt != "" {
				continue
			}
			formats[item.Id] = item.Data()
		}
	}
	return formats
}

// detectHourCycle infers the locale's preference from the hour letter of its
// short time pattern.
func detectHourCycle(pattern string) string {
	inLiteral := false
	for _, r := range pattern {
		if r == '\'' {
			inLiteral = !inLiteral
			continue
		}
		if inLiteral {
			continue
		}
		switch r {
		case 'h':
			return "h12"
		case 'K':
			return "h11"
		case 'H':
			return "h23"
		case 'k':
			return "h24"
		}
	}
	return ""
}

// widenPattern doubles single M and d letters so the keyboard date pattern
// always zero-pads, matching a 2-digit month/day request.
func widenPattern(pattern string) string {
	var out strings.Builder
	inLiteral := false
	runes := []rune(pattern)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\'' {
			inLiteral = !inLiteral
			out.WriteRune(r)
			continue
		}
		if inLiteral || (r != 'M' && r != 'd') {
			out.WriteRune(r)
			continue
		}

		run := 1
		for i+1 < len(runes) && runes[i+1] == r {
			run++
			i++
		}
		if run == 1 {
			run = 2
		}
		out.WriteString(strings.Repeat(string(r), run))
	}

	return out.String()
}

func fallback(value, alt string) string {
	if value == "" {
		return alt
	}
	return value
}

func renderSource(pkg string, bundles []bundlePayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by cmd/datetime-bundles. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var cldrBundles = map[string]Bundle{\n")
	for _, bundle := range bundles {
		fmt.Fprintf(&buf, "\t%q: {\n", bundle.Locale)
		fmt.Fprintf(&buf, "\t\tLocale: %q,\n", bundle.Locale)
		fmt.Fprintf(&buf, "\t\tNumberingSystem: %q,\n", bundle.NumberingSystem)
		if bundle.HourCycle != "" {
			fmt.Fprintf(&buf, "\t\tHourCycle: %q,\n", bundle.HourCycle)
		}
		if bundle.FirstDay != 0 {
			fmt.Fprintf(&buf, "\t\tFirstDay: %d,\n", bundle.FirstDay)
		}

		writeStringSlice(&buf, "MonthsShort", bundle.MonthsShort)
		writeStringSlice(&buf, "MonthsLong", bundle.MonthsLong)
		writeStringSlice(&buf, "WeekdaysShort", bundle.WeekdaysShort)
		writeStringSlice(&buf, "WeekdaysLong", bundle.WeekdaysLong)
		writeStringSlice(&buf, "WeekdaysNarrow", bundle.WeekdaysNarrow)
		writeStringSlice(&buf, "DayPeriods", bundle.DayPeriods)

		buf.WriteString("\t\tPatterns: BundlePatterns{\n")
		writePattern(&buf, "KeyboardDate", bundle.KeyboardDate)
		writePattern(&buf, "TimeH12", bundle.TimeH12)
		writePattern(&buf, "TimeH24", bundle.TimeH24)
		writePattern(&buf, "DateTimeGlue", bundle.DateTimeGlue)
		writePattern(&buf, "FullDate", bundle.FullDate)
		writePattern(&buf, "ShortDate", bundle.ShortDate)
		writePattern(&buf, "NormalDate", bundle.NormalDate)
		writePattern(&buf, "WeekdayDate", bundle.WeekdayDate)
		writePattern(&buf, "HourClock", bundle.HourClock)
		buf.WriteString("\t\t},\n")

		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func writeStringSlice(buf *bytes.Buffer, field string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(buf, "\t\t%s: []string{", field)
	for i, value := range values {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%q", value)
	}
	buf.WriteString("},\n")
}

func writePattern(buf *bytes.Buffer, field, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(buf, "\t\t\t%s: %q,\n", field, value)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
