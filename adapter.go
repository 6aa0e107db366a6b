package datetime

import "time"

// Adapter binds one value kind to one locale: formatting, parsing, calendar
// and clock navigation all route through the kind's operation tables. An
// Adapter is immutable after construction and safe for concurrent use.
type Adapter struct {
	kind    Kind
	locale  string
	specs   *LocaleSpecs
	formats map[FormatKey]string

	conversion ConversionOperations
	comparison ComparisonOperations
	dateOps    DateOperations
	timeOps    TimeOperations
	zoneOps    ZoneOperations
}

// AdapterOption customizes an Adapter at construction time.
type AdapterOption func(*Adapter)

// WithFormats overlays the given format strings on the defaults.
func WithFormats(overrides map[FormatKey]string) AdapterOption {
	return func(a *Adapter) {
		a.formats = mergeFormats(overrides)
	}
}

func newAdapter(kind Kind, locale string, opts ...AdapterOption) (*Adapter, error) {
	specs, err := GetLocaleSpecs(locale)
	if err != nil {
		return nil, err
	}

	a := &Adapter{
		kind:    kind,
		locale:  specs.Locale,
		specs:   specs,
		formats: defaultFormats,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Kind returns the value kind this adapter serves.
func (a *Adapter) Kind() Kind { return a.kind }

// CurrentLocale returns the adapter's resolved locale identifier.
func (a *Adapter) CurrentLocale() string { return a.locale }

// Is12HourCycleInCurrentLocale reports whether the locale prefers a 12-hour
// clock.
func (a *Adapter) Is12HourCycleInCurrentLocale() bool { return a.specs.Hour12 }

// Date constructs a value from its ISO rendering, or from the current moment
// in the given time zone when the input is empty.
func (a *Adapter) Date(value, timezone string) (*Value, error) {
	return a.conversion.FromString(value, timezone)
}

// ToTime converts the value to a portable instant.
func (a *Adapter) ToTime(v Value) time.Time { return a.conversion.ToTime(v) }

// Parse recovers a value from locale-formatted input. A nil result with nil
// error means the input did not match the format.
func (a *Adapter) Parse(input, format string) (*Value, error) {
	return a.conversion.Parse(input, format, a.specs)
}

// Format renders the value through one of the semantic format keys.
func (a *Adapter) Format(v Value, key FormatKey) string {
	return a.FormatByString(v, a.formats[key])
}

// FormatByString renders the value through an explicit format string.
func (a *Adapter) FormatByString(v Value, format string) string {
	return a.specs.Formatter.Format(v, format)
}

// ExpandFormat rewrites meta tokens into the locale's concrete skeletons.
func (a *Adapter) ExpandFormat(format string) (string, error) {
	return a.specs.Formatter.ExpandFormat(format)
}

// IsEqual compares two possibly-absent values; two nils are equal, one nil
// never equals a value.
func (a *Adapter) IsEqual(x, y *Value) bool {
	if x == nil || y == nil {
		return x == y
	}
	return a.comparison.IsEqual(*x, *y)
}

func (a *Adapter) IsSameYear(x, y Value) bool  { return a.comparison.IsSameYear(x, y) }
func (a *Adapter) IsSameMonth(x, y Value) bool { return a.comparison.IsSameMonth(x, y) }
func (a *Adapter) IsSameDay(x, y Value) bool   { return a.comparison.IsSameDay(x, y) }
func (a *Adapter) IsSameHour(x, y Value) bool  { return a.comparison.IsSameHour(x, y) }

func (a *Adapter) IsAfter(x, y Value) bool     { return a.comparison.IsAfter(x, y) }
func (a *Adapter) IsAfterYear(x, y Value) bool { return a.comparison.IsAfterYear(x, y) }
func (a *Adapter) IsAfterDay(x, y Value) bool  { return a.comparison.IsAfterDay(x, y) }

func (a *Adapter) IsBefore(x, y Value) bool     { return a.comparison.IsBefore(x, y) }
func (a *Adapter) IsBeforeYear(x, y Value) bool { return a.comparison.IsBeforeYear(x, y) }
func (a *Adapter) IsBeforeDay(x, y Value) bool  { return a.comparison.IsBeforeDay(x, y) }

// IsWithinRange reports whether the value lies inside the closed interval.
func (a *Adapter) IsWithinRange(v, start, end Value) bool {
	return !a.comparison.IsBefore(v, start) && !a.comparison.IsAfter(v, end)
}

func (a *Adapter) StartOfYear(v Value) Value  { return a.dateOps.StartOfYear(v) }
func (a *Adapter) StartOfMonth(v Value) Value { return a.dateOps.StartOfMonth(v) }
func (a *Adapter) StartOfWeek(v Value) Value  { return a.dateOps.StartOfWeek(v, a.locale) }
func (a *Adapter) EndOfYear(v Value) Value    { return a.dateOps.EndOfYear(v) }
func (a *Adapter) EndOfMonth(v Value) Value   { return a.dateOps.EndOfMonth(v) }
func (a *Adapter) EndOfWeek(v Value) Value    { return a.dateOps.EndOfWeek(v, a.locale) }

func (a *Adapter) StartOfDay(v Value) Value { return a.timeOps.StartOfDay(v) }
func (a *Adapter) EndOfDay(v Value) Value   { return a.timeOps.EndOfDay(v) }

func (a *Adapter) AddYears(v Value, amount int) Value  { return a.dateOps.AddYears(v, amount) }
func (a *Adapter) AddMonths(v Value, amount int) Value { return a.dateOps.AddMonths(v, amount) }
func (a *Adapter) AddWeeks(v Value, amount int) Value  { return a.dateOps.AddWeeks(v, amount) }
func (a *Adapter) AddDays(v Value, amount int) Value   { return a.dateOps.AddDays(v, amount) }

func (a *Adapter) AddHours(v Value, amount int) Value   { return a.timeOps.AddHours(v, amount) }
func (a *Adapter) AddMinutes(v Value, amount int) Value { return a.timeOps.AddMinutes(v, amount) }
func (a *Adapter) AddSeconds(v Value, amount int) Value { return a.timeOps.AddSeconds(v, amount) }

func (a *Adapter) GetYear(v Value) int        { return a.dateOps.GetYear(v) }
func (a *Adapter) GetMonth(v Value) int       { return a.dateOps.GetMonth(v) }
func (a *Adapter) GetDate(v Value) int        { return a.dateOps.GetDate(v) }
func (a *Adapter) GetDaysInMonth(v Value) int { return a.dateOps.GetDaysInMonth(v) }
func (a *Adapter) GetWeekNumber(v Value) int  { return a.dateOps.GetWeekNumber(v) }
func (a *Adapter) GetDayOfWeek(v Value) int   { return a.dateOps.GetDayOfWeek(v) }

func (a *Adapter) GetHours(v Value) int        { return a.timeOps.GetHours(v) }
func (a *Adapter) GetMinutes(v Value) int      { return a.timeOps.GetMinutes(v) }
func (a *Adapter) GetSeconds(v Value) int      { return a.timeOps.GetSeconds(v) }
func (a *Adapter) GetMilliseconds(v Value) int { return a.timeOps.GetMilliseconds(v) }

// SetYear rewrites the year, clamping the day into the target month when
// needed. The second return is false when the field value is out of domain.
func (a *Adapter) SetYear(v Value, year int) (Value, bool) { return a.dateOps.SetYear(v, year) }

func (a *Adapter) SetMonth(v Value, month int) (Value, bool) { return a.dateOps.SetMonth(v, month) }
func (a *Adapter) SetDate(v Value, day int) (Value, bool)    { return a.dateOps.SetDate(v, day) }

func (a *Adapter) SetHours(v Value, hour int) (Value, bool) { return a.timeOps.SetHours(v, hour) }
func (a *Adapter) SetMinutes(v Value, minute int) (Value, bool) {
	return a.timeOps.SetMinutes(v, minute)
}
func (a *Adapter) SetSeconds(v Value, second int) (Value, bool) {
	return a.timeOps.SetSeconds(v, second)
}
func (a *Adapter) SetMilliseconds(v Value, milli int) (Value, bool) {
	return a.timeOps.SetMilliseconds(v, milli)
}

// WeekGrid lays out the value's month as week rows of seven days, padded with
// neighbor-month days to align with the locale's first day of the week.
func (a *Adapter) WeekGrid(v Value) [][]Value { return a.dateOps.WeekGrid(v, a) }

// YearRange lists the year starts spanned by the closed interval.
func (a *Adapter) YearRange(start, end Value) []Value {
	return a.dateOps.YearRange(start, end, a)
}

// GetTimezone returns the value's zone identifier; absent values and zoneless
// kinds report "default".
func (a *Adapter) GetTimezone(v *Value) string { return a.zoneOps.GetTimezone(v) }

// SetTimezone re-expresses the value in another zone, keeping the instant.
func (a *Adapter) SetTimezone(v Value, zone string) (Value, error) {
	return a.zoneOps.SetTimezone(v, zone)
}

// nowIn returns the current moment expressed in the resolved time zone.
func nowIn(timezone string) time.Time {
	loc, err := time.LoadLocation(resolveTimeZoneID(timezone))
	if err != nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

func compareInts(pairs ...[2]int) int {
	for _, pair := range pairs {
		if pair[0] != pair[1] {
			if pair[0] < pair[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func compareDates(a, b Value) int {
	return compareInts([2]int{a.year, b.year}, [2]int{a.month, b.month}, [2]int{a.day, b.day})
}

func compareClocks(a, b Value) int {
	return compareInts([2]int{a.hour, b.hour}, [2]int{a.minute, b.minute},
		[2]int{a.second, b.second}, [2]int{a.milli, b.milli})
}

func sameDate(a, b Value) bool  { return compareDates(a, b) == 0 }
func sameClock(a, b Value) bool { return compareClocks(a, b) == 0 }

func alwaysSame(Value, Value) bool   { return true }
func neverOrdered(Value, Value) bool { return false }
