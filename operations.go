package datetime

import (
	"fmt"
	"time"
)

// ConversionOperations builds, exports and parses values of one kind.
type ConversionOperations struct {
	// FromString constructs a value from its ISO rendering, or from the
	// current moment when the input is empty.
	FromString func(value, timezone string) (*Value, error)
	// ToTime converts to a portable instant.
	ToTime func(Value) time.Time
	// Parse recovers a value from locale-formatted input.
	Parse func(input, format string, specs *LocaleSpecs) (*Value, error)
}

// ComparisonOperations compares two values of the same kind. Kinds lacking a
// granularity report "always same" / "never ordered" for it.
type ComparisonOperations struct {
	IsEqual     func(a, b Value) bool
	IsSameYear  func(a, b Value) bool
	IsSameMonth func(a, b Value) bool
	IsSameDay   func(a, b Value) bool
	IsSameHour  func(a, b Value) bool

	IsAfter     func(a, b Value) bool
	IsAfterYear func(a, b Value) bool
	IsAfterDay  func(a, b Value) bool

	IsBefore     func(a, b Value) bool
	IsBeforeYear func(a, b Value) bool
	IsBeforeDay  func(a, b Value) bool
}

// DateOperations is the calendar-navigation table of one kind. Week-boundary
// operations take the locale whose first-day-of-week convention applies.
type DateOperations struct {
	StartOfYear  func(Value) Value
	StartOfMonth func(Value) Value
	StartOfWeek  func(Value, string) Value
	EndOfYear    func(Value) Value
	EndOfMonth   func(Value) Value
	EndOfWeek    func(Value, string) Value

	AddYears  func(Value, int) Value
	AddMonths func(Value, int) Value
	AddWeeks  func(Value, int) Value
	AddDays   func(Value, int) Value

	GetYear        func(Value) int
	GetMonth       func(Value) int
	GetDate        func(Value) int
	GetDaysInMonth func(Value) int
	GetWeekNumber  func(Value) int
	GetDayOfWeek   func(Value) int

	SetYear  func(Value, int) (Value, bool)
	SetMonth func(Value, int) (Value, bool)
	SetDate  func(Value, int) (Value, bool)

	WeekGrid  func(Value, *Adapter) [][]Value
	YearRange func(Value, Value, *Adapter) []Value
}

// TimeOperations is the wall-clock table of one kind.
type TimeOperations struct {
	StartOfDay func(Value) Value
	EndOfDay   func(Value) Value

	AddHours   func(Value, int) Value
	AddMinutes func(Value, int) Value
	AddSeconds func(Value, int) Value

	SetHours        func(Value, int) (Value, bool)
	SetMinutes      func(Value, int) (Value, bool)
	SetSeconds      func(Value, int) (Value, bool)
	SetMilliseconds func(Value, int) (Value, bool)

	GetHours        func(Value) int
	GetMinutes      func(Value) int
	GetSeconds      func(Value) int
	GetMilliseconds func(Value) int
}

// ZoneOperations reads and rewrites the time zone of one kind.
type ZoneOperations struct {
	GetTimezone func(*Value) string
	SetTimezone func(Value, string) (Value, error)
}

func identityValue(v Value) Value                 { return v }
func identityValueLocale(v Value, _ string) Value { return v }
func identityValueAmount(v Value, _ int) Value    { return v }
func identitySet(v Value, _ int) (Value, bool)    { return v, true }

// noopDateOperations declines calendar navigation with identity results and
// fixed sentinels, for kinds without calendar fields.
var noopDateOperations = DateOperations{
	StartOfYear:  identityValue,
	StartOfMonth: identityValue,
	StartOfWeek:  identityValueLocale,
	EndOfYear:    identityValue,
	EndOfMonth:   identityValue,
	EndOfWeek:    identityValueLocale,

	AddYears:  identityValueAmount,
	AddMonths: identityValueAmount,
	AddWeeks:  identityValueAmount,
	AddDays:   identityValueAmount,

	GetYear:        func(Value) int { return referenceYear },
	GetMonth:       func(Value) int { return 1 },
	GetDate:        func(Value) int { return 1 },
	GetDaysInMonth: func(Value) int { return 30 },
	GetWeekNumber:  func(Value) int { return 1 },
	GetDayOfWeek:   func(Value) int { return 1 },

	SetYear:  identitySet,
	SetMonth: identitySet,
	SetDate:  identitySet,

	WeekGrid:  func(Value, *Adapter) [][]Value { return nil },
	YearRange: func(Value, Value, *Adapter) []Value { return nil },
}

// noopTimeOperations declines wall-clock operations, for date-only kinds.
var noopTimeOperations = TimeOperations{
	StartOfDay: identityValue,
	EndOfDay:   identityValue,

	AddHours:   identityValueAmount,
	AddMinutes: identityValueAmount,
	AddSeconds: identityValueAmount,

	SetHours:        identitySet,
	SetMinutes:      identitySet,
	SetSeconds:      identitySet,
	SetMilliseconds: identitySet,

	GetHours:        func(Value) int { return 0 },
	GetMinutes:      func(Value) int { return 0 },
	GetSeconds:      func(Value) int { return 0 },
	GetMilliseconds: func(Value) int { return 0 },
}

var noopZoneOperations = ZoneOperations{
	GetTimezone: func(*Value) string { return "default" },
	SetTimezone: func(v Value, _ string) (Value, error) { return v, nil },
}

// defaultDateOperations serves the date-bearing kinds (plain date, plain
// date-time, zoned date-time).
var defaultDateOperations = DateOperations{
	StartOfYear:  func(v Value) Value { return withDate(v, v.year, 1, 1) },
	StartOfMonth: func(v Value) Value { return withDate(v, v.year, v.month, 1) },
	StartOfWeek:  startOfWeekDate,
	EndOfYear:    func(v Value) Value { return withDate(v, v.year, 12, 31) },
	EndOfMonth:   func(v Value) Value { return withDate(v, v.year, v.month, daysInMonth(v.year, v.month)) },
	EndOfWeek:    endOfWeekDate,

	AddYears:  addYearsClamped,
	AddMonths: addMonthsClamped,
	AddWeeks:  func(v Value, amount int) Value { return addDaysCivil(v, amount*7) },
	AddDays:   addDaysCivil,

	GetYear:        func(v Value) int { return v.year },
	GetMonth:       func(v Value) int { return v.month },
	GetDate:        func(v Value) int { return v.day },
	GetDaysInMonth: func(v Value) int { return daysInMonth(v.year, v.month) },
	GetWeekNumber:  func(v Value) int { return isoWeekNumber(v.year, v.month, v.day) },
	GetDayOfWeek:   func(v Value) int { return isoDayOfWeek(v.year, v.month, v.day) },

	SetYear:  setYearClamped,
	SetMonth: setMonthClamped,
	SetDate:  setDateClamped,

	WeekGrid:  defaultWeekGrid,
	YearRange: defaultYearRange,
}

// defaultTimeOperations serves the time-bearing kinds (plain time, plain
// date-time, zoned date-time).
var defaultTimeOperations = TimeOperations{
	StartOfDay: func(v Value) Value { return withTime(v, 0, 0, 0, 0) },
	EndOfDay:   func(v Value) Value { return withTime(v, 23, 59, 59, 999) },

	AddHours:   func(v Value, amount int) Value { return addClockTime(v, amount, 0, 0) },
	AddMinutes: func(v Value, amount int) Value { return addClockTime(v, 0, amount, 0) },
	AddSeconds: func(v Value, amount int) Value { return addClockTime(v, 0, 0, amount) },

	SetHours:        setFieldChecked(0, 23, func(v Value, n int) Value { return withTime(v, n, v.minute, v.second, v.milli) }),
	SetMinutes:      setFieldChecked(0, 59, func(v Value, n int) Value { return withTime(v, v.hour, n, v.second, v.milli) }),
	SetSeconds:      setFieldChecked(0, 59, func(v Value, n int) Value { return withTime(v, v.hour, v.minute, n, v.milli) }),
	SetMilliseconds: setFieldChecked(0, 999, func(v Value, n int) Value { return withTime(v, v.hour, v.minute, v.second, n) }),

	GetHours:        func(v Value) int { return v.hour },
	GetMinutes:      func(v Value) int { return v.minute },
	GetSeconds:      func(v Value) int { return v.second },
	GetMilliseconds: func(v Value) int { return v.milli },
}

var defaultZoneOperations = ZoneOperations{
	GetTimezone: func(v *Value) string {
		if v == nil {
			return "default"
		}
		return v.zone
	},
	SetTimezone: func(v Value, zone string) (Value, error) {
		resolved := resolveTimeZoneID(zone)
		if _, err := time.LoadLocation(resolved); err != nil {
			return Value{}, fmt.Errorf("datetime: unknown time zone %q: %w", zone, err)
		}
		return v.inZone(resolved), nil
	},
}

// setYearClamped rewrites the year, clamping Feb 29 into non-leap targets.
func setYearClamped(v Value, year int) (Value, bool) {
	return withDate(v, year, v.month, clampDay(year, v.month, v.day)), true
}

// setMonthClamped rewrites the month, clamping the day into the target month.
// Months outside 1..12 are invalid rather than wrapped.
func setMonthClamped(v Value, month int) (Value, bool) {
	if month < 1 || month > 12 {
		return Value{}, false
	}
	return withDate(v, v.year, month, clampDay(v.year, month, v.day)), true
}

// setDateClamped rewrites the day of the month, clamping into the month's
// length. Days outside 1..31 are invalid.
func setDateClamped(v Value, day int) (Value, bool) {
	if day < 1 || day > 31 {
		return Value{}, false
	}
	return withDate(v, v.year, v.month, clampDay(v.year, v.month, day)), true
}

func setFieldChecked(min, max int, apply func(Value, int) Value) func(Value, int) (Value, bool) {
	return func(v Value, n int) (Value, bool) {
		if n < min || n > max {
			return Value{}, false
		}
		return apply(v, n), true
	}
}

// defaultWeekGrid walks from the week-aligned month start to the week-aligned
// month end, collecting contiguous rows of seven days.
func defaultWeekGrid(v Value, adapter *Adapter) [][]Value {
	start := adapter.StartOfWeek(adapter.StartOfMonth(v))
	end := adapter.EndOfWeek(adapter.EndOfMonth(v))

	var weeks [][]Value
	count := 0

	for current := start; !adapter.IsAfter(current, end); current = adapter.AddDays(current, 1) {
		if count%7 == 0 {
			weeks = append(weeks, make([]Value, 0, 7))
		}
		weeks[len(weeks)-1] = append(weeks[len(weeks)-1], current)
		count++
	}

	return weeks
}

// defaultYearRange lists successive year starts from the interval start's
// year up to, but not including, the interval end's year.
func defaultYearRange(start, end Value, adapter *Adapter) []Value {
	current := adapter.StartOfYear(start)
	limit := adapter.EndOfYear(end)

	var years []Value
	for adapter.IsBeforeYear(current, limit) {
		years = append(years, current)
		current = adapter.AddYears(current, 1)
	}
	return years
}
