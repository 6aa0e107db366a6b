package datetime

import (
	"fmt"
	"time"
)

// NewPlainYearMonthAdapter builds the adapter for year-month values. Day and
// week navigation collapse to identity; year navigation is fully supported.
func NewPlainYearMonthAdapter(locale string, opts ...AdapterOption) (*Adapter, error) {
	a, err := newAdapter(KindPlainYearMonth, locale, opts...)
	if err != nil {
		return nil, err
	}

	a.conversion = ConversionOperations{
		FromString: plainYearMonthFromString,
		ToTime:     Value.Time,
		Parse: func(input, format string, specs *LocaleSpecs) (*Value, error) {
			return specs.Formatter.ParsePlainYearMonth(input, format)
		},
	}
	a.comparison = ComparisonOperations{
		IsEqual:     sameYearMonth,
		IsSameYear:  func(x, y Value) bool { return x.year == y.year },
		IsSameMonth: sameYearMonth,
		IsSameDay:   sameYearMonth,
		IsSameHour:  alwaysSame,

		IsAfter:     func(x, y Value) bool { return compareYearMonths(x, y) > 0 },
		IsAfterYear: func(x, y Value) bool { return x.year > y.year },
		IsAfterDay:  func(x, y Value) bool { return compareYearMonths(x, y) > 0 },

		IsBefore:     func(x, y Value) bool { return compareYearMonths(x, y) < 0 },
		IsBeforeYear: func(x, y Value) bool { return x.year < y.year },
		IsBeforeDay:  func(x, y Value) bool { return compareYearMonths(x, y) < 0 },
	}
	a.dateOps = DateOperations{
		StartOfYear:  func(v Value) Value { return withDate(v, v.year, 1, 1) },
		StartOfMonth: identityValue,
		StartOfWeek:  identityValueLocale,
		EndOfYear:    func(v Value) Value { return withDate(v, v.year, 12, 1) },
		EndOfMonth:   identityValue,
		EndOfWeek:    identityValueLocale,

		AddYears:  addYearsClamped,
		AddMonths: addMonthsClamped,
		AddWeeks:  identityValueAmount,
		AddDays:   identityValueAmount,

		GetYear:        func(v Value) int { return v.year },
		GetMonth:       func(v Value) int { return v.month },
		GetDate:        func(Value) int { return 1 },
		GetDaysInMonth: func(v Value) int { return daysInMonth(v.year, v.month) },
		GetWeekNumber:  func(Value) int { return 1 },
		GetDayOfWeek:   func(Value) int { return 1 },

		SetYear:  setYearClamped,
		SetMonth: setMonthClamped,
		SetDate:  identitySet,

		WeekGrid:  func(Value, *Adapter) [][]Value { return nil },
		YearRange: defaultYearRange,
	}
	a.timeOps = noopTimeOperations
	a.zoneOps = noopZoneOperations
	return a, nil
}

func sameYearMonth(x, y Value) bool { return x.year == y.year && x.month == y.month }

func compareYearMonths(x, y Value) int {
	return compareInts([2]int{x.year, y.year}, [2]int{x.month, y.month})
}

var plainYearMonthLayouts = []string{"2006-01", "2006-01-02"}

func plainYearMonthFromString(value, timezone string) (*Value, error) {
	if value == "" {
		now := nowIn(timezone)
		v, err := NewPlainYearMonth(now.Year(), int(now.Month()))
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	for _, layout := range plainYearMonthLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		v, err := NewPlainYearMonth(t.Year(), int(t.Month()))
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return nil, fmt.Errorf("datetime: cannot parse %q as a year-month", value)
}
