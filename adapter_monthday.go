package datetime

import (
	"fmt"
	"strings"
	"time"
)

// NewPlainMonthDayAdapter builds the adapter for recurring month-day values.
// Calendar arithmetic projects through the reference year and wraps December
// into January, so a month-day never escapes its year-less domain.
func NewPlainMonthDayAdapter(locale string, opts ...AdapterOption) (*Adapter, error) {
	a, err := newAdapter(KindPlainMonthDay, locale, opts...)
	if err != nil {
		return nil, err
	}

	a.conversion = ConversionOperations{
		FromString: plainMonthDayFromString,
		ToTime:     Value.Time,
		Parse: func(input, format string, specs *LocaleSpecs) (*Value, error) {
			return specs.Formatter.ParsePlainMonthDay(input, format)
		},
	}
	a.comparison = ComparisonOperations{
		IsEqual:     sameMonthDay,
		IsSameYear:  alwaysSame,
		IsSameMonth: func(x, y Value) bool { return x.month == y.month },
		IsSameDay:   sameMonthDay,
		IsSameHour:  alwaysSame,

		IsAfter:     func(x, y Value) bool { return compareMonthDays(x, y) > 0 },
		IsAfterYear: neverOrdered,
		IsAfterDay:  func(x, y Value) bool { return compareMonthDays(x, y) > 0 },

		IsBefore:     func(x, y Value) bool { return compareMonthDays(x, y) < 0 },
		IsBeforeYear: neverOrdered,
		IsBeforeDay:  func(x, y Value) bool { return compareMonthDays(x, y) < 0 },
	}
	a.dateOps = DateOperations{
		StartOfYear: func(v Value) Value {
			return withDate(v, referenceYear, 1, clampDay(referenceYear, 1, v.day))
		},
		StartOfMonth: func(v Value) Value { return withDate(v, referenceYear, v.month, 1) },
		StartOfWeek: func(v Value, locale string) Value {
			return repinMonthDay(startOfWeekDate(v, locale))
		},
		EndOfYear: func(v Value) Value {
			return withDate(v, referenceYear, 12, clampDay(referenceYear, 12, v.day))
		},
		EndOfMonth: func(v Value) Value {
			return withDate(v, referenceYear, v.month, daysInMonth(referenceYear, v.month))
		},
		EndOfWeek: func(v Value, locale string) Value {
			return repinMonthDay(endOfWeekDate(v, locale))
		},

		AddYears: identityValueAmount,
		AddMonths: func(v Value, amount int) Value {
			return repinMonthDay(addMonthsClamped(v, amount))
		},
		AddWeeks: func(v Value, amount int) Value {
			return repinMonthDay(addDaysCivil(v, amount*7))
		},
		AddDays: func(v Value, amount int) Value {
			return repinMonthDay(addDaysCivil(v, amount))
		},

		GetYear:        func(Value) int { return referenceYear },
		GetMonth:       func(v Value) int { return v.month },
		GetDate:        func(v Value) int { return v.day },
		GetDaysInMonth: func(v Value) int { return daysInMonth(referenceYear, v.month) },
		GetWeekNumber: func(v Value) int {
			return (refDayOfYear(v.month, v.day) + 6) / 7
		},
		GetDayOfWeek: func(v Value) int {
			return (refDayOfYear(v.month, v.day)-1)%7 + 1
		},

		SetYear:  identitySet,
		SetMonth: setMonthClamped,
		SetDate:  setDateClamped,

		WeekGrid:  monthDayWeekGrid,
		YearRange: func(Value, Value, *Adapter) []Value { return nil },
	}
	a.timeOps = noopTimeOperations
	a.zoneOps = noopZoneOperations
	return a, nil
}

func sameMonthDay(x, y Value) bool { return x.month == y.month && x.day == y.day }

func compareMonthDays(x, y Value) int {
	return compareInts([2]int{x.month, y.month}, [2]int{x.day, y.day})
}

// repinMonthDay forces arithmetic results back into the reference year, which
// wraps a December overflow into January and vice versa.
func repinMonthDay(v Value) Value {
	v.year = referenceYear
	return v
}

// refDayOfYear is the 1-based ordinal of the month-day within the reference
// year.
func refDayOfYear(month, day int) int {
	return time.Date(referenceYear, time.Month(month), day, 0, 0, 0, 0, time.UTC).YearDay()
}

// monthDayWeekGrid fills fixed rows of seven consecutive days starting at the
// first of the month; the final row borrows from the following month.
func monthDayWeekGrid(v Value, _ *Adapter) [][]Value {
	rows := (daysInMonth(referenceYear, v.month) + 6) / 7
	current := withDate(v, referenceYear, v.month, 1)

	weeks := make([][]Value, 0, rows)
	for r := 0; r < rows; r++ {
		week := make([]Value, 0, 7)
		for c := 0; c < 7; c++ {
			week = append(week, current)
			current = repinMonthDay(addDaysCivil(current, 1))
		}
		weeks = append(weeks, week)
	}
	return weeks
}

func plainMonthDayFromString(value, timezone string) (*Value, error) {
	if value == "" {
		now := nowIn(timezone)
		v, err := NewPlainMonthDay(int(now.Month()), now.Day())
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	trimmed := strings.TrimPrefix(value, "--")
	for _, layout := range []string{"01-02", "2006-01-02"} {
		t, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		v, err := NewPlainMonthDay(int(t.Month()), t.Day())
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return nil, fmt.Errorf("datetime: cannot parse %q as a month-day", value)
}
