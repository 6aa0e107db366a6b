package datetime

import (
	"fmt"
	"time"
)

// NewPlainDateAdapter builds the adapter for calendar dates. Clock and zone
// operations decline with identity results.
func NewPlainDateAdapter(locale string, opts ...AdapterOption) (*Adapter, error) {
	a, err := newAdapter(KindPlainDate, locale, opts...)
	if err != nil {
		return nil, err
	}

	a.conversion = ConversionOperations{
		FromString: plainDateFromString,
		ToTime:     Value.Time,
		Parse: func(input, format string, specs *LocaleSpecs) (*Value, error) {
			return specs.Formatter.ParsePlainDate(input, format)
		},
	}
	a.comparison = dateComparisonOperations()
	a.dateOps = defaultDateOperations
	a.timeOps = noopTimeOperations
	a.zoneOps = noopZoneOperations
	return a, nil
}

// dateComparisonOperations orders the date-bearing kinds at day granularity.
// Plain date-time and zoned adapters refine IsEqual and the hour comparison.
func dateComparisonOperations() ComparisonOperations {
	return ComparisonOperations{
		IsEqual:    sameDate,
		IsSameYear: func(x, y Value) bool { return x.year == y.year },
		IsSameMonth: func(x, y Value) bool {
			return x.year == y.year && x.month == y.month
		},
		IsSameDay:  sameDate,
		IsSameHour: alwaysSame,

		IsAfter:     func(x, y Value) bool { return compareDates(x, y) > 0 },
		IsAfterYear: func(x, y Value) bool { return x.year > y.year },
		IsAfterDay:  func(x, y Value) bool { return compareDates(x, y) > 0 },

		IsBefore:     func(x, y Value) bool { return compareDates(x, y) < 0 },
		IsBeforeYear: func(x, y Value) bool { return x.year < y.year },
		IsBeforeDay:  func(x, y Value) bool { return compareDates(x, y) < 0 },
	}
}

var plainDateLayouts = []string{"2006-01-02"}

func plainDateFromString(value, timezone string) (*Value, error) {
	if value == "" {
		now := nowIn(timezone)
		v, err := NewPlainDate(now.Year(), int(now.Month()), now.Day())
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	for _, layout := range plainDateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		v, err := NewPlainDate(t.Year(), int(t.Month()), t.Day())
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return nil, fmt.Errorf("datetime: cannot parse %q as a plain date", value)
}
