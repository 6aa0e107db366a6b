package datetime

import (
	"fmt"
	"time"
)

// NewPlainDateTimeAdapter builds the adapter for date plus wall-clock values.
func NewPlainDateTimeAdapter(locale string, opts ...AdapterOption) (*Adapter, error) {
	a, err := newAdapter(KindPlainDateTime, locale, opts...)
	if err != nil {
		return nil, err
	}

	a.conversion = ConversionOperations{
		FromString: plainDateTimeFromString,
		ToTime:     Value.Time,
		Parse: func(input, format string, specs *LocaleSpecs) (*Value, error) {
			return specs.Formatter.ParsePlainDateTime(input, format)
		},
	}
	comparison := dateComparisonOperations()
	comparison.IsEqual = func(x, y Value) bool { return sameDate(x, y) && sameClock(x, y) }
	comparison.IsSameHour = func(x, y Value) bool { return sameDate(x, y) && x.hour == y.hour }
	a.comparison = comparison
	a.dateOps = defaultDateOperations
	a.timeOps = defaultTimeOperations
	a.zoneOps = noopZoneOperations
	return a, nil
}

var plainDateTimeLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func plainDateTimeFromString(value, timezone string) (*Value, error) {
	if value == "" {
		now := nowIn(timezone)
		v, err := NewPlainDateTime(now.Year(), int(now.Month()), now.Day(),
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond()/int(time.Millisecond))
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	for _, layout := range plainDateTimeLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		v, err := NewPlainDateTime(t.Year(), int(t.Month()), t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return nil, fmt.Errorf("datetime: cannot parse %q as a plain date-time", value)
}
