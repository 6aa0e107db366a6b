package datetime

import (
	"fmt"
	"time"
)

// NewPlainTimeAdapter builds the adapter for wall-clock times. Calendar and
// zone operations decline with identity results.
func NewPlainTimeAdapter(locale string, opts ...AdapterOption) (*Adapter, error) {
	a, err := newAdapter(KindPlainTime, locale, opts...)
	if err != nil {
		return nil, err
	}

	a.conversion = ConversionOperations{
		FromString: plainTimeFromString,
		ToTime:     Value.Time,
		Parse: func(input, format string, specs *LocaleSpecs) (*Value, error) {
			return specs.Formatter.ParsePlainTime(input, format)
		},
	}
	a.comparison = ComparisonOperations{
		IsEqual:     sameClock,
		IsSameYear:  alwaysSame,
		IsSameMonth: alwaysSame,
		IsSameDay:   alwaysSame,
		IsSameHour:  func(x, y Value) bool { return x.hour == y.hour },

		IsAfter:     func(x, y Value) bool { return compareClocks(x, y) > 0 },
		IsAfterYear: neverOrdered,
		IsAfterDay:  neverOrdered,

		IsBefore:     func(x, y Value) bool { return compareClocks(x, y) < 0 },
		IsBeforeYear: neverOrdered,
		IsBeforeDay:  neverOrdered,
	}
	a.dateOps = noopDateOperations
	a.timeOps = defaultTimeOperations
	a.zoneOps = noopZoneOperations
	return a, nil
}

var plainTimeLayouts = []string{"15:04:05.000", "15:04:05", "15:04"}

func plainTimeFromString(value, timezone string) (*Value, error) {
	if value == "" {
		now := nowIn(timezone)
		v, err := NewPlainTime(now.Hour(), now.Minute(), now.Second(),
			now.Nanosecond()/int(time.Millisecond))
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	for _, layout := range plainTimeLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		v, err := NewPlainTime(t.Hour(), t.Minute(), t.Second(),
			t.Nanosecond()/int(time.Millisecond))
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return nil, fmt.Errorf("datetime: cannot parse %q as a plain time", value)
}
