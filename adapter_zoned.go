package datetime

import (
	"fmt"
	"strings"
	"time"
)

// NewZonedDateTimeAdapter builds the adapter for zone-carrying date-times.
// Comparisons re-express the comparand in the receiver's zone first, so two
// renderings of one instant compare as expected.
func NewZonedDateTimeAdapter(locale string, opts ...AdapterOption) (*Adapter, error) {
	a, err := newAdapter(KindZonedDateTime, locale, opts...)
	if err != nil {
		return nil, err
	}

	a.conversion = ConversionOperations{
		FromString: zonedDateTimeFromString,
		ToTime:     Value.Time,
		Parse: func(input, format string, specs *LocaleSpecs) (*Value, error) {
			return specs.Formatter.ParseZonedDateTime(input, format, "default")
		},
	}
	a.comparison = ComparisonOperations{
		IsEqual: func(x, y Value) bool { return x.Time().Equal(y.Time()) },
		IsSameYear: func(x, y Value) bool {
			return x.year == y.inZone(x.zone).year
		},
		IsSameMonth: func(x, y Value) bool {
			c := y.inZone(x.zone)
			return x.year == c.year && x.month == c.month
		},
		IsSameDay: func(x, y Value) bool { return sameDate(x, y.inZone(x.zone)) },
		IsSameHour: func(x, y Value) bool {
			c := y.inZone(x.zone)
			return sameDate(x, c) && x.hour == c.hour
		},

		IsAfter:     func(x, y Value) bool { return compareDates(x, y.inZone(x.zone)) > 0 },
		IsAfterYear: func(x, y Value) bool { return x.year > y.inZone(x.zone).year },
		IsAfterDay:  func(x, y Value) bool { return compareDates(x, y.inZone(x.zone)) > 0 },

		IsBefore:     func(x, y Value) bool { return compareDates(x, y.inZone(x.zone)) < 0 },
		IsBeforeYear: func(x, y Value) bool { return x.year < y.inZone(x.zone).year },
		IsBeforeDay:  func(x, y Value) bool { return compareDates(x, y.inZone(x.zone)) < 0 },
	}
	a.dateOps = defaultDateOperations
	a.timeOps = defaultTimeOperations
	a.zoneOps = defaultZoneOperations
	return a, nil
}

// zonedDateTimeFromString accepts the bracketed zone suffix of the canonical
// rendering; inputs without one take the zone argument.
func zonedDateTimeFromString(value, timezone string) (*Value, error) {
	zone := timezone

	if open := strings.IndexByte(value, '['); open >= 0 && strings.HasSuffix(value, "]") {
		zone = value[open+1 : len(value)-1]
		value = value[:open]
	}
	zone = resolveTimeZoneID(zone)

	if value == "" {
		now := nowIn(zone)
		v, err := NewZonedDateTime(now.Year(), int(now.Month()), now.Day(),
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond()/int(time.Millisecond), zone)
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
		v, err := NewZonedDateTime(t.Year(), int(t.Month()), t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond), zone)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return nil, fmt.Errorf("datetime: cannot parse %q as a zoned date-time", value)
}
