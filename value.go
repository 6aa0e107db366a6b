package datetime

import (
	"fmt"
	"time"
)

// Kind tags the six calendar/time value shapes.
type Kind int

const (
	KindPlainTime Kind = iota
	KindPlainDate
	KindPlainDateTime
	KindZonedDateTime
	KindPlainYearMonth
	KindPlainMonthDay
)

func (k Kind) String() string {
	switch k {
	case KindPlainTime:
		return "plain-time"
	case KindPlainDate:
		return "plain-date"
	case KindPlainDateTime:
		return "plain-date-time"
	case KindZonedDateTime:
		return "zoned-date-time"
	case KindPlainYearMonth:
		return "plain-year-month"
	case KindPlainMonthDay:
		return "plain-month-day"
	}
	return "unknown"
}

// referenceYear widens a month-day value to a full date whenever calendar
// arithmetic needs one. 2000 is a leap year, so 02-29 stays representable.
const referenceYear = 2000

// Value is an immutable calendar/time value of one of the six kinds.
// Operations that modify a value return a new one. The zero Value is invalid.
type Value struct {
	kind  Kind
	valid bool

	year, month, day int
	hour, minute     int
	second, milli    int

	// zone is the IANA identifier, zoned kind only.
	zone string
}

// Kind returns the value's kind tag.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the value was produced by a constructor or a
// successful operation.
func (v Value) IsValid() bool { return v.valid }

// NewPlainTime builds a wall-clock time value.
func NewPlainTime(hour, minute, second, milli int) (Value, error) {
	if err := validateTime(hour, minute, second, milli); err != nil {
		return Value{}, err
	}
	return Value{kind: KindPlainTime, valid: true, year: referenceYear, month: 1, day: 1,
		hour: hour, minute: minute, second: second, milli: milli}, nil
}

// NewPlainDate builds a calendar date value.
func NewPlainDate(year, month, day int) (Value, error) {
	if err := validateDate(year, month, day); err != nil {
		return Value{}, err
	}
	return Value{kind: KindPlainDate, valid: true, year: year, month: month, day: day}, nil
}

// NewPlainDateTime builds a date plus wall-clock time value.
func NewPlainDateTime(year, month, day, hour, minute, second, milli int) (Value, error) {
	if err := validateDate(year, month, day); err != nil {
		return Value{}, err
	}
	if err := validateTime(hour, minute, second, milli); err != nil {
		return Value{}, err
	}
	return Value{kind: KindPlainDateTime, valid: true, year: year, month: month, day: day,
		hour: hour, minute: minute, second: second, milli: milli}, nil
}

// NewZonedDateTime builds a date-time carrying an IANA time zone identifier.
func NewZonedDateTime(year, month, day, hour, minute, second, milli int, zone string) (Value, error) {
	value, err := NewPlainDateTime(year, month, day, hour, minute, second, milli)
	if err != nil {
		return Value{}, err
	}
	if _, err := time.LoadLocation(zone); err != nil {
		return Value{}, fmt.Errorf("datetime: unknown time zone %q: %w", zone, err)
	}
	value.kind = KindZonedDateTime
	value.zone = zone
	return value, nil
}

// NewPlainYearMonth builds a year-month value.
func NewPlainYearMonth(year, month int) (Value, error) {
	if err := validateDate(year, month, 1); err != nil {
		return Value{}, err
	}
	return Value{kind: KindPlainYearMonth, valid: true, year: year, month: month, day: 1}, nil
}

// NewPlainMonthDay builds a month-day value; validity is judged against the
// reference year.
func NewPlainMonthDay(month, day int) (Value, error) {
	if err := validateDate(referenceYear, month, day); err != nil {
		return Value{}, err
	}
	return Value{kind: KindPlainMonthDay, valid: true, year: referenceYear, month: month, day: day}, nil
}

func validateDate(year, month, day int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("datetime: month %d out of range", month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return fmt.Errorf("datetime: day %d out of range for %04d-%02d", day, year, month)
	}
	return nil
}

func validateTime(hour, minute, second, milli int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("datetime: hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("datetime: minute %d out of range", minute)
	}
	if second < 0 || second > 59 {
		return fmt.Errorf("datetime: second %d out of range", second)
	}
	if milli < 0 || milli > 999 {
		return fmt.Errorf("datetime: millisecond %d out of range", milli)
	}
	return nil
}

// Year returns the calendar year; a month-day value projects through the
// reference year.
func (v Value) Year() int { return v.year }

// Month returns the 1-based month.
func (v Value) Month() int { return v.month }

// Day returns the day of the month; a year-month value reports day 1.
func (v Value) Day() int { return v.day }

func (v Value) Hour() int        { return v.hour }
func (v Value) Minute() int      { return v.minute }
func (v Value) Second() int      { return v.second }
func (v Value) Millisecond() int { return v.milli }

// Zone returns the IANA zone identifier for zoned values, "" otherwise.
func (v Value) Zone() string { return v.zone }

// hasDateFields reports whether the kind carries a real calendar date.
func (v Value) hasDateFields() bool {
	switch v.kind {
	case KindPlainDate, KindPlainDateTime, KindZonedDateTime:
		return true
	}
	return false
}

// hasTimeFields reports whether the kind carries wall-clock time.
func (v Value) hasTimeFields() bool {
	switch v.kind {
	case KindPlainTime, KindPlainDateTime, KindZonedDateTime:
		return true
	}
	return false
}

// fields projects the value onto the facility's field record, widening
// year-month and month-day through their placeholder day/year.
func (v Value) fields() dateTimeFields {
	return dateTimeFields{
		Year: v.year, Month: v.month, Day: v.day,
		Hour: v.hour, Minute: v.minute, Second: v.second,
	}
}

// location resolves the value's zone, defaulting plain kinds to UTC.
func (v Value) location() *time.Location {
	if v.zone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(v.zone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Time converts the value to a portable instant. Plain kinds are pinned to
// UTC with their missing fields widened; zoned values resolve their zone.
func (v Value) Time() time.Time {
	return time.Date(v.year, time.Month(v.month), v.day,
		v.hour, v.minute, v.second, v.milli*int(time.Millisecond), v.location())
}

// inZone re-expresses a zoned value in another zone, keeping the instant.
func (v Value) inZone(zone string) Value {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return v
	}
	t := v.Time().In(loc)
	out := v
	out.year, out.month, out.day = t.Year(), int(t.Month()), t.Day()
	out.hour, out.minute, out.second = t.Hour(), t.Minute(), t.Second()
	out.milli = t.Nanosecond() / int(time.Millisecond)
	out.zone = zone
	return out
}

// String renders the canonical ISO form for the kind.
func (v Value) String() string {
	if !v.valid {
		return "invalid"
	}

	switch v.kind {
	case KindPlainTime:
		return v.timeString()
	case KindPlainDate:
		return v.dateString()
	case KindPlainDateTime:
		return v.dateString() + "T" + v.timeString()
	case KindZonedDateTime:
		return v.dateString() + "T" + v.timeString() + "[" + v.zone + "]"
	case KindPlainYearMonth:
		return fmt.Sprintf("%04d-%02d", v.year, v.month)
	case KindPlainMonthDay:
		return fmt.Sprintf("--%02d-%02d", v.month, v.day)
	}
	return "invalid"
}

func (v Value) dateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", v.year, v.month, v.day)
}

func (v Value) timeString() string {
	base := fmt.Sprintf("%02d:%02d:%02d", v.hour, v.minute, v.second)
	if v.milli != 0 {
		return base + fmt.Sprintf(".%03d", v.milli)
	}
	return base
}
