package datetime

import "time"

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDay(year, month, day int) int {
	if max := daysInMonth(year, month); day > max {
		return max
	}
	return day
}

// withDate rebuilds the value around new calendar fields, keeping kind, time
// fields and zone.
func withDate(v Value, year, month, day int) Value {
	out := v
	out.year, out.month, out.day = year, month, day
	return out
}

// withTime rebuilds the value around new wall-clock fields.
func withTime(v Value, hour, minute, second, milli int) Value {
	out := v
	out.hour, out.minute, out.second, out.milli = hour, minute, second, milli
	return out
}

// addDaysCivil shifts the calendar fields by whole days, letting the calendar
// normalize across month and year boundaries.
func addDaysCivil(v Value, days int) Value {
	t := time.Date(v.year, time.Month(v.month), v.day+days, 0, 0, 0, 0, time.UTC)
	return withDate(v, t.Year(), int(t.Month()), t.Day())
}

// addMonthsClamped performs calendar month addition with the day-of-month
// clamped into the target month (Jan 31 + 1 month = Feb 28/29).
func addMonthsClamped(v Value, months int) Value {
	total := v.year*12 + (v.month - 1) + months
	year := total / 12
	if total < 0 && total%12 != 0 {
		year--
	}
	month := total - year*12 + 1
	return withDate(v, year, month, clampDay(year, month, v.day))
}

func addYearsClamped(v Value, years int) Value {
	year := v.year + years
	return withDate(v, year, v.month, clampDay(year, v.month, v.day))
}

// addClockTime shifts wall-clock fields. Plain-time values wrap around the
// day like a clock face; date-bearing kinds roll the date instead.
func addClockTime(v Value, hours, minutes, seconds int) Value {
	if v.kind == KindPlainTime {
		total := ((v.hour*3600+v.minute*60+v.second)+hours*3600+minutes*60+seconds) % 86400
		if total < 0 {
			total += 86400
		}
		return withTime(v, total/3600, total/60%60, total%60, v.milli)
	}

	t := time.Date(v.year, time.Month(v.month), v.day,
		v.hour+hours, v.minute+minutes, v.second+seconds, 0, time.UTC)
	out := withDate(v, t.Year(), int(t.Month()), t.Day())
	return withTime(out, t.Hour(), t.Minute(), t.Second(), v.milli)
}

// firstDayOfWeekFor returns the locale's first day of the week, ISO numbered;
// unknown locales fall back to Monday.
func firstDayOfWeekFor(locale string) int {
	bundle, err := bundles.resolve(locale)
	if err != nil {
		return 1
	}
	return bundle.firstDay()
}

// startOfWeekDate shifts a date-bearing value back to the locale's week start
// on or before it.
func startOfWeekDate(v Value, locale string) Value {
	first := firstDayOfWeekFor(locale)
	delta := (isoDayOfWeek(v.year, v.month, v.day) - first + 7) % 7
	return addDaysCivil(v, -delta)
}

// endOfWeekDate shifts a date-bearing value forward to the locale's week end
// on or after it.
func endOfWeekDate(v Value, locale string) Value {
	return addDaysCivil(startOfWeekDate(v, locale), 6)
}

func isoWeekNumber(year, month, day int) int {
	_, week := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}
