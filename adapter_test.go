package datetime

import (
	"testing"
	"time"
)

func TestAdapterDateFromISO(t *testing.T) {
	tests := []struct {
		name   string
		build  func(string, ...AdapterOption) (*Adapter, error)
		input  string
		expect string
	}{
		{"plain time", NewPlainTimeAdapter, "13:05:09", "13:05:09"},
		{"plain time without seconds", NewPlainTimeAdapter, "13:05", "13:05:00"},
		{"plain date", NewPlainDateAdapter, "2024-03-07", "2024-03-07"},
		{"plain date time", NewPlainDateTimeAdapter, "2024-03-07T13:05:09", "2024-03-07T13:05:09"},
		{"plain date time from date", NewPlainDateTimeAdapter, "2024-03-07", "2024-03-07T00:00:00"},
		{"year month", NewPlainYearMonthAdapter, "2024-03", "2024-03"},
		{"year month from full date", NewPlainYearMonthAdapter, "2024-03-07", "2024-03"},
		{"month day", NewPlainMonthDayAdapter, "--03-07", "--03-07"},
		{"month day from full date", NewPlainMonthDayAdapter, "2024-03-07", "--03-07"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter := mustAdapter(t, tc.build, "en")
			got, err := adapter.Date(tc.input, "default")
			if err != nil {
				t.Fatalf("Date(%q): %v", tc.input, err)
			}
			if got.String() != tc.expect {
				t.Errorf("Date(%q) = %s, want %s", tc.input, got, tc.expect)
			}
		})
	}
}

func TestAdapterDateRejectsGarbage(t *testing.T) {
	adapter := mustAdapter(t, NewPlainDateAdapter, "en")
	if _, err := adapter.Date("yesterday", "default"); err == nil {
		t.Error("expected an error for unparseable input")
	}
}

func TestAdapterDateEmptyUsesNow(t *testing.T) {
	adapter := mustAdapter(t, NewPlainDateAdapter, "en")

	before := time.Now().UTC().AddDate(0, 0, -1)
	got, err := adapter.Date("", "UTC")
	if err != nil {
		t.Fatalf("Date(\"\"): %v", err)
	}
	after := time.Now().UTC().AddDate(0, 0, 1)

	instant := got.Time()
	if instant.Before(before) || instant.After(after) {
		t.Errorf("Date(\"\") = %v, not near the current date", got)
	}
}

func TestZonedAdapterDateHonorsBracketedZone(t *testing.T) {
	adapter := mustAdapter(t, NewZonedDateTimeAdapter, "en")

	got, err := adapter.Date("2024-03-07T13:05:00[America/New_York]", "UTC")
	if err != nil {
		t.Fatalf("Date: %v", err)
	}
	if got.Zone() != "America/New_York" {
		t.Errorf("zone = %q, want America/New_York", got.Zone())
	}

	fallback, err := adapter.Date("2024-03-07T13:05:00", "America/New_York")
	if err != nil {
		t.Fatalf("Date: %v", err)
	}
	if fallback.Zone() != "America/New_York" {
		t.Errorf("fallback zone = %q, want America/New_York", fallback.Zone())
	}
}

func TestAdapterToTime(t *testing.T) {
	adapter := mustAdapter(t, NewZonedDateTimeAdapter, "en")

	value, err := NewZonedDateTime(2024, 3, 7, 23, 0, 0, 0, "America/New_York")
	if err != nil {
		t.Fatalf("NewZonedDateTime: %v", err)
	}

	expect := time.Date(2024, 3, 8, 4, 0, 0, 0, time.UTC)
	if got := adapter.ToTime(value); !got.Equal(expect) {
		t.Errorf("ToTime = %v, want %v", got, expect)
	}
}

func TestAdapterFormatKeys(t *testing.T) {
	adapter := mustAdapter(t, NewPlainDateAdapter, "en")
	date := mustDate(t, 2024, 3, 7)

	tests := []struct {
		key    FormatKey
		expect string
	}{
		{FormatYear, "2024"},
		{FormatMonth, "March"},
		{FormatMonthShort, "Mar"},
		{FormatDayOfMonth, "7"},
		{FormatWeekday, "Thursday"},
		{FormatWeekdayShort, "Thu"},
		{FormatKeyboardDate, "03/07/2024"},
		{FormatFullDate, "Mar 7, 2024"},
	}

	for _, tc := range tests {
		if got := adapter.Format(date, tc.key); got != tc.expect {
			t.Errorf("Format(%s) = %q, want %q", tc.key, got, tc.expect)
		}
	}
}

func TestAdapterWithFormatsOverride(t *testing.T) {
	adapter, err := NewPlainDateAdapter("en", WithFormats(map[FormatKey]string{
		FormatKeyboardDate: "yyyy-MM-dd",
	}))
	if err != nil {
		t.Fatalf("NewPlainDateAdapter: %v", err)
	}

	date := mustDate(t, 2024, 3, 7)
	if got := adapter.Format(date, FormatKeyboardDate); got != "2024-03-07" {
		t.Errorf("overridden keyboard date = %q, want 2024-03-07", got)
	}
	if got := adapter.Format(date, FormatFullDate); got != "Mar 7, 2024" {
		t.Errorf("unrelated key changed: %q", got)
	}
}

func TestAdapterParse(t *testing.T) {
	adapter := mustAdapter(t, NewPlainDateAdapter, "en")

	got, err := adapter.Parse("03/07/2024", "lkd")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got == nil || got.String() != "2024-03-07" {
		t.Errorf("Parse = %v, want 2024-03-07", got)
	}

	miss, err := adapter.Parse("not a date", "lkd")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if miss != nil {
		t.Errorf("Parse returned %v for non-matching input", miss)
	}
}

func TestAdapterLocaleSurface(t *testing.T) {
	en := mustAdapter(t, NewPlainTimeAdapter, "en")
	if !en.Is12HourCycleInCurrentLocale() {
		t.Error("en should prefer a 12-hour clock")
	}
	if en.CurrentLocale() != "en" {
		t.Errorf("CurrentLocale = %q, want en", en.CurrentLocale())
	}
	if en.Kind() != KindPlainTime {
		t.Errorf("Kind = %v, want plain-time", en.Kind())
	}

	de := mustAdapter(t, NewPlainTimeAdapter, "de")
	if de.Is12HourCycleInCurrentLocale() {
		t.Error("de should prefer a 24-hour clock")
	}

	underscore := mustAdapter(t, NewPlainTimeAdapter, "en_GB")
	if underscore.CurrentLocale() != "en-GB" {
		t.Errorf("CurrentLocale = %q, want en-GB", underscore.CurrentLocale())
	}
}

func TestAdapterExpandFormatForwards(t *testing.T) {
	adapter := mustAdapter(t, NewPlainDateAdapter, "en")

	got, err := adapter.ExpandFormat("lkd")
	if err != nil {
		t.Fatalf("ExpandFormat: %v", err)
	}
	if got != "MM/dd/yyyy" {
		t.Errorf("ExpandFormat = %q, want MM/dd/yyyy", got)
	}
}
