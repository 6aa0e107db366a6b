package datetime

import (
	"testing"
	"time"
)

func TestConstructorsValidate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		if _, err := NewPlainDate(2024, 2, 29); err != nil {
			t.Errorf("leap day in leap year: %v", err)
		}
		if _, err := NewPlainDate(2023, 2, 29); err == nil {
			t.Error("leap day in common year accepted")
		}
		if _, err := NewPlainDate(2024, 13, 1); err == nil {
			t.Error("month 13 accepted")
		}
		if _, err := NewPlainDate(2024, 4, 31); err == nil {
			t.Error("April 31 accepted")
		}
		if _, err := NewPlainDate(2024, 0, 1); err == nil {
			t.Error("month 0 accepted")
		}
	})

	t.Run("plain time", func(t *testing.T) {
		if _, err := NewPlainTime(23, 59, 59, 999); err != nil {
			t.Errorf("end of day: %v", err)
		}
		if _, err := NewPlainTime(24, 0, 0, 0); err == nil {
			t.Error("hour 24 accepted")
		}
		if _, err := NewPlainTime(12, 60, 0, 0); err == nil {
			t.Error("minute 60 accepted")
		}
		if _, err := NewPlainTime(12, 0, 0, 1000); err == nil {
			t.Error("millisecond 1000 accepted")
		}
	})

	t.Run("month day", func(t *testing.T) {
		// The reference year is a leap year, so Feb 29 is a valid
		// recurring month-day.
		if _, err := NewPlainMonthDay(2, 29); err != nil {
			t.Errorf("Feb 29: %v", err)
		}
		if _, err := NewPlainMonthDay(2, 30); err == nil {
			t.Error("Feb 30 accepted")
		}
	})

	t.Run("zoned", func(t *testing.T) {
		if _, err := NewZonedDateTime(2024, 3, 7, 13, 5, 0, 0, "America/New_York"); err != nil {
			t.Errorf("valid zone: %v", err)
		}
		if _, err := NewZonedDateTime(2024, 3, 7, 13, 5, 0, 0, "Mars/Olympus"); err == nil {
			t.Error("unknown zone accepted")
		}
	})
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name   string
		build  func() (Value, error)
		expect string
	}{
		{
			name:   "plain time",
			build:  func() (Value, error) { return NewPlainTime(13, 5, 0, 0) },
			expect: "13:05:00",
		},
		{
			name:   "plain time with millis",
			build:  func() (Value, error) { return NewPlainTime(13, 5, 0, 250) },
			expect: "13:05:00.250",
		},
		{
			name:   "plain date",
			build:  func() (Value, error) { return NewPlainDate(2024, 3, 7) },
			expect: "2024-03-07",
		},
		{
			name:   "plain date time",
			build:  func() (Value, error) { return NewPlainDateTime(2024, 3, 7, 13, 5, 9, 0) },
			expect: "2024-03-07T13:05:09",
		},
		{
			name: "zoned date time",
			build: func() (Value, error) {
				return NewZonedDateTime(2024, 3, 7, 13, 5, 0, 0, "America/New_York")
			},
			expect: "2024-03-07T13:05:00[America/New_York]",
		},
		{
			name:   "year month",
			build:  func() (Value, error) { return NewPlainYearMonth(2024, 3) },
			expect: "2024-03",
		},
		{
			name:   "month day",
			build:  func() (Value, error) { return NewPlainMonthDay(3, 7) },
			expect: "--03-07",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.build()
			if err != nil {
				t.Fatalf("construct: %v", err)
			}
			if got := v.String(); got != tc.expect {
				t.Errorf("String() = %q, want %q", got, tc.expect)
			}
		})
	}

	if got := (Value{}).String(); got != "invalid" {
		t.Errorf("zero value String() = %q, want %q", got, "invalid")
	}
}

func TestValueTimeResolvesZone(t *testing.T) {
	v, err := NewZonedDateTime(2024, 3, 7, 23, 0, 0, 0, "America/New_York")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	instant := v.Time().UTC()
	expect := time.Date(2024, 3, 8, 4, 0, 0, 0, time.UTC)
	if !instant.Equal(expect) {
		t.Errorf("instant = %v, want %v", instant, expect)
	}
}

func TestValueTimePinsPlainKindsToUTC(t *testing.T) {
	v, err := NewPlainTime(13, 5, 0, 0)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	instant := v.Time()
	expect := time.Date(2000, 1, 1, 13, 5, 0, 0, time.UTC)
	if !instant.Equal(expect) {
		t.Errorf("instant = %v, want %v", instant, expect)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind   Kind
		expect string
	}{
		{KindPlainTime, "plain-time"},
		{KindPlainDate, "plain-date"},
		{KindPlainDateTime, "plain-date-time"},
		{KindZonedDateTime, "zoned-date-time"},
		{KindPlainYearMonth, "plain-year-month"},
		{KindPlainMonthDay, "plain-month-day"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.expect {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.expect)
		}
	}
}
