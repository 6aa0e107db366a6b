package datetime

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollectFormatsKnownLocales(t *testing.T) {
	tests := []struct {
		locale string
		expect Formats
	}{
		{
			locale: "en",
			expect: Formats{
				KeyboardDate:        "MM/dd/yyyy",
				FullTime12h:         "hh:mm a",
				FullTime24h:         "HH:mm",
				KeyboardDateTime12h: "MM/dd/yyyy, hh:mm a",
				KeyboardDateTime24h: "MM/dd/yyyy, HH:mm",
			},
		},
		{
			locale: "de",
			expect: Formats{
				KeyboardDate:        "dd.MM.yyyy",
				FullTime12h:         "hh:mm a",
				FullTime24h:         "HH:mm",
				KeyboardDateTime12h: "dd.MM.yyyy, hh:mm a",
				KeyboardDateTime24h: "dd.MM.yyyy, HH:mm",
			},
		},
		{
			locale: "ja",
			expect: Formats{
				KeyboardDate:        "yyyy/MM/dd",
				FullTime12h:         "ahh:mm",
				FullTime24h:         "HH:mm",
				KeyboardDateTime12h: "yyyy/MM/dd ahh:mm",
				KeyboardDateTime24h: "yyyy/MM/dd HH:mm",
			},
		},
		{
			locale: "fr",
			expect: Formats{
				KeyboardDate:        "dd/MM/yyyy",
				FullTime12h:         "hh:mm a",
				FullTime24h:         "HH:mm",
				KeyboardDateTime12h: "dd/MM/yyyy hh:mm a",
				KeyboardDateTime24h: "dd/MM/yyyy HH:mm",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.locale, func(t *testing.T) {
			bundle, err := bundles.resolve(tc.locale)
			if err != nil {
				t.Fatalf("resolve %s: %v", tc.locale, err)
			}

			formats, err := collectFormats(bundle)
			if err != nil {
				t.Fatalf("collectFormats: %v", err)
			}

			got := Formats{
				KeyboardDate:        formats.KeyboardDate,
				FullTime12h:         formats.FullTime12h,
				FullTime24h:         formats.FullTime24h,
				KeyboardDateTime12h: formats.KeyboardDateTime12h,
				KeyboardDateTime24h: formats.KeyboardDateTime24h,
			}
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Errorf("skeletons mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollectMonthNames(t *testing.T) {
	bundle, err := bundles.resolve("es")
	if err != nil {
		t.Fatalf("resolve es: %v", err)
	}

	formats, err := collectFormats(bundle)
	if err != nil {
		t.Fatalf("collectFormats: %v", err)
	}

	if got := formats.MonthNamesShort[4]; got != "may." {
		t.Errorf("short month 5 = %q, want %q", got, "may.")
	}
	if got := formats.MonthNamesLong[4]; got != "mayo" {
		t.Errorf("long month 5 = %q, want %q", got, "mayo")
	}
	if len(formats.MonthNamesShort) != 12 || len(formats.MonthNamesLong) != 12 {
		t.Errorf("expected 12 month names, got %d short / %d long",
			len(formats.MonthNamesShort), len(formats.MonthNamesLong))
	}
}

func TestCollectFormatWeekdayShortCircuits(t *testing.T) {
	bundle, err := bundles.resolve("en")
	if err != nil {
		t.Fatalf("resolve en: %v", err)
	}

	got, err := collectFormat(bundle, formatOptions{Weekday: "short", Day: "numeric"})
	if err != nil {
		t.Fatalf("collectFormat: %v", err)
	}
	if got != string(TokenWeekdayShort) {
		t.Errorf("weekday skeleton = %q, want %q", got, TokenWeekdayShort)
	}
}

func TestCollectFormatRejectsEraAndTimeZone(t *testing.T) {
	bundle := &Bundle{
		Locale: "x-era",
		Patterns: BundlePatterns{
			KeyboardDate: "G y-MM-dd",
			TimeH12:      "hh:mm a z",
			TimeH24:      "HH:mm",
		},
	}

	if _, err := collectFormat(bundle, formatOptions{
		Year: "numeric", Month: "2-digit", Day: "2-digit",
	}); !errors.Is(err, ErrUnsupportedSkeletonPart) {
		t.Errorf("era pattern: got %v, want ErrUnsupportedSkeletonPart", err)
	}

	if _, err := collectFormat(bundle, formatOptions{
		Hour: "2-digit", Minute: "2-digit", HourCycle: "h11",
	}); !errors.Is(err, ErrUnsupportedSkeletonPart) {
		t.Errorf("time zone pattern: got %v, want ErrUnsupportedSkeletonPart", err)
	}
}

func TestEscapeLiteral(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{":", ":"},
		{" ", " "},
		{"de", "'de'"},
		{"at", "'at'"},
		{"年", "年"},
		{"o'clock", "o''clock"},
		{"Uhr", "'Uhr'"},
	}

	for _, tc := range tests {
		if got := escapeLiteral(tc.input); got != tc.expect {
			t.Errorf("escapeLiteral(%q) = %q, want %q", tc.input, got, tc.expect)
		}
	}
}

func TestCycleHour(t *testing.T) {
	tests := []struct {
		hour   int
		cycle  string
		expect int
	}{
		{0, "h11", 0},
		{13, "h11", 1},
		{0, "h12", 12},
		{12, "h12", 12},
		{13, "h12", 1},
		{0, "h23", 0},
		{23, "h23", 23},
		{0, "h24", 24},
		{13, "h24", 13},
	}

	for _, tc := range tests {
		if got := cycleHour(tc.hour, tc.cycle); got != tc.expect {
			t.Errorf("cycleHour(%d, %s) = %d, want %d", tc.hour, tc.cycle, got, tc.expect)
		}
	}
}
