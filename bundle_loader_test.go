package datetime

import (
	"os"
	"path/filepath"
	"testing"
)

const loaderTestYAML = `
mi:
  numbering_system: latn
  hour_cycle: h23
  first_day: 1
  months_short: [Kohi, Hui, Pou, Pae, Hara, Pipi, Hongo, Here, Mahu, Nuku, Rangi, Haki]
  months_long: [Kohitātea, Huitanguru, Poutūterangi, Paengawhāwhā, Haratua, Pipiri, Hongongoi, Hereturikōkā, Mahuru, Whiringa-ā-nuku, Whiringa-ā-rangi, Hakihea]
  weekdays_short: [Man, Tūr, Wen, Tāi, Par, Rāh, Rāt]
  weekdays_long: [Mane, Tūrei, Wenerei, Tāite, Paraire, Rāhoroi, Rātapu]
  weekdays_narrow: [M, T, W, T, P, R, R]
  day_periods: [AM, PM]
  patterns:
    keyboard_date: dd-MM-y
    time_h12: hh:mm a
    time_h24: HH:mm
    date_time_glue: "{1}, {0}"
    full_date: d MMM y
    short_date: d MMM
    normal_date: d MMMM
    weekday_date: EEE, d MMM
    hour_clock: HH
`

func writeLoaderFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestBundleLoaderYAML(t *testing.T) {
	path := writeLoaderFile(t, "bundles.yaml", loaderTestYAML)

	if err := NewBundleLoader(path).Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	f, err := NewFormatter("mi")
	if err != nil {
		t.Fatalf("NewFormatter(mi): %v", err)
	}
	if got := f.Format(mustDate(t, 2024, 3, 7), "lkd"); got != "07-03-2024" {
		t.Errorf("loaded keyboard date = %q, want 07-03-2024", got)
	}
	if got := f.Format(mustDate(t, 2024, 3, 7), "MMMM"); got != "Poutūterangi" {
		t.Errorf("loaded month name = %q, want Poutūterangi", got)
	}
}

func TestBundleLoaderJSONOverlaysRegisteredBundle(t *testing.T) {
	base := Bundle{
		Locale:        "qtest",
		HourCycle:     "h23",
		FirstDay:      1,
		MonthsShort:   []string{"ja", "fe", "ma", "ap", "my", "jn", "jl", "au", "se", "oc", "no", "de"},
		MonthsLong:    []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"},
		WeekdaysShort: []string{"mo", "tu", "we", "th", "fr", "sa", "su"},
		WeekdaysLong:  []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"},
		DayPeriods:    []string{"AM", "PM"},
		Patterns: BundlePatterns{
			KeyboardDate: "y-MM-dd",
			TimeH12:      "hh:mm a",
			TimeH24:      "HH:mm",
			DateTimeGlue: "{1}, {0}",
			FullDate:     "d MMM y",
			ShortDate:    "d MMM",
			NormalDate:   "d MMMM",
			WeekdayDate:  "EEE, d MMM",
			HourClock:    "HH",
		},
	}
	if err := RegisterBundle(base); err != nil {
		t.Fatalf("RegisterBundle: %v", err)
	}

	path := writeLoaderFile(t, "override.json",
		`{"qtest": {"patterns": {"keyboard_date": "dd/MM/y"}}}`)
	if err := NewBundleLoader(path).Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	merged, err := bundles.resolve("qtest")
	if err != nil {
		t.Fatalf("resolve qtest: %v", err)
	}
	if merged.Patterns.KeyboardDate != "dd/MM/y" {
		t.Errorf("keyboard date = %q, want dd/MM/y", merged.Patterns.KeyboardDate)
	}
	if merged.Patterns.TimeH24 != "HH:mm" {
		t.Errorf("untouched pattern = %q, want HH:mm", merged.Patterns.TimeH24)
	}
	if len(merged.MonthsLong) != 12 || merged.MonthsLong[0] != "jan" {
		t.Error("overlay dropped the base month names")
	}
	if merged.FirstDay != 1 {
		t.Errorf("overlay dropped the base first day: %d", merged.FirstDay)
	}
}

func TestBundleLoaderErrors(t *testing.T) {
	if err := NewBundleLoader().Load(); err == nil {
		t.Error("empty loader accepted")
	}
	if err := NewBundleLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load(); err == nil {
		t.Error("missing file accepted")
	}

	path := writeLoaderFile(t, "bundles.toml", "locale = 'x'")
	if err := NewBundleLoader(path).Load(); err == nil {
		t.Error("unsupported extension accepted")
	}

	empty := writeLoaderFile(t, "empty.yaml", `"": {}`)
	if err := NewBundleLoader(empty).Load(); err == nil {
		t.Error("empty locale accepted")
	}
}

func TestRegisterBundleRejectsMissingLocale(t *testing.T) {
	if err := RegisterBundle(Bundle{}); err == nil {
		t.Error("bundle without locale accepted")
	}
}
