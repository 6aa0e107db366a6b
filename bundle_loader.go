package datetime

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// BundleLoader reads locale bundles from YAML or JSON files and installs them
// in the registry. A loaded bundle overlays the registered one for the same
// locale, so a file only needs the fields it wants to change.
type BundleLoader struct {
	paths []string
}

func NewBundleLoader(paths ...string) *BundleLoader {
	return &BundleLoader{paths: append([]string(nil), paths...)}
}

// Load decodes every configured file in order and registers the result. Later
// files win over earlier ones for the same locale.
func (l *BundleLoader) Load() error {
	if l == nil || len(l.paths) == 0 {
		return errors.New("datetime: no bundle loader paths configured")
	}

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("datetime: read %s: %w", path, err)
		}

		decoded, err := decodeBundleFile(path, data)
		if err != nil {
			return fmt.Errorf("datetime: decode %s: %w", path, err)
		}

		for locale, override := range decoded {
			if strings.TrimSpace(locale) == "" {
				return fmt.Errorf("datetime: empty locale in %s", path)
			}
			override.Locale = locale

			merged := override
			if base, ok := bundles.lookup(normalizeLocale(locale)); ok {
				merged = overlayBundle(*base, override)
			}
			if err := RegisterBundle(merged); err != nil {
				return err
			}
		}
	}

	return nil
}

// decodeBundleFile maps a file to locale-keyed bundles by extension.
func decodeBundleFile(path string, data []byte) (map[string]Bundle, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		var decoded map[string]Bundle
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, err
		}
		return decoded, nil
	case ".yaml", ".yml":
		var decoded map[string]Bundle
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

// overlayBundle applies the override's populated fields on top of the base.
func overlayBundle(base, override Bundle) Bundle {
	merged := base
	merged.Locale = override.Locale

	if override.NumberingSystem != "" {
		merged.NumberingSystem = override.NumberingSystem
	}
	if override.HourCycle != "" {
		merged.HourCycle = override.HourCycle
	}
	if override.FirstDay != 0 {
		merged.FirstDay = override.FirstDay
	}

	if len(override.MonthsShort) > 0 {
		merged.MonthsShort = override.MonthsShort
	}
	if len(override.MonthsLong) > 0 {
		merged.MonthsLong = override.MonthsLong
	}
	if len(override.WeekdaysShort) > 0 {
		merged.WeekdaysShort = override.WeekdaysShort
	}
	if len(override.WeekdaysLong) > 0 {
		merged.WeekdaysLong = override.WeekdaysLong
	}
	if len(override.WeekdaysNarrow) > 0 {
		merged.WeekdaysNarrow = override.WeekdaysNarrow
	}
	if len(override.DayPeriods) > 0 {
		merged.DayPeriods = override.DayPeriods
	}

	merged.Patterns = overlayPatterns(base.Patterns, override.Patterns)
	return merged
}

func overlayPatterns(base, override BundlePatterns) BundlePatterns {
	merged := base
	if override.KeyboardDate != "" {
		merged.KeyboardDate = override.KeyboardDate
	}
	if override.TimeH12 != "" {
		merged.TimeH12 = override.TimeH12
	}
	if override.TimeH24 != "" {
		merged.TimeH24 = override.TimeH24
	}
	if override.DateTimeGlue != "" {
		merged.DateTimeGlue = override.DateTimeGlue
	}
	if override.FullDate != "" {
		merged.FullDate = override.FullDate
	}
	if override.ShortDate != "" {
		merged.ShortDate = override.ShortDate
	}
	if override.NormalDate != "" {
		merged.NormalDate = override.NormalDate
	}
	if override.WeekdayDate != "" {
		merged.WeekdayDate = override.WeekdayDate
	}
	if override.HourClock != "" {
		merged.HourClock = override.HourClock
	}
	return merged
}
