package datetime

import (
	"strings"
	"sync"
)

// LocaleSpecs bundles the derived hour-cycle preference and the Formatter for
// one locale. Instances are memoized for the process lifetime.
type LocaleSpecs struct {
	Locale    string
	Hour12    bool
	Formatter *Formatter
}

var specsCache = struct {
	sync.RWMutex
	entries map[string]*LocaleSpecs
}{entries: make(map[string]*LocaleSpecs)}

// GetLocaleSpecs returns the specs for the locale, deriving them on first
// use. Concurrent first calls for the same locale are idempotent; the first
// stored entry wins.
func GetLocaleSpecs(locale string) (*LocaleSpecs, error) {
	key := normalizeLocale(locale)

	specsCache.RLock()
	cached, ok := specsCache.entries[key]
	specsCache.RUnlock()
	if ok {
		return cached, nil
	}

	formatter, err := NewFormatter(key)
	if err != nil {
		return nil, err
	}

	specs := &LocaleSpecs{
		Locale:    key,
		Hour12:    is12HourCycle(formatter.bundle),
		Formatter: formatter,
	}

	specsCache.Lock()
	defer specsCache.Unlock()
	if cached, ok := specsCache.entries[key]; ok {
		return cached, nil
	}
	specsCache.entries[key] = specs
	return specs, nil
}

// is12HourCycle prefers the bundle's explicit hour-cycle; locales without one
// are probed by rendering 13:00 and checking whether "13" survives.
func is12HourCycle(bundle *Bundle) bool {
	if bundle.HourCycle != "" {
		return is12HourCycleOption(bundle.HourCycle)
	}

	parts, err := formatToParts(bundle, formatOptions{Hour: "numeric"}, dateTimeFields{
		Year: referenceYear, Month: 1, Day: 1, Hour: 13,
	})
	if err != nil {
		return false
	}
	return !strings.Contains(joinParts(parts), "13")
}
