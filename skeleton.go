package datetime

import (
	"fmt"
	"regexp"
	"strings"
)

// Formats is the per-locale skeleton table: the five meta-token expansions
// composed purely of standard tokens and escaped literals, plus the localized
// month-name arrays. Derived once per locale and never mutated.
type Formats struct {
	KeyboardDate        string
	FullTime12h         string
	FullTime24h         string
	KeyboardDateTime12h string
	KeyboardDateTime24h string
	MonthNamesShort     []string
	MonthNamesLong      []string
}

// collectFormats reverse-engineers the locale's skeletons by formatting the
// fixed reference date-time with each meta option set and mapping the labeled
// parts back into tokens.
func collectFormats(bundle *Bundle) (Formats, error) {
	var formats Formats
	var err error

	if formats.KeyboardDate, err = collectFormat(bundle, formatOptions{
		Year: "numeric", Month: "2-digit", Day: "2-digit",
	}); err != nil {
		return formats, err
	}

	if formats.FullTime12h, err = collectFormat(bundle, formatOptions{
		Hour: "2-digit", Minute: "2-digit", HourCycle: "h11",
	}); err != nil {
		return formats, err
	}

	if formats.FullTime24h, err = collectFormat(bundle, formatOptions{
		Hour: "2-digit", Minute: "2-digit", HourCycle: "h23",
	}); err != nil {
		return formats, err
	}

	if formats.KeyboardDateTime12h, err = collectFormat(bundle, formatOptions{
		Year: "numeric", Month: "2-digit", Day: "2-digit",
		Hour: "2-digit", Minute: "2-digit", HourCycle: "h12",
	}); err != nil {
		return formats, err
	}

	if formats.KeyboardDateTime24h, err = collectFormat(bundle, formatOptions{
		Year: "numeric", Month: "2-digit", Day: "2-digit",
		Hour: "2-digit", Minute: "2-digit", HourCycle: "h23",
	}); err != nil {
		return formats, err
	}

	if formats.MonthNamesShort, err = collectMonthNames(bundle, "short"); err != nil {
		return formats, err
	}
	if formats.MonthNamesLong, err = collectMonthNames(bundle, "long"); err != nil {
		return formats, err
	}

	return formats, nil
}

// collectFormat formats the reference date-time with one option set and walks
// the labeled parts in order, mapping each part's type and rendered width to
// a token.
func collectFormat(bundle *Bundle, opts formatOptions) (string, error) {
	parts, err := formatToParts(bundle, opts, referenceFields)
	if err != nil {
		return "", err
	}

	var tokens strings.Builder

	for _, part := range parts {
		switch part.Type {
		case partDay:
			tokens.WriteString(widthToken(part.Value, TokenDay, TokenDayPadded))

		case partDayPeriod:
			tokens.WriteString(string(TokenMeridiem))

		case partHour:
			tokens.WriteString(hourToken(part.Value, opts.HourCycle))

		case partMinute:
			tokens.WriteString(widthToken(part.Value, TokenMinute, TokenMinutePadded))

		case partMonth:
			tokens.WriteString(widthToken(part.Value, TokenMonth, TokenMonthPadded))

		case partSecond:
			tokens.WriteString(widthToken(part.Value, TokenSecond, TokenSecondPadded))

		case partYear:
			if len(part.Value) == 2 {
				tokens.WriteString(string(TokenYearShort))
			} else {
				tokens.WriteString(string(TokenYear))
			}

		case partWeekday:
			// The grammar cannot express a weekday inside a composite
			// skeleton; short-circuit to the bare weekday token.
			return string(TokenWeekdayShort), nil

		case partEra, partTimeZoneName:
			return "", fmt.Errorf("%w: %s", ErrUnsupportedSkeletonPart, part.Type)

		case partLiteral:
			tokens.WriteString(escapeLiteral(part.Value))
		}
	}

	return tokens.String(), nil
}

// collectMonthNames formats twelve first-of-month reference dates with a
// month-name-only request, collecting the names in locale order.
func collectMonthNames(bundle *Bundle, variant string) ([]string, error) {
	names := make([]string, 0, 12)

	for month := 1; month <= 12; month++ {
		parts, err := formatToParts(bundle, formatOptions{Month: variant}, dateTimeFields{
			Year: referenceYear, Month: month, Day: 1,
		})
		if err != nil {
			return nil, err
		}
		names = append(names, joinParts(parts))
	}

	return names, nil
}

// widthToken selects the unpadded or zero-padded token by rendered width.
func widthToken(value string, narrow, padded Token) string {
	if len(value) == 1 {
		return string(narrow)
	}
	return string(padded)
}

// hourToken picks the token family from the hour cycle that was requested
// (h11/h12 map to the h family) and the width from the rendered digits.
func hourToken(value, hourCycle string) string {
	if is12HourCycleOption(hourCycle) {
		return widthToken(value, TokenHour12, TokenHour12Padded)
	}
	return widthToken(value, TokenHour24, TokenHour24Padded)
}

// tokenSpellingPattern matches any known token spelling, longest first.
var tokenSpellingPattern = regexp.MustCompile(tokenAlternation())

func tokenAlternation() string {
	spellings := make([]string, len(knownTokens))
	for i, token := range knownTokens {
		spellings[i] = string(token)
	}
	return strings.Join(spellings, "|")
}

// escapeLiteral quotes literal text that would otherwise tokenize; a quote
// inside the text is doubled either way.
func escapeLiteral(literal string) string {
	doubled := strings.ReplaceAll(literal, "'", "''")
	if !tokenSpellingPattern.MatchString(doubled) {
		return doubled
	}
	return "'" + doubled + "'"
}
