package datetime

// FormatKey names one of the semantic formats an Adapter can render without
// the caller spelling out tokens.
type FormatKey string

const (
	FormatYear       FormatKey = "year"
	FormatMonth      FormatKey = "month"
	FormatMonthShort FormatKey = "monthShort"

	FormatDayOfMonth     FormatKey = "dayOfMonth"
	FormatDayOfMonthFull FormatKey = "dayOfMonthFull"
	FormatWeekday        FormatKey = "weekday"
	FormatWeekdayShort   FormatKey = "weekdayShort"

	FormatHours24h FormatKey = "hours24h"
	FormatHours12h FormatKey = "hours12h"
	FormatMeridiem FormatKey = "meridiem"
	FormatMinutes  FormatKey = "minutes"
	FormatSeconds  FormatKey = "seconds"

	FormatFullDate              FormatKey = "fullDate"
	FormatKeyboardDate          FormatKey = "keyboardDate"
	FormatShortDate             FormatKey = "shortDate"
	FormatNormalDate            FormatKey = "normalDate"
	FormatNormalDateWithWeekday FormatKey = "normalDateWithWeekday"

	FormatFullTime12h         FormatKey = "fullTime12h"
	FormatFullTime24h         FormatKey = "fullTime24h"
	FormatKeyboardDateTime12h FormatKey = "keyboardDateTime12h"
	FormatKeyboardDateTime24h FormatKey = "keyboardDateTime24h"
)

// defaultFormats maps every format key to its token string. Locale-dependent
// entries use meta tokens so the locale's own conventions decide the shape.
var defaultFormats = map[FormatKey]string{
	FormatYear:       string(TokenYear),
	FormatMonth:      string(TokenMonthLong),
	FormatMonthShort: string(TokenMonthShort),

	FormatDayOfMonth:     string(TokenDay),
	FormatDayOfMonthFull: string(TokenDay),
	FormatWeekday:        string(TokenWeekdayLong),
	FormatWeekdayShort:   string(TokenWeekdayShort),

	FormatHours24h: string(TokenHour24Padded),
	FormatHours12h: string(TokenHour12Padded),
	FormatMeridiem: string(TokenMeridiem),
	FormatMinutes:  string(TokenMinutePadded),
	FormatSeconds:  string(TokenSecondPadded),

	FormatFullDate:              string(TokenFullDate),
	FormatKeyboardDate:          string(TokenKeyboardDate),
	FormatShortDate:             string(TokenShortDate),
	FormatNormalDate:            string(TokenNormalDate),
	FormatNormalDateWithWeekday: string(TokenNormalDateWeekday),

	FormatFullTime12h:         string(TokenFullTime12h),
	FormatFullTime24h:         string(TokenFullTime24h),
	FormatKeyboardDateTime12h: string(TokenKeyboardDateTime12h),
	FormatKeyboardDateTime24h: string(TokenKeyboardDateTime24h),
}

// mergeFormats overlays caller-supplied format strings on the defaults.
func mergeFormats(overrides map[FormatKey]string) map[FormatKey]string {
	merged := make(map[FormatKey]string, len(defaultFormats))
	for key, format := range defaultFormats {
		merged[key] = format
	}
	for key, format := range overrides {
		merged[key] = format
	}
	return merged
}
