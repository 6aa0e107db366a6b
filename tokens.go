package datetime

import "sort"

// Token is one spelling of the format grammar.
type Token string

// Standard tokens render locale-independently given the value's fields.
const (
	TokenYearShort Token = "yy"
	TokenYear      Token = "yyyy"

	TokenMonth       Token = "M"
	TokenMonthPadded Token = "MM"
	TokenMonthShort  Token = "MMM"
	TokenMonthLong   Token = "MMMM"

	TokenDay       Token = "d"
	TokenDayPadded Token = "dd"

	TokenWeekdayShort  Token = "ccc"
	TokenWeekdayLong   Token = "cccc"
	TokenWeekdayNarrow Token = "ccccc"

	TokenMeridiem Token = "a"

	TokenHour24       Token = "H"
	TokenHour24Padded Token = "HH"
	TokenHour12       Token = "h"
	TokenHour12Padded Token = "hh"

	TokenMinute       Token = "m"
	TokenMinutePadded Token = "mm"
	TokenSecond       Token = "s"
	TokenSecondPadded Token = "ss"
)

// Meta tokens denote locale-dependent composite skeletons.
const (
	TokenFullDate            Token = "lfd"
	TokenKeyboardDate        Token = "lkd"
	TokenShortDate           Token = "lsd"
	TokenNormalDate          Token = "lnd"
	TokenNormalDateWeekday   Token = "lndw"
	TokenFullTime12h         Token = "lfta"
	TokenFullTime24h         Token = "lftd"
	TokenKeyboardDateTime12h Token = "lkdta"
	TokenKeyboardDateTime24h Token = "lkdtd"
)

var standardTokens = []Token{
	TokenYearShort, TokenYear,
	TokenMonth, TokenMonthPadded, TokenMonthShort, TokenMonthLong,
	TokenDay, TokenDayPadded,
	TokenWeekdayShort, TokenWeekdayLong, TokenWeekdayNarrow,
	TokenMeridiem,
	TokenHour24, TokenHour24Padded, TokenHour12, TokenHour12Padded,
	TokenMinute, TokenMinutePadded,
	TokenSecond, TokenSecondPadded,
}

var metaTokens = []Token{
	TokenFullDate, TokenKeyboardDate, TokenShortDate, TokenNormalDate,
	TokenNormalDateWeekday,
	TokenFullTime12h, TokenFullTime24h,
	TokenKeyboardDateTime12h, TokenKeyboardDateTime24h,
}

// knownTokens holds every token spelling ordered by descending length so the
// tokenizer always matches the longest spelling first (yyyy before yy).
var knownTokens = sortTokensByLength(append(append([]Token{}, standardTokens...), metaTokens...))

func sortTokensByLength(tokens []Token) []Token {
	sort.SliceStable(tokens, func(i, j int) bool {
		return len(tokens[i]) > len(tokens[j])
	})
	return tokens
}

func isMetaToken(token Token) bool {
	for _, meta := range metaTokens {
		if token == meta {
			return true
		}
	}
	return false
}

// fieldName identifies the parsed-field-set slot a token contributes to.
type fieldName string

const (
	fieldYear     fieldName = "year"
	fieldMonth    fieldName = "month"
	fieldDay      fieldName = "day"
	fieldHour12   fieldName = "hour12"
	fieldHour24   fieldName = "hour24"
	fieldMinute   fieldName = "minute"
	fieldSecond   fieldName = "second"
	fieldMeridiem fieldName = "meridiem"
)

var tokenFields = map[Token]fieldName{
	TokenYearShort:    fieldYear,
	TokenYear:         fieldYear,
	TokenMonth:        fieldMonth,
	TokenMonthPadded:  fieldMonth,
	TokenMonthShort:   fieldMonth,
	TokenMonthLong:    fieldMonth,
	TokenDay:          fieldDay,
	TokenDayPadded:    fieldDay,
	TokenHour24:       fieldHour24,
	TokenHour24Padded: fieldHour24,
	TokenHour12:       fieldHour12,
	TokenHour12Padded: fieldHour12,
	TokenMinute:       fieldMinute,
	TokenMinutePadded: fieldMinute,
	TokenSecond:       fieldSecond,
	TokenSecondPadded: fieldSecond,
	TokenMeridiem:     fieldMeridiem,
}

// tokenPatterns maps a token to the regular expression fragment that matches
// it during parsing. Month-name tokens are absent; their alternation depends
// on the locale and is built by the Formatter.
var tokenPatterns = map[Token]string{
	TokenYearShort:    `\d{1,4}`,
	TokenYear:         `\d{4}`,
	TokenMonth:        `\d{1,2}`,
	TokenMonthPadded:  `\d{2}`,
	TokenDay:          `\d{1,2}`,
	TokenDayPadded:    `\d{2}`,
	TokenHour24:       `\d{1,2}`,
	TokenHour24Padded: `\d{2}`,
	TokenHour12:       `\d{1,2}`,
	TokenHour12Padded: `\d{2}`,
	TokenMinute:       `\d{1,2}`,
	TokenMinutePadded: `\d{2}`,
	TokenSecond:       `\d{1,2}`,
	TokenSecondPadded: `\d{2}`,
	TokenMeridiem:     `AM|PM`,
}
