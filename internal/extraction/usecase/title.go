package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	monthNames   = `(?:january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)`
	weekdayNames = `(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)`
	countWords   = `(?:\d+|a|an|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|a couple of|a few)`
	datePrefix   = `(?:(?:by|on|for|until|before|from)\s+)?`
)

// dateTimePhrases are removed from titles in order.
var dateTimePhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:(?:at|by|around|before|until)\s+)?\d{1,2}(?::\d{2})?\s*[ap]\.?m\b\.?`),
	regexp.MustCompile(`(?i)\b(?:(?:at|by|around|before|until)\s+)?(?:[01]?\d|2[0-3]):[0-5]\d\b`),
	regexp.MustCompile(`(?i)\bat\s+\d{1,2}\b`),
	regexp.MustCompile(`(?i)\b(?:(?:in|within|after)\s+)` + countWords + `\s+(?:minute|hour|day|week|month)s?(?:\s+from\s+now)?\b`),
	regexp.MustCompile(`(?i)\b` + countWords + `\s+(?:minute|hour|day|week|month)s?\s+from\s+now\b`),
	regexp.MustCompile(`(?i)\b` + datePrefix + `(?:the\s+)?end\s+of\s+(?:the\s+)?(?:week|month|day)\b`),
	regexp.MustCompile(`(?i)\b` + datePrefix + `(?:next|this)\s+(?:week|month|year|weekend)\b`),
	regexp.MustCompile(`(?i)\b` + datePrefix + `(?:(?:this|next|coming)\s+)?` + weekdayNames + `(?:\s+(?:morning|afternoon|evening|night))?\b`),
	regexp.MustCompile(`(?i)\b` + datePrefix + `(?:today|tonight|tomorrow|yesterday)\b`),
	regexp.MustCompile(`(?i)\b(?:(?:in\s+the|this|at|by)\s+)?(?:morning|afternoon|evening|noon|midday|midnight)\b`),
	regexp.MustCompile(`(?i)\b(?:at\s+)?night\b`),
	regexp.MustCompile(`(?i)\b` + datePrefix + monthNames + `\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s*\d{4})?\b`),
	regexp.MustCompile(`(?i)\b` + datePrefix + `(?:the\s+)?\d{1,2}(?:st|nd|rd|th)?\s+of\s+` + monthNames + `(?:,?\s*\d{4})?\b`),
	regexp.MustCompile(`(?i)\b` + datePrefix + `\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`),
	regexp.MustCompile(`(?i)\b` + datePrefix + `\d{4}-\d{1,2}-\d{1,2}\b`),
	regexp.MustCompile(`(?i)\b` + datePrefix + `the\s+\d{1,2}(?:st|nd|rd|th)\b`),
}

var (
	reLeadingFiller  = regexp.MustCompile(`(?i)^(?:(?:please|pls|to|and|then|also|just)\s+)+`)
	reTrailingFiller = regexp.MustCompile(`(?i)(?:\s*[,;:-]|\s+(?:and|or|by|on|at|for|to|before|until|from|the))+\s*$`)
	reSpaces         = regexp.MustCompile(`\s+`)
)

// cleanTitle strips date and time wording from an action phrase. When less
// than three characters survive it falls back to the trimmed phrase, and
// then to original.
func cleanTitle(action, original string) string {
	t := action
	for _, re := range dateTimePhrases {
		t = re.ReplaceAllString(t, " ")
	}
	t = reSpaces.ReplaceAllString(t, " ")
	t = strings.TrimSpace(t)
	t = reLeadingFiller.ReplaceAllString(t, "")
	t = reTrailingFiller.ReplaceAllString(t, "")
	t = trimPhrase(t)

	if len(t) >= minPhraseChars {
		return capitalize(t)
	}
	if a := strings.TrimSpace(action); len(a) >= minPhraseChars {
		return a
	}
	return strings.TrimSpace(original)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
