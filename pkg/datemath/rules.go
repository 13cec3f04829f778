package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Confidence tiers per recognizer. Ties are never re-scored.
const (
	ConfidenceToday          = 0.9
	ConfidenceAdjacentDay    = 0.9
	ConfidenceWeekday        = 0.85
	ConfidenceQualifiedDay   = 0.9
	ConfidenceDayOffset      = 0.8
	ConfidenceDuration       = 0.8
	ConfidenceMonthDay       = 0.75
	ConfidenceNumericDate    = 0.75
	ConfidenceRelativePeriod = 0.7
	ConfidenceOrdinalDay     = 0.7
	ConfidenceFallback       = 0.6
	ConfidenceTimeOnly       = 0.6
)

// Rule names reported in ParsedDateTime.Rule.
const (
	RuleToday          = "today"
	RuleAdjacentDay    = "adjacent_day"
	RuleWeekday        = "weekday"
	RuleDayOffset      = "day_offset"
	RuleDuration       = "duration"
	RuleMonthDay       = "month_day"
	RuleNumericDate    = "numeric_date"
	RuleRelativePeriod = "relative_period"
	RuleOrdinalDay     = "ordinal_day"
	RuleFallback       = "fallback"
	RuleTimeOnly       = "time_only"
)

type match struct {
	date       Date
	clock      *ClockTime
	confidence float64
	// inferredYear marks a date whose year was not written out. The resolver
	// rolls it into next year when it has passed and no time was given.
	inferredYear bool
}

// rule is one recognizer in the cascade. s is the lowercased fragment.
type rule struct {
	name string
	fn   func(s string, now time.Time) (match, bool)
}

func defaultRules() []rule {
	return []rule{
		{name: RuleToday, fn: matchToday},
		{name: RuleAdjacentDay, fn: matchAdjacentDay},
		{name: RuleWeekday, fn: matchWeekday},
		{name: RuleDayOffset, fn: matchDayOffset},
		{name: RuleDuration, fn: matchDuration},
		{name: RuleMonthDay, fn: matchMonthDay},
		{name: RuleNumericDate, fn: matchNumericDate},
		{name: RuleRelativePeriod, fn: matchRelativePeriod},
		{name: RuleOrdinalDay, fn: matchOrdinalDay},
		{name: RuleFallback, fn: matchFallback},
	}
}

var (
	reToday       = regexp.MustCompile(`\b(today|tonight|now)\b`)
	reAdjacentDay = regexp.MustCompile(`\b(tomorrow|yesterday)\b`)
	reWeekday     = regexp.MustCompile(`\b(?:(next|this|coming)\s+)?(` + weekdayAlternation + `)\b`)
	reDayOffset   = regexp.MustCompile(`\b(?:in|after)\s+(\d+|` + countWords + `)\s+(days?|weeks?|months?)\b`)
	reFromNow     = regexp.MustCompile(`\b(\d+|` + countWords + `)\s+(days?|weeks?|months?)\s+from\s+now\b`)
	reDuration    = regexp.MustCompile(`\b(?:in|after)\s+(\d+|` + countWords + `)\s+(hours?|hrs?|minutes?|mins?)\b`)
	reMonthDay    = regexp.MustCompile(`\b(` + monthAlternation + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s+(\d{4})\b)?`)
	reDayMonth    = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthAlternation + `)\b(?:,?\s+(\d{4})\b)?`)
	reNumericDate = regexp.MustCompile(`(?:^|[^\d/])(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?(?:[^\d/]|$)`)
	rePeriod      = regexp.MustCompile(`\b(next|this)\s+(week|month|year)\b`)
	reEndOf       = regexp.MustCompile(`\bend\s+of\s+(?:the\s+)?(week|month)\b`)
	reOrdinalDay  = regexp.MustCompile(`\bthe\s+(\d{1,2})(?:st|nd|rd|th)\b`)
	reISODate     = regexp.MustCompile(`\b\d{4}[-/.]\d{1,2}[-/.]\d{1,2}\b`)
)

func matchToday(s string, now time.Time) (match, bool) {
	// "3 days from now" belongs to the offset rules.
	if !reToday.MatchString(strings.ReplaceAll(s, "from now", "")) {
		return match{}, false
	}
	return match{date: DateOf(now), confidence: ConfidenceToday}, true
}

func matchAdjacentDay(s string, now time.Time) (match, bool) {
	m := reAdjacentDay.FindStringSubmatch(s)
	if m == nil {
		return match{}, false
	}
	offset := 1
	if m[1] == "yesterday" {
		offset = -1
	}
	return match{date: DateOf(now).AddDays(offset), confidence: ConfidenceAdjacentDay}, true
}

// matchWeekday resolves to the nearest occurrence of the named weekday.
// Same weekday means today, unless "next" pushes it a full week out.
func matchWeekday(s string, now time.Time) (match, bool) {
	m := reWeekday.FindStringSubmatch(s)
	if m == nil {
		return match{}, false
	}
	qualifier, target := m[1], weekdays[m[2]]

	days := (int(target) - int(now.Weekday()) + 7) % 7
	if days == 0 && qualifier == "next" {
		days = 7
	}

	confidence := ConfidenceWeekday
	if qualifier != "" {
		confidence = ConfidenceQualifiedDay
	}
	return match{date: DateOf(now).AddDays(days), confidence: confidence}, true
}

func matchDayOffset(s string, now time.Time) (match, bool) {
	found := append(reDayOffset.FindAllStringSubmatch(s, -1), reFromNow.FindAllStringSubmatch(s, -1)...)
	for _, m := range found {
		n, ok := parseCount(m[1])
		if !ok {
			continue
		}
		today := DateOf(now)
		var d Date
		switch {
		case strings.HasPrefix(m[2], "day"):
			d = today.AddDays(n)
		case strings.HasPrefix(m[2], "week"):
			d = today.AddDays(n * 7)
		default:
			d = AddMonths(today, n)
		}
		return match{date: d, confidence: ConfidenceDayOffset}, true
	}
	return match{}, false
}

func matchDuration(s string, now time.Time) (match, bool) {
	for _, m := range reDuration.FindAllStringSubmatch(s, -1) {
		n, ok := parseCount(m[1])
		if !ok {
			continue
		}
		unit := time.Minute
		if strings.HasPrefix(m[2], "h") {
			unit = time.Hour
		}
		at := now.Add(time.Duration(n) * unit)
		return match{
			date:       DateOf(at),
			clock:      &ClockTime{Hour: at.Hour(), Minute: at.Minute()},
			confidence: ConfidenceDuration,
		}, true
	}
	return match{}, false
}

func matchMonthDay(s string, now time.Time) (match, bool) {
	today := DateOf(now)
	try := func(monthName, dayStr, yearStr string) (match, bool) {
		day, err := strconv.Atoi(dayStr)
		if err != nil {
			return match{}, false
		}
		year := today.Year
		if yearStr != "" {
			if year, err = strconv.Atoi(yearStr); err != nil {
				return match{}, false
			}
		}
		d, ok := newDate(year, monthNames[monthName], day)
		if !ok {
			return match{}, false
		}
		return match{date: d, confidence: ConfidenceMonthDay, inferredYear: yearStr == ""}, true
	}

	for _, m := range reMonthDay.FindAllStringSubmatch(s, -1) {
		if res, ok := try(m[1], m[2], m[3]); ok {
			return res, true
		}
	}
	for _, m := range reDayMonth.FindAllStringSubmatch(s, -1) {
		if res, ok := try(m[2], m[1], m[3]); ok {
			return res, true
		}
	}
	return match{}, false
}

// matchNumericDate reads MM/DD[/YY[YY]]. The first group is the month when it
// is 12 or less, otherwise the groups are read day-first.
func matchNumericDate(s string, now time.Time) (match, bool) {
	today := DateOf(now)
	for _, m := range reNumericDate.FindAllStringSubmatch(s, -1) {
		first, err1 := strconv.Atoi(m[1])
		second, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			continue
		}
		month, day := first, second
		if first > 12 {
			month, day = second, first
		}

		year := today.Year
		if m[3] != "" {
			y, err := strconv.Atoi(m[3])
			if err != nil {
				continue
			}
			if len(m[3]) == 2 {
				y += 2000
			}
			year = y
		}

		d, ok := newDate(year, time.Month(month), day)
		if !ok {
			continue
		}
		return match{date: d, confidence: ConfidenceNumericDate, inferredYear: m[3] == ""}, true
	}
	return match{}, false
}

func matchRelativePeriod(s string, now time.Time) (match, bool) {
	today := DateOf(now)
	if m := rePeriod.FindStringSubmatch(s); m != nil {
		next := m[1] == "next"
		d := today
		switch m[2] {
		case "week":
			if next {
				d = today.AddDays(7)
			}
		case "month":
			if next {
				d = AddMonths(today, 1)
			}
		case "year":
			if next {
				d = AddMonths(today, 12)
			}
		}
		return match{date: d, confidence: ConfidenceRelativePeriod}, true
	}

	if m := reEndOf.FindStringSubmatch(s); m != nil {
		var d Date
		if m[1] == "week" {
			d = today.AddDays((int(time.Sunday) - int(now.Weekday()) + 7) % 7)
		} else {
			d = clampedDate(today.Year, today.Month, 31)
		}
		return match{date: d, confidence: ConfidenceRelativePeriod}, true
	}
	return match{}, false
}

// matchOrdinalDay reads "the 15th" as a day of the current month, or of the
// next month once that day has passed. Days beyond the month end clamp to it.
func matchOrdinalDay(s string, now time.Time) (match, bool) {
	today := DateOf(now)
	for _, m := range reOrdinalDay.FindAllStringSubmatch(s, -1) {
		day, err := strconv.Atoi(m[1])
		if err != nil || day < 1 || day > 31 {
			continue
		}
		d := clampedDate(today.Year, today.Month, day)
		if d.Before(today) {
			d = AddMonths(Date{Year: today.Year, Month: today.Month, Day: day}, 1)
		}
		return match{date: d, confidence: ConfidenceOrdinalDay}, true
	}
	return match{}, false
}

var isoLayouts = []string{"2006-1-2", "2006/1/2", "2006.1.2"}

var fallbackLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Monday, January 2, 2006",
	"Mon, Jan 2, 2006",
	"01-02-2006",
	"20060102",
}

// matchFallback gives the standard layout parser a last chance. time.Parse
// matches month and day names case-insensitively, so s can stay lowercased.
func matchFallback(s string, now time.Time) (match, bool) {
	for _, token := range reISODate.FindAllString(s, -1) {
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, token); err == nil {
				return match{date: DateOf(t), confidence: ConfidenceFallback}, true
			}
		}
	}

	whole := strings.Trim(s, " .!?")
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, whole); err == nil {
			return match{date: DateOf(t), confidence: ConfidenceFallback}, true
		}
	}
	return match{}, false
}
