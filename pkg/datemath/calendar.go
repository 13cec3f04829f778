package datemath

import (
	"strconv"
	"time"
)

// daysIn returns the number of days in month of year.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// newDate builds a Date, rejecting values that do not exist on the calendar.
func newDate(year int, month time.Month, day int) (Date, bool) {
	if month < time.January || month > time.December {
		return Date{}, false
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// clampedDate builds a Date, pulling day back to the last day of the month when it overflows.
func clampedDate(year int, month time.Month, day int) Date {
	if last := daysIn(year, month); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return Date{Year: year, Month: month, Day: day}
}

// AddMonths shifts d by n months. The day is clamped to the target month's
// last day instead of rolling into the following month.
func AddMonths(d Date, n int) Date {
	total := int(d.Month) - 1 + n
	year := d.Year + total/12
	idx := total % 12
	if idx < 0 {
		idx += 12
		year--
	}
	return clampedDate(year, time.Month(idx+1), d.Day)
}

// rollForward moves an inferred-year date that already passed into next year.
func rollForward(d Date, today Date) Date {
	if !d.Before(today) {
		return d
	}
	return clampedDate(d.Year+1, d.Month, d.Day)
}

// maxCount bounds numeric offsets so "in 99999999999 hours" cannot overflow
// time arithmetic into a bogus date.
const maxCount = 10000

var numberWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11,
	"twelve": 12, "fifteen": 15, "twenty": 20, "thirty": 30,
}

// countWords is the regex alternation matching numberWords keys.
const countWords = `a|an|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|fifteen|twenty|thirty`

func parseCount(s string) (int, bool) {
	if n, ok := numberWords[s]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxCount {
		return 0, false
	}
	return n, true
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

const monthAlternation = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

const weekdayAlternation = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
