package datemath

import (
	"regexp"
	"strconv"
)

var (
	reClock12 = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*([ap])\.?m\b`)
	reClock24 = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	reAtHour  = regexp.MustCompile(`\bat\s+(\d{1,2})\b`)
	reNamed   = regexp.MustCompile(`\b(midnight|noon|midday|morning|afternoon|evening|tonight|night)\b`)
)

var namedPeriods = map[string]ClockTime{
	"morning":   {Hour: 9},
	"noon":      {Hour: 12},
	"midday":    {Hour: 12},
	"afternoon": {Hour: 14},
	"evening":   {Hour: 18},
	"night":     {Hour: 20},
	"tonight":   {Hour: 20},
	"midnight":  {Hour: 0},
}

// ExtractTime finds a time of day in s. It runs independently of date
// resolution and never affects date confidence. Out-of-range numbers are
// skipped rather than treated as errors.
func ExtractTime(s string) *ClockTime {
	s = normalize(s)

	for _, m := range reClock12.FindAllStringSubmatch(s, -1) {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour < 1 || hour > 12 {
			continue
		}
		minute, ok := parseMinute(m[2])
		if !ok {
			continue
		}
		switch {
		case m[3] == "p" && hour != 12:
			hour += 12
		case m[3] == "a" && hour == 12:
			hour = 0
		}
		return &ClockTime{Hour: hour, Minute: minute}
	}

	if m := reClock24.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return &ClockTime{Hour: hour, Minute: minute}
	}

	for _, m := range reAtHour.FindAllStringSubmatch(s, -1) {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour > 23 {
			continue
		}
		return &ClockTime{Hour: hour}
	}

	if m := reNamed.FindStringSubmatch(s); m != nil {
		c := namedPeriods[m[1]]
		return &c
	}
	return nil
}

func parseMinute(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	minute, err := strconv.Atoi(s)
	if err != nil || minute > 59 {
		return 0, false
	}
	return minute, true
}
