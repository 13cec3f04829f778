package datemath

import (
	"strings"
	"time"
)

// Resolver turns free-text fragments into concrete dates through an ordered
// cascade of recognizers. The first recognizer that matches wins.
// A Resolver holds no mutable state and is safe for concurrent use.
type Resolver struct {
	rules []rule
}

// NewResolver returns a Resolver with the built-in cascade.
func NewResolver() *Resolver {
	return &Resolver{rules: defaultRules()}
}

var defaultResolver = NewResolver()

// Resolve runs the default Resolver.
func Resolve(fragment string, now time.Time) (ParsedDateTime, bool) {
	return defaultResolver.Resolve(fragment, now)
}

// Resolve returns the date and optional time expressed by fragment relative to
// now. The boolean is false only when fragment contains no recognizable date
// or time expression.
func (r *Resolver) Resolve(fragment string, now time.Time) (ParsedDateTime, bool) {
	s := normalize(fragment)
	if s == "" {
		return ParsedDateTime{}, false
	}

	clock := ExtractTime(s)

	for _, rl := range r.rules {
		m, ok := rl.fn(s, now)
		if !ok {
			continue
		}
		if m.clock == nil {
			m.clock = clock
		}
		// Only a date-only value that already passed moves to next year.
		if m.inferredYear && m.clock == nil {
			m.date = rollForward(m.date, DateOf(now))
		}
		return ParsedDateTime{
			Date:          m.date,
			Time:          m.clock,
			Confidence:    clamp01(m.confidence),
			OriginalInput: fragment,
			Rule:          rl.name,
		}, true
	}

	// A bare time refers to its next occurrence.
	if clock != nil {
		date := DateOf(now)
		if clock.Hour < now.Hour() || (clock.Hour == now.Hour() && clock.Minute < now.Minute()) {
			date = date.AddDays(1)
		}
		return ParsedDateTime{
			Date:          date,
			Time:          clock,
			Confidence:    ConfidenceTimeOnly,
			OriginalInput: fragment,
			Rule:          RuleTimeOnly,
		}, true
	}

	return ParsedDateTime{}, false
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
