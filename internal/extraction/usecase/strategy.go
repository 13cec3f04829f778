package usecase

import (
	"regexp"
	"strings"

	"task-capture/internal/extraction"
	"task-capture/internal/model"
)

// Strategy names.
const (
	StrategyDirectRequest = "direct_request"
	StrategyScheduledItem = "scheduled_item"
	StrategyShoppingList  = "shopping_list"
	StrategyAppointment   = "appointment"
	StrategyReminder      = "reminder"
	StrategyDeadline      = "deadline"
	StrategyActionItem    = "action_item"
	StrategyHousehold     = "household"
)

const (
	// clause runs to the end of the sentence.
	clause = `[^.!?;\n]`
	// phrase additionally stops at a comma.
	phrase = `[^.!?;,\n]`

	deadlineBoost = 0.2
)

// strategy is one named heuristic. Every pattern is applied to the whole
// text; capture group 1, when present, is the action phrase and the whole
// match is the span.
type strategy struct {
	name     string
	patterns []*regexp.Regexp

	boost    float64
	priority model.Priority
	category string

	// needsDate drops matches whose span resolves to no date.
	needsDate bool
	// needsList drops matches whose action phrase is not an enumeration.
	needsList bool
}

func (s strategy) find(text string) []extraction.RawMatch {
	var out []extraction.RawMatch
	for _, p := range s.patterns {
		for _, loc := range p.FindAllStringSubmatchIndex(text, -1) {
			full := trimPhrase(text[loc[0]:loc[1]])
			action := full
			if len(loc) >= 4 && loc[2] >= 0 {
				action = trimPhrase(text[loc[2]:loc[3]])
			}
			if action == "" {
				continue
			}
			if s.needsList && !isEnumeration(action) {
				continue
			}
			out = append(out, extraction.RawMatch{FullSpan: full, ActionPhrase: action})
		}
	}
	return out
}

func trimPhrase(s string) string {
	return strings.Trim(s, " \t\n,;:.!?-\"'")
}

func isEnumeration(s string) bool {
	return strings.Contains(s, ",") || strings.Contains(strings.ToLower(s), " and ")
}

var (
	eventWords = `(?:meeting|call|party|dinner|lunch|breakfast|class|practice|game|event|interview|flight|conference|recital|concert|rehearsal)`
	careWords  = `(?:doctor's|doctors|doctor|dentist|dental|dr|vet|therapist|therapy|physio|eye|medical|hair|haircut)`
)

// defaultStrategies returns the fixed registry in evaluation order.
func defaultStrategies() []strategy {
	return []strategy{
		{
			name: StrategyDirectRequest,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(?:can|could|would|will) you (?:please )?(` + phrase + `+)`),
				regexp.MustCompile(`(?i)(?:^|[.!?,;\n]\s*)(?:please|pls)\s+(` + phrase + `+)`),
				regexp.MustCompile(`(?i)\b(?:remember|don't forget|dont forget|do not forget) to (` + phrase + `+)`),
				regexp.MustCompile(`(?i)\b((?:pick up|drop off)\s+` + phrase + `+)`),
			},
		},
		{
			name: StrategyScheduledItem,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b((?:[a-z']+\s+)?` + eventWords + `\b` + phrase + `*)`),
			},
			needsDate: true,
		},
		{
			name: StrategyShoppingList,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b((?:buy|get|grab)\s+` + clause + `+)`),
				regexp.MustCompile(`(?i)\bneeds?\s+(` + clause + `+)`),
			},
			needsList: true,
		},
		{
			name: StrategyAppointment,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(` + careWords + `\s+(?:appointment|appt|visit|checkup|check-up)\b` + phrase + `*)`),
				regexp.MustCompile(`(?i)\b((?:appointment|appt|meeting) with\s+` + phrase + `+)`),
				regexp.MustCompile(`(?i)\b((?:see|visit) the (?:doctor|dentist|vet)\b` + phrase + `*)`),
			},
		},
		{
			name: StrategyReminder,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\bremind (?:me|us|him|her|them) (?:to|about|that) (` + clause + `+)`),
				regexp.MustCompile(`(?i)\breminder(?: to| for|:)\s*(` + clause + `+)`),
			},
		},
		{
			name: StrategyDeadline,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b([a-z0-9][^.!?;,\n]*?\s+(?:is|are)\s+due\b` + phrase + `*)`),
				regexp.MustCompile(`(?i)\bdeadline (?:for|to|on)\s+(` + phrase + `+)`),
				regexp.MustCompile(`(?i)\bdeadline:\s*(` + phrase + `+)`),
			},
			boost:    deadlineBoost,
			priority: model.PriorityHigh,
		},
		{
			name: StrategyActionItem,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?m)^\s*(?:\d+[.)]|[-*•])\s+(.+)$`),
				regexp.MustCompile(`(?i)\b(?:we|you|i|they)\s+(?:should|need to|have to|must|gotta|ought to)\s+(` + phrase + `+)`),
				regexp.MustCompile(`(?i)\b(?:todo|to-do|action item|task)s?:\s*(` + phrase + `+)`),
			},
		},
		{
			name: StrategyHousehold,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b((?:clean|wash|vacuum|mop|sweep|dust|tidy up|fix|repair|replace|water|mow|take out|empty)\s+` + phrase + `+)`),
			},
			category: extraction.CategoryHousehold,
		},
	}
}
