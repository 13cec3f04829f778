package datemath_test

import (
	"testing"
	"time"

	"task-capture/pkg/datemath"
)

// Wednesday, May 1, 2024 15:30 UTC.
var base = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		fragment   string
		now        time.Time
		wantDate   string
		wantTime   string // empty means no time
		confidence float64
		rule       string
	}{
		{name: "today", fragment: "today", wantDate: "2024-05-01", confidence: 0.9, rule: datemath.RuleToday},
		{name: "right now", fragment: "call him right now", wantDate: "2024-05-01", confidence: 0.9, rule: datemath.RuleToday},
		{name: "tonight has a time", fragment: "tonight", wantDate: "2024-05-01", wantTime: "20:00", confidence: 0.9, rule: datemath.RuleToday},
		{name: "tomorrow at 3 pm", fragment: "Remind me to buy groceries tomorrow at 3 PM", wantDate: "2024-05-02", wantTime: "15:00", confidence: 0.9, rule: datemath.RuleAdjacentDay},
		{name: "yesterday", fragment: "yesterday", wantDate: "2024-04-30", confidence: 0.9, rule: datemath.RuleAdjacentDay},
		{name: "plain weekday", fragment: "Friday", wantDate: "2024-05-03", confidence: 0.85, rule: datemath.RuleWeekday},
		{name: "next weekday this week", fragment: "doctor appointment next friday", wantDate: "2024-05-03", confidence: 0.9, rule: datemath.RuleWeekday},
		{name: "weekday already passed", fragment: "monday", wantDate: "2024-05-06", confidence: 0.85, rule: datemath.RuleWeekday},
		{name: "same weekday is today", fragment: "wednesday", wantDate: "2024-05-01", confidence: 0.85, rule: datemath.RuleWeekday},
		{name: "this same weekday", fragment: "this wednesday", wantDate: "2024-05-01", confidence: 0.9, rule: datemath.RuleWeekday},
		{name: "next same weekday", fragment: "next wednesday", wantDate: "2024-05-08", confidence: 0.9, rule: datemath.RuleWeekday},
		{name: "in n days", fragment: "in 3 days", wantDate: "2024-05-04", confidence: 0.8, rule: datemath.RuleDayOffset},
		{name: "after n weeks", fragment: "after two weeks", wantDate: "2024-05-15", confidence: 0.8, rule: datemath.RuleDayOffset},
		{name: "days from now", fragment: "5 days from now", wantDate: "2024-05-06", confidence: 0.8, rule: datemath.RuleDayOffset},
		{name: "in n hours", fragment: "in 2 hours", wantDate: "2024-05-01", wantTime: "17:30", confidence: 0.8, rule: datemath.RuleDuration},
		{name: "in n minutes crosses midnight", fragment: "in 45 minutes", now: time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC), wantDate: "2024-05-02", wantTime: "00:15", confidence: 0.8, rule: datemath.RuleDuration},
		{name: "month day ahead", fragment: "June 15", wantDate: "2024-06-15", confidence: 0.75, rule: datemath.RuleMonthDay},
		{name: "month day passed rolls to next year", fragment: "January 15", wantDate: "2025-01-15", confidence: 0.75, rule: datemath.RuleMonthDay},
		{name: "day of month", fragment: "on the 15th of August", wantDate: "2024-08-15", confidence: 0.75, rule: datemath.RuleMonthDay},
		{name: "month day explicit year", fragment: "march 3, 2023", wantDate: "2023-03-03", confidence: 0.75, rule: datemath.RuleMonthDay},
		{name: "numeric month first", fragment: "due 12/25", wantDate: "2024-12-25", confidence: 0.75, rule: datemath.RuleNumericDate},
		{name: "numeric day first", fragment: "25/12/24", wantDate: "2024-12-25", confidence: 0.75, rule: datemath.RuleNumericDate},
		{name: "numeric full year", fragment: "3/4/2025", wantDate: "2025-03-04", confidence: 0.75, rule: datemath.RuleNumericDate},
		{name: "numeric passed rolls forward", fragment: "4/15", wantDate: "2025-04-15", confidence: 0.75, rule: datemath.RuleNumericDate},
		{name: "month day passed with time keeps year", fragment: "January 15 at 3pm", now: time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC), wantDate: "2024-01-15", wantTime: "15:00", confidence: 0.75, rule: datemath.RuleMonthDay},
		{name: "numeric passed with time keeps year", fragment: "4/15 at 9am", wantDate: "2024-04-15", wantTime: "09:00", confidence: 0.75, rule: datemath.RuleNumericDate},
		{name: "large offset within bound", fragment: "in 10000 days", wantDate: "2051-09-17", confidence: 0.8, rule: datemath.RuleDayOffset},
		{name: "next week", fragment: "next week", wantDate: "2024-05-08", confidence: 0.7, rule: datemath.RuleRelativePeriod},
		{name: "this month", fragment: "sometime this month", wantDate: "2024-05-01", confidence: 0.7, rule: datemath.RuleRelativePeriod},
		{name: "next month clamps", fragment: "next month", now: time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC), wantDate: "2024-02-29", confidence: 0.7, rule: datemath.RuleRelativePeriod},
		{name: "end of month", fragment: "by end of the month", wantDate: "2024-05-31", confidence: 0.7, rule: datemath.RuleRelativePeriod},
		{name: "ordinal clamps to month end", fragment: "pay rent on the 31st", now: time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC), wantDate: "2024-11-30", confidence: 0.7, rule: datemath.RuleOrdinalDay},
		{name: "ordinal ahead stays in month", fragment: "the 3rd", wantDate: "2024-05-03", confidence: 0.7, rule: datemath.RuleOrdinalDay},
		{name: "ordinal passed moves to next month", fragment: "the 3rd", now: time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC), wantDate: "2024-06-03", confidence: 0.7, rule: datemath.RuleOrdinalDay},
		{name: "iso fallback", fragment: "ship it 2024-07-04", wantDate: "2024-07-04", confidence: 0.6, rule: datemath.RuleFallback},
		{name: "bare time still ahead", fragment: "at 17:45", wantDate: "2024-05-01", wantTime: "17:45", confidence: 0.6, rule: datemath.RuleTimeOnly},
		{name: "bare time already passed", fragment: "at 7", wantDate: "2024-05-02", wantTime: "07:00", confidence: 0.6, rule: datemath.RuleTimeOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			if now.IsZero() {
				now = base
			}

			got, ok := datemath.Resolve(tt.fragment, now)
			if !ok {
				t.Fatalf("Resolve(%q) found nothing", tt.fragment)
			}
			if got.Date.String() != tt.wantDate {
				t.Errorf("date = %s, want %s", got.Date, tt.wantDate)
			}
			gotTime := ""
			if got.Time != nil {
				gotTime = got.Time.String()
			}
			if gotTime != tt.wantTime {
				t.Errorf("time = %q, want %q", gotTime, tt.wantTime)
			}
			if got.Confidence != tt.confidence {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.confidence)
			}
			if got.Rule != tt.rule {
				t.Errorf("rule = %s, want %s", got.Rule, tt.rule)
			}
			if got.OriginalInput != tt.fragment {
				t.Errorf("original input = %q, want %q", got.OriginalInput, tt.fragment)
			}
		})
	}
}

func TestResolveNotFound(t *testing.T) {
	for _, fragment := range []string{
		"",
		"   ",
		"buy some milk",
		"june 31",
		"13/13",
		"at 99",
		"in 99999999999 hours",
		"in 99999999999 days",
		"in 10001 minutes",
	} {
		if got, ok := datemath.Resolve(fragment, base); ok {
			t.Errorf("Resolve(%q) = %+v, want not found", fragment, got)
		}
	}
}

func TestResolveWeekdayIsStable(t *testing.T) {
	first, ok := datemath.Resolve("Friday", base)
	if !ok {
		t.Fatal("expected Friday to resolve")
	}
	for i := 0; i < 5; i++ {
		again, _ := datemath.Resolve("Friday", base)
		if again.Date != first.Date {
			t.Fatalf("call %d: date = %s, want %s", i, again.Date, first.Date)
		}
	}
}

func TestResolveNextWeekdayNeverToday(t *testing.T) {
	for offset := 0; offset < 7; offset++ {
		now := base.AddDate(0, 0, offset)
		got, ok := datemath.Resolve("next friday", now)
		if !ok {
			t.Fatalf("offset %d: not found", offset)
		}
		if got.Date.Weekday() != time.Friday {
			t.Errorf("offset %d: weekday = %s", offset, got.Date.Weekday())
		}
		if !datemath.DateOf(now).Before(got.Date) {
			t.Errorf("offset %d: %s is not after %s", offset, got.Date, datemath.DateOf(now))
		}
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"at 3 PM", "15:00"},
		{"3:30pm", "15:30"},
		{"12am", "00:00"},
		{"12 p.m.", "12:00"},
		{"11 a.m.", "11:00"},
		{"13pm or 9am", "09:00"},
		{"meet at 14:05", "14:05"},
		{"at 9", "09:00"},
		{"in the morning", "09:00"},
		{"noon", "12:00"},
		{"afternoon", "14:00"},
		{"evening", "18:00"},
		{"night", "20:00"},
		{"midnight", "00:00"},
		{"buy apples", ""},
	}

	for _, tt := range tests {
		got := datemath.ExtractTime(tt.in)
		gotStr := ""
		if got != nil {
			gotStr = got.String()
		}
		if gotStr != tt.want {
			t.Errorf("ExtractTime(%q) = %q, want %q", tt.in, gotStr, tt.want)
		}
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		from datemath.Date
		n    int
		want string
	}{
		{datemath.Date{Year: 2024, Month: time.January, Day: 31}, 1, "2024-02-29"},
		{datemath.Date{Year: 2023, Month: time.January, Day: 31}, 1, "2023-02-28"},
		{datemath.Date{Year: 2024, Month: time.March, Day: 31}, 1, "2024-04-30"},
		{datemath.Date{Year: 2024, Month: time.March, Day: 31}, -1, "2024-02-29"},
		{datemath.Date{Year: 2024, Month: time.December, Day: 15}, 1, "2025-01-15"},
		{datemath.Date{Year: 2024, Month: time.January, Day: 10}, -13, "2022-12-10"},
	}

	for _, tt := range tests {
		if got := datemath.AddMonths(tt.from, tt.n); got.String() != tt.want {
			t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestParsedDateTimeAt(t *testing.T) {
	p := datemath.ParsedDateTime{
		Date: datemath.Date{Year: 2024, Month: time.May, Day: 2},
		Time: &datemath.ClockTime{Hour: 15, Minute: 0},
	}
	want := time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC)
	if got := p.At(time.UTC); !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got, want)
	}

	p.Time = nil
	if got := p.At(time.UTC); !got.Equal(want.Add(-15 * time.Hour)) {
		t.Errorf("At() without time = %v", got)
	}
}
