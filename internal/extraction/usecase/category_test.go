package usecase

import (
	"testing"

	"task-capture/internal/extraction"
	"task-capture/internal/model"
)

func TestSuggestCategory(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		catalog extraction.CategoryCatalog
		want    string
	}{
		{name: "household", text: "buy groceries", want: extraction.CategoryHousehold},
		{name: "health", text: "dentist on friday", want: extraction.CategoryHealth},
		{name: "work", text: "prepare slides for the client", want: extraction.CategoryWork},
		{name: "family", text: "pick up the kids", want: extraction.CategoryFamily},
		{name: "finance", text: "pay the electricity bill", want: extraction.CategoryFinance},
		{name: "first match wins", text: "fix the office printer", want: extraction.CategoryHousehold},
		{name: "default", text: "read a novel", want: extraction.CategoryPersonal},
		{name: "unknown id skipped", text: "dentist on friday", catalog: extraction.StaticCatalog{extraction.CategoryHousehold, extraction.CategoryPersonal}, want: extraction.CategoryPersonal},
		{name: "no fallback in catalog", text: "read a novel", catalog: extraction.StaticCatalog{extraction.CategoryWork}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := tt.catalog
			if catalog == nil {
				catalog = extraction.DefaultCatalog
			}
			if got := suggestCategory(tt.text, catalog); got != tt.want {
				t.Errorf("suggestCategory(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestInferPriority(t *testing.T) {
	tests := []struct {
		text string
		want model.Priority
	}{
		{"call the plumber asap", model.PriorityUrgent},
		{"no rush, whenever", model.PriorityLow},
		{"important: renew passport", model.PriorityHigh},
		{"buy bread", model.PriorityMedium},
		{"urgent but no rush", model.PriorityUrgent},
		{"eventually, it is due", model.PriorityLow},
	}

	for _, tt := range tests {
		if got := inferPriority(tt.text); got != tt.want {
			t.Errorf("inferPriority(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	got := extractKeywords("Don't forget, it's urgent and due tomorrow")
	want := []string{"don't forget", "due", "tomorrow", "urgent"}

	if len(got) != len(want) {
		t.Fatalf("extractKeywords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("extractKeywords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := extractKeywords("feed the cat"); got == nil || len(got) != 0 {
		t.Errorf("extractKeywords() = %#v, want empty non-nil slice", got)
	}
}
