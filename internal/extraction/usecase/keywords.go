package usecase

import (
	"slices"

	"task-capture/internal/model"
)

// inferPriority maps urgency and importance words to a priority. Urgent
// wording beats relaxed wording, which beats importance wording.
func inferPriority(text string) model.Priority {
	f := newFeatures(text)
	switch {
	case f.hasAny(urgentPriorityWords):
		return model.PriorityUrgent
	case f.hasAny(lowPriorityWords):
		return model.PriorityLow
	case f.hasAny(highPriorityWords):
		return model.PriorityHigh
	}
	return model.PriorityMedium
}

// extractKeywords returns the importance words found in text, sorted.
func extractKeywords(text string) []string {
	f := newFeatures(text)
	out := make([]string, 0, 4)
	for _, w := range importanceWords {
		if f.has(w) {
			out = append(out, w)
		}
	}
	slices.Sort(out)
	return out
}
