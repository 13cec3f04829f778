package extraction

import (
	"time"

	"task-capture/internal/model"
	"task-capture/pkg/datemath"
)

// Candidate is an unconfirmed task guess extracted from free text.
type Candidate struct {
	OriginalText      string              `json:"original_text"`
	Title             string              `json:"title"`
	Date              *datemath.Date      `json:"date,omitempty"`
	Time              *datemath.ClockTime `json:"time,omitempty"`
	SuggestedCategory string              `json:"suggested_category,omitempty"`
	Confidence        float64             `json:"confidence"`
	Keywords          []string            `json:"keywords"`
	InferredPriority  model.Priority      `json:"inferred_priority"`
	SourceSpan        string              `json:"source_span"`
	Strategy          string              `json:"strategy"`
}

// RawMatch is one hit of a strategy pattern before enrichment.
type RawMatch struct {
	FullSpan     string
	ActionPhrase string
}

// ExtractInput is the input for candidate extraction.
// A zero Now means the use case clock.
type ExtractInput struct {
	Content model.SharedContent
	Now     time.Time
}

// ExtractOutput is the ranked candidate list.
type ExtractOutput struct {
	Candidates []Candidate
	Elapsed    time.Duration
}

// VoiceInput is a single transcribed utterance.
type VoiceInput struct {
	Transcript string
	Now        time.Time
}

// VoiceOutput is the single best interpretation of an utterance.
type VoiceOutput struct {
	Title    string
	Category string
	Priority model.Priority
	// When is nil when the utterance names no date or time.
	When *datemath.ParsedDateTime
}

// ResolveInput asks for a bare date/time resolution.
type ResolveInput struct {
	Fragment string
	Now      time.Time
}

// ResolveOutput reports the resolution. Found is false when the fragment holds
// no date or time expression and the caller should ask for one manually.
type ResolveOutput struct {
	Found  bool
	Result datemath.ParsedDateTime
}
