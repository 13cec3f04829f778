package usecase

import (
	"strings"

	"task-capture/internal/extraction"
)

// Scoring weights.
const (
	baseConfidence = 0.3

	wordCountBonus   = 0.2
	wordCountPenalty = -0.1
	actionVerbBonus  = 0.3
	timeRefBonus     = 0.2
	requestBonus     = 0.25
	specificBonus    = 0.15
	genericPenalty   = -0.4
	shortPenalty     = -0.3
	questionPenalty  = -0.2
	urgencyBonus     = 0.1
	obligationBonus  = 0.05

	minPhraseWords = 2
	maxPhraseWords = 8
	minPhraseChars = 3
)

// score computes the confidence of a raw match. The adjustments are
// independent and the sum is clamped to [0,1]. hasDate reports whether the
// resolver found a date or time in the span.
func score(m extraction.RawMatch, hasDate bool) float64 {
	f := newFeatures(m.FullSpan)
	action := newFeatures(m.ActionPhrase)

	s := baseConfidence

	switch n := len(action.words); {
	case n >= minPhraseWords && n <= maxPhraseWords:
		s += wordCountBonus
	case n > maxPhraseWords:
		s += wordCountPenalty
	}
	if f.hasAny(actionVerbs) {
		s += actionVerbBonus
	}
	if hasDate || f.hasAny(timeRefs) {
		s += timeRefBonus
	}
	if f.hasAny(requestPhrases) {
		s += requestBonus
	}
	if f.hasAny(specificTaskWords) {
		s += specificBonus
	}
	if isGeneric(m.ActionPhrase) {
		s += genericPenalty
	}
	if len(strings.TrimSpace(m.ActionPhrase)) < minPhraseChars {
		s += shortPenalty
	}
	if isQuestion(m.FullSpan, f) {
		s += questionPenalty
	}
	if f.hasAny(urgencyWords) {
		s += urgencyBonus
	}
	if f.hasAny(obligationPhrases) {
		s += obligationBonus
	}

	return clamp(s)
}

func isGeneric(s string) bool {
	_, ok := genericTexts[strings.Join(words(s), " ")]
	return ok
}

func isQuestion(span string, f features) bool {
	return strings.Contains(span, "?") || f.startsWithAny(questionStarts)
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
