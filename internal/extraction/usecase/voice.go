package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"task-capture/internal/extraction"
	"task-capture/internal/model"
)

var reVoicePrefix = regexp.MustCompile(`(?i)^(?:(?:hey|ok|okay)[, ]+)?(?:please\s+)?(?:remind me to|remind me about|remind me that|remember to|don't forget to|i need to|i have to|i must|i should|add a task to|add task to|create a task to)\s+`)

// ParseVoice interprets a single utterance: one date resolution over the
// whole transcript and one cleaned title.
func (uc *implUseCase) ParseVoice(ctx context.Context, sc model.Scope, input extraction.VoiceInput) (extraction.VoiceOutput, error) {
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return extraction.VoiceOutput{}, extraction.ErrEmptyInput
	}
	if uc.maxChars > 0 && utf8.RuneCountInString(transcript) > uc.maxChars {
		return extraction.VoiceOutput{}, extraction.ErrInputTooLong
	}

	now := uc.now(input.Now)
	start := time.Now()
	out, err := runWithin(ctx, uc.timeout, func() extraction.VoiceOutput {
		return uc.parseVoice(transcript, now)
	})
	elapsed := time.Since(start)
	if err != nil {
		uc.metrics.ExtractionTimeouts.Inc()
		uc.l.Warnf(ctx, "uc.ParseVoice: user=%s discarded after %s: %v", sc.UserID, elapsed, err)
		return extraction.VoiceOutput{}, err
	}
	uc.metrics.ExtractionDuration.WithLabelValues("voice").Observe(elapsed.Seconds())

	uc.l.Debugf(ctx, "uc.ParseVoice: user=%s title=%q dated=%t", sc.UserID, out.Title, out.When != nil)
	return out, nil
}

func (uc *implUseCase) parseVoice(transcript string, now time.Time) extraction.VoiceOutput {
	text := preprocess(transcript)
	action := reVoicePrefix.ReplaceAllString(text, "")

	out := extraction.VoiceOutput{
		Title:    cleanTitle(action, text),
		Category: suggestCategory(text, uc.extractor.catalog),
		Priority: inferPriority(text),
	}
	if parsed, ok := uc.extractor.resolver.Resolve(text, now); ok {
		out.When = &parsed
	}
	return out
}
