package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"task-capture/internal/extraction"
	"task-capture/internal/model"
)

// Extract runs the pipeline over shared content under the configured time
// budget. The pipeline itself never stops early: when the budget expires the
// caller gets ErrBudgetExpired and the late result is dropped.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	text := input.Content.PlainText()
	if text == "" {
		return extraction.ExtractOutput{}, extraction.ErrEmptyInput
	}
	if uc.maxChars > 0 && utf8.RuneCountInString(text) > uc.maxChars {
		return extraction.ExtractOutput{}, extraction.ErrInputTooLong
	}

	now := uc.now(input.Now)
	key := cacheKey(text, now)
	if cands, ok := uc.cached(key); ok {
		uc.metrics.ExtractionCacheHits.Inc()
		return extraction.ExtractOutput{Candidates: cands}, nil
	}

	start := time.Now()
	cands, err := runWithin(ctx, uc.timeout, func() []extraction.Candidate {
		return uc.extractor.Extract(text, now)
	})
	elapsed := time.Since(start)
	if err != nil {
		uc.metrics.ExtractionTimeouts.Inc()
		uc.l.Warnf(ctx, "uc.Extract: user=%s app=%s discarded after %s: %v", sc.UserID, input.Content.AppName, elapsed, err)
		return extraction.ExtractOutput{}, err
	}

	uc.metrics.ExtractionDuration.WithLabelValues("chat").Observe(elapsed.Seconds())
	for _, c := range cands {
		uc.metrics.CandidatesProduced.WithLabelValues(c.Strategy).Inc()
	}
	uc.store(key, cands)

	uc.l.Debugf(ctx, "uc.Extract: user=%s app=%s candidates=%d elapsed=%s", sc.UserID, input.Content.AppName, len(cands), elapsed)
	return extraction.ExtractOutput{Candidates: cands, Elapsed: elapsed}, nil
}

// runWithin runs fn in its own goroutine and waits at most timeout or until
// ctx ends. The goroutine always finishes and a late result is discarded.
func runWithin[T any](ctx context.Context, timeout time.Duration, fn func() T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan T, 1)
	go func() {
		done <- fn()
	}()

	select {
	case v := <-done:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, extraction.ErrBudgetExpired
	}
}

// now resolves the reference instant on the configured clock.
func (uc *implUseCase) now(t time.Time) time.Time {
	if t.IsZero() {
		return uc.dateMath.Now()
	}
	return t.In(uc.dateMath.Location())
}
