package usecase

import (
	"slices"
	"strings"
	"time"

	"task-capture/internal/extraction"
)

// cacheKey identifies a result by normalized text and the minute it was
// computed for. Relative dates only change across minutes.
func cacheKey(text string, now time.Time) string {
	return now.Truncate(time.Minute).Format(time.RFC3339) + "|" + strings.Join(strings.Fields(text), " ")
}

func (uc *implUseCase) cached(key string) ([]extraction.Candidate, bool) {
	if uc.cache == nil {
		return nil, false
	}
	cands, ok := uc.cache.Get(key)
	if !ok {
		return nil, false
	}
	return slices.Clone(cands), true
}

func (uc *implUseCase) store(key string, cands []extraction.Candidate) {
	if uc.cache == nil {
		return
	}
	uc.cache.Add(key, slices.Clone(cands))
}
