package usecase

import (
	"cmp"
	"slices"

	"task-capture/internal/extraction"
)

// dedupThreshold is the title word-overlap ratio above which two candidates
// are the same task.
const dedupThreshold = 0.7

// overlap is |a∩b| divided by the mean size of a and b.
func overlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shared := 0
	for w := range a {
		if _, ok := b[w]; ok {
			shared++
		}
	}
	return float64(shared) / (float64(len(a)+len(b)) / 2)
}

// dedupe keeps one candidate per task. A later duplicate replaces the kept
// one in place only when its confidence is strictly higher, so equal scores
// keep the earlier extraction.
func dedupe(cands []extraction.Candidate) []extraction.Candidate {
	kept := make([]extraction.Candidate, 0, len(cands))
	sets := make([]map[string]struct{}, 0, len(cands))

next:
	for _, c := range cands {
		ws := wordSet(c.Title)
		for i := range kept {
			if overlap(ws, sets[i]) <= dedupThreshold {
				continue
			}
			if c.Confidence > kept[i].Confidence {
				kept[i], sets[i] = c, ws
			}
			continue next
		}
		kept = append(kept, c)
		sets = append(sets, ws)
	}
	return kept
}

// rank orders candidates by descending confidence, keeping extraction order
// among equals.
func rank(cands []extraction.Candidate) {
	slices.SortStableFunc(cands, func(a, b extraction.Candidate) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})
}
