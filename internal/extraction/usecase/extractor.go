package usecase

import (
	"time"

	"task-capture/internal/extraction"
	"task-capture/pkg/datemath"
)

// DefaultMinConfidence drops candidates no reasonable reviewer would accept.
const DefaultMinConfidence = 0.3

// Extractor is the synchronous extraction pipeline. It holds only immutable
// tables and is safe for concurrent use.
type Extractor struct {
	resolver      *datemath.Resolver
	catalog       extraction.CategoryCatalog
	strategies    []strategy
	minConfidence float64
}

// NewExtractor builds an Extractor. A nil catalog means DefaultCatalog; a
// negative minConfidence means DefaultMinConfidence.
func NewExtractor(catalog extraction.CategoryCatalog, minConfidence float64) *Extractor {
	if catalog == nil {
		catalog = extraction.DefaultCatalog
	}
	if minConfidence < 0 {
		minConfidence = DefaultMinConfidence
	}
	return &Extractor{
		resolver:      datemath.NewResolver(),
		catalog:       catalog,
		strategies:    defaultStrategies(),
		minConfidence: minConfidence,
	}
}

// Extract returns the ranked task candidates found in text, relative to now.
// An empty result means nothing task-like was found.
func (e *Extractor) Extract(text string, now time.Time) []extraction.Candidate {
	text = preprocess(text)
	if text == "" {
		return []extraction.Candidate{}
	}

	var cands []extraction.Candidate
	for _, s := range e.strategies {
		for _, m := range s.find(text) {
			c, ok := e.build(s, m, text, now)
			if !ok {
				continue
			}
			cands = append(cands, c)
		}
	}

	cands = dedupe(cands)

	out := make([]extraction.Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Confidence < e.minConfidence {
			continue
		}
		out = append(out, c)
	}
	rank(out)
	return out
}

func (e *Extractor) build(s strategy, m extraction.RawMatch, text string, now time.Time) (extraction.Candidate, bool) {
	if isGeneric(m.ActionPhrase) {
		return extraction.Candidate{}, false
	}

	parsed, found := e.resolver.Resolve(m.FullSpan, now)
	if s.needsDate && !found {
		return extraction.Candidate{}, false
	}

	c := extraction.Candidate{
		OriginalText:      text,
		Title:             cleanTitle(m.ActionPhrase, text),
		SuggestedCategory: suggestCategory(m.FullSpan, e.catalog),
		Confidence:        clamp(score(m, found) + s.boost),
		Keywords:          extractKeywords(m.FullSpan),
		InferredPriority:  inferPriority(m.FullSpan),
		SourceSpan:        m.FullSpan,
		Strategy:          s.name,
	}
	if found {
		d := parsed.Date
		c.Date = &d
		c.Time = parsed.Time
	}
	if s.priority != "" {
		c.InferredPriority = s.priority
	}
	if s.category != "" && e.catalog.Has(s.category) {
		c.SuggestedCategory = s.category
	}
	return c, true
}
