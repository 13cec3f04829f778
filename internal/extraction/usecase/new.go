package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-capture/internal/extraction"
	"task-capture/pkg/datemath"
	pkgLog "task-capture/pkg/log"
	"task-capture/pkg/metrics"
)

// DefaultTimeout is the wall-clock budget of one extraction.
const DefaultTimeout = 100 * time.Millisecond

// Config tunes the extraction use case.
type Config struct {
	Timeout       time.Duration
	MinConfidence float64
	MaxInputChars int
	// CacheSize of zero disables the result cache.
	CacheSize int
	CacheTTL  time.Duration
	Catalog   extraction.CategoryCatalog
}

// implUseCase is the private implementation of extraction.UseCase.
type implUseCase struct {
	l         pkgLog.Logger
	extractor *Extractor
	dateMath  *datemath.Parser
	metrics   *metrics.Metrics
	cache     *expirable.LRU[string, []extraction.Candidate]
	timeout   time.Duration
	maxChars  int
}

// New creates a new extraction UseCase instance.
func New(
	l pkgLog.Logger,
	dateMath *datemath.Parser,
	m *metrics.Metrics,
	cfg Config,
) *implUseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	uc := &implUseCase{
		l:         l,
		extractor: NewExtractor(cfg.Catalog, cfg.MinConfidence),
		dateMath:  dateMath,
		metrics:   m,
		timeout:   cfg.Timeout,
		maxChars:  cfg.MaxInputChars,
	}
	if cfg.CacheSize > 0 {
		uc.cache = expirable.NewLRU[string, []extraction.Candidate](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return uc
}
