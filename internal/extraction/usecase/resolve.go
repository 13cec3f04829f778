package usecase

import (
	"context"

	"task-capture/internal/extraction"
)

// Resolve resolves a bare date/time fragment on the configured clock.
func (uc *implUseCase) Resolve(ctx context.Context, input extraction.ResolveInput) (extraction.ResolveOutput, error) {
	parsed, ok := uc.dateMath.Resolve(input.Fragment, uc.now(input.Now))
	if !ok {
		uc.metrics.ResolutionsTotal.WithLabelValues("none").Inc()
		uc.l.Debugf(ctx, "uc.Resolve: no date in %q", input.Fragment)
		return extraction.ResolveOutput{}, nil
	}
	uc.metrics.ResolutionsTotal.WithLabelValues(parsed.Rule).Inc()
	return extraction.ResolveOutput{Found: true, Result: parsed}, nil
}
