package extraction

import (
	"context"

	"task-capture/internal/model"
)

// UseCase defines the business logic interface for the extraction domain.
type UseCase interface {
	// Extract scans shared text and returns ranked task candidates.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// ParseVoice returns the best single interpretation of a voice transcript.
	ParseVoice(ctx context.Context, sc model.Scope, input VoiceInput) (VoiceOutput, error)

	// Resolve resolves a date/time fragment.
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)
}

// CategoryCatalog is the canonical list of category ids owned by the category
// repository. Suggestions are only ever ids the catalog knows.
type CategoryCatalog interface {
	Has(id string) bool
	IDs() []string
}
