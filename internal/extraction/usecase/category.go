package usecase

import "task-capture/internal/extraction"

// suggestCategory returns the first category of categoryTable whose keywords
// occur in text. Ids unknown to the catalog are skipped and the fallback is
// personal.
func suggestCategory(text string, catalog extraction.CategoryCatalog) string {
	f := newFeatures(text)
	for _, rule := range categoryTable {
		if !catalog.Has(rule.id) {
			continue
		}
		if f.hasAny(rule.keywords) {
			return rule.id
		}
	}
	if catalog.Has(extraction.CategoryPersonal) {
		return extraction.CategoryPersonal
	}
	return ""
}
