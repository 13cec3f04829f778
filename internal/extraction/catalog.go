package extraction

import "slices"

// Category ids known to the default catalog.
const (
	CategoryHousehold = "household"
	CategoryHealth    = "health"
	CategoryWork      = "work"
	CategoryFamily    = "family"
	CategoryFinance   = "finance"
	CategoryPersonal  = "personal"
)

// StaticCatalog is a fixed CategoryCatalog.
type StaticCatalog []string

// DefaultCatalog mirrors the categories shipped with the task store.
var DefaultCatalog = StaticCatalog{
	CategoryHousehold,
	CategoryHealth,
	CategoryWork,
	CategoryFamily,
	CategoryFinance,
	CategoryPersonal,
}

func (c StaticCatalog) Has(id string) bool { return slices.Contains(c, id) }

func (c StaticCatalog) IDs() []string { return slices.Clone(c) }
