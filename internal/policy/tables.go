package policy

import "github.com/sambacha/rules-closure/internal/types"

// TableSpec lists the contents of the static lookup tables
type TableSpec struct {
	AlwaysIgnore          []types.DiagnosticType
	CheckerExclusiveKeys  []string
	IgnoreForSynthetic    []types.DiagnosticType
	IgnoreForLegacy       []types.DiagnosticType
	CheckerOnlyCategories []types.Category
}

// Tables holds the static lookup tables. A Tables value is never modified
// after NewTables returns.
type Tables struct {
	alwaysIgnore          types.TypeSet
	checkerExclusiveKeys  types.StringSet
	ignoreForSynthetic    types.TypeSet
	ignoreForLegacy       types.TypeSet
	checkerOnlyCategories types.CategorySet
}

// NewTables builds Tables from a TableSpec. Its slices are not retained.
func NewTables(spec TableSpec) *Tables {
	return &Tables{
		alwaysIgnore:          types.NewTypeSet(spec.AlwaysIgnore...),
		checkerExclusiveKeys:  types.NewStringSet(spec.CheckerExclusiveKeys...),
		ignoreForSynthetic:    types.NewTypeSet(spec.IgnoreForSynthetic...),
		ignoreForLegacy:       types.NewTypeSet(spec.IgnoreForLegacy...),
		checkerOnlyCategories: types.NewCategorySet(spec.CheckerOnlyCategories...),
	}
}

// AlwaysIgnored returns true if t is never reported
func (t *Tables) AlwaysIgnored(typ types.DiagnosticType) bool {
	return t.alwaysIgnore.Has(typ)
}

// CheckerExclusive returns true if the key is owned by the standalone checker
func (t *Tables) CheckerExclusive(key string) bool {
	return t.checkerExclusiveKeys.Has(key)
}

// IgnoredForSynthetic returns true if typ is not reported in generated code
func (t *Tables) IgnoredForSynthetic(typ types.DiagnosticType) bool {
	return t.ignoreForSynthetic.Has(typ)
}

// IgnoredForLegacy returns true if typ is not reported in legacy modules
func (t *Tables) IgnoredForLegacy(typ types.DiagnosticType) bool {
	return t.ignoreForLegacy.Has(typ)
}

// CheckerOnly returns true if the category is checked only by the standalone checker
func (t *Tables) CheckerOnly(c types.Category) bool {
	return t.checkerOnlyCategories.Has(c)
}
