package types

// DiagnosticType identifies one specific kind of finding. Its string value is
// the stable suppress-code key (e.g., "JSC_UNUSED_LOCAL_ASSIGNMENT").
type DiagnosticType string

// Key returns the suppress-code key for the type
func (t DiagnosticType) Key() string {
	return string(t)
}

// IsZero returns true if the type is absent
func (t DiagnosticType) IsZero() bool {
	return t == ""
}

// Category identifies a class of checks (e.g., "lintChecks").
// Categories need no registration: any value is a valid category.
type Category string

// TypeSet is a set of diagnostic types
type TypeSet map[DiagnosticType]struct{}

// NewTypeSet creates a TypeSet containing the given types
func NewTypeSet(ts ...DiagnosticType) TypeSet {
	s := make(TypeSet, len(ts))
	for _, t := range ts {
		s[t] = struct{}{}
	}
	return s
}

// Has returns true if t is in the set
func (s TypeSet) Has(t DiagnosticType) bool {
	_, ok := s[t]
	return ok
}

// StringSet is a set of strings (module names, suppress keys)
type StringSet map[string]struct{}

// NewStringSet creates a StringSet containing the given values
func NewStringSet(vs ...string) StringSet {
	s := make(StringSet, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// Has returns true if v is in the set
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// CategorySet is a set of categories
type CategorySet map[Category]struct{}

// NewCategorySet creates a CategorySet containing the given categories
func NewCategorySet(cs ...Category) CategorySet {
	s := make(CategorySet, len(cs))
	for _, c := range cs {
		s[c] = struct{}{}
	}
	return s
}

// Has returns true if c is in the set
func (s CategorySet) Has(c Category) bool {
	_, ok := s[c]
	return ok
}
