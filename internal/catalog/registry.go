// Package catalog holds the catalog of known diagnostic types and the
// built-in lookup tables consulted by the policy resolver.
package catalog

import (
	"sort"
	"sync"

	"github.com/sambacha/rules-closure/internal/types"
)

// Entry describes one diagnostic type known to the catalog
type Entry struct {
	// Type is the diagnostic type (its suppress-code key)
	Type types.DiagnosticType

	// Category is the check group the type belongs to
	Category types.Category

	// Description is a short human-readable explanation
	Description string
}

// Registry holds all registered diagnostic types
type Registry struct {
	mu      sync.RWMutex
	entries map[types.DiagnosticType]*Entry
	order   []types.DiagnosticType // preserve registration order
}

// NewRegistry creates a new empty Registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[types.DiagnosticType]*Entry),
		order:   make([]types.DiagnosticType, 0),
	}
}

// Register adds an entry to the registry, replacing any entry with the same type
func (r *Registry) Register(e *Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[e.Type]; !exists {
		r.order = append(r.order, e.Type)
	}
	r.entries[e.Type] = e
}

// Get returns the entry for a type
func (r *Registry) Get(t types.DiagnosticType) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[t]
	return e, ok
}

// Has returns true if the type is registered
func (r *Registry) Has(t types.DiagnosticType) bool {
	_, ok := r.Get(t)
	return ok
}

// CategoryOf returns the category of a type, or "" if the type is unknown
func (r *Registry) CategoryOf(t types.DiagnosticType) types.Category {
	if e, ok := r.Get(t); ok {
		return e.Category
	}
	return ""
}

// All returns all registered entries in registration order
func (r *Registry) All() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Entry, 0, len(r.order))
	for _, t := range r.order {
		result = append(result, r.entries[t])
	}
	return result
}

// Categories returns the distinct categories of all registered types, sorted
func (r *Registry) Categories() []types.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[types.Category]bool)
	var result []types.Category
	for _, e := range r.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			result = append(result, e.Category)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// HasCategory returns true if any registered type belongs to c
func (r *Registry) HasCategory(c types.Category) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Category == c {
			return true
		}
	}
	return false
}

// DefaultRegistry is the global catalog, populated with the built-in types
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, e := range builtinEntries {
		r.Register(e)
	}
	return r
}
