// Package modpath converts source file paths into logical module names using
// doublestar root patterns.
package modpath

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sambacha/rules-closure/internal/policy"
)

// Resolver maps a source path to the modules owning it. A root is a
// doublestar pattern matched against the leading segments of the path; what
// remains after the matched prefix, minus its extension, is the module name.
type Resolver struct{}

// New creates a new Resolver
func New() *Resolver {
	return &Resolver{}
}

// Resolve returns one module name per matching root, in root order.
// Duplicates are kept.
func (r *Resolver) Resolve(sourcePath string, roots []string) []string {
	p := normalize(sourcePath)
	if p == "" {
		return nil
	}
	segs := strings.Split(p, "/")

	var result []string
	for _, root := range roots {
		if m, ok := matchRoot(normalize(root), segs); ok {
			result = append(result, m)
		}
	}
	return result
}

// ValidateRoots rejects roots that are not valid doublestar patterns
func (r *Resolver) ValidateRoots(roots []string) error {
	for _, root := range roots {
		if !doublestar.ValidatePattern(normalize(root)) {
			return &policy.ConfigError{Field: "root", Name: root, Reason: "not a valid glob pattern"}
		}
	}
	return nil
}

// matchRoot finds the shortest prefix of segs matched by root. At least one
// segment must remain for the module name.
func matchRoot(root string, segs []string) (string, bool) {
	if root == "" {
		return moduleName(segs), true
	}
	for i := 1; i < len(segs); i++ {
		prefix := strings.Join(segs[:i], "/")
		match, err := doublestar.Match(root, prefix)
		if err != nil {
			return "", false
		}
		if match {
			return moduleName(segs[i:]), true
		}
	}
	return "", false
}

func moduleName(segs []string) string {
	rest := strings.Join(segs, "/")
	return strings.TrimSuffix(rest, path.Ext(rest))
}

// normalize converts to forward slashes and strips leading "./" and "/"
func normalize(p string) string {
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return strings.Trim(p, "/")
}
