// Package synthetic recognizes findings that originate from code generated by
// compiler passes rather than written by the user.
package synthetic

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sambacha/rules-closure/internal/policy"
	"github.com/sambacha/rules-closure/internal/types"
)

// Marker prefixes the source name of code injected by a compiler pass
const Marker = " [synthetic:"

// Detector reports whether a finding is in synthetic code
type Detector struct {
	patterns []string
}

// New creates a Detector. Source paths matching any of the doublestar
// patterns are treated as generated code.
func New(patterns []string) (*Detector, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, &policy.ConfigError{Field: "synthetic pattern", Name: p, Reason: "not a valid glob pattern"}
		}
	}
	return &Detector{patterns: append([]string(nil), patterns...)}, nil
}

// IsSynthetic returns true if the upstream engine flagged the finding, the
// source name carries the synthetic marker, or the path matches a pattern
func (d *Detector) IsSynthetic(f *types.Finding) bool {
	if f.Synthetic {
		return true
	}
	if strings.HasPrefix(f.SourcePath, Marker) {
		return true
	}
	if f.SourcePath == "" {
		return false
	}

	p := filepath.ToSlash(f.SourcePath)
	for _, pattern := range d.patterns {
		// Patterns were validated in New
		if match, _ := doublestar.Match(pattern, p); match {
			return true
		}
	}
	return false
}
