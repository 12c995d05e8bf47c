package policy

import (
	"errors"
	"path"
	"strings"
	"testing"

	"github.com/sambacha/rules-closure/internal/types"
)

// prefixModules strips the first matching root and the extension
var prefixModules = PathResolverFunc(func(p string, roots []string) []string {
	var result []string
	for _, root := range roots {
		if rest, ok := strings.CutPrefix(p, root+"/"); ok {
			result = append(result, strings.TrimSuffix(rest, path.Ext(rest)))
		}
	}
	return result
})

type rejectingPaths struct {
	PathResolverFunc
}

func (rejectingPaths) ValidateRoots(roots []string) error {
	for _, r := range roots {
		if strings.Contains(r, "[") {
			return &ConfigError{Field: "root", Name: r, Reason: "bad pattern"}
		}
	}
	return nil
}

func TestNewStoreCopiesInput(t *testing.T) {
	roots := []string{"src"}
	legacy := []string{"old"}
	supp := map[string][]types.DiagnosticType{"lib": {"A"}}

	s, err := NewStore(StoreConfig{Roots: roots, LegacyModules: legacy, Suppressions: supp})
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	roots[0] = "changed"
	legacy[0] = "changed"
	supp["lib"][0] = "B"
	supp["other"] = []types.DiagnosticType{"A"}

	if got := s.Roots(); got[0] != "src" {
		t.Errorf("Roots = %v, want [src]", got)
	}
	if !s.IsLegacy("old") {
		t.Error("legacy module should survive caller mutation")
	}
	if !s.Suppresses("lib", "A") || s.Suppresses("lib", "B") {
		t.Error("suppressions should survive caller mutation")
	}
	if s.Suppresses("other", "A") {
		t.Error("suppressions should not see modules added later")
	}

	r := s.Roots()
	r[0] = "mutated"
	if s.Roots()[0] != "src" {
		t.Error("Roots should return a copy")
	}
}

func TestNewStoreValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StoreConfig
		opts    []StoreOption
		wantErr string
	}{
		{
			name:    "empty legacy module",
			cfg:     StoreConfig{LegacyModules: []string{""}},
			wantErr: "module name is empty",
		},
		{
			name:    "empty suppression module",
			cfg:     StoreConfig{Suppressions: map[string][]types.DiagnosticType{"": {"A"}}},
			wantErr: "module name is empty",
		},
		{
			name:    "empty suppression type",
			cfg:     StoreConfig{Suppressions: map[string][]types.DiagnosticType{"m": {""}}},
			wantErr: "empty diagnostic type",
		},
		{
			name:    "empty global type",
			cfg:     StoreConfig{GlobalSuppressions: []types.DiagnosticType{""}},
			wantErr: "diagnostic type is empty",
		},
		{
			name:    "root rejected by path resolver",
			cfg:     StoreConfig{Roots: []string{"src/["}},
			opts:    []StoreOption{WithPathResolver(rejectingPaths{prefixModules})},
			wantErr: "bad pattern",
		},
		{
			name: "source outside module",
			cfg: StoreConfig{
				Roots:        []string{"src"},
				Suppressions: map[string][]types.DiagnosticType{"lib/a": {"A"}},
			},
			opts: []StoreOption{
				WithPathResolver(prefixModules),
				WithModuleSources(map[string][]string{"lib/a": {"other/lib/a.js"}}),
			},
			wantErr: `resolves to []`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(tt.cfg, tt.opts...)
			if err == nil {
				t.Fatal("expected error")
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Errorf("expected *ConfigError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNewStoreOwnership(t *testing.T) {
	_, err := NewStore(StoreConfig{
		Roots:         []string{"gen", "src"},
		LegacyModules: []string{"lib/a"},
	},
		WithPathResolver(prefixModules),
		WithModuleSources(map[string][]string{"lib/a": {"src/lib/a.js", "gen/lib/a.js"}}),
	)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	_, err = NewStore(StoreConfig{}, WithModuleSources(map[string][]string{"m": {"a.js"}}))
	if err == nil || !strings.Contains(err.Error(), "without a path resolver") {
		t.Errorf("expected missing path resolver error, got %v", err)
	}
}

func TestStoreQueries(t *testing.T) {
	s, err := NewStore(StoreConfig{
		LegacyModules:      []string{"z", "a"},
		Suppressions:       map[string][]types.DiagnosticType{"m2": {"T"}, "m1": {"T", "U"}},
		GlobalSuppressions: []types.DiagnosticType{"G"},
	})
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	if got := strings.Join(s.LegacyModules(), ","); got != "a,z" {
		t.Errorf("LegacyModules = %q, want %q", got, "a,z")
	}
	if got := strings.Join(s.SuppressingModules("T"), ","); got != "m1,m2" {
		t.Errorf("SuppressingModules(T) = %q, want %q", got, "m1,m2")
	}
	if !s.GloballySuppressed("G") || s.GloballySuppressed("T") {
		t.Error("GloballySuppressed membership wrong")
	}
	if s.Suppresses("unknown", "T") {
		t.Error("unknown module should suppress nothing")
	}
}
