package modpath

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sambacha/rules-closure/internal/policy"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		roots []string
		want  []string
	}{
		{
			name:  "plain root",
			path:  "src/foo/bar.js",
			roots: []string{"src"},
			want:  []string{"foo/bar"},
		},
		{
			name:  "no matching root",
			path:  "lib/foo/bar.js",
			roots: []string{"src"},
			want:  nil,
		},
		{
			name:  "empty root matches everything",
			path:  "foo/bar.js",
			roots: []string{""},
			want:  []string{"foo/bar"},
		},
		{
			name:  "glob root",
			path:  "bazel-out/k8-fastbuild/bin/foo/bar.js",
			roots: []string{"bazel-out/*/bin"},
			want:  []string{"foo/bar"},
		},
		{
			name:  "doublestar root takes shortest prefix",
			path:  "a/gen/b/gen/c.js",
			roots: []string{"**/gen"},
			want:  []string{"b/gen/c"},
		},
		{
			name:  "multiple roots in order with duplicates",
			path:  "src/foo.js",
			roots: []string{"src", "", "src"},
			want:  []string{"foo", "src/foo", "foo"},
		},
		{
			name:  "leading dot slash and trailing slash root",
			path:  "./src/foo.js",
			roots: []string{"src/"},
			want:  []string{"foo"},
		},
		{
			name:  "absolute path",
			path:  "/work/src/foo.mjs",
			roots: []string{"/work/src"},
			want:  []string{"foo"},
		},
		{
			name:  "root equal to whole path yields nothing",
			path:  "src",
			roots: []string{"src"},
			want:  nil,
		},
		{
			name:  "empty path",
			path:  "",
			roots: []string{""},
			want:  nil,
		},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.path, tt.roots)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve(%q, %v) = %v, want %v", tt.path, tt.roots, got, tt.want)
			}
		})
	}
}

func TestResolveDoesNotModifyRoots(t *testing.T) {
	roots := []string{"./src/", "bazel-out/*/bin"}
	New().Resolve("src/a.js", roots)
	if roots[0] != "./src/" || roots[1] != "bazel-out/*/bin" {
		t.Errorf("roots modified: %v", roots)
	}
}

func TestValidateRoots(t *testing.T) {
	r := New()

	if err := r.ValidateRoots([]string{"src", "bazel-out/*/bin", "**/gen", ""}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := r.ValidateRoots([]string{"src", "bad/[root"})
	var cerr *policy.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *policy.ConfigError, got %v", err)
	}
	if cerr.Name != "bad/[root" {
		t.Errorf("Name = %q, want %q", cerr.Name, "bad/[root")
	}
}

func TestResolverWithStore(t *testing.T) {
	r := New()

	_, err := policy.NewStore(policy.StoreConfig{
		Roots:         []string{"bazel-out/*/bin", "src"},
		LegacyModules: []string{"foo/bar"},
	},
		policy.WithPathResolver(r),
		policy.WithModuleSources(map[string][]string{
			"foo/bar": {"src/foo/bar.js", "bazel-out/k8-opt/bin/foo/bar.js"},
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = policy.NewStore(policy.StoreConfig{Roots: []string{"src/{a"}}, policy.WithPathResolver(r))
	if err == nil {
		t.Error("expected invalid root to be rejected at construction")
	}

	_, err = policy.NewStore(policy.StoreConfig{
		Roots:         []string{"src"},
		LegacyModules: []string{"foo/bar"},
	},
		policy.WithPathResolver(r),
		policy.WithModuleSources(map[string][]string{"foo/bar": {"lib/foo/bar.js"}}),
	)
	if err == nil {
		t.Error("expected unowned source to be rejected at construction")
	}
}
