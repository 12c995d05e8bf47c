package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sambacha/rules-closure/internal/config"
)

func TestWriteStarterConfig(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	if err := writeStarterConfig(&buf, dir, false); err != nil {
		t.Fatalf("writeStarterConfig returned error: %v", err)
	}

	configPath := filepath.Join(dir, config.FileName)
	if !strings.Contains(buf.String(), configPath) {
		t.Errorf("output should name the created file: %q", buf.String())
	}

	// The starter file must load as a valid configuration
	cfg, err := config.Load(configPath, "")
	if err != nil {
		t.Fatalf("starter config does not load: %v", err)
	}
	if cfg.ConfigPath() != configPath {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath(), configPath)
	}
}

func TestWriteStarterConfig_Existing(t *testing.T) {
	tests := []struct {
		name        string
		force       bool
		wantErr     bool
		wantContent bool // existing content kept
	}{
		{"without force", false, true, true},
		{"with force", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			configPath := filepath.Join(dir, config.FileName)
			if err := os.WriteFile(configPath, []byte("existing content"), 0644); err != nil {
				t.Fatalf("failed to create existing config: %v", err)
			}

			err := writeStarterConfig(&bytes.Buffer{}, dir, tt.force)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "--force") {
				t.Errorf("error should mention --force: %v", err)
			}

			content, _ := os.ReadFile(configPath)
			if kept := string(content) == "existing content"; kept != tt.wantContent {
				t.Errorf("existing content kept = %v, want %v", kept, tt.wantContent)
			}
		})
	}
}

func TestWriteStarterConfig_MissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	if err := writeStarterConfig(&bytes.Buffer{}, dir, false); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
