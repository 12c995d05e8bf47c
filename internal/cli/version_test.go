package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestVersionCmd_OutputsVersion(t *testing.T) {
	tests := []struct {
		name    string
		commit  string
		date    string
		want    []string
		notWant []string
	}{
		{
			name:   "release build",
			commit: "abc1234",
			date:   "2026-01-01",
			want:   []string{"jswarn version 1.2.3", "commit: abc1234", "built:  2026-01-01"},
		},
		{
			name:    "dev build",
			commit:  "none",
			date:    "unknown",
			want:    []string{"jswarn version 1.2.3"},
			notWant: []string{"commit:", "built:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Capture stdout
			oldStdout := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w

			SetVersionInfo("1.2.3", tt.commit, tt.date)
			versionCmd.Run(versionCmd, []string{})

			w.Close()
			os.Stdout = oldStdout

			var buf bytes.Buffer
			io.Copy(&buf, r)
			output := buf.String()

			for _, s := range tt.want {
				if !strings.Contains(output, s) {
					t.Errorf("output should contain %q, got %q", s, output)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(output, s) {
					t.Errorf("output should not contain %q, got %q", s, output)
				}
			}
		})
	}
}

func TestRootCmd_LogLevel(t *testing.T) {
	defer func() { logLevelFlag = "warn" }()

	tests := []struct {
		level   string
		wantErr bool
	}{
		{"warn", false},
		{"debug", false},
		{"TRACE", false},
		{"loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logLevelFlag = tt.level
			err := rootCmd.PersistentPreRunE(rootCmd, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("PersistentPreRunE(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if newLogger() == nil {
				t.Error("newLogger returned nil")
			}
		})
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := map[string]bool{"check": false, "explain": false, "types": false, "init": false, "version": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q is not registered", name)
		}
	}
}
