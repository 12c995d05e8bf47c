package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompactRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CompactRenderer{}).Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"src/app/main.js:12:4: ERROR: [JSC_TYPE_MISMATCH] found string, expected number",
		"src/legacy/util.js:3:1: WARNING: [JSC_DEPRECATED_PROP] property foo is deprecated",
		"<unknown>:0:0: ERROR: [JSC_BAD_FLAG] bad flag value",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
