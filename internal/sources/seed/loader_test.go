package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

func TestLoadValidSeedFile(t *testing.T) {
	path := writeSeedFile(t, `
links:
  - title: Example
    url: https://example.com
  - title: Docs
    url: https://docs.example.com
`)

	entries, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Title != "Example" || entries[0].URL != "https://example.com" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
}

func TestLoadDropsInvalidEntries(t *testing.T) {
	path := writeSeedFile(t, `
links:
  - title: ""
    url: https://no-title.example
  - title: Kept
    url: "  https://kept.example  "
  - title: "   "
    url: https://blank-title.example
`)

	entries, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Title != "Kept" || entries[0].URL != "https://kept.example" {
		t.Errorf("entries[0] = %+v, want trimmed Kept entry", entries[0])
	}
}

func TestLoadAllInvalidFails(t *testing.T) {
	path := writeSeedFile(t, `
links:
  - title: ""
    url: ""
`)

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("expected error when no entry survives validation")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewLoader("/nonexistent/seed.yaml").Load(); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeSeedFile(t, "links: [not: closed")

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
