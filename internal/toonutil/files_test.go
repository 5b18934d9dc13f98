package toonutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindTOONFiles(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(rel, content string) {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	mustWrite("a.toon", "name: Alice\n")
	mustWrite("nested/b.toon", "name: Bob\n")
	mustWrite("notes.txt", "ignored\n")
	mustWrite(".hidden/c.toon", "name: Hidden\n")

	files, err := FindTOONFiles(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 .toon files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Ext(f) != ".toon" {
			t.Errorf("unexpected non-.toon file: %s", f)
		}
	}
}
