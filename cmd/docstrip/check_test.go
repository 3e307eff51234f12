package docstrip

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sceneryeditorx/docstrip/internal/report"
)

func TestCheckPaths_UnreadableCountsAsMissing(t *testing.T) {
	dir := t.TempDir()
	with := filepath.Join(dir, "with.h")
	if err := os.WriteFile(with, []byte(testBanner+"x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	absent := filepath.Join(dir, "absent.h")

	results := checkPaths([]string{with, absent})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Banner || results[0].Reason != "matched" {
		t.Fatalf("banner file misreported: %+v", results[0])
	}
	if results[1].Banner || results[1].Reason != "unreadable" {
		t.Fatalf("unreadable file misreported: %+v", results[1])
	}
	if !report.AnyMissing(results) {
		t.Fatal("unreadable file must count as missing for strict mode")
	}
}

func TestCheckPaths_ReasonsForPassthroughs(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "short.h")
	if err := os.WriteFile(short, []byte("one line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	results := checkPaths([]string{short})
	if len(results) != 1 || results[0].Banner || results[0].Reason != "too short" {
		t.Fatalf("short file misreported: %+v", results)
	}
}
