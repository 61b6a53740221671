package context

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func setupTestDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "assist-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func writeTestFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dirs for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", rel, err)
	}
}

func testLimits() ScanLimits {
	return ScanLimits{
		MaxDepth:      DefaultMaxDepth,
		MaxFiles:      50,
		MaxFileBytes:  1024,
		ExcludedNames: DefaultExcludedNames,
	}
}

func TestScanMaxFilesZero(t *testing.T) {
	dir := setupTestDir(t)
	writeTestFile(t, dir, "a.txt", "a")
	writeTestFile(t, dir, "b.txt", "b")

	limits := testLimits()
	limits.MaxFiles = 0

	result, err := Scan(dir, limits)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Candidates) != 0 {
		t.Errorf("Expected no candidates with MaxFiles=0, got %d", len(result.Candidates))
	}
	if result.TotalSeen != 2 {
		t.Errorf("Expected TotalSeen=2, got %d", result.TotalSeen)
	}
}

func TestScanOversizeCountedNotCandidate(t *testing.T) {
	dir := setupTestDir(t)
	writeTestFile(t, dir, "small.txt", "ok")
	writeTestFile(t, dir, "big.txt", strings.Repeat("x", 2048))

	result, err := Scan(dir, testLimits())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(result.Candidates))
	}
	if result.Candidates[0].RelPath != "small.txt" {
		t.Errorf("Unexpected candidate: %s", result.Candidates[0].RelPath)
	}
	if result.TotalSeen != 2 {
		t.Errorf("Oversize file should still count toward total, got %d", result.TotalSeen)
	}
}

func TestScanExcludedDirsPruned(t *testing.T) {
	dir := setupTestDir(t)
	writeTestFile(t, dir, "main.go", "package main")
	writeTestFile(t, dir, "node_modules/pkg/index.js", "x")
	writeTestFile(t, dir, "build/out.bin", "x")
	writeTestFile(t, dir, ".git/config", "x")

	result, err := Scan(dir, testLimits())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	for _, c := range result.Candidates {
		for _, part := range strings.Split(c.RelPath, string(filepath.Separator)) {
			if DefaultExcludedNames[part] || strings.HasPrefix(part, ".") {
				t.Errorf("Candidate %s contains excluded component %s", c.RelPath, part)
			}
		}
	}
	if result.TotalSeen != 1 {
		t.Errorf("Excluded trees should not be counted, got TotalSeen=%d", result.TotalSeen)
	}
}

func TestScanDepthBound(t *testing.T) {
	dir := setupTestDir(t)
	writeTestFile(t, dir, "top.txt", "1")
	writeTestFile(t, dir, "a/mid.txt", "2")
	writeTestFile(t, dir, "a/b/deep.txt", "3")

	limits := testLimits()
	limits.MaxDepth = 2

	result, err := Scan(dir, limits)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	got := make(map[string]bool)
	for _, c := range result.Candidates {
		got[c.RelPath] = true
	}
	if !got["top.txt"] || !got[filepath.Join("a", "mid.txt")] {
		t.Errorf("Expected files within depth bound, got %v", got)
	}
	if got[filepath.Join("a", "b", "deep.txt")] {
		t.Error("File beyond MaxDepth should not be a candidate")
	}
}

func TestScanDeterministicOrder(t *testing.T) {
	dir := setupTestDir(t)
	for _, name := range []string{"zeta.txt", "alpha.txt", "sub/mid.txt", "beta.txt"} {
		writeTestFile(t, dir, name, "x")
	}

	first, err := Scan(dir, testLimits())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	second, err := Scan(dir, testLimits())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Scan order not deterministic:\n%v\n%v", first.Candidates, second.Candidates)
	}
}

func TestScanSymlinkNotFollowed(t *testing.T) {
	dir := setupTestDir(t)
	outside := setupTestDir(t)
	writeTestFile(t, outside, "secret.txt", "x")
	writeTestFile(t, dir, "real.txt", "x")

	if err := os.Symlink(outside, filepath.Join(dir, "link")); err != nil {
		t.Skipf("Symlinks not supported: %v", err)
	}

	result, err := Scan(dir, testLimits())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	for _, c := range result.Candidates {
		if strings.Contains(c.RelPath, "link") {
			t.Errorf("Symlinked tree was followed: %s", c.RelPath)
		}
	}
	if result.TotalSeen != 1 {
		t.Errorf("Expected only the regular file, got TotalSeen=%d", result.TotalSeen)
	}
}

func TestScanHiddenEntriesSkipped(t *testing.T) {
	dir := setupTestDir(t)
	writeTestFile(t, dir, "visible.txt", "x")
	writeTestFile(t, dir, ".hidden", "x")
	writeTestFile(t, dir, ".config/settings.yaml", "x")

	result, err := Scan(dir, testLimits())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Candidates) != 1 || result.Candidates[0].RelPath != "visible.txt" {
		t.Errorf("Hidden entries should be skipped, got %v", result.Candidates)
	}
	if result.TotalSeen != 1 {
		t.Errorf("Hidden entries should not be counted, got %d", result.TotalSeen)
	}
}

func TestScanUnreadableRoot(t *testing.T) {
	dir := setupTestDir(t)
	missing := filepath.Join(dir, "does-not-exist")

	if _, err := Scan(missing, testLimits()); err == nil {
		t.Error("Expected hard error for unreadable root")
	}
}

func TestScanCapAppliedAfterCount(t *testing.T) {
	dir := setupTestDir(t)
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt"} {
		writeTestFile(t, dir, name, "x")
	}

	limits := testLimits()
	limits.MaxFiles = 2

	result, err := Scan(dir, limits)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Candidates) != 2 {
		t.Errorf("Expected 2 candidates, got %d", len(result.Candidates))
	}
	if result.TotalSeen != 4 {
		t.Errorf("Capped files should still be counted, got %d", result.TotalSeen)
	}
}
