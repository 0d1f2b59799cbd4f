package scanner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"carbon/internal/dedupe"
	"carbon/internal/logging"
	"carbon/internal/scanner"
	"carbon/internal/testsupport"
)

func scanPaths(t *testing.T, root string, recursive bool) []string {
	t.Helper()

	s := scanner.New(logging.NewNop())
	entries, err := s.Scan(context.Background(), root, recursive)
	if err != nil {
		t.Fatalf("Scan(%q, recursive=%v): %v", root, recursive, err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		rel, err := filepath.Rel(root, entry.Path)
		if err != nil {
			t.Fatal(err)
		}
		paths = append(paths, rel)
	}
	sort.Strings(paths)
	return paths
}

func TestScanRecursiveVisitsNestedFiles(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{
		"top.txt":             "a",
		"sub/mid.txt":         "b",
		"sub/deeper/leaf.txt": "c",
	})

	got := scanPaths(t, root, true)
	want := []string{
		filepath.Join("sub", "deeper", "leaf.txt"),
		filepath.Join("sub", "mid.txt"),
		"top.txt",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestScanNonRecursiveSkipsNestedDirectories(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{
		"top.txt":     "a",
		"sub/mid.txt": "b",
	})

	got := scanPaths(t, root, false)
	if len(got) != 1 || got[0] != "top.txt" {
		t.Fatalf("non-recursive scan returned %v, want only top.txt", got)
	}
}

func TestScanIgnoresNonRegularEntries(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "real.txt"), "content")
	if err := os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got := scanPaths(t, root, true)
	if len(got) != 1 || got[0] != "real.txt" {
		t.Fatalf("scan returned %v, want only real.txt", got)
	}
}

func TestScanSkipsUnreadableSubdirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not restrict root")
	}

	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{
		"visible.txt":        "a",
		"blocked/hidden.txt": "b",
		"sibling/ok.txt":     "c",
	})
	blocked := filepath.Join(root, "blocked")
	if err := os.Chmod(blocked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(blocked, 0o755) })

	got := scanPaths(t, root, true)
	want := []string{filepath.Join("sibling", "ok.txt"), "visible.txt"}
	if len(got) != len(want) {
		t.Fatalf("scan returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("scan returned %v, want %v", got, want)
		}
	}
}

func TestScanMissingRootFails(t *testing.T) {
	s := scanner.New(logging.NewNop())
	_, err := s.Scan(context.Background(), filepath.Join(t.TempDir(), "gone"), true)
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !errors.Is(err, dedupe.ErrDirectoryAccess) {
		t.Errorf("error not classified as directory access: %v", err)
	}
}

func TestScanRootMustBeDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	testsupport.WriteFile(t, file, "x")

	s := scanner.New(logging.NewNop())
	_, err := s.Scan(context.Background(), file, false)
	if err == nil {
		t.Fatal("expected error when root is a regular file")
	}
	if !errors.Is(err, dedupe.ErrDirectoryAccess) {
		t.Errorf("error not classified as directory access: %v", err)
	}
}

func TestScanAssignsDiscoveryOrder(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{
		"a.txt": "1",
		"b.txt": "2",
		"c.txt": "3",
	})

	s := scanner.New(logging.NewNop())
	entries, err := s.Scan(context.Background(), root, true)
	if err != nil {
		t.Fatal(err)
	}
	for i, entry := range entries {
		if entry.DiscoveryOrder != i {
			t.Errorf("entry %d has discovery order %d", i, entry.DiscoveryOrder)
		}
	}
}

func TestScanRecordsSizes(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "five.txt"), "12345")

	s := scanner.New(logging.NewNop())
	entries, err := s.Scan(context.Background(), root, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].Size != 5 {
		t.Errorf("size = %d, want 5", entries[0].Size)
	}
}
