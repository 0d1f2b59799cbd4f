package resolver

import (
	"path/filepath"
	"testing"

	"carbon/internal/testsupport"
)

func TestUniqueDestinationFreeSlot(t *testing.T) {
	dir := t.TempDir()
	got, err := uniqueDestination(dir, "report.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, "report.txt") {
		t.Errorf("got %s, want untouched name", got)
	}
}

func TestUniqueDestinationAppendsSuffixBeforeExtension(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "report.txt"), "taken")

	got, err := uniqueDestination(dir, "report.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, "report_1.txt") {
		t.Errorf("got %s, want report_1.txt", got)
	}
}

func TestUniqueDestinationIncrementsUntilFree(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "report.txt"), "taken")
	testsupport.WriteFile(t, filepath.Join(dir, "report_1.txt"), "taken")
	testsupport.WriteFile(t, filepath.Join(dir, "report_2.txt"), "taken")

	got, err := uniqueDestination(dir, "report.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, "report_3.txt") {
		t.Errorf("got %s, want report_3.txt", got)
	}
}

func TestUniqueDestinationWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "README"), "taken")

	got, err := uniqueDestination(dir, "README")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, "README_1") {
		t.Errorf("got %s, want README_1", got)
	}
}
