package resolver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"carbon/internal/dedupe"
	"carbon/internal/logging"
	"carbon/internal/resolver"
	"carbon/internal/testsupport"
)

func makeGroup(t *testing.T, dir string, names ...string) dedupe.Group {
	t.Helper()

	group := dedupe.Group{Fingerprint: "feedfeed"}
	for i, name := range names {
		path := filepath.Join(dir, name)
		testsupport.WriteFile(t, path, "duplicate payload")
		group.Members = append(group.Members, dedupe.Descriptor{
			Path:           path,
			Size:           int64(len("duplicate payload")),
			Fingerprint:    "feedfeed",
			DiscoveryOrder: i,
		})
	}
	return group
}

func TestResolveShowMutatesNothing(t *testing.T) {
	dir := t.TempDir()
	group := makeGroup(t, dir, "a.txt", "b.txt", "c.txt")

	res := resolver.New(logging.NewNop())
	report, err := res.Resolve(context.Background(), group, resolver.Request{Action: resolver.ActionShow})
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(report.Results))
	}
	if report.Failed() != 0 {
		t.Errorf("expected no failures, got %d", report.Failed())
	}
	for _, member := range group.Members {
		if !testsupport.Exists(t, member.Path) {
			t.Errorf("show removed %s", member.Path)
		}
	}
}

func TestResolveDeleteKeepsOnlyPrimary(t *testing.T) {
	dir := t.TempDir()
	group := makeGroup(t, dir, "a.txt", "b.txt", "c.txt", "d.txt")

	res := resolver.New(logging.NewNop())
	report, err := res.Resolve(context.Background(), group, resolver.Request{Action: resolver.ActionDelete})
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed() != 0 {
		t.Fatalf("expected no failures, got %d", report.Failed())
	}

	if !testsupport.Exists(t, group.Primary().Path) {
		t.Error("primary was removed")
	}
	for _, secondary := range group.Secondaries() {
		if testsupport.Exists(t, secondary.Path) {
			t.Errorf("secondary %s still on disk", secondary.Path)
		}
	}
}

func TestResolveDeleteFailureIsFileGranular(t *testing.T) {
	dir := t.TempDir()
	group := makeGroup(t, dir, "a.txt", "b.txt", "c.txt")

	// Remove the first secondary up front so its delete fails.
	if err := os.Remove(group.Members[1].Path); err != nil {
		t.Fatal(err)
	}

	res := resolver.New(logging.NewNop())
	report, err := res.Resolve(context.Background(), group, resolver.Request{Action: resolver.ActionDelete})
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed() != 1 {
		t.Fatalf("expected 1 failure, got %d", report.Failed())
	}
	if !errors.Is(report.Results[0].Err, dedupe.ErrResolutionAction) {
		t.Errorf("failure not classified as resolution action error: %v", report.Results[0].Err)
	}
	// The sibling after the failure was still processed.
	if testsupport.Exists(t, group.Members[2].Path) {
		t.Error("later secondary was not deleted after an earlier failure")
	}
	if !testsupport.Exists(t, group.Primary().Path) {
		t.Error("primary was removed")
	}
}

func TestResolveMoveRelocatesSecondaries(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target", "nested")
	group := makeGroup(t, dir, "a.txt", "b.txt")

	res := resolver.New(logging.NewNop())
	report, err := res.Resolve(context.Background(), group, resolver.Request{
		Action:    resolver.ActionMove,
		TargetDir: target,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed() != 0 {
		t.Fatalf("expected no failures, got %d", report.Failed())
	}

	moved := report.Results[0].FinalPath
	if moved != filepath.Join(target, "b.txt") {
		t.Errorf("moved to %s, want %s", moved, filepath.Join(target, "b.txt"))
	}
	if testsupport.Exists(t, group.Members[1].Path) {
		t.Error("secondary still at original path after move")
	}
	if !testsupport.Exists(t, moved) {
		t.Error("moved file missing at destination")
	}
}

func TestResolveMoveConflictingNamesGetDistinctPaths(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")

	// Same base name in two directories, same content: one group with two
	// secondaries that both want target/dup.txt.
	paths := []string{
		filepath.Join(dir, "one", "dup.txt"),
		filepath.Join(dir, "two", "dup.txt"),
		filepath.Join(dir, "three", "dup.txt"),
	}
	group := dedupe.Group{Fingerprint: "cafe"}
	for i, path := range paths {
		testsupport.WriteFile(t, path, "same bytes")
		group.Members = append(group.Members, dedupe.Descriptor{
			Path: path, Size: 10, Fingerprint: "cafe", DiscoveryOrder: i,
		})
	}

	res := resolver.New(logging.NewNop())
	report, err := res.Resolve(context.Background(), group, resolver.Request{
		Action:    resolver.ActionMove,
		TargetDir: target,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed() != 0 {
		t.Fatalf("expected no failures, got %d", report.Failed())
	}

	first := report.Results[0].FinalPath
	second := report.Results[1].FinalPath
	if first == second {
		t.Fatalf("both secondaries moved to %s", first)
	}
	if !testsupport.Exists(t, first) || !testsupport.Exists(t, second) {
		t.Error("a moved file is missing; one overwrote the other")
	}
	if second != filepath.Join(target, "dup_1.txt") {
		t.Errorf("conflict suffix: got %s, want dup_1.txt", second)
	}
}

func TestResolveHardlinkSharesPrimaryData(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "links")
	group := makeGroup(t, dir, "a.txt", "b.txt")

	res := resolver.New(logging.NewNop())
	report, err := res.Resolve(context.Background(), group, resolver.Request{
		Action:    resolver.ActionHardlink,
		TargetDir: target,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed() != 0 {
		t.Fatalf("expected no failures: %+v", report.Results)
	}

	linked := report.Results[0].FinalPath
	primaryInfo, err := os.Stat(group.Primary().Path)
	if err != nil {
		t.Fatal(err)
	}
	linkedInfo, err := os.Stat(linked)
	if err != nil {
		t.Fatal(err)
	}
	if !os.SameFile(primaryInfo, linkedInfo) {
		t.Error("link does not share the primary's stored data")
	}
	if testsupport.Exists(t, group.Members[1].Path) {
		t.Error("secondary's redundant copy was not removed")
	}
}

func TestResolveMoveWithoutTargetRejected(t *testing.T) {
	dir := t.TempDir()
	group := makeGroup(t, dir, "a.txt", "b.txt")

	res := resolver.New(logging.NewNop())
	_, err := res.Resolve(context.Background(), group, resolver.Request{Action: resolver.ActionMove})
	if err == nil {
		t.Fatal("expected error for move without target")
	}
	if !errors.Is(err, dedupe.ErrInvalidConfiguration) {
		t.Errorf("error not classified as invalid configuration: %v", err)
	}
	// Rejected before any I/O: nothing moved.
	for _, member := range group.Members {
		if !testsupport.Exists(t, member.Path) {
			t.Errorf("%s went missing", member.Path)
		}
	}
}

func TestResolveUnknownActionRejected(t *testing.T) {
	dir := t.TempDir()
	group := makeGroup(t, dir, "a.txt", "b.txt")

	res := resolver.New(logging.NewNop())
	_, err := res.Resolve(context.Background(), group, resolver.Request{Action: resolver.Action("shred")})
	if err == nil {
		t.Fatal("expected error for unknown action")
	}
	if !errors.Is(err, dedupe.ErrInvalidConfiguration) {
		t.Errorf("error not classified as invalid configuration: %v", err)
	}
}

func TestResolveAllWithFixedDecider(t *testing.T) {
	dir := t.TempDir()
	groupA := makeGroup(t, filepath.Join(dir, "ga"), "a.txt", "b.txt")
	groupB := makeGroup(t, filepath.Join(dir, "gb"), "x.txt", "y.txt", "z.txt")

	res := resolver.New(logging.NewNop())
	reports, err := res.ResolveAll(context.Background(),
		[]dedupe.Group{groupA, groupB},
		resolver.FixedDecider{Action: resolver.ActionDelete})
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if !testsupport.Exists(t, groupA.Primary().Path) || !testsupport.Exists(t, groupB.Primary().Path) {
		t.Error("a primary was removed")
	}
	for _, group := range []dedupe.Group{groupA, groupB} {
		for _, secondary := range group.Secondaries() {
			if testsupport.Exists(t, secondary.Path) {
				t.Errorf("secondary %s survived a delete pass", secondary.Path)
			}
		}
	}
}

type skipDecider struct{}

func (skipDecider) Decide(context.Context, dedupe.Group) (resolver.Decision, error) {
	return resolver.Decision{Skip: true}, nil
}

func TestResolveAllSkipLeavesGroupsUntouched(t *testing.T) {
	dir := t.TempDir()
	group := makeGroup(t, dir, "a.txt", "b.txt")

	res := resolver.New(logging.NewNop())
	reports, err := res.ResolveAll(context.Background(), []dedupe.Group{group}, skipDecider{})
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 0 {
		t.Fatalf("expected no reports for skipped group, got %d", len(reports))
	}
	for _, member := range group.Members {
		if !testsupport.Exists(t, member.Path) {
			t.Errorf("%s went missing", member.Path)
		}
	}
}

func TestResolveAllDrivenByConfig(t *testing.T) {
	dir := t.TempDir()
	group := makeGroup(t, dir, "a.txt", "b.txt")

	cfg := testsupport.NewConfig(t,
		testsupport.WithAlgorithm("md5"),
		testsupport.WithDefaultAction("move"))

	action, err := resolver.ParseAction(cfg.Resolve.DefaultAction)
	if err != nil {
		t.Fatal(err)
	}

	res := resolver.New(logging.NewNop())
	reports, err := res.ResolveAll(context.Background(),
		[]dedupe.Group{group},
		resolver.FixedDecider{Action: action, TargetDir: cfg.Resolve.TargetDir})
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0].Failed() != 0 {
		t.Fatalf("unexpected reports: %+v", reports)
	}
	if !testsupport.Exists(t, filepath.Join(cfg.Resolve.TargetDir, "b.txt")) {
		t.Error("secondary not moved into the configured target directory")
	}
}

func TestPassLockExcludesSecondHolder(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "locks", "carbon.lock")

	first := resolver.NewPassLock(lockPath)
	if err := first.Acquire(); err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer first.Release()

	second := resolver.NewPassLock(lockPath)
	if err := second.Acquire(); err == nil {
		second.Release()
		t.Fatal("second acquire succeeded while lock was held")
	}

	if err := first.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := second.Acquire(); err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	second.Release()
}
