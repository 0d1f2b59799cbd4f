package engine

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"carbon/internal/dedupe"
	"carbon/internal/grouping"
	"carbon/internal/hashing"
	"carbon/internal/logging"
	"carbon/internal/scanner"
	"carbon/internal/session"
)

// ProgressFunc receives hashing progress: how many files have been
// processed out of the total enumerated by the scan. Every hashing worker
// invokes it, so implementations must be safe for concurrent use.
type ProgressFunc func(processed, total int)

// Engine runs the detection pipeline: scan, fingerprint, group.
type Engine struct {
	scanner *scanner.Scanner
	logger  *slog.Logger
	workers int
}

// New constructs an engine. workers bounds the parallel hashing pool; zero
// or negative means one worker per CPU.
func New(logger *slog.Logger, workers int) *Engine {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{
		scanner: scanner.New(logger),
		logger:  logging.NewComponentLogger(logger, "engine"),
		workers: workers,
	}
}

// Run scans root, fingerprints every regular file with the given algorithm,
// and returns a fresh session holding the descriptors and duplicate groups.
// Files that cannot be read or hashed are dropped with a diagnostic; only a
// root that cannot be enumerated fails the run.
func (e *Engine) Run(ctx context.Context, root string, recursive bool, algorithm hashing.Algorithm, progress ProgressFunc) (*session.Session, error) {
	sess := session.New(root, recursive, algorithm)
	ctx = dedupe.WithSessionID(ctx, sess.ID)
	ctx = dedupe.WithRoot(ctx, root)
	logger := logging.WithContext(ctx, e.logger)

	logger.Info("scan started",
		logging.Bool("recursive", recursive),
		logging.String("algorithm", algorithm.String()),
		logging.Int("workers", e.workers))

	entries, err := e.scanner.Scan(ctx, root, recursive)
	if err != nil {
		return nil, err
	}

	sess.Descriptors = e.fingerprintAll(logger, entries, algorithm, progress)
	sess.Groups = grouping.Collect(sess.Descriptors)

	stats := sess.Stats()
	logger.Info("scan complete",
		logging.Int("files_scanned", stats.FilesScanned),
		logging.Int("duplicate_groups", stats.DuplicateGroups),
		logging.Int64("bytes_scanned", stats.BytesScanned))

	return sess, nil
}

// fingerprintAll digests the entries on a bounded worker pool. The result
// slice is indexed by entry position, so discovery order survives whatever
// order the workers finish in. Failed files leave a nil slot that is
// compacted away afterwards.
func (e *Engine) fingerprintAll(logger *slog.Logger, entries []scanner.Entry, algorithm hashing.Algorithm, progress ProgressFunc) []dedupe.Descriptor {
	total := len(entries)
	if total == 0 {
		return nil
	}

	results := make([]*dedupe.Descriptor, total)
	jobs := make(chan int)
	var processed atomic.Int64

	var wg sync.WaitGroup
	workers := e.workers
	if workers > total {
		workers = total
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				entry := entries[i]
				fingerprint, err := hashing.FingerprintFile(entry.Path, algorithm)
				if err != nil {
					logger.Warn("skipping file",
						logging.String(logging.FieldPath, entry.Path),
						logging.Error(err))
				} else {
					results[i] = &dedupe.Descriptor{
						Path:           entry.Path,
						Size:           entry.Size,
						Fingerprint:    fingerprint,
						DiscoveryOrder: entry.DiscoveryOrder,
					}
					logger.Debug("file processed",
						logging.String(logging.FieldPath, entry.Path),
						logging.Int64("size", entry.Size))
				}
				done := processed.Add(1)
				if progress != nil {
					progress(int(done), total)
				}
			}
		}()
	}

	for i := range entries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	descriptors := make([]dedupe.Descriptor, 0, total)
	for _, desc := range results {
		if desc != nil {
			descriptors = append(descriptors, *desc)
		}
	}
	return descriptors
}
