package scanner

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"carbon/internal/dedupe"
	"carbon/internal/logging"
)

// Entry describes one regular file found during a scan, before it has been
// fingerprinted.
type Entry struct {
	Path string
	Size int64
	// DiscoveryOrder is the zero-based position in traversal order. It later
	// decides which group member becomes the retained primary.
	DiscoveryOrder int
}

// Scanner enumerates regular files under a root directory.
type Scanner struct {
	logger *slog.Logger
}

// New constructs a scanner. A nil logger is replaced with a no-op logger.
func New(logger *slog.Logger) *Scanner {
	return &Scanner{logger: logging.NewComponentLogger(logger, "scanner")}
}

// Scan enumerates every regular file under root. When recursive is false,
// nested directories are skipped entirely, not descended into. Directories,
// symbolic links, and other non-regular entries are never returned.
//
// The only fatal failure is the root itself being unreadable; everything
// else degrades to a skip with a diagnostic.
func (s *Scanner) Scan(ctx context.Context, root string, recursive bool) ([]Entry, error) {
	logger := logging.WithContext(ctx, s.logger)

	info, err := os.Stat(root)
	if err != nil {
		return nil, dedupe.Wrap(dedupe.ErrDirectoryAccess, "scanner", "open root", root, err)
	}
	if !info.IsDir() {
		return nil, dedupe.Wrap(dedupe.ErrDirectoryAccess, "scanner", "open root",
			root+" is not a directory", nil)
	}

	if recursive {
		return s.walk(root, logger)
	}
	return s.list(root, logger)
}

func (s *Scanner) walk(root string, logger *slog.Logger) ([]Entry, error) {
	var entries []Entry
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return dedupe.Wrap(dedupe.ErrDirectoryAccess, "scanner", "enumerate root", root, err)
			}
			// Unreadable subtree: skip it, keep walking the rest.
			logger.Warn("skipping unreadable path",
				logging.String(logging.FieldPath, path),
				logging.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			logger.Warn("skipping unreadable file",
				logging.String(logging.FieldPath, path),
				logging.Error(err))
			return nil
		}
		entries = append(entries, Entry{Path: path, Size: info.Size(), DiscoveryOrder: len(entries)})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return entries, nil
}

func (s *Scanner) list(root string, logger *slog.Logger) ([]Entry, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, dedupe.Wrap(dedupe.ErrDirectoryAccess, "scanner", "enumerate root", root, err)
	}

	var entries []Entry
	for _, d := range dirEntries {
		if !d.Type().IsRegular() {
			continue
		}
		path := filepath.Join(root, d.Name())
		info, err := d.Info()
		if err != nil {
			logger.Warn("skipping unreadable file",
				logging.String(logging.FieldPath, path),
				logging.Error(err))
			continue
		}
		entries = append(entries, Entry{Path: path, Size: info.Size(), DiscoveryOrder: len(entries)})
	}
	return entries, nil
}
