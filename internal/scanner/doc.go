// Package scanner walks a directory tree and yields one entry per regular
// file encountered.
//
// Only failure to enumerate the root itself is fatal. Unreadable files and
// subdirectories reached during a recursive walk are skipped with a
// diagnostic so one bad permission bit never aborts a whole scan. Traversal
// order is filesystem-dependent; callers must rely on set membership only.
package scanner
