package testsupport

import (
	"path/filepath"
	"testing"

	"carbon/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Resolve.TargetDir = filepath.Join(base, "duplicates")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithAlgorithm overrides the scan hash algorithm on the test config.
func WithAlgorithm(algorithm string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Scan.Algorithm = algorithm
	}
}

// WithDefaultAction overrides the batch resolution action on the test config.
func WithDefaultAction(action string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Resolve.DefaultAction = action
	}
}
