package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeResolve()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeScan() {
	c.Scan.Algorithm = strings.ToLower(strings.TrimSpace(c.Scan.Algorithm))
	if c.Scan.Algorithm == "" {
		c.Scan.Algorithm = defaultAlgorithm
	}
	if c.Scan.Workers < 0 {
		c.Scan.Workers = 0
	}
}

func (c *Config) normalizeResolve() {
	c.Resolve.DefaultAction = strings.ToLower(strings.TrimSpace(c.Resolve.DefaultAction))
	if c.Resolve.DefaultAction == "" {
		c.Resolve.DefaultAction = defaultAction
	}
	c.Resolve.TargetDir = strings.TrimSpace(c.Resolve.TargetDir)
	if c.Resolve.TargetDir != "" {
		expanded, err := expandPath(c.Resolve.TargetDir)
		if err == nil {
			c.Resolve.TargetDir = expanded
		}
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
