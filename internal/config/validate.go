package config

import (
	"fmt"
)

var knownAlgorithms = map[string]struct{}{
	"md5":    {},
	"sha256": {},
}

var knownActions = map[string]struct{}{
	"show":     {},
	"delete":   {},
	"move":     {},
	"hardlink": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateResolve(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScan() error {
	if _, ok := knownAlgorithms[c.Scan.Algorithm]; !ok {
		return fmt.Errorf("scan.algorithm must be one of md5, sha256; got %q", c.Scan.Algorithm)
	}
	return nil
}

func (c *Config) validateResolve() error {
	if _, ok := knownActions[c.Resolve.DefaultAction]; !ok {
		return fmt.Errorf("resolve.default_action must be one of show, delete, move, hardlink; got %q", c.Resolve.DefaultAction)
	}
	needsTarget := c.Resolve.DefaultAction == "move" || c.Resolve.DefaultAction == "hardlink"
	if needsTarget && c.Resolve.TargetDir == "" {
		return fmt.Errorf("resolve.target_dir must be set when resolve.default_action is %q", c.Resolve.DefaultAction)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json; got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
