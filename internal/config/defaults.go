package config

const (
	defaultLogDir        = "~/.local/share/carbon/logs"
	defaultAlgorithm     = "sha256"
	defaultAction        = "show"
	defaultTargetDir     = "~/carbon/duplicates"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultScanRecursive = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Scan: Scan{
			Recursive: defaultScanRecursive,
			Algorithm: defaultAlgorithm,
			Workers:   0, // 0 = one worker per CPU
		},
		Resolve: Resolve{
			DefaultAction: defaultAction,
			TargetDir:     defaultTargetDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
