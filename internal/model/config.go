package model

import "time"

// Config holds the run configuration for a catalog scan
type Config struct {
	Scan    ScanConfig    `yaml:"scan" mapstructure:"scan"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Copy    CopyConfig    `yaml:"copy" mapstructure:"copy"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// ScanConfig controls directory traversal
type ScanConfig struct {
	Extensions     []string `yaml:"extensions" mapstructure:"extensions"`           // Empty means every file
	FollowSymlinks bool     `yaml:"follow_symlinks" mapstructure:"follow_symlinks"` // Follow symlinked files; symlinked directories are never descended
}

// CacheConfig controls the stat cache used on slow shares
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// CopyConfig selects and copies a subset of the cleaned catalog
type CopyConfig struct {
	Destination    string   `yaml:"destination" mapstructure:"destination"`           // Empty disables copying
	Where          []string `yaml:"where" mapstructure:"where"`                       // "Attribute=Value" equality terms
	MinSizeGB      float64  `yaml:"min_size_gb" mapstructure:"min_size_gb"`           // 0 disables the bound
	MaxSizeGB      float64  `yaml:"max_size_gb" mapstructure:"max_size_gb"`           // 0 disables the bound
	Workers        int      `yaml:"workers" mapstructure:"workers"`                   // Parallel copies (1 = sequential)
	FilesPerSecond float64  `yaml:"files_per_second" mapstructure:"files_per_second"` // 0 disables throttling
	Burst          int      `yaml:"burst" mapstructure:"burst"`
	Overwrite      bool     `yaml:"overwrite" mapstructure:"overwrite"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	CSVPath           string  `yaml:"csv_path" mapstructure:"csv_path"`
	Color             bool    `yaml:"color" mapstructure:"color"`
	CoverageThreshold float64 `yaml:"coverage_threshold" mapstructure:"coverage_threshold"`
	Verbose           bool    `yaml:"verbose" mapstructure:"verbose"`
}

// LoggingConfig controls structured logging
type LoggingConfig struct {
	Level    string `yaml:"level" mapstructure:"level"`       // debug, info, warn, error
	Encoding string `yaml:"encoding" mapstructure:"encoding"` // json or console
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Extensions: []string{".brw", ".dat"},
		},
		Cache: CacheConfig{
			Enabled:   false,
			Dir:       ".dataextraction/cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Copy: CopyConfig{
			Workers:        1,
			FilesPerSecond: 0,
			Burst:          1,
		},
		Output: OutputConfig{
			CSVPath:           "list_of_files.csv",
			Color:             true,
			CoverageThreshold: 0.1,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}
