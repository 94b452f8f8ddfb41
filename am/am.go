// Package am owns application configuration: TOML files merged with
// environment variables, live reload, and persisted edits with backups.
package am

// Config represents the core blockpress configuration
type Config struct {
	Site     SiteConfig     `mapstructure:"site"`
	Database DatabaseConfig `mapstructure:"database"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Editor   EditorConfig   `mapstructure:"editor"`
	Log      LogConfig      `mapstructure:"log"`
}

// SiteConfig identifies the remote publishing endpoint
type SiteConfig struct {
	BaseURL     string `mapstructure:"base_url"`     // e.g., "https://example.com/api"
	Username    string `mapstructure:"username"`     // basic-auth user (application passwords)
	AppPassword string `mapstructure:"app_password"` // set via BLOCKPRESS_SITE_APP_PASSWORD
	Token       string `mapstructure:"token"`        // bearer token, used when set (overrides basic auth)
}

// DatabaseConfig configures the local SQLite library
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// SyncConfig configures background remote checks
type SyncConfig struct {
	IntervalSeconds int  `mapstructure:"interval_seconds"` // 0 = manual only
	CheckOnStartup  bool `mapstructure:"check_on_startup"`
	TimeoutSeconds  int  `mapstructure:"timeout_seconds"` // per-request timeout
}

// EditorConfig configures editing defaults
type EditorConfig struct {
	DefaultTitle        string `mapstructure:"default_title"`
	DefaultHeadingLevel int    `mapstructure:"default_heading_level"`
	AutosaveSeconds     int    `mapstructure:"autosave_seconds"` // 0 = save only on demand
}

// LogConfig configures log output
type LogConfig struct {
	JSON bool `mapstructure:"json"` // structured JSON instead of colored console
}

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)
