package am

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "blockpress.db")

	// Sync defaults
	v.SetDefault("sync.interval_seconds", 300)
	v.SetDefault("sync.check_on_startup", true)
	v.SetDefault("sync.timeout_seconds", 30)

	// Editor defaults
	v.SetDefault("editor.default_title", "Untitled")
	v.SetDefault("editor.default_heading_level", 2)
	v.SetDefault("editor.autosave_seconds", 0)

	// Log defaults
	v.SetDefault("log.json", false)
}

// BindSensitiveEnvVars explicitly binds sensitive configuration to environment variables
func BindSensitiveEnvVars(v *viper.Viper) {
	v.BindEnv("site.app_password", "BLOCKPRESS_SITE_APP_PASSWORD")
	v.BindEnv("site.token", "BLOCKPRESS_SITE_TOKEN")
}
