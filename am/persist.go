package am

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/blockpress/errors"
	"github.com/teranos/blockpress/logger"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before
// modifying a config file
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		logger.Warnw("Failed to delete old config backup", "path", back3, "error", err)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// loadOrInitializeConfigMap loads the user config file as a raw map, or
// starts an empty one if the file does not exist yet
func loadOrInitializeConfigMap() (map[string]interface{}, string, error) {
	configPath := UserConfigPath()
	if configPath == "" {
		return nil, "", errors.New("could not determine home directory")
	}

	var config map[string]interface{}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, "", errors.Wrap(err, "failed to parse config")
		}
	} else {
		config = make(map[string]interface{})
	}

	return config, configPath, nil
}

// saveConfigMap writes the config map to disk with backup
func saveConfigMap(config map[string]interface{}, configPath string) error {
	if err := createBackup(configPath); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	// Mark this as our own write to prevent reload loops
	globalWatcherMu.Lock()
	if globalWatcher != nil {
		globalWatcher.MarkOwnWrite()
	}
	globalWatcherMu.Unlock()

	if err := os.WriteFile(configPath, data, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to write config")
	}

	return nil
}

// updateSection sets one key inside a named section of the user config file
func updateSection(section, key string, value interface{}) error {
	config, configPath, err := loadOrInitializeConfigMap()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	var sec map[string]interface{}
	if s, ok := config[section].(map[string]interface{}); ok {
		sec = s
	} else {
		sec = make(map[string]interface{})
	}

	sec[key] = value
	config[section] = sec

	return saveConfigMap(config, configPath)
}

// UpdateSiteBaseURL updates site.base_url in the user config
func UpdateSiteBaseURL(baseURL string) error {
	return updateSection("site", "base_url", baseURL)
}

// UpdateSiteUsername updates site.username in the user config
func UpdateSiteUsername(username string) error {
	return updateSection("site", "username", username)
}

// UpdateSyncInterval updates sync.interval_seconds in the user config
func UpdateSyncInterval(seconds int) error {
	return updateSection("sync", "interval_seconds", seconds)
}

// UpdateDatabasePath updates database.path in the user config
func UpdateDatabasePath(path string) error {
	return updateSection("database", "path", path)
}
