package app

import (
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application. Domain settings
// (theme, price mode, ...) live inside the snapshot itself; only process
// concerns come from the environment.
type Config struct {
	DataPath  string `envconfig:"TALLYBOOK_DATA_PATH"`
	BackupDir string `envconfig:"TALLYBOOK_BACKUP_DIR"`
	LogFormat string `envconfig:"TALLYBOOK_LOG_FORMAT" default:"pretty"`
}

// LoadConfig reads configuration from environment variables. The default
// snapshot location is ~/.tallybook/data.json.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.DataPath = filepath.Join(home, ".tallybook", "data.json")
	}
	return &cfg, nil
}
