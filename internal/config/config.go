package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "biblioctl", "config.yml")
}

// ActivePath returns the config file actually in use: the
// BIBLIOCTL_CONFIG override when set, the default path otherwise.
// Load and Save both resolve through it so edits land in the file
// that was read.
func ActivePath() string {
	if p := os.Getenv("BIBLIOCTL_CONFIG"); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads the config from disk (or env). A missing file yields the
// defaults — login writes the file on first use.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "http://localhost:8080/api")
	v.SetDefault("defaults.language", "")
	v.SetDefault("defaults.cache_dir", defaultCacheDir())
	v.SetDefault("defaults.token_path", defaultTokenPath())

	v.SetEnvPrefix("BIBLIOCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(ActivePath())

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Defaults.CacheDir = ExpandHome(cfg.Defaults.CacheDir)
	cfg.Defaults.TokenPath = ExpandHome(cfg.Defaults.TokenPath)

	return &cfg, nil
}

// Save writes the config back to the file Load resolved.
func Save(cfg *Config) error {
	path := ActivePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultCacheDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "biblioctl", "cache")
}

func defaultTokenPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "biblioctl", "token")
}
