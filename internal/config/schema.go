package config

// Config is the top-level biblioctl configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api" yaml:"api"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// DefaultsConfig holds default values for operations.
type DefaultsConfig struct {
	Language  string `mapstructure:"language" yaml:"language,omitempty"`
	CacheDir  string `mapstructure:"cache_dir" yaml:"cache_dir"`
	TokenPath string `mapstructure:"token_path" yaml:"token_path"`
}
