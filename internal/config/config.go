// Package config loads application settings from environment variables,
// optionally seeded from a .env file in the working directory.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ANIMELIBRARIAN"

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultEndpoint = "https://api.dify.ai/v1/workflows/run"
	DefaultTimeout  = 300 * time.Second
	DefaultUserName = "Anime Librarian"
)

// Config holds every runtime setting sourced from the environment. Paths may
// be overridden later by command-line flags.
type Config struct {
	Endpoint   string        // ANIMELIBRARIAN_DIFY_WORKFLOW_RUN_ENDPOINT
	APIKey     string        // ANIMELIBRARIAN_DIFY_API_KEY
	SourcePath string        // ANIMELIBRARIAN_SOURCE_PATH
	TargetPath string        // ANIMELIBRARIAN_TARGET_PATH
	Timeout    time.Duration // ANIMELIBRARIAN_API_TIMEOUT (seconds)
	UserName   string        // ANIMELIBRARIAN_USER_NAME
	LogFormat  string        // ANIMELIBRARIAN_LOG_FORMAT (console|json)
	LogFile    string        // ANIMELIBRARIAN_LOG_FILE
	Verbose    bool          // ANIMELIBRARIAN_VERBOSE
}

// Load reads the environment (after loading .env when present) and returns
// the resulting configuration. Missing paths are not an error here; they are
// validated by Validate once flag overrides have been applied.
func Load() (*Config, error) {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("dify_workflow_run_endpoint", DefaultEndpoint)
	v.SetDefault("api_timeout", int(DefaultTimeout.Seconds()))
	v.SetDefault("user_name", DefaultUserName)
	v.SetDefault("log_format", "console")

	timeout := v.GetInt("api_timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid %s_API_TIMEOUT: must be a positive number of seconds", envPrefix)
	}

	return &Config{
		Endpoint:   v.GetString("dify_workflow_run_endpoint"),
		APIKey:     v.GetString("dify_api_key"),
		SourcePath: v.GetString("source_path"),
		TargetPath: v.GetString("target_path"),
		Timeout:    time.Duration(timeout) * time.Second,
		UserName:   v.GetString("user_name"),
		LogFormat:  v.GetString("log_format"),
		LogFile:    v.GetString("log_file"),
		Verbose:    v.GetBool("verbose"),
	}, nil
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	if c.SourcePath == "" {
		return fmt.Errorf("source path not set: use --source or set %s_SOURCE_PATH", envPrefix)
	}
	if c.TargetPath == "" {
		return fmt.Errorf("target path not set: use --target or set %s_TARGET_PATH", envPrefix)
	}
	return nil
}
