// Package config handles loading and saving user configuration for journal.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/f3rmion/journal/internal/api"
	"github.com/f3rmion/journal/internal/journal"
	"github.com/f3rmion/journal/internal/reveal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Keys understood by Load. Each one can also be set through the environment
// with the JOURNAL_ prefix, e.g. JOURNAL_API_URL.
const (
	KeyAPIURL     = "api_url"
	KeyTimeout    = "timeout"
	KeyCharDelay  = "typing.char_delay"
	KeyPhasePause = "typing.phase_pause"
	KeyContact    = "contact"
	KeyLogFile    = "log_file"
	KeyVerbose    = "verbose"
	KeyConfigDir  = "config_dir"

	EnvPrefix = "JOURNAL"

	ConfigFileName  = "config.yaml"
	PromptsFileName = "prompts.yaml"
	LogFileName     = "journal.log"
)

// DefaultContact is shown on the Contact view when nothing is configured.
const DefaultContact = "hello@journal.local"

// Config holds all user configuration for journal.
type Config struct {
	APIURL     string
	Timeout    time.Duration
	Typing     reveal.Timing
	Contact    string
	LogFile    string
	Verbose    bool
	ConfigDir  string
	ConfigFile string // Config file actually read, empty if none
	Prompts    []journal.ExamplePrompt
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	timing := reveal.DefaultTiming()
	v.SetDefault(KeyAPIURL, api.DefaultBaseURL)
	v.SetDefault(KeyTimeout, api.DefaultTimeout)
	v.SetDefault(KeyCharDelay, timing.CharDelay)
	v.SetDefault(KeyPhasePause, timing.PhasePause)
	v.SetDefault(KeyContact, DefaultContact)
}

// Load reads configuration from v. If dir contains config.yaml it is merged
// below environment variables and flags bound to v; prompts.yaml, if present,
// replaces the built-in example prompts.
func Load(v *viper.Viper, dir string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{ConfigDir: dir}

	if dir != "" {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
			cfg.ConfigFile = path
		}
	}

	cfg.APIURL = v.GetString(KeyAPIURL)
	cfg.Timeout = v.GetDuration(KeyTimeout)
	cfg.Typing = reveal.Timing{
		CharDelay:  v.GetDuration(KeyCharDelay),
		PhasePause: v.GetDuration(KeyPhasePause),
	}
	cfg.Contact = v.GetString(KeyContact)
	cfg.Verbose = v.GetBool(KeyVerbose)

	cfg.LogFile = v.GetString(KeyLogFile)
	if cfg.LogFile == "" && dir != "" {
		cfg.LogFile = filepath.Join(dir, LogFileName)
	}

	cfg.Prompts = journal.DefaultPrompts()
	if dir != "" {
		prompts, err := LoadPrompts(filepath.Join(dir, PromptsFileName))
		switch {
		case err == nil && len(prompts) > 0:
			cfg.Prompts = prompts
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api_url %q: %w", c.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api_url %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api_url %q: missing host", c.APIURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Typing.CharDelay <= 0 || c.Typing.PhasePause <= 0 {
		return fmt.Errorf("typing delays must be positive, got %s/%s", c.Typing.CharDelay, c.Typing.PhasePause)
	}
	return nil
}

// LoadPrompts loads example prompts from a YAML file.
func LoadPrompts(path string) ([]journal.ExamplePrompt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prompts file: %w", err)
	}

	var prompts struct {
		Prompts []journal.ExamplePrompt `yaml:"prompts"`
	}
	if err := yaml.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("parsing prompts file: %w", err)
	}

	for i, p := range prompts.Prompts {
		if p.Text == "" {
			return nil, fmt.Errorf("parsing prompts file: prompt %d has no text", i+1)
		}
	}

	return prompts.Prompts, nil
}

// SavePrompts saves example prompts to a YAML file.
func SavePrompts(path string, prompts []journal.ExamplePrompt) error {
	data := struct {
		Prompts []journal.ExamplePrompt `yaml:"prompts"`
	}{Prompts: prompts}

	out, err := yaml.Marshal(&data)
	if err != nil {
		return fmt.Errorf("marshaling prompts: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing prompts file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "journal"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "journal"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
