// Package config resolves the server origin the client talks to.
//
// The origin comes from the PUBLIC_APP_SERVER environment variable. A .env
// file is loaded first without overriding variables that are already set,
// and an optional YAML file can provide a fallback value.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EnvServerURL is the environment variable holding the server origin.
	EnvServerURL = "PUBLIC_APP_SERVER"
	// DefaultEnvFile is loaded from the working directory when present.
	DefaultEnvFile = ".env"
)

// Config is the client configuration.
type Config struct {
	// ServerURL is the origin every request URL is built from,
	// e.g. "https://cheatsheets.example.com".
	ServerURL string `yaml:"server_url" json:"server_url"`
}

// Load builds a Config from an optional YAML file, an optional env file and
// the process environment, in increasing order of precedence. Empty paths
// are skipped; a missing env file is not an error.
func Load(configPath, envFile string) (*Config, error) {
	cfg := &Config{}

	if configPath != "" {
		if err := cfg.readFile(configPath); err != nil {
			return nil, err
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading env file %q: %w", envFile, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvServerURL)); v != "" {
		cfg.ServerURL = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// FromEnvironment returns the process-wide configuration. The environment is
// read on the first call only; later calls return the same result.
var FromEnvironment = sync.OnceValues(func() (*Config, error) {
	return Load("", DefaultEnvFile)
})

// Validate checks that ServerURL is an absolute http(s) origin.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerURL, validation.Required, validation.By(httpURL)),
	)
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		return fmt.Errorf("error decoding config file: %w", err)
	}

	return nil
}

func httpURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use the http or https scheme")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}

	return nil
}
