package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Environment variable names recognized by the converter.
const (
	AccessTokenVar = "FIGMA_ACCESS_TOKEN"
	FileKeyVar     = "FIGMA_FILE_KEY"
)

// Config holds the settings required to fetch and convert a Figma file.
type Config struct {
	AccessToken string
	FileKey     string
}

// Load reads configuration from the process environment, with a .env file in
// the working directory filling in unset variables.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit env file path. The file may be absent;
// a file that exists but cannot be parsed is an error. Process environment
// variables take precedence over file values.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file %q: %w", path, err)
	}

	return &Config{
		AccessToken: v.GetString(AccessTokenVar),
		FileKey:     v.GetString(FileKeyVar),
	}, nil
}

// Validate reports the first missing required setting, naming the environment
// variable that supplies it. It is called before any network request so a
// bad configuration never leaves the process.
func (c *Config) Validate() error {
	if c.AccessToken == "" {
		return fmt.Errorf("%s not found in environment variables", AccessTokenVar)
	}
	if c.FileKey == "" {
		return fmt.Errorf("%s not found in environment variables", FileKeyVar)
	}
	return nil
}
