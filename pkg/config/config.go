package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/agenthands/hexa/pkg/stdlib"
)

// FileName is the per-user config file looked up in the home directory.
const FileName = ".hd.yaml"

// Config holds the calculator settings shared by the CLI and embedders.
type Config struct {
	Width     int    `yaml:"width"`      // 64 or 32
	Format    string `yaml:"format"`     // dec, hex, oct or bin
	Quote     bool   `yaml:"quote"`      // print the postfix stream instead of evaluating
	RPN       bool   `yaml:"rpn"`        // input is already postfix, e.g. "1 2 +"
	CacheSize int    `yaml:"cache_size"` // compiled programs kept; 0 disables the cache
	History   string `yaml:"history"`    // REPL history file; empty disables history
}

func Default() *Config {
	c := &Config{
		Width:     64,
		Format:    "dec",
		CacheSize: 128,
	}
	if home, err := os.UserHomeDir(); err == nil {
		c.History = filepath.Join(home, ".hd_history")
	}
	return c
}

// DefaultPath returns $HOME/.hd.yaml, or "" when there is no home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, FileName)
}

// Load reads a YAML file over the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	return Parse(data, path)
}

// Parse decodes YAML over the defaults; name is used in error messages.
func Parse(data []byte, name string) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "config: parse %s", name)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config: %s", name)
	}
	return c, nil
}

// LoadOptional loads path if it exists and returns the defaults otherwise.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) Validate() error {
	if c.Width != 32 && c.Width != 64 {
		return errors.Errorf("width must be 32 or 64, got %d", c.Width)
	}
	if _, err := stdlib.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.CacheSize < 0 {
		return errors.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

// OutputFormat returns the parsed Format. Call Validate first.
func (c *Config) OutputFormat() stdlib.Format {
	f, _ := stdlib.ParseFormat(c.Format)
	return f
}
