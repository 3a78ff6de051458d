package main

import (
	"io"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPort    = 8626
	DefaultDataDir = ""
)

// Config represents the configuration settings used to start classifyd.
type Config struct {
	Port    uint   `toml:"port"`
	DataDir string `toml:"data-dir"`
}

// NewConfig creates a new Config object with the default settings.
func NewConfig() *Config {
	return &Config{
		Port:    DefaultPort,
		DataDir: DefaultDataDir,
	}
}

// Decode reads the contents of a configuration file and populates the config
// object. Properties not set in the file keep their prior values.
func (c *Config) Decode(r io.Reader) error {
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return err
	}
	return nil
}
