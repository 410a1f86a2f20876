// Package config reads the optional bridgegen.toml project file.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DefaultPath is where the project config is looked up, relative to the project root
const DefaultPath = "bridgegen.toml"

const (
	// DefaultProtocol is the protocol description path, relative to the project root
	DefaultProtocol = "protocol.json"
	// DefaultBridge names the generated interface, functions and files
	DefaultBridge = "JsBridge"
	// DefaultOut is the output directory used when none is given
	DefaultOut = "generated"
)

// Config holds project-level settings. Empty fields fall back to defaults.
type Config struct {
	Protocol string `toml:"protocol"`
	Out      string `toml:"out"`
	Bridge   string `toml:"bridge"`

	// Root is the absolute project root, never read from the file
	Root string `toml:"-"`
}

// Default returns a config with every default applied
func Default() *Config {
	return &Config{
		Protocol: DefaultProtocol,
		Bridge:   DefaultBridge,
	}
}

// Load decodes the config file at path. The file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadOptional is like Load but returns defaults when the file does not exist.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.WithStack(err)
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	c.Protocol = strings.TrimSpace(c.Protocol)
	if c.Protocol == "" {
		c.Protocol = DefaultProtocol
	}
	c.Bridge = strings.TrimSpace(c.Bridge)
	if c.Bridge == "" {
		c.Bridge = DefaultBridge
	}
}
