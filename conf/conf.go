// Package conf supplies flat, string-valued configuration for corpus readers,
// loadable from YAML files.
package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Conf is a flat set of string-valued configuration entries. Readers consult
// it exactly once, at construction time; it is never read on the per-record
// path.
type Conf struct {
	values map[string]string
}

// New returns an empty Conf
func New() *Conf {
	return &Conf{values: make(map[string]string)}
}

// LoadFile reads a Conf from a YAML file containing a flat mapping of string
// keys to string values
func LoadFile(path string) (*Conf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("unable to parse configuration file %s: %w", path, err)
	}
	return &Conf{values: values}, nil
}

// Set stores a configuration entry, overwriting any previous value
func (c *Conf) Set(key string, value string) {
	if c.values == nil {
		c.values = make(map[string]string)
	}
	c.values[key] = value
}

// Get returns the value for a configuration key, and whether the key was set
func (c *Conf) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// GetDefault returns the value for a configuration key, or def if the key was
// never set
func (c *Conf) GetDefault(key string, def string) string {
	if v, ok := c.values[key]; ok {
		return v
	}
	return def
}
