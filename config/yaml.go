package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a Config from a YAML file, starting from Default and
// overlaying whatever keys the file sets. Keys the file omits keep their
// defaults; a key the file sets explicitly replaces the default, even
// with a zero value (e.g. `transfer_min_flow_threshold: 0`).
func LoadYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
