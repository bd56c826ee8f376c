package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourcesConfig names the catalog mirrors to sync from and the host
// application version to filter by, read from a YAML file (conventionally
// sources.yaml) alongside the registry snapshot.
type SourcesConfig struct {
	Mirrors     []string `yaml:"mirrors"`
	HostVersion string   `yaml:"host_version,omitempty"`
}

// LoadSourcesConfig reads and parses a sources.yaml file.
func LoadSourcesConfig(path string) (*SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources config: %w", err)
	}
	var cfg SourcesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse sources config: %w", err)
	}
	if len(cfg.Mirrors) == 0 {
		return nil, fmt.Errorf("sources config %s declares no mirrors", path)
	}
	return &cfg, nil
}
