package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rogpeppe/bestfirst/wizard"
)

// config holds the settings that can be given in the --config file.
// Fields not mentioned in the file keep their defaults.
type config struct {
	Wizard wizardConfig `yaml:"wizard"`
}

type wizardConfig struct {
	Player wizard.Player `yaml:"player"`
	Hard   bool          `yaml:"hard"`
	Spells wizard.Rules  `yaml:"spells"`
}

func defaultConfig() *config {
	return &config{
		Wizard: wizardConfig{
			Player: wizard.Player{HP: 50, Mana: 500},
			Spells: wizard.DefaultRules,
		},
	}
}

// loadConfig reads the configuration file at path. An empty path
// yields the defaults.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Wizard.Player.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Wizard.Spells.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
