package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = ".snapdown.yaml"

// Runner executes the source blocks of one language.
type Runner struct {
	Lang    string            `yaml:"lang"`
	Run     string            `yaml:"run"`
	Timeout int               `yaml:"timeout"` // seconds
	Stderr  bool              `yaml:"stderr"`
	Env     map[string]string `yaml:"env"`
}

type Config struct {
	Output  string   `yaml:"output"`
	Shell   string   `yaml:"shell"`
	Include []string `yaml:"include"`
	Runners []Runner `yaml:"runners"`
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find walks up from dir looking for FileName and returns its path.
func Find(dir string) (string, error) {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found (searched from cwd to root)", FileName)
		}
		dir = parent
	}
}

// RunnerFor returns the runner for lang, or nil if the language is not executed.
func (c *Config) RunnerFor(lang string) *Runner {
	for i := range c.Runners {
		if c.Runners[i].Lang == lang {
			return &c.Runners[i]
		}
	}
	return nil
}
