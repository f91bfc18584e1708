package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// fileConfig is the YAML config-file schema. Explicit flags take
// precedence over values read from the file.
//
//	format: txt
//	ocr:
//	  language: eng+fra
//	  minConfidence: 60
type fileConfig struct {
	Format string `yaml:"format"`

	OCR struct {
		Language      string  `yaml:"language"`
		MinConfidence float64 `yaml:"minConfidence"`
	} `yaml:"ocr"`
}

// loadConfigFile reads and parses a YAML config file.
func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}
