package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeTempConfig(t, `
format: html
ocr:
  language: eng+fra
  minConfidence: 65
`)

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Format != "html" {
		t.Errorf("Expected format html, got %q", cfg.Format)
	}
	if cfg.OCR.Language != "eng+fra" {
		t.Errorf("Expected language eng+fra, got %q", cfg.OCR.Language)
	}
	if cfg.OCR.MinConfidence != 65 {
		t.Errorf("Expected minConfidence 65, got %v", cfg.OCR.MinConfidence)
	}
}

func TestLoadConfigFilePartial(t *testing.T) {
	path := writeTempConfig(t, "format: txt\n")

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Format != "txt" {
		t.Errorf("Expected format txt, got %q", cfg.Format)
	}
	if cfg.OCR.Language != "" || cfg.OCR.MinConfidence != 0 {
		t.Errorf("Expected zero OCR settings, got %+v", cfg.OCR)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	if _, err := loadConfigFile("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfigFileMalformed(t *testing.T) {
	path := writeTempConfig(t, "format: [unterminated\n")
	if _, err := loadConfigFile(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
