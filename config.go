package main

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SidebarWidth    int     `yaml:"sidebar_width"`
	ZoomStep        float64 `yaml:"zoom_step"`
	ScrollPadding   float64 `yaml:"scroll_padding"`
	ExportDirectory string  `yaml:"export_directory"`
}

func defaultConfig() *Config {
	return &Config{
		SidebarWidth:  32,
		ZoomStep:      0.25,
		ScrollPadding: scrollTopPadding,
	}
}

// loadConfig reads ~/.resyftrc.yaml. Any failure, including a missing
// or unparsable file, silently yields the defaults.
func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}
	data, err := os.ReadFile(filepath.Join(homeDir, ".resyftrc.yaml"))
	if err != nil {
		return config
	}
	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return config
	}
	if loaded.SidebarWidth > 0 {
		config.SidebarWidth = loaded.SidebarWidth
	}
	if loaded.ZoomStep > 0 {
		config.ZoomStep = loaded.ZoomStep
	}
	if loaded.ScrollPadding > 0 {
		config.ScrollPadding = loaded.ScrollPadding
	}
	if loaded.ExportDirectory != "" {
		value := loaded.ExportDirectory
		if strings.HasPrefix(value, "~") {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
		config.ExportDirectory = value
	}
	return config
}

// GetExportPath resolves an export filename against the configured
// directory, creating it when needed.
func (c *Config) GetExportPath(filename string) string {
	if c.ExportDirectory == "" {
		return filename
	}
	os.MkdirAll(c.ExportDirectory, 0755)
	return filepath.Join(c.ExportDirectory, filename)
}
