// Package config provides the project configuration of loc-po-helper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file, looked up in the
// root of the project.
const FileName = "loc-po-helper.yaml"

// HelperConfig holds the project configuration.
type HelperConfig struct {
	Project         string   `yaml:"project"`
	ReportBugsTo    string   `yaml:"report_bugs_to"`
	AppName         string   `yaml:"app_name"`
	AppVersion      string   `yaml:"app_version"`
	IgnoredMessages []string `yaml:"ignored_messages"`
	PotFile         string   `yaml:"pot_file"`
}

// Default returns the built-in configuration.
func Default() *HelperConfig {
	ignored := []string{"IDOK"}
	for i := 20; i <= 28; i++ {
		ignored = append(ignored, fmt.Sprintf("MSG_%03d", i))
	}
	ignored = append(ignored, "MSG_118")
	return &HelperConfig{
		Project:         "Rufus",
		ReportBugsTo:    "pete@akeo.ie",
		AppName:         "Pollock",
		AppVersion:      "v1.1",
		IgnoredMessages: ignored,
		PotFile:         "rufus.pot",
	}
}

// Validate checks the configuration.
func (c *HelperConfig) Validate() error {
	if c.PotFile == "" {
		return errors.New("pot_file is required")
	}
	if !strings.EqualFold(filepath.Ext(c.PotFile), ".pot") {
		return fmt.Errorf("pot_file '%s' must have a .pot extension", c.PotFile)
	}
	return nil
}

// loadConfigFromFile reads one YAML file. Missing files are an error here;
// Load decides which files are optional.
func loadConfigFromFile(name string) (*HelperConfig, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var cfg HelperConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("fail to parse %s: %w", name, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays the non-empty fields of override onto base.
func mergeConfigs(base, override *HelperConfig) *HelperConfig {
	merged := *base
	if override == nil {
		return &merged
	}
	if override.Project != "" {
		merged.Project = override.Project
	}
	if override.ReportBugsTo != "" {
		merged.ReportBugsTo = override.ReportBugsTo
	}
	if override.AppName != "" {
		merged.AppName = override.AppName
	}
	if override.AppVersion != "" {
		merged.AppVersion = override.AppVersion
	}
	if override.IgnoredMessages != nil {
		merged.IgnoredMessages = override.IgnoredMessages
	}
	if override.PotFile != "" {
		merged.PotFile = override.PotFile
	}
	return &merged
}

// Load returns the configuration of the project in projectDir: the
// defaults, overlaid by FileName in projectDir when present, overlaid by
// configFile. An explicit configFile must exist.
func Load(configFile, projectDir string) (*HelperConfig, error) {
	cfg := Default()

	var files []string
	if projectDir != "" {
		name := filepath.Join(projectDir, FileName)
		if _, err := os.Stat(name); err == nil {
			files = append(files, name)
		} else {
			log.Debugf("no %s in %s", FileName, projectDir)
		}
	}
	if configFile != "" {
		files = append(files, configFile)
	}

	for _, name := range files {
		fileCfg, err := loadConfigFromFile(name)
		if err != nil {
			return nil, err
		}
		log.Debugf("loaded config from %s", name)
		cfg = mergeConfigs(cfg, fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
