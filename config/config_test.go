package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigFromFile_MissingFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)

	config, err := loadConfigFromFile(configPath)
	if err == nil {
		t.Fatal("loadConfigFromFile should return error for missing file")
	}
	if config != nil {
		t.Fatal("loadConfigFromFile should return nil config for missing file")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	validYAML := `project: "Rufus"
report_bugs_to: "l10n@example.org"
ignored_messages: ["IDOK", "MSG_118"]
`
	if err := os.WriteFile(configPath, []byte(validYAML), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := Load("", tmpDir)
	if err != nil {
		t.Fatalf("Load should succeed for valid file, got error: %v", err)
	}
	if config.ReportBugsTo != "l10n@example.org" {
		t.Fatalf("expected report_bugs_to from file, got '%s'", config.ReportBugsTo)
	}
	if len(config.IgnoredMessages) != 2 {
		t.Fatalf("expected 2 ignored messages, got %v", config.IgnoredMessages)
	}
	// Fields absent from the file keep their defaults.
	if config.PotFile != "rufus.pot" {
		t.Fatalf("expected default pot_file, got '%s'", config.PotFile)
	}
	if config.AppName != "Pollock" {
		t.Fatalf("expected default app_name, got '%s'", config.AppName)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	config, err := Load("", t.TempDir())
	if err != nil {
		t.Fatalf("Load should not fail without a config file: %v", err)
	}
	if config.Project != "Rufus" {
		t.Fatalf("expected default project, got '%s'", config.Project)
	}
	if len(config.IgnoredMessages) != 11 {
		t.Fatalf("expected 11 default ignored messages, got %v", config.IgnoredMessages)
	}
	if config.IgnoredMessages[1] != "MSG_020" || config.IgnoredMessages[9] != "MSG_028" {
		t.Fatalf("unexpected default ignored messages: %v", config.IgnoredMessages)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml"), ""); err == nil {
		t.Fatal("Load should fail for a missing explicit config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom.yaml")

	invalidYAML := `project: "Rufus"
ignored_messages: [
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := Load(configPath, tmpDir)
	if err == nil {
		t.Fatal("Load should return error for invalid YAML")
	}
	if config != nil {
		t.Fatal("Load should return nil config for invalid YAML")
	}
}

func TestHelperConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		potFile string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			potFile: "rufus.pot",
		},
		{
			name:    "upper case extension",
			potFile: "po/RUFUS.POT",
		},
		{
			name:    "empty pot file",
			potFile: "",
			wantErr: true,
			errMsg:  "pot_file is required",
		},
		{
			name:    "wrong extension",
			potFile: "rufus.po",
			wantErr: true,
			errMsg:  "pot_file 'rufus.po' must have a .pot extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			config.PotFile = tt.potFile
			err := config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Validate() expected error, got nil")
				}
				if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Fatalf("Validate() expected error message '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_InvalidPotFile(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("pot_file: rufus.txt\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	_, err := Load("", tmpDir)
	if err == nil || !strings.Contains(err.Error(), ".pot extension") {
		t.Fatalf("expected pot_file error, got %v", err)
	}
}

func TestMergeConfigs(t *testing.T) {
	base := Default()
	override := &HelperConfig{
		AppVersion: "v2.0",
		PotFile:    "po/rufus.pot",
	}

	merged := mergeConfigs(base, override)
	if merged.AppVersion != "v2.0" {
		t.Fatalf("expected AppVersion 'v2.0', got '%s'", merged.AppVersion)
	}
	if merged.PotFile != "po/rufus.pot" {
		t.Fatalf("expected PotFile 'po/rufus.pot', got '%s'", merged.PotFile)
	}
	if merged.AppName != "Pollock" {
		t.Fatalf("expected AppName to be preserved, got '%s'", merged.AppName)
	}
	if base.AppVersion != "v1.1" {
		t.Fatalf("base config must not be modified, got '%s'", base.AppVersion)
	}
}

func TestLoad_ExplicitOverridesProjectFile(t *testing.T) {
	tmpDir := t.TempDir()
	projectYAML := `project: "Rufus"
app_version: "v1.5"
pot_file: "po/rufus.pot"
`
	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte(projectYAML), 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}
	explicit := filepath.Join(tmpDir, "local.yaml")
	if err := os.WriteFile(explicit, []byte("app_version: \"v2.0\"\n"), 0644); err != nil {
		t.Fatalf("failed to write explicit config: %v", err)
	}

	config, err := Load(explicit, tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.AppVersion != "v2.0" {
		t.Fatalf("expected app_version from explicit file, got '%s'", config.AppVersion)
	}
	if config.PotFile != "po/rufus.pot" {
		t.Fatalf("expected pot_file from project file, got '%s'", config.PotFile)
	}
}
