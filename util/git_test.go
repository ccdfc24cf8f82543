package util

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rufus-l10n/loc-po-helper/repository"
)

// TestReadFileAtRevision creates a repository with two revisions of a loc
// file and reads the baseline of the older one back.
func TestReadFileAtRevision(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	tmpDir := t.TempDir()

	runGit := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = tmpDir
		if output, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, string(output))
		}
	}

	runGit("init")
	runGit("config", "user.email", "test@test.com")
	runGit("config", "user.name", "Test")

	locDir := filepath.Join(tmpDir, "res", "loc")
	if err := os.MkdirAll(locDir, 0755); err != nil {
		t.Fatalf("failed to create loc dir: %v", err)
	}
	locFile := filepath.Join(locDir, "rufus.loc")

	oldContent := `l "en-US" "English (English)" 0x0409
v 3.20
t MSG_001 "Hello"
`
	if err := os.WriteFile(locFile, []byte(oldContent), 0644); err != nil {
		t.Fatalf("failed to write rufus.loc: %v", err)
	}
	runGit("add", "res/")
	runGit("commit", "-m", "initial")

	newContent := strings.Replace(oldContent, "Hello", "Hello there", 1)
	if err := os.WriteFile(locFile, []byte(newContent), 0644); err != nil {
		t.Fatalf("failed to modify rufus.loc: %v", err)
	}

	repository.OpenRepository(tmpDir)

	t.Run("committed content", func(t *testing.T) {
		data, err := ReadFileAtRevision("HEAD", locFile)
		if err != nil {
			t.Fatalf("ReadFileAtRevision failed: %v", err)
		}
		if string(data) != oldContent {
			t.Errorf("expected committed content, got:\n%s", data)
		}

		baseline, err := LoadBaseline(context.Background(), data, "HEAD:res/loc/rufus.loc")
		if err != nil {
			t.Fatalf("LoadBaseline failed: %v", err)
		}
		if baseline.Version != "3.20" {
			t.Errorf("expected version 3.20, got %q", baseline.Version)
		}
	})

	t.Run("unknown path", func(t *testing.T) {
		_, err := ReadFileAtRevision("HEAD", filepath.Join(tmpDir, "missing.loc"))
		if err == nil {
			t.Fatal("expected error for a path not in the revision")
		}
	})

	t.Run("outside repository", func(t *testing.T) {
		_, err := ReadFileAtRevision("HEAD", filepath.Join(filepath.Dir(tmpDir), "rufus.loc"))
		if err == nil || !strings.Contains(err.Error(), "outside repository") {
			t.Errorf("expected outside repository error, got %v", err)
		}
	})
}
