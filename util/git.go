package util

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rufus-l10n/loc-po-helper/repository"
	log "github.com/sirupsen/logrus"
)

// ReadFileAtRevision returns the content of file at the given git revision.
// A relative file name is resolved against the current directory and then
// made relative to the root of the worktree.
func ReadFileAtRevision(rev, file string) ([]byte, error) {
	if err := repository.RequireOpened(); err != nil {
		return nil, err
	}
	workDir := repository.WorkDir()
	relPath, err := worktreePath(workDir, file)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command("git", "show", rev+":"+relPath)
	cmd.Dir = workDir
	log.Debugf("reading file from revision: git show %s:%s", rev, relPath)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("fail to read %s at %s: %s",
				relPath, rev, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("fail to read %s at %s: %w", relPath, rev, err)
	}
	return output, nil
}

func worktreePath(workDir, file string) (string, error) {
	absFile, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	// Resolve symlinks on both sides, so /tmp vs /private/tmp compare equal.
	if resolved, err := filepath.EvalSymlinks(workDir); err == nil {
		workDir = resolved
	}
	if resolved, err := filepath.EvalSymlinks(filepath.Dir(absFile)); err == nil {
		absFile = filepath.Join(resolved, filepath.Base(absFile))
	}
	rel, err := filepath.Rel(workDir, absFile)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside repository %s", file, workDir)
	}
	return filepath.ToSlash(rel), nil
}
