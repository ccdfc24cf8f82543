// Package repository locates the project through its enclosing git repository.
package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jiangxin/goconfig"
	log "github.com/sirupsen/logrus"
)

// DefaultLocPath is where the loc document lives, relative to the project root.
var DefaultLocPath = filepath.Join("res", "loc", "rufus.loc")

// Repository holds repository and error.
type Repository struct {
	repository *goconfig.Repository
	error      error
}

var theRepository Repository

// Open will try to find repository in dir.
func (v *Repository) Open(dir string) error {
	v.repository, v.error = goconfig.FindRepository(dir)
	return v.error
}

// OpenRepository will try to find repository in dir.
func OpenRepository(dir string) {
	// Will check error in RequireOpened
	if err := theRepository.Open(dir); err != nil {
		log.Debugf("no git repository found: %v", err)
	}
}

// Opened returns true if a repository was successfully opened. Every command
// works outside a repository except git revision lookups.
func Opened() bool {
	return theRepository.error == nil && theRepository.repository != nil
}

// Err returns the error from the last OpenRepository call, or nil if open succeeded.
func Err() error {
	return theRepository.error
}

// RequireOpened returns Err() if the repository is not opened.
func RequireOpened() error {
	if !Opened() {
		if theRepository.error != nil {
			return theRepository.error
		}
		return fmt.Errorf("not in a git repository")
	}
	return nil
}

func assertRepositoryNotNil() {
	if theRepository.error != nil {
		log.Fatal(theRepository.error)
	} else if theRepository.repository == nil {
		log.Fatal("TheRepository is nil")
	}
}

// WorkDir returns root dir of worktree.
func WorkDir() string {
	assertRepositoryNotNil()
	return theRepository.repository.WorkDir()
}

// WorkDirOrCwd returns WorkDir() when a repository is opened, otherwise the current working directory.
func WorkDirOrCwd() string {
	if Opened() {
		return theRepository.repository.WorkDir()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// LocFile returns the loc document of the project: DefaultLocPath under the
// project root when it exists, otherwise "rufus.loc" in the current directory.
func LocFile() string {
	name := filepath.Join(WorkDirOrCwd(), DefaultLocPath)
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name
	}
	return filepath.Base(DefaultLocPath)
}
