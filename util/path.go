package util

import (
	"os"
	"path/filepath"
	"strings"
)

// Exist check if path is exist.
func Exist(name string) bool {
	if _, err := os.Stat(name); err == nil {
		return true
	}
	return false
}

// IsFile returns true if path is exist and is a file.
func IsFile(name string) bool {
	fi, err := os.Stat(name)
	if err != nil || fi.IsDir() {
		return false
	}
	return true
}

// IsPotFile reports whether name is a template, by its extension.
func IsPotFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pot")
}

// PoFileName returns the PO file name of a locale, e.g. "fr-FR.po".
func PoFileName(locale string) string {
	return locale + ".po"
}
