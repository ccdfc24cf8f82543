// Package flag provides typed access to the persistent flags bound to viper.
package flag

import (
	"github.com/spf13/viper"
)

// Verbose returns the count of --verbose.
func Verbose() int {
	return viper.GetInt("verbose")
}

// Quiet returns the count of --quiet.
func Quiet() int {
	return viper.GetInt("quiet")
}

// ConfigFile returns the explicit --config file, if any.
func ConfigFile() string {
	return viper.GetString("config")
}

// LocFile returns --loc-file. Empty means the default location of the
// project.
func LocFile() string {
	return viper.GetString("loc-file")
}

// PoDir returns --po-dir, the directory PO files are written to.
func PoDir() string {
	if dir := viper.GetString("po-dir"); dir != "" {
		return dir
	}
	return "."
}
