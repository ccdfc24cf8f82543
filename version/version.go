// Package version holds the version of loc-po-helper, set at build time with
// -ldflags "-X github.com/rufus-l10n/loc-po-helper/version.Version=...".
package version

// Version of the program.
var Version = "1.1.0"
