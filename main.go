package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rufus-l10n/loc-po-helper/cmd"
)

func main() {
	resp := cmd.Execute()

	if resp.Err != nil {
		errOut := resp.Cmd.ErrOrStderr()
		if resp.IsUserError() {
			if resp.Cmd.SilenceErrors {
				fmt.Fprintf(errOut, "ERROR: %s\n\n", strings.TrimSpace(resp.Err.Error()))
			}
			fmt.Fprint(errOut, resp.Cmd.UsageString())
		} else if resp.Cmd.SilenceErrors {
			fmt.Fprintf(errOut, "ERROR: %s\n", resp.Err)
			// e.g. "export" for "loc-po-helper export"
			subCmdPath := strings.TrimPrefix(resp.Cmd.CommandPath(), cmd.Program+" ")
			if subCmdPath == "" {
				subCmdPath = resp.Cmd.Name()
			}
			fmt.Fprintf(errOut, "ERROR: fail to execute \"%s %s\"\n", cmd.Program, subCmdPath)
		}
		os.Exit(-1)
	}
}
