package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rufus-l10n/loc-po-helper/flag"
	"github.com/rufus-l10n/loc-po-helper/util"
	"github.com/spf13/cobra"
)

type statCommand struct {
	cmd *cobra.Command
}

func (v *statCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "stat <po-file>...",
		Short: "Report statistics for PO files",
		Long: `Report entry statistics for PO files:
  translated   - entries with non-empty translation
  untranslated - entries with empty msgstr
  same         - entries where msgstr equals msgid (suspect untranslated)
  fuzzy        - entries with fuzzy flag`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v statCommand) Execute(args []string) error {
	if len(args) == 0 {
		return NewErrorWithUsage("stat requires at least one argument: <po-file>")
	}

	for _, poFile := range args {
		if !util.IsFile(poFile) {
			return NewErrorWithUsage("file does not exist:", poFile)
		}
		data, err := os.ReadFile(poFile)
		if err != nil {
			return err
		}
		stats := util.CountPoReportStats(data)

		if flag.Verbose() > 0 {
			title := fmt.Sprintf("PO file: %s", poFile)
			fmt.Println(title)
			fmt.Println(strings.Repeat("-", len(title)))
			fmt.Printf("  translated:   %d\n", stats.Translated)
			fmt.Printf("  untranslated: %d\n", stats.Untranslated)
			fmt.Printf("  same:         %d\n", stats.Same)
			fmt.Printf("  fuzzy:        %d\n", stats.Fuzzy)
		} else {
			if len(args) > 1 {
				fmt.Printf("%s: ", poFile)
			}
			fmt.Print(util.FormatStatLine(stats))
		}
	}

	return nil
}

var statCmd = statCommand{}

func init() {
	rootCmd.AddCommand(statCmd.Command())
}
