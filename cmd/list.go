package cmd

import (
	"fmt"
	"strings"

	"github.com/rufus-l10n/loc-po-helper/loc"
	"github.com/rufus-l10n/loc-po-helper/util"
	"github.com/spf13/cobra"
)

type listCommand struct {
	cmd *cobra.Command
}

func (v *listCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "list",
		Short: "List the languages of the loc file",
		Long: `List the languages of the loc file with their id and version.
Languages whose version is behind the en-US baseline are marked with '*'.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

// displayName is the language name without its native form, e.g. "French"
// for "French (Français)".
func displayName(lang *loc.Language) string {
	if i := strings.Index(lang.Name, " ("); i > 0 {
		return lang.Name[:i]
	}
	return lang.Name
}

func (v listCommand) Execute(args []string) error {
	if len(args) > 0 {
		return NewErrorWithUsage("too many arguments")
	}

	ctx, stop := signalContext()
	defer stop()

	result, err := util.LoadLocFile(ctx, locFile(), "")
	if err != nil {
		return err
	}
	if result.Cancelled {
		return errInterrupted
	}

	var baseVersion string
	if baseline := loc.FindBaseline(result.Languages); baseline != nil {
		baseVersion = baseline.Version
	}
	for _, lang := range result.Languages {
		marker := ""
		if baseVersion != "" && lang.Version != baseVersion {
			marker = " *"
		}
		fmt.Printf("%-24s %-8s v%s%s\n", displayName(lang), lang.ID, lang.Version, marker)
	}
	return nil
}

var listCmd = listCommand{}

func init() {
	rootCmd.AddCommand(listCmd.Command())
}
