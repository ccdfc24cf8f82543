package cmd

import (
	"context"
	"fmt"

	"github.com/rufus-l10n/loc-po-helper/loc"
	"github.com/rufus-l10n/loc-po-helper/util"
	"github.com/spf13/cobra"
)

type diffCommand struct {
	cmd *cobra.Command
	O   struct {
		DiffBase string
		DiffRev  string
		Removed  bool
	}
}

func (v *diffCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "diff",
		Short: "Show en-US messages added or modified since an older loc file",
		Long: `Compare the en-US baseline of the loc file with the one of an older
release, given by --diff-base or --diff-rev, and list the ids whose English
text was added or modified. These are the entries "export" flags fuzzy.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Flags().StringVar(&v.O.DiffBase, "diff-base", "", "loc file of the previous release")
	v.cmd.Flags().StringVar(&v.O.DiffRev, "diff-rev", "", "git revision holding the loc file of the previous release")
	v.cmd.Flags().BoolVar(&v.O.Removed, "removed", false, "also list ids removed from the baseline")

	return v.cmd
}

func (v diffCommand) Execute(args []string) error {
	if len(args) > 0 {
		return NewErrorWithUsage("too many arguments")
	}
	if v.O.DiffBase == "" && v.O.DiffRev == "" {
		return NewErrorWithUsage("one of --diff-base or --diff-rev is required")
	}

	ctx, stop := signalContext()
	defer stop()

	oldBaseline, err := readOldBaseline(ctx, v.O.DiffBase, v.O.DiffRev)
	if err != nil {
		return err
	}
	name := locFile()
	result, err := util.LoadLocFile(ctx, name, loc.BaselineID)
	if err != nil {
		return err
	}
	if result.Cancelled {
		return errInterrupted
	}
	baseline := loc.FindBaseline(result.Languages)
	if baseline == nil {
		return NewStandardErrorF("no %s language in %s", loc.BaselineID, name)
	}

	d := util.DiffBaselines(oldBaseline, baseline)
	printIDs("Added", d.Added)
	printIDs("Modified", d.Modified)
	if v.O.Removed {
		printIDs("Removed", d.Removed)
	}
	return nil
}

func printIDs(title string, ids []loc.ID) {
	fmt.Printf("%s: %d\n", title, len(ids))
	for _, id := range ids {
		fmt.Printf("  %s\n", id)
	}
}

// readOldBaseline reads the en-US baseline of a previous release from a file
// or from a git revision of the loc file. It returns nil if neither is given.
func readOldBaseline(ctx context.Context, file, rev string) (*loc.Language, error) {
	var (
		data   []byte
		source string
		err    error
	)

	switch {
	case file != "" && rev != "":
		return nil, NewErrorWithUsage("only one of --diff-base and --diff-rev can be given")
	case file != "":
		var text string
		source = file
		text, err = util.ReadText(file)
		data = []byte(text)
	case rev != "":
		source = rev + ":" + locFile()
		data, err = util.ReadFileAtRevision(rev, locFile())
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return util.LoadBaseline(ctx, data, source)
}

var diffCmd = diffCommand{}

func init() {
	rootCmd.AddCommand(diffCmd.Command())
}
