package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/rufus-l10n/loc-po-helper/loc"
	"github.com/rufus-l10n/loc-po-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errInterrupted = errors.New("interrupted")

type exportCommand struct {
	cmd *cobra.Command
	O   struct {
		DiffBase string
		DiffRev  string
		Force    bool
	}
}

func (v *exportCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "export [locale]",
		Short: "Create PO files and the POT template from the loc file",
		Long: `Create one PO file per language of the loc file, and the POT template
from the en-US baseline, in --po-dir.

Strings shared by several ids are written once, with a "#. • <id>"
reference comment per id. A translation identical to the English text is
written as untranslated.

With a locale argument, only that language is exported.

With --diff-base or --diff-rev, the en-US baseline of an older release is
compared with the current one: entries whose English text was added or
modified are flagged fuzzy, and no POT is written.

Examples:
  ` + Program + ` export
  ` + Program + ` export fr-FR
  ` + Program + ` export --diff-rev v3.21`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false
	fs.StringVar(&v.O.DiffBase, "diff-base", "", "loc file of the previous release")
	fs.StringVar(&v.O.DiffRev, "diff-rev", "", "git revision holding the loc file of the previous release")
	fs.BoolVarP(&v.O.Force, "force", "f", false, "overwrite existing files without asking")
	setFlagGroup(v.cmd, "Baseline diff", "diff-base", "diff-rev")
	setFlagGroup(v.cmd, "General options", "force")

	return v.cmd
}

func (v exportCommand) Execute(args []string) error {
	var selectID string

	if len(args) > 1 {
		return NewErrorWithUsage("too many arguments")
	}
	if len(args) == 1 {
		selectID = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()

	oldBaseline, err := readOldBaseline(ctx, v.O.DiffBase, v.O.DiffRev)
	if err != nil {
		return err
	}

	name := locFile()
	result, err := util.LoadLocFile(ctx, name, selectID)
	if err != nil {
		return err
	}
	if result.Cancelled {
		return errInterrupted
	}
	if selectID != "" && selectID != loc.BaselineID && len(result.Languages) < 2 {
		return NewStandardErrorF("language '%s' not found in %s", selectID, name)
	}

	exported, err := util.ExportPo(ctx, result.Languages, util.ExportOptions{
		OldBaseline:  oldBaseline,
		ReportBugsTo: cfg.ReportBugsTo,
		PotFile:      cfg.PotFile,
		Now:          time.Now,
	})
	if err != nil {
		return fmt.Errorf("fail to export %s: %w", name, err)
	}
	if exported.Cancelled {
		return errInterrupted
	}
	if exported.Diff != nil {
		log.Infof("en-US changes since v%s: %d added, %d modified",
			oldBaseline.Version, len(exported.Diff.Added), len(exported.Diff.Modified))
	}

	for _, doc := range exported.Documents {
		if _, err := writeOutput(poPath(doc.FileName), doc.Content, v.O.Force); err != nil {
			return err
		}
	}
	return nil
}

var exportCmd = exportCommand{}

func init() {
	rootCmd.AddCommand(exportCmd.Command())
}
