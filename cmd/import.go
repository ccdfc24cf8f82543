package cmd

import (
	"fmt"

	"github.com/rufus-l10n/loc-po-helper/loc"
	"github.com/rufus-l10n/loc-po-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type importCommand struct {
	cmd *cobra.Command
	O   struct {
		Output string
	}
}

func (v *importCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "import <po-file>...",
		Short: "Merge translated PO files back into the loc file",
		Long: `Read each PO file (or POT template) and replace the block of its language
in the loc file. The rest of the loc file is kept byte for byte.

Untranslated entries and entries whose translation equals the English text
are not written to the loc file. A .pot file updates the en-US baseline.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Flags().StringVarP(&v.O.Output, "output", "o", "",
		"write the merged loc file here instead of updating it in place")

	return v.cmd
}

func (v importCommand) Execute(args []string) error {
	if len(args) == 0 {
		return NewErrorWithUsage("import requires at least one argument: <po-file>")
	}

	ctx, stop := signalContext()
	defer stop()

	name := locFile()
	document, err := util.ReadText(name)
	if err != nil {
		return err
	}

	for _, poFile := range args {
		if !util.IsFile(poFile) {
			return NewErrorWithUsageF("file does not exist: %s", poFile)
		}
		result, err := util.LoadPoFile(ctx, poFile)
		if err != nil {
			return err
		}
		if result.Cancelled {
			return errInterrupted
		}
		lang := result.Language
		if lang.ID == "" {
			return NewStandardErrorF("%s: no Language header", poFile)
		}
		if len(result.Diagnostics) > 0 {
			log.Warnf("%s: %d line(s) skipped", poFile, len(result.Diagnostics))
		}

		document, err = loc.MergeIntoLocDocument(document, lang)
		if err != nil {
			return fmt.Errorf("fail to merge %s into %s: %w", poFile, name, err)
		}
		log.Infof("merged %d message(s) of %s from '%s'", len(lang.IDToStr), lang.ID, poFile)
	}

	output := v.O.Output
	if output == "" {
		output = name
	}
	return util.WriteText(output, document)
}

var importCmd = importCommand{}

func init() {
	rootCmd.AddCommand(importCmd.Command())
}
