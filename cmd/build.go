package cmd

import (
	"sort"

	"github.com/rufus-l10n/loc-po-helper/loc"
	"github.com/rufus-l10n/loc-po-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type buildCommand struct {
	cmd *cobra.Command
	O   struct {
		Output string
		Force  bool
	}
}

func (v *buildCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "build <pot-file> <po-file>...",
		Short: "Build a new loc file from a POT template and PO files",
		Long: `Import the POT template and every PO file, and write a complete loc file
with the autogenerated banner, the language registry and one block per
language. The en-US baseline comes first; the other languages keep the
order of the arguments.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Flags().StringVarP(&v.O.Output, "output", "o", "",
		"loc file to write (default: the --loc-file of the project)")
	v.cmd.Flags().BoolVarP(&v.O.Force, "force", "f", false, "overwrite an existing loc file without asking")

	return v.cmd
}

func (v buildCommand) Execute(args []string) error {
	if len(args) == 0 {
		return NewErrorWithUsage("build requires at least one argument: <pot-file>")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()

	var langs []*loc.Language
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
		if result.Language.ID == "" {
			return NewStandardErrorF("%s: no Language header", poFile)
		}
		langs = append(langs, result.Language)
	}
	sort.SliceStable(langs, func(i, j int) bool {
		return langs[i].IsBaseline() && !langs[j].IsBaseline()
	})
	if !langs[0].IsBaseline() {
		log.Warnf("no %s template among the input files", loc.BaselineID)
	}

	text, err := loc.SaveLocFile(langs, loc.Banner{
		AppName:    cfg.AppName,
		AppVersion: cfg.AppVersion,
		Project:    cfg.Project,
	})
	if err != nil {
		return err
	}

	output := v.O.Output
	if output == "" {
		output = locFile()
	}
	written, err := writeOutput(output, text, v.O.Force)
	if err == nil && written {
		log.Infof("wrote %d language(s) to '%s'", len(langs), output)
	}
	return err
}

var buildCmd = buildCommand{}

func init() {
	rootCmd.AddCommand(buildCmd.Command())
}
