package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rufus-l10n/loc-po-helper/flag"
	"github.com/rufus-l10n/loc-po-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type checkCommand struct {
	cmd *cobra.Command
	O   struct {
		All    bool
		JSON   bool
		Po     string
		Report string
	}
}

func (v *checkCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "check",
		Short: "Report the translation state of every language",
		Long: `Compare every language of the loc file with the en-US baseline and report:
  translated - messages with their own translation
  missing    - messages of the baseline absent from the language
  identical  - messages still equal to the English text (suspect untranslated)
  obsolete   - messages the baseline no longer has

Only languages at the version of the baseline are checked, unless --all.
Ids listed in "ignored_messages" of the configuration are never reported as
identical.

With --po <file>: check that a PO file loads with a gettext reader.
With --report <file>: print the summary of a report saved with --json.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false
	fs.BoolVar(&v.O.All, "all", false, "check languages of older versions too")
	fs.BoolVar(&v.O.JSON, "json", false, "write the report as JSON")
	fs.StringVar(&v.O.Po, "po", "", "verify that this PO file loads")
	fs.StringVar(&v.O.Report, "report", "", "summarize a JSON report")
	setFlagGroup(v.cmd, "Translation check", "all", "json")
	setFlagGroup(v.cmd, "Other sources", "po", "report")

	return v.cmd
}

func (v checkCommand) Execute(args []string) error {
	if len(args) > 0 {
		return NewErrorWithUsage("too many arguments")
	}
	if v.O.Po != "" && v.O.Report != "" {
		return NewErrorWithUsage("only one of --po and --report can be given")
	}
	if v.O.Po != "" {
		return v.checkPoFile(v.O.Po)
	}
	if v.O.Report != "" {
		return v.summarizeReport(v.O.Report)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
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
	report, err := util.CheckTranslations(result.Languages, util.CheckOptions{
		Ignored: cfg.IgnoredMessages,
		All:     v.O.All,
	})
	if err != nil {
		return err
	}
	if v.O.JSON {
		return report.WriteJSON(os.Stdout)
	}

	for _, c := range report.Languages {
		fmt.Printf("%s (v%s): %d translated, %d missing, %d identical, %d obsolete\n",
			c.ID, c.Version, c.Translated, len(c.Missing), len(c.Identical), len(c.Obsolete))
		if flag.Verbose() > 0 {
			printList("missing", c.Missing)
			printList("identical", c.Identical)
			printList("obsolete", c.Obsolete)
		}
	}
	return nil
}

func printList(title string, ids []string) {
	if len(ids) > 0 {
		fmt.Printf("  %s: %s\n", title, strings.Join(ids, ", "))
	}
}

func (v checkCommand) checkPoFile(poFile string) error {
	if !util.IsFile(poFile) {
		return NewErrorWithUsageF("file does not exist: %s", poFile)
	}
	data, err := os.ReadFile(poFile)
	if err != nil {
		return err
	}
	n, err := util.VerifyPoLoadable(data)
	if err != nil {
		return NewStandardErrorF("%s: %v", poFile, err)
	}
	log.Infof("%s: %d translation(s) load", poFile, n)
	fmt.Print(util.FormatStatLine(util.CountPoReportStats(data)))
	return nil
}

func (v checkCommand) summarizeReport(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	summaries, err := util.ReadCheckReport(data)
	if err != nil {
		return NewStandardErrorF("%s: %v", file, err)
	}
	for _, s := range summaries {
		fmt.Printf("%s (v%s): %d translated, %d missing, %d identical, %d obsolete\n",
			s.ID, s.Version, s.Translated, s.Missing, s.Identical, s.Obsolete)
	}
	return nil
}

var checkCmd = checkCommand{}

func init() {
	rootCmd.AddCommand(checkCmd.Command())
}
