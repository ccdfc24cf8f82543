package util

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rufus-l10n/loc-po-helper/loc"
	log "github.com/sirupsen/logrus"
)

// Header fields carrying the loc metadata through a PO file.
const (
	HeaderLanguage     = "Language"
	HeaderLanguageName = "X-Rufus-LanguageName"
	HeaderVersion      = "Project-Id-Version"
	HeaderLCID         = "X-Rufus-LCID"
)

const (
	poDateLayout      = "2006-01-02 15:04-0700"
	refCommentPrefix  = "#. • "
	fuzzyFlagLine     = "#, fuzzy"
	emptyQuotedString = `""`
)

var (
	// ErrMissingBaseline is returned when the exported languages have no en-US.
	ErrMissingBaseline = errors.New("no en-US baseline among the languages to export")
	// ErrMultipleBaselines is returned when more than one en-US is exported.
	ErrMultipleBaselines = errors.New("more than one en-US baseline among the languages to export")
)

// ExportOptions controls ExportPo.
type ExportOptions struct {
	// OldBaseline is a previous en-US used to flag added and modified
	// strings. When set, no POT is produced.
	OldBaseline *loc.Language
	// ReportBugsTo fills the Report-Msgid-Bugs-To header.
	ReportBugsTo string
	// PotFile is the name given to the template, "rufus.pot" by default.
	PotFile string
	// Now returns the generation time, time.Now by default.
	Now func() time.Time
}

// PoDocument is one generated PO or POT file.
type PoDocument struct {
	Language *loc.Language
	IsPot    bool
	FileName string
	Content  string
}

// ExportResult holds the generated documents.
type ExportResult struct {
	Documents []*PoDocument
	Diff      *BaselineDiff
	Cancelled bool
	Elapsed   time.Duration
}

// ExportPo builds one PO document per language of langs (a POT for the
// en-US baseline). Strings shared by several ids are emitted once, with a
// reference comment per id.
func ExportPo(ctx context.Context, langs []*loc.Language, opts ExportOptions) (*ExportResult, error) {
	start := time.Now()
	result := &ExportResult{}
	if len(langs) == 0 {
		return result, ErrMissingBaseline
	}
	var baseline *loc.Language
	for _, lang := range langs {
		if !lang.IsBaseline() {
			continue
		}
		if baseline != nil {
			return result, ErrMultipleBaselines
		}
		baseline = lang
	}
	if baseline == nil {
		return result, ErrMissingBaseline
	}
	if opts.PotFile == "" {
		opts.PotFile = "rufus.pot"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	e := newExporter(baseline, opts)
	if opts.OldBaseline != nil {
		e.diff = DiffBaselines(opts.OldBaseline, baseline)
		result.Diff = e.diff
	}

	for _, lang := range langs {
		if ctx.Err() != nil {
			result.Cancelled = true
			break
		}
		isPot := lang.IsBaseline()
		// A diff base means a merge update: translations only.
		if isPot && opts.OldBaseline != nil {
			continue
		}
		doc := &PoDocument{
			Language: lang,
			IsPot:    isPot,
			FileName: lang.ID + ".po",
		}
		if isPot {
			doc.FileName = opts.PotFile
		}
		if e.diff != nil {
			log.Infof("computing differences and creating '%s'", doc.FileName)
		} else {
			log.Infof("creating '%s'", doc.FileName)
		}
		doc.Content = e.export(lang, isPot)
		result.Documents = append(result.Documents, doc)
	}

	result.Elapsed = time.Since(start)
	log.Infof("%s: %d document(s) in %s", loc.Status(result.Cancelled), len(result.Documents), result.Elapsed)
	return result, nil
}

type exporter struct {
	baseline *loc.Language
	opts     ExportOptions
	diff     *BaselineDiff
	ids      []loc.ID
	byStr    map[string][]loc.ID
}

func newExporter(baseline *loc.Language, opts ExportOptions) *exporter {
	e := &exporter{
		baseline: baseline,
		opts:     opts,
		ids:      baseline.IDs(),
		byStr:    make(map[string][]loc.ID),
	}
	for _, id := range e.ids {
		str := baseline.IDToStr[id]
		e.byStr[str] = append(e.byStr[str], id)
	}
	return e
}

func (e *exporter) export(lang *loc.Language, isPot bool) string {
	var b strings.Builder
	e.writeHeader(&b, lang, isPot)

	emitted := make(map[string]bool)
	for _, id := range e.ids {
		enStr := e.baseline.IDToStr[id]
		if emitted[enStr] {
			continue
		}
		emitted[enStr] = true
		refs := e.byStr[enStr]

		b.WriteString("\n")
		for _, ref := range refs {
			b.WriteString(refCommentPrefix + ref.String() + "\n")
		}
		if comment, ok := e.baseline.Comments[id]; ok {
			b.WriteString("#.\n")
			writeCommentLines(&b, "#. ", comment)
		}
		if !isPot {
			if comment, ok := lang.Comments[id]; ok {
				writeCommentLines(&b, "# ", comment)
			}
		}
		if e.needsWork(refs) {
			b.WriteString(fuzzyFlagLine + "\n")
		}

		b.WriteString("msgid " + enStr + "\n")
		msgStr := emptyQuotedString
		if !isPot {
			if str, ok := lang.Str(id); ok && str != enStr {
				msgStr = str
			}
		}
		b.WriteString("msgstr " + msgStr + "\n")
	}
	return b.String()
}

func (e *exporter) needsWork(refs []loc.ID) bool {
	if e.diff == nil {
		return false
	}
	for _, id := range refs {
		if e.diff.NeedsWork(id) {
			return true
		}
	}
	return false
}

func (e *exporter) writeHeader(b *strings.Builder, lang *loc.Language, isPot bool) {
	now := e.opts.Now().Format(poDateLayout)
	version := lang.Version
	if e.diff != nil {
		version = e.baseline.Version
	}
	revision := "YEAR-MO-DA HO:MI+ZONE"
	if !isPot {
		revision = now
	}

	b.WriteString("\n")
	b.WriteString("msgid \"\"\n")
	b.WriteString("msgstr \"\"\n")
	writeHeaderField(b, HeaderVersion, version)
	writeHeaderField(b, "Report-Msgid-Bugs-To", e.opts.ReportBugsTo)
	writeHeaderField(b, "POT-Creation-Date", now)
	writeHeaderField(b, "PO-Revision-Date", revision)
	writeHeaderField(b, "Last-Translator", "FULL NAME <EMAIL@ADDRESS>")
	writeHeaderField(b, "Language-Team", "LANGUAGE <LL@li.org>")
	writeHeaderField(b, HeaderLanguage, strings.ReplaceAll(lang.ID, "-", "_"))
	writeHeaderField(b, "MIME-Version", "1.0")
	writeHeaderField(b, "Content-Type", "text/plain; charset=UTF-8")
	writeHeaderField(b, "Content-Transfer-Encoding", "8bit")
	writeHeaderField(b, "X-Poedit-SourceCharset", "UTF-8")
	writeHeaderField(b, HeaderLanguageName, lang.Name)
	writeHeaderField(b, HeaderLCID, lang.LCID)
}

func writeHeaderField(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "\"%s: %s\\n\"\n", key, value)
}

func writeCommentLines(b *strings.Builder, prefix, comment string) {
	for _, line := range strings.Split(comment, "\n") {
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix + line + "\n")
		}
	}
}
