package util

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rufus-l10n/loc-po-helper/loc"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// ImportOptions controls ParsePo.
type ImportOptions struct {
	// IsPot selects template semantics: "#." comments are kept and msgid
	// is the imported value.
	IsPot bool
	// Source names the document in diagnostics.
	Source string
}

// ImportResult is the outcome of parsing one PO or POT document.
type ImportResult struct {
	Language    *loc.Language
	Cancelled   bool
	Elapsed     time.Duration
	Diagnostics []*loc.FieldError
}

type poImporter struct {
	opts   ImportOptions
	result *ImportResult
	lang   *loc.Language
	lineNr int

	idBuf, strBuf string
	inStr         bool
	refs          []loc.ID
	comments      []string
}

// ParsePo parses PO or POT text produced by ExportPo (and edited by a
// translator) back into a Language.
//
// Entries are attributed through their "#. • " reference comments. A
// translation equal to its msgid, or an empty PO translation, creates no
// message.
func ParsePo(ctx context.Context, text string, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	p := &poImporter{
		opts:   opts,
		result: &ImportResult{},
		lang:   loc.NewLanguage(),
	}
	if opts.Source != "" {
		log.Infof("importing data from '%s'", opts.Source)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if ctx.Err() != nil {
			p.result.Cancelled = true
			break
		}
		p.lineNr = i + 1
		data := strings.TrimSpace(line)
		if err := p.parseLine(data); err != nil {
			return nil, err
		}
		if data == "" || i == len(lines)-1 {
			p.flush()
		}
	}

	p.lang.SortSection(loc.DefaultGroup)
	p.result.Language = p.lang
	p.result.Elapsed = time.Since(start)
	log.Debugf("imported %d message(s) for %s in %s: %s",
		len(p.lang.IDToStr), p.lang.ID, p.result.Elapsed, loc.Status(p.result.Cancelled))
	return p.result, nil
}

func (p *poImporter) parseLine(data string) error {
	switch {
	case strings.HasPrefix(data, `"`):
		value, err := p.quoted(data, 0)
		if err != nil || value == nil {
			return err
		}
		if p.inStr {
			p.strBuf += *value
		} else {
			p.idBuf += *value
		}
	case strings.HasPrefix(data, "msgid "):
		value, err := p.quoted(data, len("msgid "))
		if err != nil || value == nil {
			return err
		}
		p.inStr = false
		p.idBuf = *value
	case strings.HasPrefix(data, "msgstr "):
		value, err := p.quoted(data, len("msgstr "))
		if err != nil || value == nil {
			return err
		}
		p.inStr = true
		p.strBuf = *value
	case strings.HasPrefix(data, strings.TrimSpace(refCommentPrefix)):
		p.parseReference(strings.TrimSpace(strings.TrimPrefix(data, strings.TrimSpace(refCommentPrefix))))
	case p.opts.IsPot && strings.HasPrefix(data, "#. "),
		!p.opts.IsPot && strings.HasPrefix(data, "# "):
		p.comments = append(p.comments, strings.TrimSpace(data[2:]))
	}
	return nil
}

// quoted returns the content of the quoted string starting at offset.
// A nil value with a nil error means the line was skipped.
func (p *poImporter) quoted(data string, offset int) (*string, error) {
	rest := data[offset:]
	if !strings.HasPrefix(rest, `"`) {
		p.diagnose("unexpected data after '%s'", strings.TrimSpace(data[:offset]))
		return nil, nil
	}
	if len(rest) < 2 || !strings.HasSuffix(rest, `"`) {
		return nil, &loc.ParseError{Source: p.opts.Source, Line: p.lineNr, Msg: "unterminated quoted string"}
	}
	value := rest[1 : len(rest)-1]
	return &value, nil
}

// parseReference reads "key" for the default group, "Group → key" otherwise.
func (p *poImporter) parseReference(ref string) {
	parts := strings.Split(ref, " → ")
	switch {
	case len(parts) == 1 && ref != "" && !strings.ContainsAny(ref, " \t"):
		p.refs = append(p.refs, loc.ID{Group: loc.DefaultGroup, Key: ref})
	case len(parts) == 2:
		p.refs = append(p.refs, loc.ID{
			Group: strings.TrimSpace(parts[0]),
			Key:   strings.TrimSpace(parts[1]),
		})
	default:
		p.diagnose("invalid reference '%s'", ref)
	}
}

// flush closes the pending entry.
func (p *poImporter) flush() {
	defer p.reset()

	// The header is the only entry without references; an empty baseline
	// string still carries its own.
	if len(p.refs) == 0 {
		if p.idBuf == "" && p.strBuf != "" {
			p.parseHeader()
		}
		return
	}

	value := p.strBuf
	if p.opts.IsPot {
		value = p.idBuf
	}
	for _, id := range p.refs {
		if len(p.comments) > 0 {
			p.lang.Comments[id] = strings.Join(p.comments, "\n")
		}
		if p.idBuf == p.strBuf {
			continue
		}
		if !p.opts.IsPot && p.strBuf == "" {
			continue
		}
		if p.lang.AddMessage(id.Group, id.Key, loc.Quote(value)) == nil {
			p.diagnose("duplicate reference '%s'", id)
		}
	}
}

func (p *poImporter) reset() {
	p.idBuf = ""
	p.strBuf = ""
	p.inStr = false
	p.refs = nil
	p.comments = nil
}

func (p *poImporter) parseHeader() {
	fields := make(map[string]string)
	for _, line := range strings.Split(p.strBuf, `\n`) {
		if line == "" {
			continue
		}
		sep := strings.Index(line, ":")
		if sep <= 0 {
			p.diagnose("invalid header line '%s'", line)
			continue
		}
		fields[strings.TrimSpace(line[:sep])] = strings.TrimSpace(line[sep+1:])
	}

	get := func(key string) string {
		value, ok := fields[key]
		if !ok {
			p.diagnose("missing header field '%s'", key)
		}
		return value
	}
	p.lang.ID = strings.ReplaceAll(get(HeaderLanguage), "_", "-")
	p.lang.Name = get(HeaderLanguageName)
	p.lang.Version = get(HeaderVersion)
	p.lang.LCID = get(HeaderLCID)
	if p.lang.ID != "" {
		if _, err := language.Parse(p.lang.ID); err != nil {
			p.diagnose("unrecognized locale '%s': %v", p.lang.ID, err)
		}
	}
}

func (p *poImporter) diagnose(format string, args ...interface{}) {
	e := &loc.FieldError{
		Source: p.opts.Source,
		Line:   p.lineNr,
		Msg:    fmt.Sprintf(format, args...),
	}
	log.Warn(e.Error())
	p.result.Diagnostics = append(p.result.Diagnostics, e)
}
