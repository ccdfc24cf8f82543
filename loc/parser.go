package loc

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// ParseOptions controls ParseLoc.
type ParseOptions struct {
	// SelectID, when set, limits the result to this locale and the baseline.
	SelectID string
	// Source names the document in diagnostics.
	Source string
}

// locParser is the state of one ParseLoc pass.
type locParser struct {
	opts    ParseOptions
	result  *Result
	lineNr  int
	lang    *Language
	section string
	comment string

	// cursor on the most recently appended message, for continuations
	last   *Message
	lastID ID

	skipping     bool
	foundSelect  bool
	seenBaseline bool
}

// ParseLoc parses loc text into the languages it declares, in file order.
//
// ctx is checked before each line; when it is done the partial result is
// returned with Cancelled set and a nil error.
func ParseLoc(ctx context.Context, text string, opts ParseOptions) (*Result, error) {
	start := time.Now()
	p := &locParser{
		opts:   opts,
		result: &Result{},
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
		if p.foundSelect && p.seenBaseline && p.skipping {
			break
		}
		p.lineNr = i + 1
		if err := p.parseLine(line); err != nil {
			p.result.Elapsed = time.Since(start)
			return nil, err
		}
	}
	if p.lang != nil {
		p.result.Languages = append(p.result.Languages, p.lang)
	}

	p.result.Elapsed = time.Since(start)
	log.Debugf("parsed %d language(s) in %s: %s",
		len(p.result.Languages), p.result.Elapsed, Status(p.result.Cancelled))
	return p.result, nil
}

func (p *locParser) parseLine(line string) error {
	data := strings.TrimSpace(line)
	if !strings.HasPrefix(data, "#") {
		var trailing string
		data, trailing = splitTrailingComment(data)
		if trailing != "" {
			p.comment += trailing + "\n"
		}
	}
	if data == "" {
		return nil
	}
	if p.skipping && data[0] != 'l' {
		return nil
	}
	log.Tracef("%d: %s", p.lineNr, data)

	switch data[0] {
	case '#':
		p.comment += strings.TrimSpace(data[1:]) + "\n"
	case 'l':
		return p.parseLanguage(data)
	case 'a', 'b':
		// RTL is recomputed on write and the base is always en-US.
	case 'v':
		if p.requireLanguage(data) {
			p.lang.Version = strings.TrimSpace(data[1:])
		}
	case 'g':
		p.comment = ""
		if p.requireLanguage(data) {
			p.section = strings.TrimSpace(data[1:])
			p.lang.AddSection(p.section)
		}
	case 't':
		p.parseMessage(data)
	case '"':
		p.parseContinuation(data)
	default:
		p.diagnose("unknown command '%c'", data[0])
	}
	return nil
}

func (p *locParser) parseLanguage(data string) error {
	p.comment = ""
	parts := splitFields(data, false)
	if len(parts) < 4 || parts[0] != "l" {
		return &ParseError{Source: p.opts.Source, Line: p.lineNr, Msg: "invalid 'l' command"}
	}
	id := strings.ReplaceAll(parts[1], `"`, "")

	if p.opts.SelectID != "" {
		p.skipping = id != p.opts.SelectID && id != BaselineID
		if id == p.opts.SelectID {
			p.foundSelect = true
		}
		if id == BaselineID {
			p.seenBaseline = true
		}
		if p.skipping {
			log.Tracef("skipping language %s", id)
			return nil
		}
	}

	if p.lang != nil {
		p.result.Languages = append(p.result.Languages, p.lang)
	}
	if _, err := language.Parse(id); err != nil {
		p.diagnose("unrecognized locale '%s': %v", id, err)
	}
	p.lang = NewLanguage()
	p.lang.ID = id
	p.lang.Name = strings.ReplaceAll(parts[2], `"`, "")
	p.lang.LCID = strings.Join(parts[3:], " ")
	p.section = ""
	p.last = nil
	log.Debugf("found language %s '%s'", p.lang.ID, p.lang.Name)
	return nil
}

func (p *locParser) parseMessage(data string) {
	if !p.requireLanguage(data) {
		return
	}
	if strings.HasPrefix(data, "t "+DefaultGroup) && p.section != DefaultGroup {
		p.section = DefaultGroup
		p.lang.AddSection(p.section)
	}
	if len(data) < 2 || data[1] != ' ' {
		p.diagnose("invalid 't' command")
		p.last = nil
		return
	}
	parts := splitFields(data, true)
	if len(parts) != 3 {
		p.diagnose("invalid 't' command: expected key and value, got %d token(s)", len(parts)-1)
		p.last = nil
		return
	}
	if p.section == "" {
		p.diagnose("'t' command outside of a section")
		p.last = nil
		return
	}

	key := parts[1]
	m := p.lang.AddMessage(p.section, key, parts[2])
	if m == nil {
		p.diagnose("duplicate key '%s'", ID{Group: p.section, Key: key})
		p.last = nil
		return
	}
	p.last = m
	p.lastID = ID{Group: p.section, Key: key}
	if p.comment != "" {
		p.lang.Comments[p.lastID] = strings.TrimSpace(p.comment)
		p.comment = ""
	}
}

func (p *locParser) parseContinuation(data string) {
	if p.last == nil {
		p.diagnose("no previous key for %s", data)
		return
	}
	str := strings.ReplaceAll(p.last.Str+data, `""`, "")
	p.lang.SetStr(p.lastID, p.last, str)
}

func (p *locParser) requireLanguage(data string) bool {
	if p.lang == nil {
		p.diagnose("'%c' command before any 'l' command", data[0])
		return false
	}
	return true
}

func (p *locParser) diagnose(format string, args ...interface{}) {
	e := &FieldError{
		Source: p.opts.Source,
		Line:   p.lineNr,
		Msg:    fmt.Sprintf(format, args...),
	}
	log.Warn(e.Error())
	p.result.Diagnostics = append(p.result.Diagnostics, e)
}
