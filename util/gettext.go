// Package util converts between loc languages and gettext PO/POT files and
// provides the statistics, checks and file helpers used by the commands.
package util

import (
	"strings"
)

// PoEntry is a raw PO entry as found in a file, used for statistics and
// validation. Values keep their PO escapes.
type PoEntry struct {
	Comments []string
	MsgID    string
	MsgStr   string
}

// IsFuzzy reports whether the entry carries a fuzzy flag.
func (e *PoEntry) IsFuzzy() bool {
	for _, c := range e.Comments {
		if !strings.HasPrefix(c, "#,") {
			continue
		}
		for _, flag := range strings.Split(c[2:], ",") {
			if strings.TrimSpace(flag) == "fuzzy" {
				return true
			}
		}
	}
	return false
}

// ParsePoEntries splits PO data into entries. The header entry (empty
// msgid) is returned separately.
func ParsePoEntries(data []byte) (entries []*PoEntry, header *PoEntry) {
	var (
		cur   *PoEntry
		inStr bool
	)
	flush := func() {
		if cur == nil {
			return
		}
		if cur.MsgID == "" {
			if cur.MsgStr != "" {
				header = cur
			}
		} else {
			entries = append(entries, cur)
		}
		cur = nil
		inStr = false
	}
	current := func() *PoEntry {
		if cur == nil {
			cur = &PoEntry{}
		}
		return cur
	}

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case strings.HasPrefix(trimmed, "#"):
			if cur != nil && (cur.MsgID != "" || inStr) {
				flush()
			}
			e := current()
			e.Comments = append(e.Comments, trimmed)
		case strings.HasPrefix(trimmed, "msgid "):
			if cur != nil && inStr {
				flush()
			}
			current().MsgID = strDeQuote(strings.TrimPrefix(trimmed, "msgid "))
			inStr = false
		case strings.HasPrefix(trimmed, "msgstr "):
			current().MsgStr = strDeQuote(strings.TrimPrefix(trimmed, "msgstr "))
			inStr = true
		case strings.HasPrefix(trimmed, `"`) && cur != nil:
			if inStr {
				cur.MsgStr += strDeQuote(trimmed)
			} else {
				cur.MsgID += strDeQuote(trimmed)
			}
		}
	}
	flush()
	return entries, header
}

// strDeQuote removes the quotes around a PO string.
func strDeQuote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// poUnescape decodes PO escape sequences in s into real characters.
func poUnescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"', '\\':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
