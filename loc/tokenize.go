package loc

import (
	"strings"
)

// splitFields splits a command line on spaces, keeping a quoted run
// (quotes included) as one token. With escapes set, a backslash-escaped
// quote does not close the run.
func splitFields(s string, escapes bool) []string {
	var fields []string
	i := 0
	for i < len(s) {
		if s[i] == ' ' || s[i] == '\t' {
			i++
			continue
		}
		start := i
		if s[i] == '"' {
			if end := closingQuote(s, i+1, escapes); end > 0 {
				fields = append(fields, s[start:end+1])
				i = end + 1
				continue
			}
		}
		for i < len(s) && s[i] != ' ' && s[i] != '\t' {
			i++
		}
		fields = append(fields, s[start:i])
	}
	return fields
}

// closingQuote returns the index of the quote closing a run opened before
// from, or -1.
func closingQuote(s string, from int, escapes bool) int {
	for j := from; j < len(s); j++ {
		switch s[j] {
		case '\\':
			if escapes {
				j++
			}
		case '"':
			return j
		}
	}
	return -1
}

// splitTrailingComment cuts data at the first '#' that is neither at the
// start of the line, inside a quoted run, nor escaped by a backslash.
func splitTrailingComment(data string) (string, string) {
	inQuote := false
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\\':
			i++
		case '"':
			inQuote = !inQuote
		case '#':
			if i > 0 && !inQuote {
				return strings.TrimSpace(data[:i]), strings.TrimSpace(data[i+1:])
			}
		}
	}
	return data, ""
}
