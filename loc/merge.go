package loc

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ErrLanguageNotFound is returned by MergeIntoLocDocument when the document
// has no `l` command for the language.
var ErrLanguageNotFound = errors.New("language not found in loc document")

const registryPrefix = "# • v"

// isSeparator reports a line made only of '#' characters, as written
// between language blocks.
func isSeparator(line string) bool {
	if len(line) < 6 {
		return false
	}
	return strings.Trim(line, "#") == ""
}

// MergeIntoLocDocument replaces the block of lang in an existing loc
// document and updates its registry line. The block runs from its `l`
// command up to the next separator line. Everything else is kept byte for
// byte, including line endings.
func MergeIntoLocDocument(existing string, lang *Language) (string, error) {
	if lang == nil || lang.ID == "" {
		return "", fmt.Errorf("cannot merge a language without id")
	}

	lines := strings.SplitAfter(existing, "\n")
	nl := "\n"
	if len(lines) > 0 && strings.HasSuffix(lines[0], "\r\n") {
		nl = "\r\n"
	}
	header := fmt.Sprintf("l \"%s\"", lang.ID)

	var (
		b             strings.Builder
		skip          bool
		foundBlock    bool
		foundRegistry bool
	)
	b.Grow(len(existing))
	for _, line := range lines {
		bare := strings.TrimRight(line, "\r\n")
		switch {
		case strings.HasPrefix(bare, registryPrefix):
			parts := strings.Split(bare, `"`)
			if len(parts) >= 2 && parts[1] == lang.ID {
				b.WriteString(registryLine(lang))
				b.WriteString(line[len(bare):])
				foundRegistry = true
				continue
			}
		case strings.HasPrefix(bare, header):
			skip = true
			foundBlock = true
			writeLanguageBlock(&b, lang, nl)
			b.WriteString(nl)
		case isSeparator(bare):
			skip = false
		}
		if !skip {
			b.WriteString(line)
		}
	}

	if !foundBlock {
		return "", fmt.Errorf("%w: %s", ErrLanguageNotFound, lang.ID)
	}
	if !foundRegistry {
		log.Warnf("no registry line for %s in loc document", lang.ID)
	}
	return b.String(), nil
}
