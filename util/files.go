package util

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rufus-l10n/loc-po-helper/loc"
	log "github.com/sirupsen/logrus"
)

const utf8BOM = "\xef\xbb\xbf"

// ReadText reads a UTF-8 text file. A byte-order mark is rejected.
func ReadText(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("fail to read %s: %w", name, err)
	}
	if len(data) >= len(utf8BOM) && string(data[:len(utf8BOM)]) == utf8BOM {
		return "", fmt.Errorf("%s: UTF-8 byte-order mark is not supported", name)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: not valid UTF-8", name)
	}
	return string(data), nil
}

// WriteText writes text to name, creating its directory if needed.
func WriteText(name, text string) error {
	if dir := filepath.Dir(name); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("fail to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(name, []byte(text), 0644); err != nil {
		return fmt.Errorf("fail to write %s: %w", name, err)
	}
	log.Debugf("wrote %d bytes to %s", len(text), name)
	return nil
}

// LoadLocFile parses the loc document at name.
func LoadLocFile(ctx context.Context, name, selectID string) (*loc.Result, error) {
	text, err := ReadText(name)
	if err != nil {
		return nil, err
	}
	return loc.ParseLoc(ctx, text, loc.ParseOptions{SelectID: selectID, Source: name})
}

// LoadLocText parses loc text read from another origin, such as a git
// revision.
func LoadLocText(ctx context.Context, data []byte, source, selectID string) (*loc.Result, error) {
	return loc.ParseLoc(ctx, string(data), loc.ParseOptions{SelectID: selectID, Source: source})
}

// LoadBaseline reads only the en-US language of a loc document, as used for
// an older release to diff against.
func LoadBaseline(ctx context.Context, data []byte, source string) (*loc.Language, error) {
	result, err := LoadLocText(ctx, data, source, loc.BaselineID)
	if err != nil {
		return nil, err
	}
	if result.Cancelled {
		return nil, context.Canceled
	}
	if len(result.Languages) != 1 || !result.Languages[0].IsBaseline() {
		return nil, fmt.Errorf("unable to get %s data from %s", loc.BaselineID, source)
	}
	return result.Languages[0], nil
}

// LoadPoFile parses a PO or POT file; the kind is given by its extension.
func LoadPoFile(ctx context.Context, name string) (*ImportResult, error) {
	text, err := ReadText(name)
	if err != nil {
		return nil, err
	}
	return ParsePo(ctx, text, ImportOptions{IsPot: IsPotFile(name), Source: name})
}
