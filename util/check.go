package util

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/leonelquinteros/gotext"
	"github.com/rufus-l10n/loc-po-helper/loc"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// CheckOptions controls CheckTranslations.
type CheckOptions struct {
	// Ignored keys are never reported as identical to the baseline.
	Ignored []string
	// All checks every language, not only those at the baseline version.
	All bool
}

// LanguageCheck is the translation state of one language.
type LanguageCheck struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Translated int      `json:"translated"`
	Missing    []string `json:"missing"`
	Identical  []string `json:"identical"`
	Obsolete   []string `json:"obsolete"`
}

// CheckReport is the translation state of a loc document.
type CheckReport struct {
	Baseline  string           `json:"baseline"`
	Version   string           `json:"version"`
	Languages []*LanguageCheck `json:"languages"`
}

// CheckTranslations compares every language with the baseline: messages
// missing from the language, messages still identical to the English text,
// and messages the baseline no longer has.
func CheckTranslations(langs []*loc.Language, opts CheckOptions) (*CheckReport, error) {
	baseline := loc.FindBaseline(langs)
	if baseline == nil {
		return nil, ErrMissingBaseline
	}
	ignored := make(map[string]bool, len(opts.Ignored))
	for _, key := range opts.Ignored {
		ignored[key] = true
	}

	report := &CheckReport{
		Baseline: baseline.ID,
		Version:  baseline.Version,
	}
	for _, lang := range langs {
		if lang.IsBaseline() {
			continue
		}
		if !opts.All && lang.Version != baseline.Version {
			log.Debugf("skipping %s at v%s (baseline is v%s)", lang.ID, lang.Version, baseline.Version)
			continue
		}
		c := &LanguageCheck{
			ID:        lang.ID,
			Name:      lang.Name,
			Version:   lang.Version,
			Missing:   []string{},
			Identical: []string{},
			Obsolete:  []string{},
		}
		for _, id := range baseline.IDs() {
			str, ok := lang.Str(id)
			switch {
			case !ok:
				c.Missing = append(c.Missing, id.String())
			case str == baseline.IDToStr[id] && !ignored[id.Key]:
				c.Identical = append(c.Identical, id.String())
			default:
				c.Translated++
			}
		}
		for _, id := range lang.IDs() {
			if _, ok := baseline.Str(id); !ok {
				c.Obsolete = append(c.Obsolete, id.String())
			}
		}
		report.Languages = append(report.Languages, c)
	}
	return report, nil
}

// WriteJSON writes the report as indented JSON.
func (r *CheckReport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode check report: %w", err)
	}
	return nil
}

// CheckSummary holds the counters of one language in a saved report.
type CheckSummary struct {
	ID         string
	Version    string
	Translated int
	Missing    int
	Identical  int
	Obsolete   int
}

// ReadCheckReport reads the per-language counters of a JSON report saved by
// "check --json". Only the fields it needs are read, so reports written by
// older versions remain usable.
func ReadCheckReport(data []byte) ([]CheckSummary, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid check report: malformed JSON")
	}
	languages := gjson.GetBytes(data, "languages")
	if !languages.IsArray() {
		return nil, fmt.Errorf("invalid check report: no languages")
	}
	var summaries []CheckSummary
	languages.ForEach(func(_, v gjson.Result) bool {
		summaries = append(summaries, CheckSummary{
			ID:         v.Get("id").String(),
			Version:    v.Get("version").String(),
			Translated: int(v.Get("translated").Int()),
			Missing:    int(v.Get("missing.#").Int()),
			Identical:  int(v.Get("identical.#").Int()),
			Obsolete:   int(v.Get("obsolete.#").Int()),
		})
		return true
	})
	return summaries, nil
}

// VerifyPoLoadable loads PO data with an independent gettext reader and
// checks that every translated, non-fuzzy entry resolves to its msgstr.
// It returns the number of entries verified.
func VerifyPoLoadable(data []byte) (int, error) {
	po := gotext.NewPo()
	po.Parse(data)

	entries, _ := ParsePoEntries(data)
	verified := 0
	for _, e := range entries {
		if e.MsgStr == "" || e.IsFuzzy() {
			continue
		}
		msgID := poUnescape(e.MsgID)
		want := poUnescape(e.MsgStr)
		if got := po.Get(msgID); got != want {
			return verified, fmt.Errorf("msgid %q does not load: got %q, want %q", msgID, got, want)
		}
		verified++
	}
	return verified, nil
}
