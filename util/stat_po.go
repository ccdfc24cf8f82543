package util

import (
	"fmt"
	"strings"
)

// PoReportStats holds statistics for a PO file.
type PoReportStats struct {
	Translated   int // Entries with non-empty translation, not fuzzy
	Untranslated int // Entries with empty msgstr
	Same         int // Entries where msgstr equals msgid
	Fuzzy        int // Entries with fuzzy flag
}

// CountPoReportStats returns entry statistics of PO data.
func CountPoReportStats(data []byte) *PoReportStats {
	entries, _ := ParsePoEntries(data)
	stats := &PoReportStats{}
	for _, e := range entries {
		switch {
		case e.IsFuzzy():
			stats.Fuzzy++
		case e.MsgStr == "":
			stats.Untranslated++
		case e.MsgStr == e.MsgID:
			stats.Same++
		default:
			stats.Translated++
		}
	}
	return stats
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// FormatStatLine formats stats in one line, similar to msgfmt --statistics.
// Only non-zero categories are shown.
func FormatStatLine(stats *PoReportStats) string {
	var parts []string
	if stats.Translated > 0 {
		parts = append(parts, plural(stats.Translated, "translated message", "translated messages"))
	}
	if stats.Fuzzy > 0 {
		parts = append(parts, plural(stats.Fuzzy, "fuzzy translation", "fuzzy translations"))
	}
	if stats.Untranslated > 0 {
		parts = append(parts, plural(stats.Untranslated, "untranslated message", "untranslated messages"))
	}
	if stats.Same > 0 {
		parts = append(parts, plural(stats.Same, "same message", "same messages"))
	}
	if len(parts) == 0 {
		return "0 translated messages.\n"
	}
	return strings.Join(parts, ", ") + ".\n"
}
