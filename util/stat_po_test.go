package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const statPo = `
msgid ""
msgstr ""
"Language: fr_FR\n"

#. • MSG_001
msgid "Hello"
msgstr "Bonjour"

#. • MSG_002
#, fuzzy
msgid "Bye"
msgstr "Salut"

#. • MSG_003
msgid "Empty"
msgstr ""

#. • MSG_004
msgid "OK"
msgstr "OK"
`

func TestCountPoReportStats(t *testing.T) {
	stats := CountPoReportStats([]byte(statPo))
	assert.Equal(t, &PoReportStats{Translated: 1, Untranslated: 1, Same: 1, Fuzzy: 1}, stats)
	assert.Equal(t,
		"1 translated message, 1 fuzzy translation, 1 untranslated message, 1 same message.\n",
		FormatStatLine(stats))
}

func TestFormatStatLine(t *testing.T) {
	assert.Equal(t, "0 translated messages.\n", FormatStatLine(&PoReportStats{}))
	assert.Equal(t, "3 translated messages, 2 untranslated messages.\n",
		FormatStatLine(&PoReportStats{Translated: 3, Untranslated: 2}))
}
