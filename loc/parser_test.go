package loc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLoc = `# Header comment
l "en-US" "English (English)" 0x0409 0x0809
v 3.22

g IDD_DIALOG
t IDS_DEVICE_TXT "Device"
# Tooltip for the start button
# keep it short
t IDC_START "START"

t MSG_001 "Other instance detected"
t MSG_002 "Press # to continue" # trailing note
t LONG "Part1"
"Part2"

######################################
l "fr-FR" "French (Français)" 0x040c 0x080c
v 3.21
b "en-US"

g IDD_DIALOG
t IDS_DEVICE_TXT "Périphérique"

t MSG_001 "Autre instance détectée"

######################################
l "ar-SA" "Arabic (العربية)" 0x0401
v 3.22
b "en-US"
a "r"

t MSG_001 "تم الكشف عن مثيل آخر"
`

func parseSample(t *testing.T, opts ParseOptions) *Result {
	t.Helper()
	result, err := ParseLoc(context.Background(), sampleLoc, opts)
	require.NoError(t, err)
	require.False(t, result.Cancelled)
	return result
}

func TestParseLocLanguages(t *testing.T) {
	result := parseSample(t, ParseOptions{})
	require.Len(t, result.Languages, 3)

	en := result.Languages[0]
	assert.Equal(t, "en-US", en.ID)
	assert.Equal(t, "English (English)", en.Name)
	assert.Equal(t, "3.22", en.Version)
	assert.Equal(t, "0x0409 0x0809", en.LCID)
	require.Len(t, en.Sections, 2)
	assert.Equal(t, "IDD_DIALOG", en.Sections[0].Name)
	assert.Equal(t, DefaultGroup, en.Sections[1].Name)

	fr := result.Languages[1]
	assert.Equal(t, "fr-FR", fr.ID)
	assert.Equal(t, "3.21", fr.Version)
	str, ok := fr.Str(ID{Group: "IDD_DIALOG", Key: "IDS_DEVICE_TXT"})
	assert.True(t, ok)
	assert.Equal(t, `"Périphérique"`, str)

	assert.Equal(t, "ar-SA", result.Languages[2].ID)
}

func TestParseLocContinuation(t *testing.T) {
	result := parseSample(t, ParseOptions{})
	en := result.Languages[0]

	id := ID{Group: DefaultGroup, Key: "LONG"}
	msg := en.Section(DefaultGroup).Lookup("LONG")
	require.NotNil(t, msg)
	assert.Equal(t, `"Part1Part2"`, msg.Str)
	assert.Equal(t, "Part1Part2", msg.Text())
	assert.Equal(t, msg.Str, en.IDToStr[id])
}

func TestParseLocIDToStrMirrorsSections(t *testing.T) {
	result := parseSample(t, ParseOptions{})
	for _, lang := range result.Languages {
		count := 0
		for _, s := range lang.Sections {
			for _, m := range s.Messages {
				count++
				str, ok := lang.IDToStr[ID{Group: s.Name, Key: m.ID}]
				assert.True(t, ok, "%s: %s missing from IDToStr", lang.ID, m.ID)
				assert.Equal(t, m.Str, str)
			}
		}
		assert.Equal(t, count, len(lang.IDToStr), lang.ID)
	}
}

func TestParseLocComments(t *testing.T) {
	result := parseSample(t, ParseOptions{})
	en := result.Languages[0]

	assert.Equal(t, "Tooltip for the start button\nkeep it short",
		en.Comments[ID{Group: "IDD_DIALOG", Key: "IDC_START"}])
	assert.Equal(t, "trailing note",
		en.Comments[ID{Group: DefaultGroup, Key: "MSG_002"}])
	assert.Equal(t, `"Press # to continue"`,
		en.IDToStr[ID{Group: DefaultGroup, Key: "MSG_002"}])
	_, ok := en.Comments[ID{Group: "IDD_DIALOG", Key: "IDS_DEVICE_TXT"}]
	assert.False(t, ok, "comment before 'l' must not leak into the first message")
}

func TestParseLocImplicitMSGSection(t *testing.T) {
	text := `l "en-US" "English" 0x0409
v 1.0
g Strings
t GREETING "Hi"
t MSG_001 "Hello"
t MSG_002 "World"
`
	result, err := ParseLoc(context.Background(), text, ParseOptions{})
	require.NoError(t, err)
	en := result.Languages[0]
	require.Len(t, en.Sections, 2)
	assert.Len(t, en.Section("Strings").Messages, 1)
	assert.Len(t, en.Section(DefaultGroup).Messages, 2)
}

func TestParseLocSelect(t *testing.T) {
	result := parseSample(t, ParseOptions{SelectID: "fr-FR"})
	require.Len(t, result.Languages, 2)
	assert.Equal(t, "en-US", result.Languages[0].ID)
	assert.Equal(t, "fr-FR", result.Languages[1].ID)

	result = parseSample(t, ParseOptions{SelectID: BaselineID})
	require.Len(t, result.Languages, 1)
	assert.Equal(t, "en-US", result.Languages[0].ID)
	assert.Len(t, result.Languages[0].IDToStr, 5)
}

func TestParseLocInvalidLanguage(t *testing.T) {
	_, err := ParseLoc(context.Background(), "l \"en-US\" \"English\"\n", ParseOptions{Source: "rufus.loc"})
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, "rufus.loc:1: invalid 'l' command", err.Error())
}

func TestParseLocDiagnostics(t *testing.T) {
	text := `l "en-US" "English" 0x0409
"orphan"
t MSG_001 "Hello" "extra"
t MSG_002 "Fine"
t MSG_002 "Duplicate"
`
	result, err := ParseLoc(context.Background(), text, ParseOptions{})
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 3)
	assert.Equal(t, 2, result.Diagnostics[0].Line)
	assert.Equal(t, 3, result.Diagnostics[1].Line)
	assert.Equal(t, 5, result.Diagnostics[2].Line)

	en := result.Languages[0]
	assert.Equal(t, map[ID]string{{Group: DefaultGroup, Key: "MSG_002"}: `"Fine"`}, en.IDToStr)
}

func TestParseLocContinuationAfterRejectedLine(t *testing.T) {
	text := `l "en-US" "English" 0x0409
t MSG_001 "Hello"
t MSG_001 "Dup"
"tail"
t MSG_002 "A" "extra"
"more"
`
	result, err := ParseLoc(context.Background(), text, ParseOptions{})
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 4)
	assert.Equal(t, 4, result.Diagnostics[1].Line)
	assert.Contains(t, result.Diagnostics[1].Msg, "no previous key")
	assert.Equal(t, 6, result.Diagnostics[3].Line)

	en := result.Languages[0]
	assert.Equal(t, map[ID]string{{Group: DefaultGroup, Key: "MSG_001"}: `"Hello"`}, en.IDToStr)
}

func TestParseLocEscapedQuotes(t *testing.T) {
	text := `l "en-US" "English" 0x0409
t MSG_001 "Say \"hello world\" now"
`
	result, err := ParseLoc(context.Background(), text, ParseOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, `"Say \"hello world\" now"`,
		result.Languages[0].IDToStr[ID{Group: DefaultGroup, Key: "MSG_001"}])
}

func TestParseLocCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := ParseLoc(ctx, sampleLoc, ParseOptions{})
	require.NoError(t, err)
	assert.True(t, result.Cancelled)
	assert.Empty(t, result.Languages)
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "MSG_001", ID{Group: DefaultGroup, Key: "MSG_001"}.String())
	assert.Equal(t, "Strings → GREETING", ID{Group: "Strings", Key: "GREETING"}.String())
	assert.NotEqual(t, ID{Group: "a:b", Key: "c"}, ID{Group: "a", Key: "b:c"})
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		in      string
		escapes bool
		want    []string
	}{
		{`l "en-US" "English (US)" 0x0409 0x0809`, false, []string{"l", `"en-US"`, `"English (US)"`, "0x0409", "0x0809"}},
		{`t KEY "a \"b c\" d"`, true, []string{"t", "KEY", `"a \"b c\" d"`}},
		{`t KEY "a \"b c\" d"`, false, []string{"t", "KEY", `"a \"`, "b", `c\"`, `d"`}},
		{`t KEY  ""`, true, []string{"t", "KEY", `""`}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitFields(tt.in, tt.escapes), tt.in)
	}
}
