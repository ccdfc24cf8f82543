package util

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocFile(t *testing.T) {
	tmpDir := t.TempDir()
	locFile := filepath.Join(tmpDir, "res", "loc", "rufus.loc")
	require.NoError(t, WriteText(locFile, exportLoc))
	assert.True(t, IsFile(locFile))
	assert.False(t, IsFile(filepath.Dir(locFile)))

	result, err := LoadLocFile(context.Background(), locFile, "fr-FR")
	require.NoError(t, err)
	require.Len(t, result.Languages, 2, "the baseline is kept with a selected language")
	assert.Equal(t, "fr-FR", result.Languages[1].ID)

	_, err = LoadLocFile(context.Background(), filepath.Join(tmpDir, "missing.loc"), "")
	assert.Error(t, err)
}

func TestLoadLocFileEncoding(t *testing.T) {
	tmpDir := t.TempDir()

	bom := filepath.Join(tmpDir, "bom.loc")
	require.NoError(t, os.WriteFile(bom, []byte(utf8BOM+exportLoc), 0644))
	_, err := LoadLocFile(context.Background(), bom, "")
	assert.ErrorContains(t, err, "byte-order mark")

	latin1 := filepath.Join(tmpDir, "latin1.loc")
	require.NoError(t, os.WriteFile(latin1, []byte("t MSG_001 \"Fran\xe7ais\"\n"), 0644))
	_, err = LoadLocFile(context.Background(), latin1, "")
	assert.ErrorContains(t, err, "not valid UTF-8")
}

func TestLoadPoFile(t *testing.T) {
	tmpDir := t.TempDir()
	docs := exportDocs(t, parseExportLoc(t), ExportOptions{})
	for name, doc := range docs {
		require.NoError(t, WriteText(filepath.Join(tmpDir, name), doc.Content))
	}

	pot, err := LoadPoFile(context.Background(), filepath.Join(tmpDir, "rufus.pot"))
	require.NoError(t, err)
	assert.True(t, pot.Language.IsBaseline())
	assert.Len(t, pot.Language.IDToStr, 5)

	po, err := LoadPoFile(context.Background(), filepath.Join(tmpDir, "fr-FR.po"))
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", po.Language.ID)
	assert.Len(t, po.Language.IDToStr, 4)
}

func TestLoadBaseline(t *testing.T) {
	baseline, err := LoadBaseline(context.Background(), []byte(exportLoc), "old.loc")
	require.NoError(t, err)
	assert.Equal(t, "3.22", baseline.Version)

	_, err = LoadBaseline(context.Background(), []byte(`l "fr-FR" "French" 0x040c`+"\n"), "old.loc")
	assert.ErrorContains(t, err, "unable to get en-US data from old.loc")
}

func TestIsPotFile(t *testing.T) {
	assert.True(t, IsPotFile("po/rufus.pot"))
	assert.True(t, IsPotFile("RUFUS.POT"))
	assert.False(t, IsPotFile("fr-FR.po"))
	assert.Equal(t, "fr-FR.po", PoFileName("fr-FR"))
}

func TestAnswerIsTrue(t *testing.T) {
	for _, answer := range []string{"y", "Yes", " TRUE ", "on", "1"} {
		assert.True(t, AnswerIsTrue(answer), answer)
	}
	for _, answer := range []string{"", "n", "no", "0", "maybe"} {
		assert.False(t, AnswerIsTrue(answer), answer)
	}
}

func TestConfirmOverwriteMissingFile(t *testing.T) {
	assert.True(t, ConfirmOverwrite(filepath.Join(t.TempDir(), "new.po")))
}
