package loc

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Banner identifies the tool in the header of a regenerated loc document.
type Banner struct {
	AppName    string
	AppVersion string
	Project    string
}

// WriteLanguageBlock serializes lang as an `l` command followed by its
// version, attributes and sections.
func WriteLanguageBlock(lang *Language) string {
	var b strings.Builder
	writeLanguageBlock(&b, lang, "\n")
	return b.String()
}

func writeLanguageBlock(b *strings.Builder, lang *Language, nl string) {
	fmt.Fprintf(b, "l \"%s\" \"%s\" %s%s", lang.ID, lang.Name, lang.LCID, nl)
	fmt.Fprintf(b, "v %s%s", lang.Version, nl)
	if !lang.IsBaseline() {
		fmt.Fprintf(b, "b \"%s\"%s", BaselineID, nl)
	}
	if IsRTL(lang.ID) {
		b.WriteString(`a "r"` + nl)
	}

	for _, section := range lang.Sections {
		b.WriteString(nl)
		if section.Name != DefaultGroup {
			fmt.Fprintf(b, "g %s%s", section.Name, nl)
		}
		for _, msg := range section.Messages {
			id := ID{Group: section.Name, Key: msg.ID}
			if comment, ok := lang.Comments[id]; ok {
				for _, line := range strings.Split(comment, "\n") {
					if strings.TrimSpace(line) != "" {
						fmt.Fprintf(b, "# %s%s", line, nl)
					}
				}
			}
			fmt.Fprintf(b, "t %s %s%s", msg.ID, msg.Str, nl)
		}
	}
}

// registryLine is the "# • v<version> ..." line listing lang in the header.
func registryLine(lang *Language) string {
	return fmt.Sprintf("# • v%-4s \"%s\" \"%s\"", lang.Version, lang.ID, lang.Name)
}

// SaveLocFile regenerates a whole loc document from langs: banner, registry
// of all languages, then every language block.
func SaveLocFile(langs []*Language, banner Banner) (string, error) {
	if len(langs) == 0 {
		return "", fmt.Errorf("no language to save")
	}

	var b strings.Builder
	notice := fmt.Sprintf("### Autogenerated by %s %s for use with %s - DO NOT EDIT!!! ###",
		banner.AppName, banner.AppVersion, banner.Project)
	sep := strings.Repeat("#", len(notice))
	b.WriteString(sep + "\n")
	b.WriteString(notice + "\n")
	b.WriteString(sep + "\n")
	b.WriteString("\n")
	b.WriteString("# List of all languages included in this file (with version)\n")
	for _, lang := range langs {
		b.WriteString(registryLine(lang) + "\n")
	}
	for _, lang := range langs {
		log.Infof("adding %s", lang.ID)
		b.WriteString("\n")
		b.WriteString(sep + "\n")
		writeLanguageBlock(&b, lang, "\n")
	}
	return b.String(), nil
}
