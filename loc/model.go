// Package loc implements the multi-language "loc" resource format: the data
// model shared by the gettext converters, the grammar parser, the block
// writer and the in-place merge of a single language into a loc document.
package loc

import (
	"sort"
)

const (
	// DefaultGroup is the implicit section holding flat MSG_xxx keys.
	DefaultGroup = "MSG"
	// BaselineID is the locale of the authoritative source strings.
	BaselineID = "en-US"
)

// rtlLanguages are the locales that get an `a "r"` attribute on write.
var rtlLanguages = map[string]bool{
	"ar-SA": true,
	"he-IL": true,
	"fa-IR": true,
}

// IsRTL reports whether locale id is written as a right-to-left language.
func IsRTL(id string) bool {
	return rtlLanguages[id]
}

// ID is the composite key of a message: the section it belongs to and its
// key inside that section.
type ID struct {
	Group string
	Key   string
}

// String returns the display form: the bare key for the default group,
// "Group → key" otherwise.
func (id ID) String() string {
	if id.Group == DefaultGroup {
		return id.Key
	}
	return id.Group + " → " + id.Key
}

// Message is a translatable key and its raw quoted value, e.g. `"Hello"`.
type Message struct {
	ID  string
	Str string
}

// Text returns the value without its outer quotes.
func (m *Message) Text() string {
	return Unquote(m.Str)
}

// Section is a named, ordered list of messages.
type Section struct {
	Name     string
	Messages []*Message
}

// Lookup returns the message with the given key.
func (s *Section) Lookup(key string) *Message {
	for _, m := range s.Messages {
		if m.ID == key {
			return m
		}
	}
	return nil
}

// Language holds every message of one locale.
//
// IDToStr mirrors Sections: every (section, key) pair has the same string in
// both, which AddMessage and SetStr maintain.
type Language struct {
	ID       string
	Name     string
	Version  string
	LCID     string
	Sections []*Section
	Comments map[ID]string
	IDToStr  map[ID]string
}

// NewLanguage returns an empty Language.
func NewLanguage() *Language {
	return &Language{
		Comments: make(map[ID]string),
		IDToStr:  make(map[ID]string),
	}
}

// IsBaseline reports whether this is the en-US source language.
func (l *Language) IsBaseline() bool {
	return l.ID == BaselineID
}

// Section returns the named section, or nil.
func (l *Language) Section(name string) *Section {
	for _, s := range l.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// AddSection opens the named section, returning the existing one if present.
func (l *Language) AddSection(name string) *Section {
	if s := l.Section(name); s != nil {
		return s
	}
	s := &Section{Name: name}
	l.Sections = append(l.Sections, s)
	return s
}

// AddMessage appends key=str to group and records it in IDToStr. It returns
// nil when the key already exists in that group.
func (l *Language) AddMessage(group, key, str string) *Message {
	id := ID{Group: group, Key: key}
	if _, ok := l.IDToStr[id]; ok {
		return nil
	}
	s := l.AddSection(group)
	m := &Message{ID: key, Str: str}
	s.Messages = append(s.Messages, m)
	l.IDToStr[id] = str
	return m
}

// SetStr replaces the value of message m, known by id, in both views.
func (l *Language) SetStr(id ID, m *Message, str string) {
	m.Str = str
	l.IDToStr[id] = str
}

// Str returns the raw value stored for id.
func (l *Language) Str(id ID) (string, bool) {
	s, ok := l.IDToStr[id]
	return s, ok
}

// SortedSectionNames returns the section names in lexical order.
func (l *Language) SortedSectionNames() []string {
	names := make([]string, 0, len(l.Sections))
	for _, s := range l.Sections {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

// IDs enumerates every message id, sections in lexical order and messages
// in insertion order.
func (l *Language) IDs() []ID {
	var ids []ID
	for _, name := range l.SortedSectionNames() {
		for _, m := range l.Section(name).Messages {
			ids = append(ids, ID{Group: name, Key: m.ID})
		}
	}
	return ids
}

// SortSection orders the messages of the named section by key.
func (l *Language) SortSection(name string) {
	s := l.Section(name)
	if s == nil {
		return
	}
	sort.SliceStable(s.Messages, func(i, j int) bool {
		return s.Messages[i].ID < s.Messages[j].ID
	})
}

// FindBaseline returns the en-US language of langs, or nil.
func FindBaseline(langs []*Language) *Language {
	for _, l := range langs {
		if l.IsBaseline() {
			return l
		}
	}
	return nil
}

// Quote wraps s in double quotes.
func Quote(s string) string {
	return `"` + s + `"`
}

// Unquote strips one pair of outer double quotes, if present.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
