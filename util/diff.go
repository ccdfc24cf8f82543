package util

import (
	"strings"

	"github.com/rufus-l10n/loc-po-helper/loc"
	log "github.com/sirupsen/logrus"
)

// ChangeKind classifies a baseline message against an older baseline.
type ChangeKind int

// Change kinds reported by DiffBaselines.
const (
	Unchanged ChangeKind = iota
	Added
	Modified
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Modified:
		return "modified"
	}
	return "unchanged"
}

// BaselineDiff is the result of comparing two en-US baselines.
type BaselineDiff struct {
	Added    []loc.ID
	Modified []loc.ID
	// Removed lists ids of the old baseline that are gone from the new one.
	Removed []loc.ID

	kinds map[loc.ID]ChangeKind
}

// Kind returns how id changed. Ids unknown to the new baseline are Unchanged.
func (d *BaselineDiff) Kind(id loc.ID) ChangeKind {
	if d == nil {
		return Unchanged
	}
	return d.kinds[id]
}

// NeedsWork reports an added or modified id, i.e. one to flag fuzzy.
func (d *BaselineDiff) NeedsWork(id loc.ID) bool {
	return d.Kind(id) != Unchanged
}

// DiffBaselines classifies every id of newBase against oldBase.
//
// A string that only lost a trailing `\n` escape is not counted as modified.
func DiffBaselines(oldBase, newBase *loc.Language) *BaselineDiff {
	d := &BaselineDiff{kinds: make(map[loc.ID]ChangeKind)}
	for _, id := range newBase.IDs() {
		newStr := newBase.IDToStr[id]
		oldStr, ok := oldBase.Str(id)
		switch {
		case !ok:
			d.kinds[id] = Added
			d.Added = append(d.Added, id)
		case oldStr != newStr && !onlyDroppedNewline(oldStr, newStr):
			d.kinds[id] = Modified
			d.Modified = append(d.Modified, id)
		}
	}
	for _, id := range oldBase.IDs() {
		if _, ok := newBase.Str(id); !ok {
			d.Removed = append(d.Removed, id)
		}
	}
	log.Debugf("baseline diff: added=%d, modified=%d, removed=%d",
		len(d.Added), len(d.Modified), len(d.Removed))
	return d
}

// onlyDroppedNewline reports whether oldStr is newStr with a trailing `\n`
// escape before the closing quote.
func onlyDroppedNewline(oldStr, newStr string) bool {
	const suffix = `\n"`
	if !strings.HasSuffix(oldStr, suffix) {
		return false
	}
	return strings.TrimSuffix(oldStr, suffix)+`"` == newStr
}
