package files

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// IsHidden reports whether a name follows the leading-dot hidden
// convention. The same rule is applied on every platform.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ListDir returns the immediate children of dir. Hidden entries are
// excluded unless showHidden is set. The order is stable: directories
// first, then case-insensitive Unicode collation of names.
//
// On error the returned slice is nil; callers are expected to keep
// their previous state and surface the error.
func ListDir(ctx context.Context, store Store, dir string, showHidden bool) ([]EntryWithDirPath, error) {
	children, err := store.ReadDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	entries := make([]EntryWithDirPath, 0, len(children))
	for _, child := range children {
		if !showHidden && IsHidden(child.Name()) {
			continue
		}
		entries = append(entries, NewEntryWithDirPath(child, dir))
	}
	SortEntries(entries)
	return entries, nil
}

// SortEntries orders entries in place: directories before files, names
// compared with a case-insensitive collator.
func SortEntries(entries []EntryWithDirPath) {
	// Collators carry an internal buffer, so one per call.
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		return c.CompareString(a.Name(), b.Name()) < 0
	})
}
