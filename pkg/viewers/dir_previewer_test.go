package viewers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/wanderfs/wander/pkg/files"
)

type stubStore struct {
	entries []os.DirEntry
	err     error
}

func (s stubStore) RootTitle() string { return "stub" }
func (s stubStore) RootURL() url.URL  { return url.URL{Scheme: "stub"} }

func (s stubStore) ReadDir(context.Context, string) ([]os.DirEntry, error) {
	return s.entries, s.err
}

func dirEntry(dir string) files.EntryWithDirPath {
	return files.NewEntryWithDirPath(files.NewDirEntry(dir, true), "/")
}

func TestDirPreviewerListsChildren(t *testing.T) {
	store := stubStore{entries: []os.DirEntry{
		files.NewDirEntry("sub", true),
		files.NewDirEntry("file.txt", false, files.Size(2048)),
		files.NewDirEntry(".secret", false),
	}}
	d := NewDirPreviewer(store, func() bool { return false })

	runPreview(t, d, dirEntry("home"))

	assert.Equal(t, "sub/", d.GetCell(0, 0).Text)
	assert.Equal(t, "file.txt", d.GetCell(1, 0).Text)
	assert.Equal(t, "2KB", d.GetCell(1, 1).Text)
	// Hidden entry filtered out.
	assert.Equal(t, 2, d.GetRowCount())
}

func TestDirPreviewerShowsHidden(t *testing.T) {
	store := stubStore{entries: []os.DirEntry{
		files.NewDirEntry(".secret", false),
	}}
	d := NewDirPreviewer(store, func() bool { return true })

	runPreview(t, d, dirEntry("home"))

	assert.Equal(t, ".secret", d.GetCell(0, 0).Text)
}

func TestDirPreviewerEmptyDir(t *testing.T) {
	d := NewDirPreviewer(stubStore{}, func() bool { return false })

	runPreview(t, d, dirEntry("empty"))

	assert.Equal(t, "<empty>", d.GetCell(0, 0).Text)
}

func TestDirPreviewerError(t *testing.T) {
	d := NewDirPreviewer(stubStore{err: errors.New("permission denied")}, func() bool { return false })

	runPreview(t, d, dirEntry("locked"))

	assert.Contains(t, d.GetCell(0, 0).Text, "permission denied")
}

func TestDirPreviewerTruncatesLongListings(t *testing.T) {
	entries := make([]os.DirEntry, MaxDirPreviewEntries+50)
	for i := range entries {
		entries[i] = files.NewDirEntry(fmt.Sprintf("%04d.txt", i), false)
	}
	d := NewDirPreviewer(stubStore{entries: entries}, func() bool { return false })

	runPreview(t, d, dirEntry("big"))

	assert.Equal(t, MaxDirPreviewEntries+1, d.GetRowCount())
	assert.Equal(t, "…", d.GetCell(MaxDirPreviewEntries, 0).Text)
}
