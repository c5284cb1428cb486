package files

import (
	"os"
	"path/filepath"
)

// EntryWithDirPath pairs a directory entry with the directory that
// contains it, so the entry's full path can be derived.
type EntryWithDirPath struct {
	os.DirEntry
	Dir string
}

func NewEntryWithDirPath(entry os.DirEntry, dir string) EntryWithDirPath {
	return EntryWithDirPath{DirEntry: entry, Dir: dir}
}

func (e EntryWithDirPath) FullName() string {
	return filepath.Join(e.Dir, e.Name())
}

func (e EntryWithDirPath) String() string {
	return e.FullName()
}
