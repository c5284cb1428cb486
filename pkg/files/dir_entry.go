package files

import (
	"os"
	"path/filepath"
	"time"
)

// NewDirEntry creates a synthetic os.DirEntry, mostly for tests and
// previews. The name must be a bare name, not a path.
func NewDirEntry(name string, isDir bool, o ...FileInfoOption) DirEntry {
	if dir, _ := filepath.Split(name); dir != "" {
		panic("dir entry name must not contain a path: " + name)
	}
	entry := DirEntry{name: name, isDir: isDir}
	if len(o) > 0 {
		entry.info = NewFileInfo(entry, o...)
	}
	return entry
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name  string
	isDir bool
	info  *FileInfo
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }

func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}

func (d DirEntry) Info() (os.FileInfo, error) {
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}

type FileInfoOption func(*FileInfo)

func Size(v int64) FileInfoOption {
	return func(info *FileInfo) { info.size = v }
}

func ModTime(v time.Time) FileInfoOption {
	return func(info *FileInfo) { info.modTime = v }
}

var _ os.FileInfo = (*FileInfo)(nil)

type FileInfo struct {
	DirEntry
	size    int64
	modTime time.Time
}

func NewFileInfo(entry DirEntry, o ...FileInfoOption) *FileInfo {
	info := &FileInfo{DirEntry: entry}
	for _, opt := range o {
		opt(info)
	}
	return info
}

func (f *FileInfo) Size() int64 {
	if f == nil {
		return 0
	}
	return f.size
}

func (f *FileInfo) Mode() os.FileMode {
	if f == nil {
		return 0
	}
	return f.Type()
}

func (f *FileInfo) ModTime() time.Time {
	if f == nil {
		return time.Time{}
	}
	return f.modTime
}

func (f *FileInfo) Sys() any { return nil }
