package wander

import (
	"context"
	"path/filepath"

	"github.com/wanderfs/wander/pkg/files"
)

// NavState is the navigator's only mutable state: the current
// directory, its listed entries, the selected index and the
// hidden-files flag. It is owned by the render loop and mutated only
// in response to key events.
//
// Invariant: 0 <= selected < len(entries) whenever entries is
// non-empty; selected stays 0 when the listing is empty. Mutations
// that need a fresh listing leave the state untouched when the listing
// fails, so the navigator stays usable on IO errors.
type NavState struct {
	store      files.Store
	dir        string
	entries    []files.EntryWithDirPath
	selected   int
	showHidden bool
}

func NewNavState(store files.Store, dir string, showHidden bool) *NavState {
	return &NavState{
		store:      store,
		dir:        dir,
		showHidden: showHidden,
	}
}

func (s *NavState) Dir() string                       { return s.dir }
func (s *NavState) Entries() []files.EntryWithDirPath { return s.entries }
func (s *NavState) Selected() int                     { return s.selected }
func (s *NavState) ShowHidden() bool                  { return s.showHidden }

func (s *NavState) SelectedEntry() (files.EntryWithDirPath, bool) {
	if len(s.entries) == 0 {
		return files.EntryWithDirPath{}, false
	}
	return s.entries[s.selected], true
}

// List populates entries for the current directory. Used at startup;
// the state keeps its previous entries if the listing fails.
func (s *NavState) List(ctx context.Context) error {
	entries, err := files.ListDir(ctx, s.store, s.dir, s.showHidden)
	if err != nil {
		return err
	}
	s.entries = entries
	s.clampSelection()
	return nil
}

// MoveSelection moves the selected index by delta, clamped to the
// listing bounds. No-op on an empty listing.
func (s *NavState) MoveSelection(delta int) {
	s.selected += delta
	s.clampSelection()
}

// Select sets the selected index, clamped. Used when the UI widget
// reports a selection change.
func (s *NavState) Select(index int) {
	s.selected = index
	s.clampSelection()
}

// EnterSelected descends into the selected directory. It reports
// whether the current directory changed. Selecting a regular file is
// a no-op.
func (s *NavState) EnterSelected(ctx context.Context) (changed bool, err error) {
	entry, ok := s.SelectedEntry()
	if !ok || !entry.IsDir() {
		return false, nil
	}
	target := entry.FullName()
	entries, err := files.ListDir(ctx, s.store, target, s.showHidden)
	if err != nil {
		return false, err
	}
	s.dir = target
	s.entries = entries
	s.selected = 0
	return true, nil
}

// GoParent ascends to the parent directory; no-op at the filesystem
// root.
func (s *NavState) GoParent(ctx context.Context) (changed bool, err error) {
	parent := filepath.Dir(s.dir)
	if parent == s.dir {
		return false, nil
	}
	entries, err := files.ListDir(ctx, s.store, parent, s.showHidden)
	if err != nil {
		return false, err
	}
	s.dir = parent
	s.entries = entries
	s.selected = 0
	return true, nil
}

// ToggleHidden flips the hidden-files filter and re-lists the current
// directory. The selected entry is kept by name when it survives the
// filter change.
func (s *NavState) ToggleHidden(ctx context.Context) error {
	entries, err := files.ListDir(ctx, s.store, s.dir, !s.showHidden)
	if err != nil {
		return err
	}
	s.showHidden = !s.showHidden
	s.replaceEntries(entries)
	return nil
}

// Refresh re-lists the current directory, keeping the selection by
// name where possible.
func (s *NavState) Refresh(ctx context.Context) error {
	entries, err := files.ListDir(ctx, s.store, s.dir, s.showHidden)
	if err != nil {
		return err
	}
	s.replaceEntries(entries)
	return nil
}

func (s *NavState) replaceEntries(entries []files.EntryWithDirPath) {
	var selectedName string
	if entry, ok := s.SelectedEntry(); ok {
		selectedName = entry.Name()
	}
	s.entries = entries
	if selectedName != "" {
		for i, entry := range entries {
			if entry.Name() == selectedName {
				s.selected = i
				return
			}
		}
	}
	s.clampSelection()
}

func (s *NavState) clampSelection() {
	if len(s.entries) == 0 {
		s.selected = 0
		return
	}
	if s.selected < 0 {
		s.selected = 0
	} else if s.selected >= len(s.entries) {
		s.selected = len(s.entries) - 1
	}
}
