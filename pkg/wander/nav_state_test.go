package wander

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/wanderfs/wander/pkg/files"
	"github.com/wanderfs/wander/pkg/files/osfile"
)

// flakyStore fails on demand, to verify state stays untouched on
// listing errors.
type flakyStore struct {
	files.Store
	fail bool
}

func (f *flakyStore) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if f.fail {
		return nil, errors.New("transient IO error")
	}
	return f.Store.ReadDir(ctx, name)
}

func (f *flakyStore) RootTitle() string { return "flaky" }
func (f *flakyStore) RootURL() url.URL  { return url.URL{Scheme: "flaky"} }

func mkTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"docs", "src", ".git"} {
		assert.NoError(t, os.Mkdir(filepath.Join(root, dir), 0o755))
	}
	for _, file := range []string{"readme.md", "notes.txt", ".hidden"} {
		assert.NoError(t, os.WriteFile(filepath.Join(root, file), []byte(file), 0o644))
	}
	return root
}

func newTestState(t *testing.T, dir string, showHidden bool) *NavState {
	t.Helper()
	state := NewNavState(osfile.NewStore(), dir, showHidden)
	assert.NoError(t, state.List(context.Background()))
	return state
}

func entryNames(state *NavState) []string {
	out := make([]string, 0, len(state.Entries()))
	for _, e := range state.Entries() {
		out = append(out, e.Name())
	}
	return out
}

func TestListFiltersHidden(t *testing.T) {
	root := mkTree(t)

	state := newTestState(t, root, false)
	assert.Equal(t, []string{"docs", "src", "notes.txt", "readme.md"}, entryNames(state))

	all := newTestState(t, root, true)
	assert.Equal(t, []string{".git", "docs", "src", ".hidden", "notes.txt", "readme.md"}, entryNames(all))
}

func TestMoveSelectionClamps(t *testing.T) {
	state := newTestState(t, mkTree(t), false)

	state.MoveSelection(-5)
	assert.Equal(t, 0, state.Selected())

	state.MoveSelection(+100)
	assert.Equal(t, len(state.Entries())-1, state.Selected())

	state.MoveSelection(-1)
	assert.Equal(t, len(state.Entries())-2, state.Selected())
}

func TestMoveSelectionOnEmptyDir(t *testing.T) {
	state := newTestState(t, t.TempDir(), false)
	assert.Equal(t, 0, len(state.Entries()))

	state.MoveSelection(+1)
	assert.Equal(t, 0, state.Selected())
	state.MoveSelection(-1)
	assert.Equal(t, 0, state.Selected())

	_, ok := state.SelectedEntry()
	assert.False(t, ok)
}

func TestEnterSelectedDescendsIntoDir(t *testing.T) {
	root := mkTree(t)
	state := newTestState(t, root, false)

	state.Select(0) // docs
	changed, err := state.EnterSelected(context.Background())
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, filepath.Join(root, "docs"), state.Dir())
	assert.Equal(t, 0, state.Selected())
}

func TestEnterSelectedOnFileIsNoop(t *testing.T) {
	root := mkTree(t)
	state := newTestState(t, root, false)

	state.Select(len(state.Entries()) - 1) // a file
	changed, err := state.EnterSelected(context.Background())
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, root, state.Dir())
}

func TestEnterThenParentRoundTrips(t *testing.T) {
	root := mkTree(t)
	state := newTestState(t, root, false)

	state.Select(0)
	changed, err := state.EnterSelected(context.Background())
	assert.NoError(t, err)
	assert.True(t, changed)

	changed, err = state.GoParent(context.Background())
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, root, state.Dir())
}

func TestGoParentAtRootIsNoop(t *testing.T) {
	state := NewNavState(osfile.NewStore(), "/", false)
	assert.NoError(t, state.List(context.Background()))

	changed, err := state.GoParent(context.Background())
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "/", state.Dir())
}

func TestToggleHidden(t *testing.T) {
	root := mkTree(t)
	state := newTestState(t, root, false)
	visibleCount := len(state.Entries())

	assert.NoError(t, state.ToggleHidden(context.Background()))
	assert.True(t, state.ShowHidden())
	assert.Equal(t, visibleCount+2, len(state.Entries()))

	assert.NoError(t, state.ToggleHidden(context.Background()))
	assert.False(t, state.ShowHidden())
	assert.Equal(t, visibleCount, len(state.Entries()))
}

func TestToggleHiddenKeepsSelectionByName(t *testing.T) {
	root := mkTree(t)
	state := newTestState(t, root, false)

	// Select "notes.txt", then toggle hidden on: the same entry stays
	// selected even though indices shifted.
	state.Select(2)
	entry, ok := state.SelectedEntry()
	assert.True(t, ok)
	assert.Equal(t, "notes.txt", entry.Name())

	assert.NoError(t, state.ToggleHidden(context.Background()))
	entry, ok = state.SelectedEntry()
	assert.True(t, ok)
	assert.Equal(t, "notes.txt", entry.Name())
}

func TestListingErrorLeavesStateUnchanged(t *testing.T) {
	root := mkTree(t)
	store := &flakyStore{Store: osfile.NewStore()}
	state := NewNavState(store, root, false)
	assert.NoError(t, state.List(context.Background()))

	dir, selected, count := state.Dir(), state.Selected(), len(state.Entries())
	store.fail = true

	t.Run("enter", func(t *testing.T) {
		state.Select(0)
		changed, err := state.EnterSelected(context.Background())
		assert.Error(t, err)
		assert.False(t, changed)
	})
	t.Run("parent", func(t *testing.T) {
		changed, err := state.GoParent(context.Background())
		assert.Error(t, err)
		assert.False(t, changed)
	})
	t.Run("toggle", func(t *testing.T) {
		assert.Error(t, state.ToggleHidden(context.Background()))
		assert.False(t, state.ShowHidden())
	})
	t.Run("refresh", func(t *testing.T) {
		assert.Error(t, state.Refresh(context.Background()))
	})

	assert.Equal(t, dir, state.Dir())
	assert.Equal(t, count, len(state.Entries()))
	_ = selected
}

func TestRefreshPicksUpNewEntries(t *testing.T) {
	root := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), nil, 0o644))
	state := newTestState(t, root, false)
	assert.Equal(t, 1, len(state.Entries()))

	assert.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), nil, 0o644))
	assert.NoError(t, state.Refresh(context.Background()))
	assert.Equal(t, []string{"a.txt", "b.txt"}, entryNames(state))
}
