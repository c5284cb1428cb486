package wander

import (
	"context"

	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/wanderfs/wander/pkg/files"
	"github.com/wanderfs/wander/pkg/gitutils"
	"github.com/wanderfs/wander/pkg/viewers"
	"github.com/wanderfs/wander/pkg/wstate"
)

// uiApp is the slice of *tview.Application the navigator needs; tests
// substitute a synchronous fake.
type uiApp interface {
	QueueUpdateDraw(f func())
	Stop()
	Sync()
}

type appAdapter struct {
	*tview.Application
}

func (a appAdapter) QueueUpdateDraw(f func()) {
	_ = a.Application.QueueUpdateDraw(f)
}

func (a appAdapter) Sync() {
	_ = a.Application.Sync()
}

// Navigator is the render loop: a two-panel layout (entry list,
// preview) plus a status bar, dispatching key events to NavState
// mutators and redrawing after each one.
type Navigator struct {
	*tview.Flex

	app    uiApp
	state  *NavState
	store  files.Store
	opener *OpenerConfig
	log    logrus.FieldLogger

	list   *tview.Table
	right  *tview.Flex
	status *tview.TextView

	textPreviewer *viewers.TextPreviewer
	dirPreviewer  *viewers.DirPreviewer

	watcher *dirWatcher

	// set while the code, not the user, moves the list selection
	syncingSelection bool

	lastError  error
	gitSummary string

	saveState func(wstate.State) error
	summarize func(ctx context.Context, dir string) (*gitutils.RepoSummary, error)
}

func NewNavigator(app uiApp, store files.Store, state *NavState, opener *OpenerConfig, log logrus.FieldLogger) *Navigator {
	nav := &Navigator{
		app:           app,
		state:         state,
		store:         store,
		opener:        opener,
		log:           log,
		list:          tview.NewTable(),
		right:         tview.NewFlex(),
		status:        tview.NewTextView().SetDynamicColors(true),
		textPreviewer: viewers.NewTextPreviewer(),
		saveState:     wstate.Save,
		summarize:     gitutils.Summarize,
	}
	nav.dirPreviewer = viewers.NewDirPreviewer(
		store,
		state.ShowHidden,
		viewers.WithEntryColors(opener.ColorFor),
	)

	nav.list.SetSelectable(true, false)
	nav.list.SetBorder(true)
	nav.list.SetInputCapture(nav.inputCapture)
	nav.list.SetSelectionChangedFunc(nav.selectionChanged)

	nav.right.SetBorder(true).SetTitle(" Preview ")

	columns := tview.NewFlex().
		AddItem(nav.list, 0, 1, true).
		AddItem(nav.right, 0, 1, false)
	nav.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(columns, 0, 1, true).
		AddItem(nav.status, 1, 0, false)

	nav.refreshAll()
	return nav
}

// WatchDirs turns on fsnotify auto-refresh of the current directory.
func (nav *Navigator) WatchDirs() error {
	watcher, err := newDirWatcher(func() {
		nav.app.QueueUpdateDraw(func() {
			nav.refreshListing()
		})
	}, nav.log)
	if err != nil {
		return err
	}
	nav.watcher = watcher
	watcher.Watch(nav.state.Dir())
	return nil
}

// Close releases the watcher, if any.
func (nav *Navigator) Close() error {
	if nav.watcher == nil {
		return nil
	}
	return nav.watcher.Close()
}

// State exposes the navigation state, e.g. for the exit handler.
func (nav *Navigator) State() *NavState {
	return nav.state
}

// moveSelection, enterSelected, goParent, toggleHidden and
// refreshListing are the key-event entry points. Each one mutates
// NavState, then resyncs the panels; listing errors leave the state
// untouched and surface in the status bar.

func (nav *Navigator) moveSelection(delta int) {
	nav.state.MoveSelection(delta)
	nav.syncSelection()
	nav.updatePreview()
}

func (nav *Navigator) enterSelected() {
	changed, err := nav.state.EnterSelected(context.Background())
	nav.setError(err)
	if changed {
		nav.dirChanged()
	}
	nav.refreshAll()
}

func (nav *Navigator) goParent() {
	changed, err := nav.state.GoParent(context.Background())
	nav.setError(err)
	if changed {
		nav.dirChanged()
	}
	nav.refreshAll()
}

func (nav *Navigator) toggleHidden() {
	nav.setError(nav.state.ToggleHidden(context.Background()))
	nav.persistState()
	nav.refreshAll()
}

func (nav *Navigator) refreshListing() {
	nav.setError(nav.state.Refresh(context.Background()))
	nav.refreshAll()
}

func (nav *Navigator) openSelected() {
	entry, ok := nav.state.SelectedEntry()
	if !ok {
		return
	}
	if entry.IsDir() {
		nav.enterSelected()
		return
	}
	if err := nav.opener.Open(entry.FullName()); err != nil {
		nav.log.WithError(err).Warn("opener failed")
		nav.setError(err)
		nav.updateStatus()
		return
	}
	nav.setError(nil)
	nav.updateStatus()
}

func (nav *Navigator) dirChanged() {
	if nav.watcher != nil {
		nav.watcher.Watch(nav.state.Dir())
	}
	nav.persistState()
	nav.updateGitSummary()
}

func (nav *Navigator) persistState() {
	err := nav.saveState(wstate.State{
		CurrentDir: nav.state.Dir(),
		ShowHidden: nav.state.ShowHidden(),
	})
	if err != nil {
		nav.log.WithError(err).Warn("failed to persist navigator state")
	}
}

func (nav *Navigator) updateGitSummary() {
	dir := nav.state.Dir()
	go func() {
		summary, err := nav.summarize(context.Background(), dir)
		if err != nil {
			nav.log.WithError(err).WithField("dir", dir).Debug("git summary failed")
		}
		nav.app.QueueUpdateDraw(func() {
			nav.gitSummary = summary.String()
			nav.updateStatus()
		})
	}()
}

func (nav *Navigator) setError(err error) {
	nav.lastError = err
}
