package wander

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/wanderfs/wander/pkg/files/osfile"
	"github.com/wanderfs/wander/pkg/fsutils"
	"github.com/wanderfs/wander/pkg/wstate"
)

// DefaultOpenerConfigPath is where the opener table lives unless
// --config points elsewhere.
const DefaultOpenerConfigPath = "~/.wander/opener.toml"

type Options struct {
	// CwdFile receives the current directory on exit. If it already
	// holds a directory path, navigation starts there.
	CwdFile string

	OpenerConfigPath string
	ShowHidden       bool
	Watch            bool

	Log *logrus.Logger
}

var osGetwd = os.Getwd
var stderr io.Writer = os.Stderr
var loadState = wstate.Load

// Run starts the navigator and blocks until quit. The returned error
// is fatal (startup failure or terminal loss); a failed cwd-file write
// is reported on stderr but does not fail the run.
func Run(o Options) error {
	log := o.Log
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	opener, err := LoadOpenerConfig(fsutils.ExpandHome(o.OpenerConfigPath))
	if err != nil {
		return err
	}

	store := osfile.NewStore()
	persisted, err := loadState()
	if err != nil {
		log.WithError(err).Warn("failed to load persisted state")
	}

	state := NewNavState(store, startDir(o.CwdFile, persisted), o.ShowHidden || persisted.ShowHidden)
	if err := state.List(context.Background()); err != nil {
		return fmt.Errorf("cannot list initial directory %s: %w", state.Dir(), err)
	}

	app := tview.NewApplication()
	nav := NewNavigator(appAdapter{app}, store, state, opener, log)
	if o.Watch {
		if err := nav.WatchDirs(); err != nil {
			log.WithError(err).Warn("directory watching unavailable")
		}
	}
	nav.updateGitSummary()

	log.WithField("dir", state.Dir()).Info("starting navigator")
	runErr := app.SetRoot(nav, true).Run()
	_ = nav.Close()

	if err := wstate.WriteCwdFile(o.CwdFile, state.Dir()); err != nil {
		// Reported, but never blocks process exit.
		_, _ = fmt.Fprintf(stderr, "failed to write cwd file: %v\n", err)
		log.WithError(err).Error("failed to write cwd file")
	}
	return runErr
}

// startDir picks where navigation begins: a directory recorded in the
// cwd file wins, then the directory persisted from the previous run,
// otherwise the process working directory.
func startDir(cwdFile string, persisted *wstate.State) string {
	if dir := wstate.ReadCwdFile(cwdFile); dir != "" {
		return dir
	}
	if persisted != nil && persisted.CurrentDir != "" {
		if exists, err := fsutils.DirExists(persisted.CurrentDir); err == nil && exists {
			return persisted.CurrentDir
		}
	}
	dir, err := osGetwd()
	if err != nil {
		return "/"
	}
	return dir
}
