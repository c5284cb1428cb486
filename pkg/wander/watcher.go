package wander

import (
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// dirWatcher follows the navigator's current directory and fires
// onChange when entries appear, vanish or get renamed, so the listing
// refreshes without a manual Ctrl-R.
type dirWatcher struct {
	watcher  *fsnotify.Watcher
	onChange func()
	log      logrus.FieldLogger

	watched string
}

func newDirWatcher(onChange func(), log logrus.FieldLogger) (*dirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &dirWatcher{
		watcher:  watcher,
		onChange: onChange,
		log:      log,
	}
	go w.run()
	return w, nil
}

// Watch re-arms the watcher on a new directory, dropping the previous
// one. A failure to watch is logged, not fatal: the manual refresh key
// still works.
func (w *dirWatcher) Watch(dir string) {
	if dir == w.watched {
		return
	}
	if w.watched != "" {
		if err := w.watcher.Remove(w.watched); err != nil {
			w.log.WithError(err).WithField("dir", w.watched).Debug("failed to unwatch directory")
		}
	}
	w.watched = dir
	if err := w.watcher.Add(dir); err != nil {
		w.log.WithError(err).WithField("dir", dir).Warn("failed to watch directory")
		w.watched = ""
	}
}

func (w *dirWatcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.onChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("directory watcher error")
		}
	}
}

func (w *dirWatcher) Close() error {
	return w.watcher.Close()
}
