// Package viewers renders preview content for the entry selected in
// the navigator: file text on the right pane, or a nested listing when
// the selection is a directory.
package viewers

import (
	"github.com/rivo/tview"

	"github.com/wanderfs/wander/pkg/files"
)

// Previewer derives displayable content for a selected entry. Preview
// implementations may do their work on a goroutine and must publish UI
// mutations through queueUpdateDraw.
type Previewer interface {
	Preview(entry files.EntryWithDirPath, queueUpdateDraw func(func()))
	Main() tview.Primitive
}
