package wander

import (
	"github.com/gdamore/tcell/v2"
)

// Key bindings, fixed: q quit; j/↓ down; k/↑ up; l/→ enter directory;
// h/← parent; Enter open; . toggle hidden; Ctrl-R force redraw.
func (nav *Navigator) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			nav.app.Stop()
			return nil
		case 'j':
			nav.moveSelection(+1)
			return nil
		case 'k':
			nav.moveSelection(-1)
			return nil
		case 'l':
			nav.enterSelected()
			return nil
		case 'h':
			nav.goParent()
			return nil
		case '.':
			nav.toggleHidden()
			return nil
		}
	case tcell.KeyDown:
		nav.moveSelection(+1)
		return nil
	case tcell.KeyUp:
		nav.moveSelection(-1)
		return nil
	case tcell.KeyRight:
		nav.enterSelected()
		return nil
	case tcell.KeyLeft:
		nav.goParent()
		return nil
	case tcell.KeyEnter:
		nav.openSelected()
		return nil
	case tcell.KeyCtrlR:
		nav.refreshListing()
		nav.app.Sync()
		return nil
	}
	return event
}
