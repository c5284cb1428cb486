package wander

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/wanderfs/wander/pkg/fsutils"
	"github.com/wanderfs/wander/pkg/viewers"
)

// refreshAll resyncs every panel with the navigation state.
func (nav *Navigator) refreshAll() {
	nav.renderList()
	nav.syncSelection()
	nav.updatePreview()
	nav.updateStatus()
}

func (nav *Navigator) renderList() {
	nav.list.Clear()
	nav.list.SetTitle(fmt.Sprintf(" %s ", nav.state.Dir()))

	entries := nav.state.Entries()
	if len(entries) == 0 {
		cell := tview.NewTableCell("<empty directory>").SetTextColor(tcell.ColorGray)
		nav.list.SetCell(0, 0, cell.SetSelectable(false))
		return
	}
	for row, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		color := nav.opener.ColorFor(entry.Name(), entry.IsDir())
		nav.list.SetCell(row, 0, tview.NewTableCell(name).
			SetTextColor(color).
			SetExpansion(1))

		info, err := entry.Info()
		if err != nil || info == nil {
			continue
		}
		if !entry.IsDir() {
			nav.list.SetCell(row, 1, tview.NewTableCell(fsutils.SizeText(info.Size())).
				SetAlign(tview.AlignRight).
				SetTextColor(tcell.ColorGray))
		}
		nav.list.SetCell(row, 2, tview.NewTableCell(modTimeText(info.ModTime())).
			SetAlign(tview.AlignRight).
			SetTextColor(tcell.ColorGray))
	}
}

func modTimeText(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.After(time.Now().Add(-24 * time.Hour)) {
		return t.Format("15:04:05")
	}
	return t.Format("2006-01-02")
}

// syncSelection moves the table cursor to the state's selected index
// without treating it as a user selection change.
func (nav *Navigator) syncSelection() {
	if len(nav.state.Entries()) == 0 {
		return
	}
	row, _ := nav.list.GetSelection()
	if row == nav.state.Selected() {
		return
	}
	nav.syncingSelection = true
	nav.list.Select(nav.state.Selected(), 0)
	nav.syncingSelection = false
}

func (nav *Navigator) selectionChanged(row, _ int) {
	if nav.syncingSelection {
		return
	}
	nav.state.Select(row)
	nav.updatePreview()
}

func (nav *Navigator) updatePreview() {
	entry, ok := nav.state.SelectedEntry()
	if !ok {
		nav.showPreviewer(nav.textPreviewer)
		nav.textPreviewer.Clear()
		nav.textPreviewer.SetDynamicColors(false)
		nav.textPreviewer.SetTextColor(tcell.ColorGray)
		nav.textPreviewer.SetText("<nothing to preview>")
		return
	}
	if entry.IsDir() {
		nav.showPreviewer(nav.dirPreviewer)
		nav.dirPreviewer.Preview(entry, nav.app.QueueUpdateDraw)
		return
	}
	nav.showPreviewer(nav.textPreviewer)
	nav.textPreviewer.Preview(entry, nav.app.QueueUpdateDraw)
}

func (nav *Navigator) showPreviewer(p viewers.Previewer) {
	nav.right.Clear()
	nav.right.AddItem(p.Main(), 0, 1, false)
}

func (nav *Navigator) updateStatus() {
	left := fmt.Sprintf("[lightblue]%s[-] %s", nav.store.RootTitle(), nav.state.Dir())
	if nav.gitSummary != "" {
		left += " " + nav.gitSummary
	}
	if nav.state.ShowHidden() {
		left += " [gray]·[-] hidden shown"
	}
	if nav.lastError != nil {
		left += fmt.Sprintf(" [red]%v[-]", nav.lastError)
	}
	nav.status.SetText(left)
}
