package viewers

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/wanderfs/wander/pkg/files"
	"github.com/wanderfs/wander/pkg/fsutils"
)

// MaxDirPreviewEntries bounds how many entries the nested listing shows.
const MaxDirPreviewEntries = 500

var _ Previewer = (*DirPreviewer)(nil)

// DirPreviewer shows a read-only nested listing for a selected
// directory. It never mutates the navigator's state.
type DirPreviewer struct {
	*tview.Table

	store      files.Store
	showHidden func() bool
	colorFor   func(name string, isDir bool) tcell.Color
}

type DirPreviewerOption func(*DirPreviewer)

// WithEntryColors overrides how listed names are tinted.
func WithEntryColors(colorFor func(name string, isDir bool) tcell.Color) DirPreviewerOption {
	return func(d *DirPreviewer) {
		d.colorFor = colorFor
	}
}

func NewDirPreviewer(store files.Store, showHidden func() bool, options ...DirPreviewerOption) *DirPreviewer {
	d := &DirPreviewer{
		Table:      tview.NewTable(),
		store:      store,
		showHidden: showHidden,
		colorFor: func(_ string, isDir bool) tcell.Color {
			if isDir {
				return tcell.ColorLightBlue
			}
			return tcell.ColorWhiteSmoke
		},
	}
	for _, option := range options {
		option(d)
	}
	d.SetSelectable(false, false)
	return d
}

func (d *DirPreviewer) Main() tview.Primitive {
	return d.Table
}

func (d *DirPreviewer) Preview(entry files.EntryWithDirPath, queueUpdateDraw func(func())) {
	dirPath := entry.FullName()
	showHidden := d.showHidden()
	go func() {
		entries, err := files.ListDir(context.Background(), d.store, dirPath, showHidden)
		queueUpdateDraw(func() {
			d.Clear()
			if err != nil {
				cell := tview.NewTableCell(fmt.Sprintf("error: %v", err))
				d.SetCell(0, 0, cell.SetTextColor(tcell.ColorRed))
				return
			}
			if len(entries) == 0 {
				cell := tview.NewTableCell("<empty>")
				d.SetCell(0, 0, cell.SetTextColor(tcell.ColorGray))
				return
			}
			d.setEntries(entries)
		})
	}()
}

func (d *DirPreviewer) setEntries(entries []files.EntryWithDirPath) {
	truncated := false
	if len(entries) > MaxDirPreviewEntries {
		entries = entries[:MaxDirPreviewEntries]
		truncated = true
	}
	for row, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		nameCell := tview.NewTableCell(name).
			SetTextColor(d.colorFor(e.Name(), e.IsDir())).
			SetExpansion(1)
		d.SetCell(row, 0, nameCell)
		if info, err := e.Info(); err == nil && info != nil && !e.IsDir() {
			sizeCell := tview.NewTableCell(fsutils.SizeText(info.Size())).
				SetAlign(tview.AlignRight).
				SetTextColor(tcell.ColorGray)
			d.SetCell(row, 1, sizeCell)
		}
	}
	if truncated {
		cell := tview.NewTableCell("…")
		d.SetCell(MaxDirPreviewEntries, 0, cell.SetTextColor(tcell.ColorGray))
	}
	d.ScrollToBeginning()
}
