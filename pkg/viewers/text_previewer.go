package viewers

import (
	"bytes"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/wanderfs/wander/pkg/chroma2tcell"
	"github.com/wanderfs/wander/pkg/files"
	"github.com/wanderfs/wander/pkg/fsutils"
)

const (
	// MaxPreviewBytes bounds how much of a file is read for preview.
	MaxPreviewBytes = 64 * 1024

	// binarySniffLen is how far into the data a NUL byte marks the
	// content as binary.
	binarySniffLen = 8 * 1024

	highlightStyle = "dracula"
)

var readFileData = fsutils.ReadFileData

var _ Previewer = (*TextPreviewer)(nil)

// TextPreviewer shows a bounded, optionally syntax-highlighted prefix
// of a regular file.
type TextPreviewer struct {
	*tview.TextView
}

func NewTextPreviewer() *TextPreviewer {
	return &TextPreviewer{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true).
			SetScrollable(true),
	}
}

func (p *TextPreviewer) Main() tview.Primitive {
	return p.TextView
}

func (p *TextPreviewer) Preview(entry files.EntryWithDirPath, queueUpdateDraw func(func())) {
	go func() {
		fullName := entry.FullName()
		data, err := readFileData(fullName, MaxPreviewBytes)
		if err != nil {
			queueUpdateDraw(func() {
				p.showError(fmt.Sprintf("failed to read %s: %v", fullName, err))
			})
			return
		}
		text, colored := renderPreviewText(entry.Name(), data)
		queueUpdateDraw(func() {
			p.Clear()
			p.SetTextColor(tcell.ColorDefault)
			p.SetDynamicColors(colored)
			p.SetText(text)
			p.ScrollToBeginning()
		})
	}()
}

// renderPreviewText decides what to display for the given file data.
// colored reports whether the text contains tview color tags.
func renderPreviewText(name string, data []byte) (text string, colored bool) {
	switch {
	case len(data) == 0:
		return "<empty file>", false
	case IsBinary(data):
		return "<binary file>", false
	}
	colorized, ok, err := chroma2tcell.ColorizeForFile(name, string(data), highlightStyle)
	if err != nil || !ok {
		return string(data), false
	}
	return colorized, true
}

// IsBinary reports whether data looks like non-text content: a NUL
// byte within the sniff window.
func IsBinary(data []byte) bool {
	sniff := data
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	return bytes.IndexByte(sniff, 0) >= 0
}

func (p *TextPreviewer) showError(text string) {
	p.Clear()
	p.SetDynamicColors(false)
	p.SetText(text)
	p.SetTextColor(tcell.ColorRed)
}
