package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/model"
)

// maxPayloadDepth bounds how deep nested objects are rendered as sections
const maxPayloadDepth = 3

// NewPayloadView renders a free-form generated document. Fields appear in
// document order under humanized names; lists become bullet lines and
// nested objects become indented sections.
func NewPayloadView(p model.Payload) fyne.CanvasObject {
	box := container.NewVBox()
	appendPayload(box, p, 0)
	return box
}

func appendPayload(box *fyne.Container, p model.Payload, depth int) {
	for _, f := range p {
		if f.Value.IsEmpty() {
			continue
		}
		title := widget.NewLabel(model.HumanizeKey(f.Name))
		title.TextStyle = fyne.TextStyle{Bold: true}

		switch {
		case f.Value.Kind == model.KindObject && depth < maxPayloadDepth:
			nested := container.NewVBox()
			appendPayload(nested, f.Value.Object, depth+1)
			box.Add(title)
			box.Add(container.NewPadded(nested))
		case f.Value.Kind == model.KindList:
			box.Add(title)
			box.Add(wrappedLabel("• " + strings.Join(f.Value.List, "\n• ")))
		default:
			box.Add(title)
			box.Add(wrappedLabel(f.Value.String()))
		}
	}
}

func wrappedLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	return l
}
