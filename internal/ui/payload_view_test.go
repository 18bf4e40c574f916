package ui

import (
	"encoding/json"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/model"
)

// labelTexts collects the label texts of a rendered payload in order
func labelTexts(o fyne.CanvasObject) []string {
	var out []string
	switch v := o.(type) {
	case *widget.Label:
		out = append(out, v.Text)
	case *fyne.Container:
		for _, child := range v.Objects {
			out = append(out, labelTexts(child)...)
		}
	}
	return out
}

func TestPayloadView(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	var p model.Payload
	raw := `{"color_palette":["navy","cream"],"tagline":"Stay wild","empty":"","layout":{"font_style":"serif"}}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	got := labelTexts(NewPayloadView(p))
	expected := []string{"Color Palette", "• navy\n• cream", "Tagline", "Stay wild", "Layout", "Font Style", "serif"}

	if len(got) != len(expected) {
		t.Fatalf("Labels = %q, expected %q", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Label %d = %q, expected %q", i, got[i], expected[i])
		}
	}
}
