package ui

import (
	"context"
	"log"
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/view"
)

// Controllers is the view state the pages render
type Controllers struct {
	Navigator  *view.Navigator
	TrendFeed  *view.TrendFeed
	Explorer   *view.NicheExplorer
	ShopifySEO *view.ShopifySEO
	Orders     *view.Orders
	Vault      *view.Vault
	Calendar   *view.Calendar
}

// page is one screen of the dashboard
type page interface {
	// Content returns the page body. Called once.
	Content() fyne.CanvasObject
	// Activate runs every time the page is shown
	Activate()
}

// pageEnv carries what every page needs besides its controller
type pageEnv struct {
	app          fyne.App
	window       fyne.Window
	localization *Localization
	toaster      *Toaster
	nav          *view.Navigator
	timeout      time.Duration
}

// text is a shortcut for the localized string of key
func (e *pageEnv) text(key string) string {
	return e.localization.GetText(key)
}

// background runs fn off the UI goroutine with the request timeout.
// Failures other than superseded fetches are toasted.
func (e *pageEnv) background(what string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()
		if err := fn(ctx); err != nil && !view.IsStale(err) {
			log.Printf("%s failed: %v", what, err)
			e.toaster.ShowError(err.Error())
		}
	}()
}

// onChange returns a controller change callback that runs render on the
// UI goroutine
func onChange(render func()) func() {
	return func() {
		fyne.Do(render)
	}
}

// copyText puts text on the clipboard and confirms with a toast
func (e *pageEnv) copyText(text, confirmation string) {
	e.window.Clipboard().SetContent(text)
	e.toaster.ShowSuccess(confirmation)
}

// openURL opens raw in the system browser
func (e *pageEnv) openURL(raw string) {
	u, err := url.Parse(raw)
	if err != nil {
		e.toaster.ShowError(err.Error())
		return
	}
	if err := e.app.OpenURL(u); err != nil {
		e.toaster.ShowError(err.Error())
	}
}

// linkTo returns a hyperlink to raw, or a plain label when raw is not a URL
func linkTo(text, raw string) fyne.CanvasObject {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return widget.NewLabel(text)
	}
	return widget.NewHyperlink(text, u)
}

// statusLine shows loading and error state of a snapshot
func statusLine[T any](label *widget.Label, snap view.Snapshot[T], loading string) {
	switch {
	case snap.Loading:
		label.Importance = widget.MediumImportance
		label.SetText(loading)
		label.Show()
	case snap.Err != nil:
		label.Importance = widget.DangerImportance
		label.SetText(IconError + " " + snap.Err.Error())
		label.Show()
	default:
		label.SetText("")
		label.Hide()
	}
}

// newStatusLabel creates the label statusLine drives
func newStatusLabel() *widget.Label {
	l := widget.NewLabel("")
	l.Wrapping = fyne.TextWrapWord
	l.Hide()
	return l
}
