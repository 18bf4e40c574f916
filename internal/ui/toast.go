package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toaster shows short-lived notifications in the top-right corner
type Toaster struct {
	window   fyne.Window
	duration time.Duration
}

// NewToaster creates a toaster; duration is how long a toast stays visible
func NewToaster(window fyne.Window, duration time.Duration) *Toaster {
	if duration <= 0 {
		duration = ToastShort
	}
	return &Toaster{window: window, duration: duration}
}

// Show displays message for the configured duration. Safe to call from any goroutine.
func (t *Toaster) Show(message string) {
	t.show(message, widget.MediumImportance, t.duration)
}

// ShowSuccess displays a short confirmation
func (t *Toaster) ShowSuccess(message string) {
	t.show(IconSuccess+" "+message, widget.SuccessImportance, ToastShort)
}

// ShowError displays a failure message
func (t *Toaster) ShowError(message string) {
	log.Printf("ui: %s", message)
	t.show(IconError+" "+message, widget.DangerImportance, t.duration)
}

func (t *Toaster) show(message string, importance widget.Importance, d time.Duration) {
	fyne.Do(func() {
		messageLabel := widget.NewLabel(message)
		messageLabel.Importance = importance
		messageLabel.Wrapping = fyne.TextWrapWord

		var toastPopup *widget.PopUp
		closeBtn := widget.NewButton(IconClose, func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
		closeBtn.Importance = widget.LowImportance

		content := container.NewBorder(nil, nil, nil, closeBtn, messageLabel)
		toastPopup = widget.NewPopUp(content, t.window.Canvas())

		// Position in top-right corner
		canvasSize := t.window.Canvas().Size()
		toastSize := fyne.NewSize(ToastWidth, ToastHeight)
		toastPopup.Resize(toastSize)
		toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
		toastPopup.Show()

		time.AfterFunc(d, func() {
			fyne.Do(toastPopup.Hide)
		})
	})
}
