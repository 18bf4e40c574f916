package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/model"
)

// ScrapePanel shows the scrape trigger and the live progress of the job
type ScrapePanel struct {
	widget.BaseWidget

	job          model.ScrapeJob
	localization *Localization

	// UI components
	statusLabel   *widget.Label
	progressLabel *widget.Label
	errorLabel    *widget.Label
	progressBar   *widget.ProgressBar

	runBtn     *widget.Button
	dismissBtn *widget.Button

	// Callbacks
	onRun     func()
	onDismiss func()
}

// NewScrapePanel creates an idle scrape panel
func NewScrapePanel(localization *Localization) *ScrapePanel {
	p := &ScrapePanel{
		job:          model.ScrapeJob{State: model.ScrapeIdle},
		localization: localization,
	}
	p.ExtendBaseWidget(p)
	p.createUI()
	p.updateFromJob()
	return p
}

// SetCallbacks sets the action callbacks
func (p *ScrapePanel) SetCallbacks(onRun, onDismiss func()) {
	p.onRun = onRun
	p.onDismiss = onDismiss
}

// UpdateJob renders a tracker snapshot. Must run on the UI goroutine.
func (p *ScrapePanel) UpdateJob(job model.ScrapeJob) {
	p.job = job
	p.updateFromJob()
	p.Refresh()
}

// Job returns the snapshot currently shown
func (p *ScrapePanel) Job() model.ScrapeJob {
	return p.job
}

func (p *ScrapePanel) createUI() {
	p.statusLabel = widget.NewLabel("")
	p.statusLabel.Truncation = fyne.TextTruncateEllipsis

	p.progressLabel = widget.NewLabel("")
	p.progressLabel.Alignment = fyne.TextAlignTrailing
	p.progressLabel.TextStyle = fyne.TextStyle{Monospace: true}

	p.errorLabel = widget.NewLabel("")
	p.errorLabel.Importance = widget.DangerImportance
	p.errorLabel.Wrapping = fyne.TextWrapWord

	p.progressBar = widget.NewProgressBar()
	// The label carries the verbatim value; the bar hides its own text.
	p.progressBar.TextFormatter = func() string { return "" }

	p.runBtn = widget.NewButton(p.localization.GetText(KeyRunScraper), func() {
		if p.onRun != nil {
			p.onRun()
		}
	})
	p.runBtn.Importance = widget.HighImportance

	p.dismissBtn = widget.NewButton(p.localization.GetText(KeyDismiss), func() {
		if p.onDismiss != nil {
			p.onDismiss()
		}
	})
	p.dismissBtn.Importance = widget.LowImportance
}

// progressFraction maps a 0-100 progress value onto the bar range
func progressFraction(progress float64) float64 {
	switch {
	case progress < 0:
		return 0
	case progress > 100:
		return 1
	default:
		return progress / 100
	}
}

func (p *ScrapePanel) updateFromJob() {
	job := p.job

	if job.State.CanTrigger() {
		p.runBtn.SetText(p.localization.GetText(KeyRunScraper))
		p.runBtn.Enable()
	} else {
		p.runBtn.SetText(p.localization.GetText(KeyScraping))
		p.runBtn.Disable()
	}

	switch job.State {
	case model.ScrapeCompleted:
		p.statusLabel.Importance = widget.SuccessImportance
		p.statusLabel.SetText(IconSuccess + " " + job.Status)
	case model.ScrapeConnecting, model.ScrapeRunning:
		p.statusLabel.Importance = widget.HighImportance
		p.statusLabel.SetText(IconPlay + " " + job.Status)
	default:
		p.statusLabel.Importance = widget.MediumImportance
		p.statusLabel.SetText(job.Status)
	}
	p.progressLabel.SetText(job.ProgressLabel())
	p.progressBar.SetValue(progressFraction(job.Progress))

	if job.PanelVisible() {
		p.statusLabel.Show()
		p.progressLabel.Show()
		p.progressBar.Show()
	} else {
		p.statusLabel.Hide()
		p.progressLabel.Hide()
		p.progressBar.Hide()
	}

	if job.State == model.ScrapeFailed {
		p.errorLabel.SetText(IconError + " " + job.Error)
		p.errorLabel.Show()
		p.dismissBtn.Show()
	} else {
		p.errorLabel.SetText("")
		p.errorLabel.Hide()
		p.dismissBtn.Hide()
	}
}

// CreateRenderer creates the widget renderer
func (p *ScrapePanel) CreateRenderer() fyne.WidgetRenderer {
	return &scrapePanelRenderer{panel: p}
}

type scrapePanelRenderer struct {
	panel  *ScrapePanel
	layout *fyne.Container
}

func (r *scrapePanelRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < ScrapePanelMinWidth {
		size.Width = ScrapePanelMinWidth
	}
	r.layout.Resize(size)
}

func (r *scrapePanelRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	min := r.layout.MinSize()
	return fyne.NewSize(fyne.Max(min.Width, ScrapePanelMinWidth), fyne.Max(min.Height, ScrapePanelMinHeight))
}

func (r *scrapePanelRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *scrapePanelRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *scrapePanelRenderer) Destroy() {}

func (r *scrapePanelRenderer) createLayout() {
	p := r.panel

	// Fixed width for the percent so the bar does not jump while it grows
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(56, p.progressLabel.MinSize().Height))
	percent := container.NewStack(spacer, p.progressLabel)

	progressRow := container.NewBorder(nil, nil, nil, percent, p.progressBar)
	statusRow := container.NewBorder(nil, nil, nil, container.NewHBox(p.dismissBtn, p.runBtn), p.statusLabel)

	r.layout = container.NewVBox(
		statusRow,
		progressRow,
		p.errorLabel,
		widget.NewSeparator(),
	)
}
