package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/model"
	"github.com/novraux/novraux-desk/internal/view"
)

// CalendarPage is the Seasonal Calendar page
type CalendarPage struct {
	env      *pageEnv
	calendar *view.Calendar

	categorySelect *widget.Select
	searchEntry    *widget.Entry
	countsLabel    *widget.Label
	statusLabel    *widget.Label
	monthsBox      *fyne.Container
	content        fyne.CanvasObject
}

func newCalendarPage(env *pageEnv, calendar *view.Calendar) *CalendarPage {
	p := &CalendarPage{env: env, calendar: calendar}
	p.createUI()
	calendar.SetChangeCallback(onChange(p.render))
	return p
}

func (p *CalendarPage) createUI() {
	p.categorySelect = widget.NewSelect(model.CalendarCategories, p.calendar.SetCategory)
	p.categorySelect.SetSelected(model.CalendarCategories[0])

	p.searchEntry = widget.NewEntry()
	p.searchEntry.SetPlaceHolder(p.env.text(KeySearchEvents))
	p.searchEntry.OnChanged = p.calendar.SetSearch

	p.countsLabel = widget.NewLabel("")
	p.countsLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.statusLabel = newStatusLabel()
	p.monthsBox = container.NewVBox()

	filters := container.NewBorder(nil, nil, labeled(p.env.text(KeyCategory), p.categorySelect), nil, p.searchEntry)
	top := container.NewVBox(filters, p.countsLabel, p.statusLabel, widget.NewSeparator())
	p.content = container.NewBorder(top, nil, nil, nil, container.NewVScroll(p.monthsBox))
}

func (p *CalendarPage) render() {
	snap := p.calendar.Snapshot()
	statusLine(p.statusLabel, snap, p.env.text(KeyLoading))

	counts := p.calendar.Counts()
	var parts []string
	for _, b := range model.UrgencyBuckets {
		parts = append(parts, fmt.Sprintf("%s %s: %d", b.Icon(), b.Label(), counts[b]))
	}
	p.countsLabel.SetText(strings.Join(parts, MiddleDotSeparator))

	p.monthsBox.RemoveAll()
	months := p.calendar.Months()
	if snap.Loaded && len(months) == 0 {
		p.monthsBox.Add(widget.NewLabel(p.env.text(KeyNoEvents)))
	}
	for _, m := range months {
		p.monthsBox.Add(sectionTitle(m.Label))
		for _, ev := range m.Events {
			p.monthsBox.Add(p.eventCard(ev))
		}
	}
	p.monthsBox.Refresh()
}

func (p *CalendarPage) eventCard(ev model.ResolvedEvent) fyne.CanvasObject {
	id := ev.ID

	meta := []string{ev.On.Format("Mon, Jan 2"), ev.DaysLabel(), ev.Category}
	body := container.NewVBox(widget.NewLabel(strings.Join(meta, MiddleDotSeparator)))
	if ev.StartNow() {
		l := widget.NewLabel(IconFire + " " + p.env.text(KeyStartNow))
		l.Importance = widget.WarningImportance
		body.Add(l)
	}
	if ev.Notes != "" {
		body.Add(wrappedLabel(ev.Notes))
	}

	niches := container.NewGridWrap(fyne.NewSize(160, 36))
	for _, n := range ev.Niches {
		niche := n
		btn := widget.NewButton(niche, func() {
			p.calendar.Explore(p.env.nav, niche)
		})
		btn.Importance = widget.LowImportance
		niches.Add(btn)
	}
	body.Add(niches)

	copyBtn := widget.NewButton(IconCopy+" "+p.env.text(KeyCopyNiches), func() {
		text, n, err := p.calendar.CopyNiches(id)
		if err != nil {
			p.env.toaster.ShowError(err.Error())
			return
		}
		p.env.copyText(text, fmt.Sprintf(p.env.text(KeyNichesCopied), n))
	})
	body.Add(container.NewHBox(copyBtn))

	title := fmt.Sprintf("%s %s", ev.Emoji, ev.Name)
	return widget.NewCard(title, ev.Bucket().Icon()+" "+ev.Bucket().Label(), body)
}

// Content returns the page body
func (p *CalendarPage) Content() fyne.CanvasObject {
	return p.content
}

// Activate loads the events on first show
func (p *CalendarPage) Activate() {
	snap := p.calendar.Snapshot()
	if !snap.Loaded && !snap.Loading {
		p.env.background("Calendar refresh", p.calendar.Refresh)
	}
	p.render()
}
