package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/model"
	"github.com/novraux/novraux-desk/internal/view"
)

// gapPlatforms are the marketplaces the gap report supports
var gapPlatforms = []string{"etsy", "redbubble"}

// NichePage is the Niche Explorer page
type NichePage struct {
	env      *pageEnv
	explorer *view.NicheExplorer

	keywordEntry   *widget.Entry
	styleSelect    *widget.Select
	platformSelect *widget.Select
	analyzeBtn     *widget.Button
	gapBtn         *widget.Button

	validationStatus *widget.Label
	validationBox    *fyne.Container
	analysisStatus   *widget.Label
	analysisBox      *fyne.Container
	gapStatus        *widget.Label
	gapBox           *fyne.Container
	content          fyne.CanvasObject
}

func newNichePage(env *pageEnv, explorer *view.NicheExplorer) *NichePage {
	p := &NichePage{env: env, explorer: explorer}
	p.createUI()
	explorer.SetChangeCallback(onChange(p.render))
	return p
}

func (p *NichePage) createUI() {
	p.keywordEntry = widget.NewEntry()
	p.keywordEntry.SetPlaceHolder(p.env.text(KeyEnterNiche))
	p.keywordEntry.OnSubmitted = func(string) { p.onSearch() }

	searchBtn := widget.NewButton(IconSearch+" "+p.env.text(KeySearch), p.onSearch)
	searchBtn.Importance = widget.HighImportance

	p.styleSelect = widget.NewSelect(model.DesignStyles, p.explorer.SetStyle)
	p.styleSelect.SetSelected(p.explorer.Style())

	p.analyzeBtn = widget.NewButton(IconRobot+" "+p.env.text(KeyAnalyze), func() {
		p.env.background("Niche analysis", p.explorer.Analyze)
	})

	p.platformSelect = widget.NewSelect(gapPlatforms, nil)
	p.platformSelect.SetSelected(gapPlatforms[0])
	p.gapBtn = widget.NewButton(p.env.text(KeyGapReport), func() {
		platform := p.platformSelect.Selected
		p.env.background("Gap report", func(ctx context.Context) error {
			return p.explorer.GapReport(ctx, platform)
		})
	})

	p.validationStatus = newStatusLabel()
	p.validationBox = container.NewVBox()
	p.analysisStatus = newStatusLabel()
	p.analysisBox = container.NewVBox()
	p.gapStatus = newStatusLabel()
	p.gapBox = container.NewVBox()

	searchRow := container.NewBorder(nil, nil, nil, searchBtn, p.keywordEntry)
	actions := container.NewHBox(
		widget.NewLabel(p.env.text(KeyStyle)), p.styleSelect, p.analyzeBtn,
		widget.NewSeparator(), p.platformSelect, p.gapBtn,
	)

	body := container.NewVBox(
		p.validationStatus, p.validationBox,
		p.gapStatus, p.gapBox,
		p.analysisStatus, p.analysisBox,
	)
	p.content = container.NewBorder(container.NewVBox(searchRow, actions, widget.NewSeparator()), nil, nil, nil, container.NewVScroll(body))
	p.render()
}

func (p *NichePage) onSearch() {
	keyword := p.keywordEntry.Text
	p.env.background("Niche search", func(ctx context.Context) error {
		return p.explorer.Search(ctx, keyword)
	})
}

func (p *NichePage) render() {
	hasNiche := p.explorer.Keyword() != ""
	validation := p.explorer.Validation()
	if hasNiche && validation.Loaded && validation.Err == nil {
		p.analyzeBtn.Enable()
		p.gapBtn.Enable()
	} else {
		p.analyzeBtn.Disable()
		p.gapBtn.Disable()
	}

	statusLine(p.validationStatus, validation, p.env.text(KeyLoading))
	p.validationBox.RemoveAll()
	switch {
	case !hasNiche:
		p.validationBox.Add(widget.NewLabel(p.env.text(KeyNoSearchYet)))
	case validation.Loaded && validation.Err == nil:
		p.renderValidation(validation.Data)
	}
	p.validationBox.Refresh()

	gap := p.explorer.Gap()
	statusLine(p.gapStatus, gap, p.env.text(KeyLoading))
	p.gapBox.RemoveAll()
	if gap.Loaded && gap.Err == nil {
		p.renderGap(gap.Data)
	}
	p.gapBox.Refresh()

	analysis := p.explorer.Analysis()
	statusLine(p.analysisStatus, analysis, p.env.text(KeyLoading))
	p.analysisBox.RemoveAll()
	if analysis.Loaded && analysis.Err == nil {
		p.renderAnalysis(analysis.Data)
	}
	p.analysisBox.Refresh()
}

func (p *NichePage) renderValidation(v model.NicheValidation) {
	verdict := widget.NewLabel(fmt.Sprintf("%s (%.0f/100)", v.Verdict(), v.OpportunityScore))
	verdict.TextStyle = fyne.TextStyle{Bold: true}
	verdict.Importance = widget.HighImportance

	stats := widget.NewLabel(strings.Join([]string{
		fmt.Sprintf("%s: %d", p.env.text(KeyListings), v.ListingCount),
		fmt.Sprintf("%s: %s", p.env.text(KeyAvgPrice), model.FormatMoney(v.PriceStats.Avg)),
		fmt.Sprintf("Etsy %d", v.Platforms.Etsy),
		fmt.Sprintf("Redbubble %d", v.Platforms.Redbubble),
	}, MiddleDotSeparator))

	p.validationBox.Add(verdict)
	p.validationBox.Add(stats)
	for _, line := range v.ReportLines() {
		p.validationBox.Add(wrappedLabel(line))
	}
	if len(v.TopCompetitors) > 0 {
		p.validationBox.Add(sectionTitle(p.env.text(KeyCompetitors)))
		for _, c := range v.TopCompetitors {
			p.validationBox.Add(competitorRow(c))
		}
	}
}

func (p *NichePage) renderGap(g model.GapAnalysis) {
	p.gapBox.Add(sectionTitle(fmt.Sprintf("%s: %s (%d %s)", p.env.text(KeyGapReport), g.Platform, g.ListingCount, p.env.text(KeyListings))))
	p.gapBox.Add(wrappedLabel(g.Report))
	for _, c := range g.Competitors {
		p.gapBox.Add(competitorRow(c))
	}
}

func (p *NichePage) renderAnalysis(a model.NicheAnalysis) {
	if len(a.Details) > 0 {
		p.analysisBox.Add(NewPayloadView(a.Details))
	}
	designs := a.AllDesigns()
	if len(designs) == 0 {
		return
	}
	p.analysisBox.Add(sectionTitle(p.env.text(KeyDesignIdeas)))
	for _, idea := range designs {
		p.analysisBox.Add(p.designCard(idea))
	}
}

func (p *NichePage) designCard(idea model.DesignIdea) fyne.CanvasObject {
	work := p.explorer.Work(idea)

	header := fmt.Sprintf("%s %s", model.ProductIcon(idea.Product), idea.Title)
	sub := []string{idea.Product, fmt.Sprintf("%s %.0f", p.env.text(KeyDemand), idea.DemandScore.Float())}
	if idea.DesignText != "" {
		sub = append(sub, fmt.Sprintf("%q", idea.DesignText))
	}

	body := container.NewVBox(wrappedLabel(idea.Concept), widget.NewLabel(strings.Join(sub, MiddleDotSeparator)))
	if len(idea.Elements) > 0 {
		body.Add(wrappedLabel(strings.Join(idea.Elements, ", ")))
	}

	busy := work.Busy != ""
	action := func(label, name string, run func(ctx context.Context) error) *widget.Button {
		btn := widget.NewButton(label, func() {
			p.env.background("Design "+name, run)
		})
		if busy {
			btn.Disable()
		}
		return btn
	}

	saveLabel := IconSave + " " + p.env.text(KeySaveToVault)
	if work.Saved() {
		saveLabel = IconSaved + " " + p.env.text(KeySavedToVault)
	}
	saveBtn := widget.NewButton(saveLabel, func() {
		p.env.background("Save design", func(ctx context.Context) error {
			saved, err := p.explorer.SaveToVault(ctx, idea)
			if saved && err == nil {
				message := p.env.text(KeySavedToVault)
				if w := p.explorer.Work(idea); w.Listing != nil && !w.Listing.IsEmpty() {
					message = p.env.text(KeyListingAttach)
				}
				p.env.toaster.ShowSuccess(message)
			}
			return err
		})
	})
	saveBtn.Importance = widget.HighImportance
	if busy || work.Saved() {
		saveBtn.Disable()
	}

	body.Add(container.NewHBox(
		action(p.env.text(KeyBrief), view.ActionBrief, func(ctx context.Context) error { return p.explorer.Brief(ctx, idea) }),
		action(p.env.text(KeyListing), view.ActionListing, func(ctx context.Context) error { return p.explorer.Listing(ctx, idea) }),
		action(p.env.text(KeyMockup), view.ActionMockup, func(ctx context.Context) error { return p.explorer.Mockup(ctx, idea) }),
		action(p.env.text(KeyVariations), view.ActionVariations, func(ctx context.Context) error {
			return p.explorer.Variations(ctx, idea, DefaultVariationCount)
		}),
		saveBtn,
	))

	if busy {
		bar := widget.NewProgressBarInfinite()
		body.Add(container.NewBorder(nil, nil, widget.NewLabel(work.Busy), nil, bar))
	}
	if work.Err != nil {
		errLabel := wrappedLabel(IconError + " " + work.Err.Error())
		errLabel.Importance = widget.DangerImportance
		body.Add(errLabel)
	}
	if work.Brief != nil {
		body.Add(sectionTitle(p.env.text(KeyBrief)))
		body.Add(NewPayloadView(work.Brief.Brief))
	}
	if work.Listing != nil {
		body.Add(sectionTitle(p.env.text(KeyListing)))
		body.Add(wrappedLabel(work.Listing.Title))
		body.Add(wrappedLabel(work.Listing.Description))
		if len(work.Listing.Tags) > 0 {
			body.Add(wrappedLabel(strings.Join(work.Listing.Tags, ", ")))
		}
	}
	if work.Mockup != nil {
		body.Add(linkTo(IconExplore+" "+p.env.text(KeyMockup), work.Mockup.DisplayURL()))
	}
	if work.Variations != nil {
		links := container.NewHBox()
		for _, v := range work.Variations.Variations {
			links.Add(linkTo(model.ProductIcon(v.ProductType)+" "+v.ProductType, v.DisplayURL()))
		}
		body.Add(links)
	}

	return widget.NewCard(header, "", body)
}

func competitorRow(c model.Competitor) fyne.CanvasObject {
	text := fmt.Sprintf("%s%s%s%s%s", c.Platform, MiddleDotSeparator, c.Title, MiddleDotSeparator, c.Price.String())
	return linkTo(text, c.URL)
}

func sectionTitle(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.TextStyle = fyne.TextStyle{Bold: true}
	return l
}

// Content returns the page body
func (p *NichePage) Content() fyne.CanvasObject {
	return p.content
}

// Activate searches a keyword handed over by another page
func (p *NichePage) Activate() {
	p.env.background("Niche search", func(ctx context.Context) error {
		seed, ok, err := p.explorer.Activate(ctx, p.env.nav)
		if ok {
			fyne.Do(func() {
				p.keywordEntry.SetText(seed)
			})
		}
		return err
	})
}
