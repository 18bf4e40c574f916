package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/model"
	"github.com/novraux/novraux-desk/internal/view"
)

// VaultPage is the Design Vault page
type VaultPage struct {
	env   *pageEnv
	vault *view.Vault

	nicheEntry   *widget.Entry
	statusSelect *widget.Select
	styleSelect  *widget.Select
	statsLabel   *widget.Label
	statusLabel  *widget.Label
	designsBox   *fyne.Container
	content      fyne.CanvasObject
}

func newVaultPage(env *pageEnv, vault *view.Vault) *VaultPage {
	p := &VaultPage{env: env, vault: vault}
	p.createUI()
	vault.SetChangeCallback(onChange(p.render))
	return p
}

func (p *VaultPage) createUI() {
	p.nicheEntry = widget.NewEntry()
	p.nicheEntry.SetPlaceHolder(p.env.text(KeyFilterNiche))
	p.nicheEntry.OnSubmitted = func(string) { p.applyFilter() }

	var statuses []string
	for _, s := range model.DesignStatuses {
		statuses = append(statuses, string(s))
	}
	p.statusSelect = widget.NewSelect(withAll(statuses...), nil)
	p.statusSelect.SetSelected("all")
	p.statusSelect.OnChanged = func(string) { p.applyFilter() }
	p.styleSelect = widget.NewSelect(withAll(model.DesignStyles...), nil)
	p.styleSelect.SetSelected("all")
	p.styleSelect.OnChanged = func(string) { p.applyFilter() }

	refreshBtn := widget.NewButton(IconRefresh+" "+p.env.text(KeyRefresh), func() {
		p.env.background("Vault refresh", p.vault.Refresh)
	})

	p.statsLabel = widget.NewLabel("")
	p.statsLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.statusLabel = newStatusLabel()
	p.designsBox = container.NewVBox()

	filters := container.NewBorder(nil, nil, nil,
		container.NewHBox(p.statusSelect, p.styleSelect, refreshBtn),
		p.nicheEntry)
	top := container.NewVBox(filters, p.statsLabel, p.statusLabel, widget.NewSeparator())
	p.content = container.NewBorder(top, nil, nil, nil, container.NewVScroll(p.designsBox))
}

// selectedOrEmpty maps the "all" option to no constraint
func selectedOrEmpty(s *widget.Select) string {
	if s.Selected == "all" {
		return ""
	}
	return s.Selected
}

func (p *VaultPage) applyFilter() {
	filter := model.VaultFilter{
		Niche:  strings.TrimSpace(p.nicheEntry.Text),
		Status: model.DesignStatus(selectedOrEmpty(p.statusSelect)),
		Style:  selectedOrEmpty(p.styleSelect),
	}
	p.vault.SetFilter(filter)
	p.env.background("Vault filter", p.vault.Refresh)
}

func (p *VaultPage) render() {
	snap := p.vault.Snapshot()
	statusLine(p.statusLabel, snap, p.env.text(KeyLoading))

	stats := snap.Data.Stats
	parts := []string{fmt.Sprintf("%s: %d", p.env.text(KeyTotalDesigns), stats.Total)}
	for _, s := range model.DesignStatuses {
		parts = append(parts, fmt.Sprintf("%s %d", s, stats.ByStatus[string(s)]))
	}
	for _, n := range stats.VisibleNiches() {
		parts = append(parts, fmt.Sprintf("%s (%d)", n.Niche, n.Count))
	}
	p.statsLabel.SetText(strings.Join(parts, MiddleDotSeparator))

	p.designsBox.RemoveAll()
	if snap.Loaded && len(snap.Data.Designs) == 0 {
		p.designsBox.Add(widget.NewLabel(p.env.text(KeyNoDesigns)))
	}
	for _, d := range snap.Data.Designs {
		p.designsBox.Add(p.designCard(d))
	}
	p.designsBox.Refresh()
}

func (p *VaultPage) designCard(d model.SavedDesign) fyne.CanvasObject {
	id := d.ID
	pending := p.vault.Pending(id)

	cycleBtn := widget.NewButton(d.Status.ActionLabel(), func() {
		p.env.background("Design status", func(ctx context.Context) error {
			_, err := p.vault.CycleStatus(ctx, id)
			return err
		})
	})
	deleteBtn := widget.NewButton(IconDelete+" "+p.env.text(KeyDelete), func() {
		p.env.background("Design delete", func(ctx context.Context) error {
			if err := p.vault.Delete(ctx, id); err != nil {
				return err
			}
			p.env.toaster.ShowSuccess(p.env.text(KeyDesignRemoved))
			return nil
		})
	})
	deleteBtn.Importance = widget.DangerImportance
	copyBtn := widget.NewButton(IconCopy+" "+p.env.text(KeyCopyListing), func() {
		text, err := p.vault.ListingCopy(id)
		if err != nil {
			if errors.Is(err, view.ErrNoListing) {
				p.env.toaster.Show(err.Error())
				return
			}
			p.env.toaster.ShowError(err.Error())
			return
		}
		p.env.copyText(text, p.env.text(KeyCopied))
	})
	toggleBtn := widget.NewButton(IconExpand, func() { p.vault.ToggleExpanded(id) })
	toggleBtn.Importance = widget.LowImportance
	if pending {
		cycleBtn.Disable()
		deleteBtn.Disable()
	}

	meta := []string{string(d.Status), d.Niche, d.ProductType}
	if d.StylePreference != "" {
		meta = append(meta, d.StylePreference)
	}
	if d.DemandScore != nil {
		meta = append(meta, fmt.Sprintf("%s %.0f", p.env.text(KeyDemand), *d.DemandScore))
	}
	if d.CreatedAt.Valid() {
		meta = append(meta, d.CreatedAt.Format("2006-01-02"))
	}

	body := container.NewVBox(wrappedLabel(d.Concept), widget.NewLabel(strings.Join(meta, MiddleDotSeparator)))
	if d.DesignText != "" {
		body.Add(wrappedLabel(fmt.Sprintf("%q", d.DesignText)))
	}
	if d.MockupURL != "" {
		body.Add(linkTo(IconExplore+" "+p.env.text(KeyMockup), d.MockupURL))
	}
	if p.vault.Expanded(id) {
		toggleBtn.SetText(IconCollapse)
		if d.HasListing() {
			body.Add(sectionTitle(d.ListingTitle))
			body.Add(wrappedLabel(d.ListingDescription))
			if tags := d.VisibleTags(); len(tags) > 0 {
				body.Add(wrappedLabel(strings.Join(tags, ", ")))
			}
		} else {
			body.Add(wrappedLabel(view.ErrNoListing.Error()))
		}
	}
	body.Add(container.NewHBox(cycleBtn, copyBtn, toggleBtn, deleteBtn))

	return widget.NewCard(model.ProductIcon(d.ProductType)+" "+d.Title, "", body)
}

// Content returns the page body
func (p *VaultPage) Content() fyne.CanvasObject {
	return p.content
}

// Activate reloads the vault; designs may have been saved from the explorer
func (p *VaultPage) Activate() {
	p.env.background("Vault refresh", p.vault.Refresh)
	p.render()
}
