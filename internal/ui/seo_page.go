package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/model"
	"github.com/novraux/novraux-desk/internal/view"
)

// SEOPage is the Shopify SEO page
type SEOPage struct {
	env *pageEnv
	seo *view.ShopifySEO

	smartCheck  *widget.Check
	bulkBtn     *widget.Button
	bulkLabel   *widget.Label
	bulkBar     *widget.ProgressBar
	statusLabel *widget.Label
	productsBox *fyne.Container
	content     fyne.CanvasObject
}

func newSEOPage(env *pageEnv, seo *view.ShopifySEO) *SEOPage {
	p := &SEOPage{env: env, seo: seo}
	p.createUI()
	seo.SetChangeCallback(onChange(p.render))
	return p
}

func (p *SEOPage) createUI() {
	p.smartCheck = widget.NewCheck(IconRobot+" "+p.env.text(KeySmartModel), p.seo.SetSmartModel)
	p.smartCheck.SetChecked(p.seo.SmartModel())

	p.bulkBtn = widget.NewButton(p.env.text(KeyBulkSEO), p.onBulk)
	p.bulkBtn.Importance = widget.HighImportance

	p.bulkLabel = widget.NewLabel("")
	p.bulkBar = widget.NewProgressBar()
	p.bulkBar.Hide()

	refreshBtn := widget.NewButton(IconRefresh+" "+p.env.text(KeyRefresh), func() {
		p.env.background("Product refresh", p.seo.Refresh)
	})

	p.statusLabel = newStatusLabel()
	p.productsBox = container.NewVBox()

	toolbar := container.NewHBox(p.smartCheck, p.bulkBtn, refreshBtn)
	top := container.NewVBox(toolbar, p.bulkLabel, p.bulkBar, p.statusLabel, widget.NewSeparator())
	p.content = container.NewBorder(top, nil, nil, nil, container.NewVScroll(p.productsBox))
}

func (p *SEOPage) onBulk() {
	dialog.ShowConfirm(p.env.text(KeyBulkSEO), p.env.text(KeyBulkConfirm), func(ok bool) {
		if !ok {
			return
		}
		p.env.background("Bulk SEO", p.seo.StartBulk)
	}, p.env.window)
}

func (p *SEOPage) render() {
	if p.smartCheck.Checked != p.seo.SmartModel() {
		p.smartCheck.SetChecked(p.seo.SmartModel())
	}

	bulk := p.seo.Bulk()
	switch {
	case bulk.Running:
		p.bulkBtn.Disable()
		p.bulkLabel.SetText(fmt.Sprintf(p.env.text(KeyBulkProgress), bulk.Done, bulk.Requested))
		if bulk.Requested > 0 {
			p.bulkBar.SetValue(float64(bulk.Done) / float64(bulk.Requested))
		}
		p.bulkBar.Show()
	case bulk.Err != "":
		p.bulkBtn.Enable()
		p.bulkLabel.SetText(IconError + " " + bulk.Err)
		p.bulkBar.Hide()
	case bulk.JobID != "":
		p.bulkBtn.Enable()
		p.bulkLabel.SetText(IconSuccess + " " + p.env.text(KeyBulkDone))
		p.bulkBar.Hide()
	default:
		p.bulkBtn.Enable()
		p.bulkLabel.SetText("")
		p.bulkBar.Hide()
	}

	snap := p.seo.Snapshot()
	statusLine(p.statusLabel, snap, p.env.text(KeyLoading))
	p.productsBox.RemoveAll()
	if snap.Loaded && len(snap.Data) == 0 {
		p.productsBox.Add(widget.NewLabel(p.env.text(KeyNoProducts)))
	}
	for _, product := range snap.Data {
		p.productsBox.Add(p.productCard(product))
	}
	p.productsBox.Refresh()
}

func (p *SEOPage) productCard(product model.Product) fyne.CanvasObject {
	id := product.ID
	generating, pushing := p.seo.Generating(id), p.seo.Pushing(id)

	generateBtn := widget.NewButton(IconRobot+" "+p.env.text(KeyGenerateSEO), func() {
		p.env.background("SEO generation", func(ctx context.Context) error {
			return p.seo.Generate(ctx, id)
		})
	})
	pushBtn := widget.NewButton(IconPush+" "+p.env.text(KeyPush), func() {
		p.env.background("SEO push", func(ctx context.Context) error {
			if err := p.seo.Push(ctx, id); err != nil {
				return err
			}
			p.env.toaster.ShowSuccess(p.env.text(KeyPushed))
			return nil
		})
	})
	pushBtn.Importance = widget.HighImportance

	preview, hasPreview := p.seo.Preview(id)
	if generating || pushing {
		generateBtn.Disable()
	}
	if generating || pushing || !hasPreview || !preview.Pushable() || preview.Pushed {
		pushBtn.Disable()
	}

	body := container.NewVBox()
	if tags := product.TagList(); len(tags) > 0 {
		body.Add(wrappedLabel(strings.Join(tags, ", ")))
	}
	if generating || pushing {
		body.Add(widget.NewProgressBarInfinite())
	}
	if hasPreview {
		body.Add(p.previewView(preview))
	}
	body.Add(container.NewHBox(generateBtn, pushBtn))

	card := widget.NewCard(product.Title, product.Handle, body)
	if img := product.ImageURL(); img != "" {
		return container.NewBorder(nil, nil, nil, linkTo(IconExplore, img), card)
	}
	return card
}

func (p *SEOPage) previewView(r model.SEOResult) fyne.CanvasObject {
	if r.Error != "" {
		l := wrappedLabel(IconError + " " + r.Error)
		l.Importance = widget.DangerImportance
		return l
	}

	scoreText := DashPlaceholder
	if r.SEOScore != nil {
		scoreText = fmt.Sprintf("%.0f/100", *r.SEOScore)
	}
	score := canvas.NewText(p.env.text(KeySEOScore)+" "+scoreText, scoreColor(model.SEOScoreBand(r.SEOScore)))
	score.TextStyle = fyne.TextStyle{Bold: true}

	box := container.NewVBox(score, sectionTitle(r.SEOTitle), wrappedLabel(r.MetaDescription))
	if r.ProductDescription != "" {
		box.Add(wrappedLabel(r.ProductDescription))
	}
	if len(r.Tags) > 0 {
		box.Add(wrappedLabel(strings.Join(r.Tags, ", ")))
	}
	meta := []string{}
	if r.ModelUsed != "" {
		meta = append(meta, r.ModelUsed)
	}
	if r.SEONotes != "" {
		meta = append(meta, r.SEONotes)
	}
	if r.Pushed {
		meta = append(meta, IconSuccess+" "+p.env.text(KeyPushed))
	}
	if len(meta) > 0 {
		l := wrappedLabel(strings.Join(meta, MiddleDotSeparator))
		l.Importance = widget.LowImportance
		box.Add(l)
	}
	return box
}

// Content returns the page body
func (p *SEOPage) Content() fyne.CanvasObject {
	return p.content
}

// Activate loads the products on first show
func (p *SEOPage) Activate() {
	snap := p.seo.Snapshot()
	if !snap.Loaded && !snap.Loading {
		p.env.background("Product refresh", p.seo.Refresh)
	}
	p.render()
}
