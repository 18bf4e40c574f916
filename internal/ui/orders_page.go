package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/model"
	"github.com/novraux/novraux-desk/internal/view"
)

// OrdersPage is the Orders & Profit page
type OrdersPage struct {
	env    *pageEnv
	orders *view.Orders

	syncBtn     *widget.Button
	statusLabel *widget.Label
	syncLabel   *widget.Label
	statsBox    *fyne.Container
	breakdowns  *fyne.Container
	table       *widget.Table
	rows        []model.Order
	content     fyne.CanvasObject
}

func newOrdersPage(env *pageEnv, orders *view.Orders) *OrdersPage {
	p := &OrdersPage{env: env, orders: orders}
	p.createUI()
	orders.SetChangeCallback(onChange(p.render))
	return p
}

var orderColumns = []string{"Date", "Platform", "Product", "Qty", "Revenue", "Cost", "Profit", "Margin"}

func (p *OrdersPage) createUI() {
	p.syncBtn = widget.NewButton(IconRefresh+" "+p.env.text(KeySyncOrders), func() {
		p.env.background("Order sync", func(ctx context.Context) error {
			if err := p.orders.Sync(ctx); err != nil {
				return err
			}
			p.env.toaster.ShowSuccess(p.env.text(KeyOrdersSynced))
			return nil
		})
	})
	p.syncBtn.Importance = widget.HighImportance

	p.statusLabel = newStatusLabel()
	p.syncLabel = widget.NewLabel("")
	p.syncLabel.Importance = widget.LowImportance
	p.statsBox = container.NewGridWithColumns(4)
	p.breakdowns = container.NewGridWithColumns(2)

	p.table = widget.NewTableWithHeaders(
		func() (int, int) { return len(p.rows), len(orderColumns) },
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			if id.Row < 0 || id.Row >= len(p.rows) {
				return
			}
			cell.(*widget.Label).SetText(orderCell(p.rows[id.Row], id.Col))
		},
	)
	p.table.ShowHeaderColumn = false
	p.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabel("")
	}
	p.table.UpdateHeader = func(id widget.TableCellID, cell fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(orderColumns) {
			cell.(*widget.Label).SetText(orderColumns[id.Col])
		}
	}
	p.table.SetColumnWidth(2, 220)

	top := container.NewVBox(
		container.NewHBox(p.syncBtn, p.syncLabel),
		p.statusLabel,
		p.statsBox,
		p.breakdowns,
		widget.NewSeparator(),
	)
	p.content = container.NewBorder(top, nil, nil, nil, p.table)
}

// orderCell renders one table column of an order
func orderCell(o model.Order, col int) string {
	switch col {
	case 0:
		if !o.CreatedAt.Valid() {
			return DashPlaceholder
		}
		return o.CreatedAt.Time.Format("2006-01-02")
	case 1:
		return o.Platform
	case 2:
		title := o.ProductTitle
		if o.Variant != "" {
			title += " (" + o.Variant + ")"
		}
		return title
	case 3:
		return fmt.Sprint(o.Quantity)
	case 4:
		return model.FormatMoney(o.Revenue)
	case 5:
		return model.FormatMoney(o.PrintfulCost)
	case 6:
		return model.FormatMoney(o.Profit)
	case 7:
		return model.FormatPercent(o.MarginPercent())
	default:
		return ""
	}
}

func statTile(caption, value string) fyne.CanvasObject {
	v := widget.NewLabel(value)
	v.TextStyle = fyne.TextStyle{Bold: true}
	v.Alignment = fyne.TextAlignCenter
	c := widget.NewLabel(caption)
	c.Importance = widget.LowImportance
	c.Alignment = fyne.TextAlignCenter
	return widget.NewCard("", "", container.NewVBox(v, c))
}

func (p *OrdersPage) render() {
	if p.orders.Syncing() {
		p.syncBtn.Disable()
		p.syncBtn.SetText(p.env.text(KeySyncing))
	} else {
		p.syncBtn.Enable()
		p.syncBtn.SetText(IconRefresh + " " + p.env.text(KeySyncOrders))
	}
	if res, ok := p.orders.LastSync(); ok {
		text := fmt.Sprintf("+%d", res.NewOrders)
		if res.Message != "" {
			text += MiddleDotSeparator + res.Message
		}
		p.syncLabel.SetText(text)
	}

	snap := p.orders.Snapshot()
	statusLine(p.statusLabel, snap, p.env.text(KeyLoading))
	p.rows = snap.Data.Orders

	p.statsBox.RemoveAll()
	p.breakdowns.RemoveAll()
	if snap.Loaded {
		s := snap.Data.Stats
		p.statsBox.Add(statTile(p.env.text(KeyRevenue), model.FormatMoney(s.TotalRevenue)))
		p.statsBox.Add(statTile(p.env.text(KeyProfit), model.FormatMoney(s.TotalProfit)))
		p.statsBox.Add(statTile(p.env.text(KeyOrderCount), fmt.Sprint(s.OrderCount)))
		p.statsBox.Add(statTile(p.env.text(KeyAvgMargin), model.FormatPercent(s.AvgMarginPercent)))

		platforms := container.NewVBox(sectionTitle(p.env.text(KeyByPlatform)))
		for _, ps := range s.ByPlatform {
			platforms.Add(widget.NewLabel(fmt.Sprintf("%s%s%d%s%s", ps.Platform, MiddleDotSeparator, ps.OrderCount, MiddleDotSeparator, model.FormatMoney(ps.Profit))))
		}
		products := container.NewVBox(sectionTitle(p.env.text(KeyTopProducts)))
		for _, pr := range s.TopProducts {
			products.Add(widget.NewLabel(fmt.Sprintf("%s%s×%d%s%s", pr.ProductTitle, MiddleDotSeparator, pr.Quantity, MiddleDotSeparator, model.FormatMoney(pr.Profit))))
		}
		p.breakdowns.Add(platforms)
		p.breakdowns.Add(products)

		if len(p.rows) == 0 {
			p.statusLabel.SetText(p.env.text(KeyNoOrders))
			p.statusLabel.Importance = widget.MediumImportance
			p.statusLabel.Show()
		}
	}
	p.statsBox.Refresh()
	p.breakdowns.Refresh()
	p.table.Refresh()
}

// Content returns the page body
func (p *OrdersPage) Content() fyne.CanvasObject {
	return p.content
}

// Activate loads orders on first show
func (p *OrdersPage) Activate() {
	snap := p.orders.Snapshot()
	if !snap.Loaded && !snap.Loading {
		p.env.background("Order refresh", p.orders.Refresh)
	}
	p.render()
}
