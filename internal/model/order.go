package model

import (
	"fmt"
	"sort"
)

// Order is a sale synced from a storefront
type Order struct {
	ID              int       `json:"id"`
	Platform        string    `json:"platform"`
	ExternalOrderID string    `json:"external_order_id"`
	ProductTitle    string    `json:"product_title"`
	Variant         string    `json:"variant"`
	Quantity        int       `json:"quantity"`
	Revenue         float64   `json:"revenue"`
	PrintfulCost    float64   `json:"printful_cost"`
	Profit          float64   `json:"profit"`
	Status          string    `json:"status"`
	CreatedAt       Timestamp `json:"created_at"`
}

// MarginPercent returns profit as a share of revenue, or 0 without revenue
func (o Order) MarginPercent() float64 {
	if o.Revenue <= 0 {
		return 0
	}
	return o.Profit / o.Revenue * 100
}

// FormatPercent renders a percentage with one decimal, e.g. "25.0%"
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatMoney renders an amount in dollars
func FormatMoney(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

// PlatformStats aggregates orders of one platform
type PlatformStats struct {
	Platform   string  `json:"platform"`
	OrderCount int     `json:"order_count"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
}

// ProductStats aggregates orders of one product
type ProductStats struct {
	ProductTitle string  `json:"product_title"`
	Quantity     int     `json:"quantity"`
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
}

// DailyStats aggregates orders of one calendar day
type DailyStats struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Orders  int     `json:"orders"`
}

// OrderStats summarizes orders. The breakdowns are optional in responses.
type OrderStats struct {
	TotalRevenue     float64         `json:"total_revenue"`
	TotalProfit      float64         `json:"total_profit"`
	OrderCount       int             `json:"order_count"`
	AvgMarginPercent float64         `json:"avg_margin_percent"`
	ByPlatform       []PlatformStats `json:"by_platform,omitempty"`
	TopProducts      []ProductStats  `json:"top_products,omitempty"`
	Daily            []DailyStats    `json:"daily,omitempty"`
}

// TopProductsShown bounds the top products breakdown
const TopProductsShown = 5

// SummarizeOrders derives the breakdowns from a list of orders. Totals are
// computed too, for use when the backend stats are unavailable.
func SummarizeOrders(orders []Order) OrderStats {
	var stats OrderStats
	platforms := map[string]*PlatformStats{}
	products := map[string]*ProductStats{}
	days := map[string]*DailyStats{}

	for _, o := range orders {
		stats.TotalRevenue += o.Revenue
		stats.TotalProfit += o.Profit
		stats.OrderCount++

		p, ok := platforms[o.Platform]
		if !ok {
			p = &PlatformStats{Platform: o.Platform}
			platforms[o.Platform] = p
		}
		p.OrderCount++
		p.Revenue += o.Revenue
		p.Profit += o.Profit

		pr, ok := products[o.ProductTitle]
		if !ok {
			pr = &ProductStats{ProductTitle: o.ProductTitle}
			products[o.ProductTitle] = pr
		}
		pr.Quantity += o.Quantity
		pr.Revenue += o.Revenue
		pr.Profit += o.Profit

		if o.CreatedAt.Valid() {
			day := o.CreatedAt.Format("2006-01-02")
			d, ok := days[day]
			if !ok {
				d = &DailyStats{Date: day}
				days[day] = d
			}
			d.Orders++
			d.Revenue += o.Revenue
			d.Profit += o.Profit
		}
	}
	if stats.TotalRevenue > 0 {
		stats.AvgMarginPercent = stats.TotalProfit / stats.TotalRevenue * 100
	}

	for _, p := range platforms {
		stats.ByPlatform = append(stats.ByPlatform, *p)
	}
	sort.Slice(stats.ByPlatform, func(i, j int) bool {
		return stats.ByPlatform[i].Revenue > stats.ByPlatform[j].Revenue
	})

	for _, p := range products {
		stats.TopProducts = append(stats.TopProducts, *p)
	}
	sort.Slice(stats.TopProducts, func(i, j int) bool {
		if stats.TopProducts[i].Revenue == stats.TopProducts[j].Revenue {
			return stats.TopProducts[i].ProductTitle < stats.TopProducts[j].ProductTitle
		}
		return stats.TopProducts[i].Revenue > stats.TopProducts[j].Revenue
	})
	if len(stats.TopProducts) > TopProductsShown {
		stats.TopProducts = stats.TopProducts[:TopProductsShown]
	}

	for _, d := range days {
		stats.Daily = append(stats.Daily, *d)
	}
	sort.Slice(stats.Daily, func(i, j int) bool {
		return stats.Daily[i].Date < stats.Daily[j].Date
	})
	return stats
}

// WithBreakdowns fills missing breakdowns of backend stats from orders
func (s OrderStats) WithBreakdowns(orders []Order) OrderStats {
	if len(s.ByPlatform) > 0 && len(s.TopProducts) > 0 && len(s.Daily) > 0 {
		return s
	}
	derived := SummarizeOrders(orders)
	if len(s.ByPlatform) == 0 {
		s.ByPlatform = derived.ByPlatform
	}
	if len(s.TopProducts) == 0 {
		s.TopProducts = derived.TopProducts
	}
	if len(s.Daily) == 0 {
		s.Daily = derived.Daily
	}
	return s
}

// SyncResult is the acknowledgement of an order sync
type SyncResult struct {
	Status    string `json:"status"`
	NewOrders int    `json:"new_orders"`
	Message   string `json:"message,omitempty"`
}
