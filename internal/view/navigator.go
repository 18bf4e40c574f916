package view

import "sync"

// Page identifies a dashboard page
type Page string

const (
	PageExplorer Page = "explorer"
	PageTrends   Page = "trends"
	PageSEO      Page = "seo"
	PageOrders   Page = "orders"
	PageVault    Page = "vault"
	PageCalendar Page = "calendar"
)

// StartPage is shown when nothing else is configured
const StartPage = PageExplorer

// Pages lists the pages in sidebar order
var Pages = []Page{PageExplorer, PageTrends, PageSEO, PageOrders, PageVault, PageCalendar}

// ParsePage returns the page named s
func ParsePage(s string) (Page, bool) {
	for _, p := range Pages {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// Navigator holds the selected page and the seeds waiting for pages.
// A seed is consumed by the first TakeSeed of its page.
type Navigator struct {
	mu       sync.Mutex
	current  Page
	seeds    map[Page]string
	onChange func(Page)
}

// NewNavigator creates a navigator showing start
func NewNavigator(start Page) *Navigator {
	if _, ok := ParsePage(string(start)); !ok {
		start = StartPage
	}
	return &Navigator{current: start, seeds: make(map[Page]string)}
}

// SetChangeCallback sets the callback run after the page changes
func (n *Navigator) SetChangeCallback(callback func(Page)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = callback
}

// Current returns the selected page
func (n *Navigator) Current() Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigate selects page
func (n *Navigator) Navigate(page Page) {
	n.mu.Lock()
	n.current = page
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(page)
	}
}

// NavigateWithSeed leaves seed for page and selects it. A seed still
// waiting for the page is replaced.
func (n *Navigator) NavigateWithSeed(page Page, seed string) {
	n.mu.Lock()
	n.seeds[page] = seed
	n.mu.Unlock()
	n.Navigate(page)
}

// TakeSeed returns and removes the seed waiting for page
func (n *Navigator) TakeSeed(page Page) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	seed, ok := n.seeds[page]
	if ok {
		delete(n.seeds, page)
	}
	return seed, ok
}
