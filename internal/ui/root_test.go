package ui

import (
	"net/http/httptest"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/novraux/novraux-desk/internal/api"
	"github.com/novraux/novraux-desk/internal/config"
	"github.com/novraux/novraux-desk/internal/fakebackend"
	"github.com/novraux/novraux-desk/internal/view"
)

func newTestRoot(t *testing.T, start view.Page) (*RootUI, *fakebackend.Server) {
	t.Helper()

	backend := fakebackend.New(fakebackend.DefaultFixtures())
	srv := httptest.NewServer(backend.Routes())
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL, srv.Client())

	app := test.NewApp()
	t.Cleanup(func() { test.NewApp() })
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	controllers := Controllers{
		Navigator:  view.NewNavigator(start),
		TrendFeed:  view.NewTrendFeed(client, client, 100, time.Second),
		Explorer:   view.NewNicheExplorer(client, config.DefaultStylePreference),
		ShopifySEO: view.NewShopifySEO(client, 50, time.Hour, false),
		Orders:     view.NewOrders(client, 50),
		Vault:      view.NewVault(client),
		Calendar:   view.NewCalendar(client, time.Now),
	}
	ui := NewRootUI(app, window, config.NewSettings(app), controllers, Options{})
	t.Cleanup(ui.Close)
	return ui, backend
}

func TestRootShowsStartPage(t *testing.T) {
	ui, _ := newTestRoot(t, view.PageCalendar)

	if ui.current != view.PageCalendar {
		t.Errorf("Current page = %s, expected %s", ui.current, view.PageCalendar)
	}
	if len(ui.stack.Objects) != 1 || ui.stack.Objects[0] != ui.pages[view.PageCalendar].Content() {
		t.Error("Stack should hold the calendar page")
	}
}

func TestRootNavigation(t *testing.T) {
	ui, _ := newTestRoot(t, view.PageExplorer)

	for _, p := range view.Pages {
		t.Run(string(p), func(t *testing.T) {
			ui.showPage(p)
			if ui.current != p {
				t.Errorf("Current page = %s, expected %s", ui.current, p)
			}
			if ui.stack.Objects[0] != ui.pages[p].Content() {
				t.Errorf("Stack does not hold the %s page", p)
			}
		})
	}
}

func TestRootSidebarHasEveryPage(t *testing.T) {
	ui, _ := newTestRoot(t, view.PageExplorer)

	if len(ui.navButtons) != len(view.Pages) {
		t.Errorf("Sidebar buttons = %d, expected %d", len(ui.navButtons), len(view.Pages))
	}
	if got := ui.navButtons[view.PageVault].Text; got != ui.localization.GetText(KeyPageVault) {
		t.Errorf("Vault button = %q, expected the localized page name", got)
	}
}
