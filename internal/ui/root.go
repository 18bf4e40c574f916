package ui

import (
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/config"
	"github.com/novraux/novraux-desk/internal/view"
)

// DefaultRequestTimeout bounds one backend request started from the UI
const DefaultRequestTimeout = 2 * time.Minute

// Options tunes the shell
type Options struct {
	ToastDuration  time.Duration
	RequestTimeout time.Duration
}

// pageTitleKeys maps pages to their sidebar labels
var pageTitleKeys = map[view.Page]string{
	view.PageExplorer: KeyPageExplorer,
	view.PageTrends:   KeyPageTrends,
	view.PageSEO:      KeyPageSEO,
	view.PageOrders:   KeyPageOrders,
	view.PageVault:    KeyPageVault,
	view.PageCalendar: KeyPageCalendar,
}

// RootUI is the dashboard shell: a sidebar with one entry per page and the
// selected page next to it
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	toaster      *Toaster
	controllers  Controllers
	env          *pageEnv

	pages      map[view.Page]page
	navButtons map[view.Page]*widget.Button
	stack      *fyne.Container
	current    view.Page
}

// NewRootUI builds the shell into window and shows the navigator's page
func NewRootUI(app fyne.App, window fyne.Window, settings *config.Settings, controllers Controllers, opts Options) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}

	ui := &RootUI{
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		toaster:      NewToaster(window, opts.ToastDuration),
		controllers:  controllers,
		pages:        make(map[view.Page]page),
		navButtons:   make(map[view.Page]*widget.Button),
	}
	ui.env = &pageEnv{
		app:          app,
		window:       window,
		localization: localization,
		toaster:      ui.toaster,
		nav:          controllers.Navigator,
		timeout:      opts.RequestTimeout,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	controllers.Navigator.SetChangeCallback(func(p view.Page) {
		fyne.Do(func() {
			ui.showPage(p)
		})
	})
	window.SetOnClosed(ui.Close)

	ui.showPage(controllers.Navigator.Current())
	return ui
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	c := ui.controllers
	ui.pages[view.PageExplorer] = newNichePage(ui.env, c.Explorer)
	ui.pages[view.PageTrends] = newTrendsPage(ui.env, c.TrendFeed)
	ui.pages[view.PageSEO] = newSEOPage(ui.env, c.ShopifySEO)
	ui.pages[view.PageOrders] = newOrdersPage(ui.env, c.Orders)
	ui.pages[view.PageVault] = newVaultPage(ui.env, c.Vault)
	ui.pages[view.PageCalendar] = newCalendarPage(ui.env, c.Calendar)

	sidebar := container.NewVBox()
	for _, p := range view.Pages {
		target := p
		btn := widget.NewButton(ui.localization.GetText(pageTitleKeys[p]), func() {
			ui.controllers.Navigator.Navigate(target)
		})
		btn.Alignment = widget.ButtonAlignLeading
		ui.navButtons[p] = btn
		sidebar.Add(btn)
	}

	settingsBtn := widget.NewButton(IconSettings+" "+ui.localization.GetText(KeySettings), ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// The spacer fixes the sidebar width
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(SidebarWidth, 0))
	side := container.NewStack(spacer, container.NewBorder(nil, settingsBtn, nil, nil, sidebar))

	ui.stack = container.NewStack()
	ui.window.SetContent(container.NewBorder(nil, nil, container.NewHBox(side, widget.NewSeparator()), nil, ui.stack))
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange stores the language; page texts switch on next launch
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	for p, btn := range ui.navButtons {
		btn.SetText(ui.localization.GetText(pageTitleKeys[p]))
	}
	ui.createMenu()
	ui.toaster.Show(ui.localization.GetText(KeyRestartRequired))
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.controllers.ShopifySEO.SetSmartModel(ui.settings.GetSmartModel())
		ui.controllers.Explorer.SetStyle(ui.settings.GetStylePreference())
		ui.toaster.ShowSuccess(ui.localization.GetText(KeySettingsSaved))
	}).Show()
}

// showPage swaps the page stack to p and activates it. Must run on the UI goroutine.
func (ui *RootUI) showPage(p view.Page) {
	pg, ok := ui.pages[p]
	if !ok {
		log.Printf("Unknown page %q", p)
		return
	}

	if p != ui.current || len(ui.stack.Objects) == 0 {
		ui.current = p
		ui.stack.Objects = []fyne.CanvasObject{pg.Content()}
		ui.stack.Refresh()
		for id, btn := range ui.navButtons {
			if id == p {
				btn.Importance = widget.HighImportance
			} else {
				btn.Importance = widget.MediumImportance
			}
			btn.Refresh()
		}
	}
	pg.Activate()
}

// Close releases the scrape stream and stops bulk polling
func (ui *RootUI) Close() {
	ui.controllers.TrendFeed.Close()
	ui.controllers.ShopifySEO.Close()
}
