package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/novraux/novraux-desk/internal/api"
	"github.com/novraux/novraux-desk/internal/config"
	"github.com/novraux/novraux-desk/internal/ui"
	"github.com/novraux/novraux-desk/internal/view"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.novraux.desk"
	AppName = "Novraux Desk"

	WindowWidth  = 1200
	WindowHeight = 800
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	fmt.Printf("%s v%s starting...\n", AppName, version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	baseURL := config.ResolveBaseURL(cfg, settings.GetAPIURLOverride())
	log.Printf("Using backend %s", baseURL)
	client := api.NewClient(baseURL, nil)

	start, ok := view.ParsePage(settings.GetStartPage())
	if !ok {
		start = view.StartPage
	}

	controllers := ui.Controllers{
		Navigator:  view.NewNavigator(start),
		TrendFeed:  view.NewTrendFeed(client, client, cfg.TrendLimit, cfg.ScrapeResetDelay),
		Explorer:   view.NewNicheExplorer(client, settings.GetStylePreference()),
		ShopifySEO: view.NewShopifySEO(client, cfg.ProductLimit, cfg.BulkPollInterval, settings.GetSmartModel()),
		Orders:     view.NewOrders(client, cfg.OrderLimit),
		Vault:      view.NewVault(client),
		Calendar:   view.NewCalendar(client, time.Now),
	}

	ui.NewRootUI(myApp, myWindow, settings, controllers, ui.Options{
		ToastDuration: cfg.ToastDuration,
	})

	myWindow.ShowAndRun()
}
