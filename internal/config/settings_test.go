package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIURLOverride(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if url := settings.GetAPIURLOverride(); url != "" {
		t.Errorf("Expected empty override, got %s", url)
	}

	settings.SetAPIURLOverride("http://10.0.0.5:8000")
	if url := settings.GetAPIURLOverride(); url != "http://10.0.0.5:8000" {
		t.Errorf("Expected override http://10.0.0.5:8000, got %s", url)
	}

	// Test clearing
	settings.SetAPIURLOverride("")
	if url := settings.GetAPIURLOverride(); url != "" {
		t.Errorf("Expected cleared override, got %s", url)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestSmartModel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetSmartModel() != DefaultSmartModel {
		t.Errorf("Expected default smart model %v", DefaultSmartModel)
	}

	settings.SetSmartModel(true)
	if !settings.GetSmartModel() {
		t.Error("Smart model should be enabled after SetSmartModel(true)")
	}
}

func TestStylePreference(t *testing.T) {
	tests := []struct {
		name     string
		set      string
		expected string
	}{
		{"known style", "Text-Only", "Text-Only"},
		{"unknown style falls back", "Cyberpunk", DefaultStylePreference},
		{"empty falls back", "", DefaultStylePreference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := test.NewApp()
			settings := NewSettings(app)

			settings.SetStylePreference(tt.set)
			if got := settings.GetStylePreference(); got != tt.expected {
				t.Errorf("GetStylePreference() = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestStartPage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if page := settings.GetStartPage(); page != DefaultStartPage {
		t.Errorf("Expected default start page %s, got %s", DefaultStartPage, page)
	}

	settings.SetStartPage("vault")
	if page := settings.GetStartPage(); page != "vault" {
		t.Errorf("Expected start page vault, got %s", page)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
