package config

import (
	"fyne.io/fyne/v2"

	"github.com/novraux/novraux-desk/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyAPIURLOverride  = "api_url_override"
	KeyLanguage        = "app_language"
	KeySmartModel      = "seo_use_smart_model"
	KeyStylePreference = "design_style_preference"
	KeyStartPage       = "start_page"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultSmartModel      = false
	DefaultStylePreference = "Balanced"
	DefaultStartPage       = "explorer"
)

// StylePreferences lists the design styles offered to the generators
var StylePreferences = model.DesignStyles

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIURLOverride returns the user-set backend address, empty when unset
func (s *Settings) GetAPIURLOverride() string {
	return s.app.Preferences().String(KeyAPIURLOverride)
}

// SetAPIURLOverride sets the backend address override; empty clears it
func (s *Settings) SetAPIURLOverride(url string) {
	if url == "" {
		s.app.Preferences().RemoveValue(KeyAPIURLOverride)
		return
	}
	s.app.Preferences().SetString(KeyAPIURLOverride, url)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetSmartModel returns whether SEO generation uses the smart model by default
func (s *Settings) GetSmartModel() bool {
	return s.app.Preferences().BoolWithFallback(KeySmartModel, DefaultSmartModel)
}

// SetSmartModel sets the default SEO model
func (s *Settings) SetSmartModel(smart bool) {
	s.app.Preferences().SetBool(KeySmartModel, smart)
}

// GetStylePreference returns the design style sent to the generators
func (s *Settings) GetStylePreference() string {
	style := s.app.Preferences().String(KeyStylePreference)
	if !validStyle(style) {
		s.SetStylePreference(DefaultStylePreference)
		return DefaultStylePreference
	}
	return style
}

// SetStylePreference sets the design style; unknown styles fall back to the default
func (s *Settings) SetStylePreference(style string) {
	if !validStyle(style) {
		style = DefaultStylePreference
	}
	s.app.Preferences().SetString(KeyStylePreference, style)
}

func validStyle(style string) bool {
	for _, s := range StylePreferences {
		if s == style {
			return true
		}
	}
	return false
}

// GetStartPage returns the page shown at launch
func (s *Settings) GetStartPage() string {
	return s.app.Preferences().StringWithFallback(KeyStartPage, DefaultStartPage)
}

// SetStartPage sets the page shown at launch
func (s *Settings) SetStartPage(page string) {
	s.app.Preferences().SetString(KeyStartPage, page)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
