package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/config"
	"github.com/novraux/novraux-desk/internal/view"
)

// SettingsDialog edits the user preferences
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	apiURLEntry     *widget.Entry
	languageSelect  *widget.Select
	smartCheck      *widget.Check
	styleSelect     *widget.Select
	startPageSelect *widget.Select

	languageCodes map[string]string // display name -> code
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences were written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.apiURLEntry = widget.NewEntry()
	sd.apiURLEntry.SetPlaceHolder(config.DefaultAPIURL)

	sd.languageCodes = make(map[string]string)
	var languages []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languages = append(languages, name)
	}
	sort.Strings(languages)
	sd.languageSelect = widget.NewSelect(languages, nil)

	sd.smartCheck = widget.NewCheck(sd.localization.GetText(KeySmartModel), nil)
	sd.styleSelect = widget.NewSelect(config.StylePreferences, nil)

	var pages []string
	for _, p := range view.Pages {
		pages = append(pages, string(p))
	}
	sd.startPageSelect = widget.NewSelect(pages, nil)

	restartNote := widget.NewLabel(sd.localization.GetText(KeyRestartRequired))
	restartNote.Importance = widget.LowImportance
	restartNote.Wrapping = fyne.TextWrapWord

	form := widget.NewForm(
		widget.NewFormItem(sd.localization.GetText(KeyAPIURL), sd.apiURLEntry),
		widget.NewFormItem(sd.localization.GetText(KeyLanguage), sd.languageSelect),
		widget.NewFormItem(sd.localization.GetText(KeyDefaultStyle), sd.styleSelect),
		widget.NewFormItem(sd.localization.GetText(KeyStartPage), sd.startPageSelect),
		widget.NewFormItem("", sd.smartCheck),
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		container.NewVBox(form, widget.NewSeparator(), restartNote),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 360))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiURLEntry.SetText(sd.settings.GetAPIURLOverride())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.smartCheck.SetChecked(sd.settings.GetSmartModel())
	sd.styleSelect.SetSelected(sd.settings.GetStylePreference())
	sd.startPageSelect.SetSelected(sd.settings.GetStartPage())
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetAPIURLOverride(strings.TrimSpace(sd.apiURLEntry.Text))

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetSmartModel(sd.smartCheck.Checked)

	if sd.styleSelect.Selected != "" {
		sd.settings.SetStylePreference(sd.styleSelect.Selected)
	}

	if page, ok := view.ParsePage(sd.startPageSelect.Selected); ok {
		sd.settings.SetStartPage(string(page))
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
