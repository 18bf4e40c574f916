package view

import "testing"

func TestNewNavigator(t *testing.T) {
	tests := []struct {
		name     string
		start    Page
		expected Page
	}{
		{"explicit page", PageVault, PageVault},
		{"unknown page", Page("settings"), StartPage},
		{"empty", "", StartPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewNavigator(tt.start).Current(); got != tt.expected {
				t.Errorf("Current() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestNavigate(t *testing.T) {
	nav := NewNavigator(PageExplorer)
	var changes []Page
	nav.SetChangeCallback(func(p Page) { changes = append(changes, p) })

	nav.Navigate(PageOrders)
	nav.Navigate(PageCalendar)

	if nav.Current() != PageCalendar {
		t.Errorf("Current() = %v, expected %v", nav.Current(), PageCalendar)
	}
	if len(changes) != 2 || changes[0] != PageOrders {
		t.Errorf("changes = %v, expected [orders calendar]", changes)
	}
}

func TestSeedIsOneShot(t *testing.T) {
	nav := NewNavigator(PageCalendar)
	nav.NavigateWithSeed(PageExplorer, "halloween")

	if nav.Current() != PageExplorer {
		t.Errorf("Current() = %v, expected %v", nav.Current(), PageExplorer)
	}
	seed, ok := nav.TakeSeed(PageExplorer)
	if !ok || seed != "halloween" {
		t.Errorf("TakeSeed() = %q, %v, expected halloween, true", seed, ok)
	}
	if _, ok := nav.TakeSeed(PageExplorer); ok {
		t.Error("second TakeSeed() should find nothing")
	}
}

func TestSeedReplacedAndScopedToPage(t *testing.T) {
	nav := NewNavigator(PageTrends)
	nav.NavigateWithSeed(PageExplorer, "first")
	nav.NavigateWithSeed(PageExplorer, "second")

	if _, ok := nav.TakeSeed(PageVault); ok {
		t.Error("seed should only be visible to its page")
	}
	if seed, _ := nav.TakeSeed(PageExplorer); seed != "second" {
		t.Errorf("TakeSeed() = %q, expected second", seed)
	}
}

func TestParsePage(t *testing.T) {
	for _, p := range Pages {
		if got, ok := ParsePage(string(p)); !ok || got != p {
			t.Errorf("ParsePage(%q) = %v, %v", p, got, ok)
		}
	}
	if _, ok := ParsePage("nope"); ok {
		t.Error("ParsePage(nope) should fail")
	}
}
