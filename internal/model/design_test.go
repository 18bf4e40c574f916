package model

import "testing"

func TestDesignStatus_Next(t *testing.T) {
	tests := []struct {
		status   DesignStatus
		expected DesignStatus
	}{
		{DesignDraft, DesignReady},
		{DesignReady, DesignExported},
		{DesignExported, DesignDraft},
		{"", DesignReady},
	}
	for _, tt := range tests {
		if got := tt.status.Next(); got != tt.expected {
			t.Errorf("Next(%q) = %q, expected %q", tt.status, got, tt.expected)
		}
	}

	// Three steps return to the start.
	s := DesignDraft
	for i := 0; i < 3; i++ {
		s = s.Next()
	}
	if s != DesignDraft {
		t.Errorf("cycle did not return to draft, got %q", s)
	}
}

func TestDesignStatus_ActionLabel(t *testing.T) {
	tests := map[DesignStatus]string{
		DesignDraft:    "✓ Mark Ready",
		DesignReady:    "🚀 Mark Exported",
		DesignExported: "↩ Reset",
	}
	for status, expected := range tests {
		if got := status.ActionLabel(); got != expected {
			t.Errorf("ActionLabel(%q) = %q, expected %q", status, got, expected)
		}
	}
}

func TestSavedDesign_ListingCopy(t *testing.T) {
	if _, ok := (SavedDesign{}).ListingCopy(); ok {
		t.Error("design without listing should report no copy")
	}

	d := SavedDesign{
		ListingTitle:       "Axo Tee",
		ListingDescription: "Soft cotton",
		ListingTags:        []string{"axolotl", "cute"},
	}
	text, ok := d.ListingCopy()
	if !ok {
		t.Fatal("expected listing copy")
	}
	expected := "TITLE: Axo Tee\n\nDESCRIPTION:\nSoft cotton\n\nTAGS: axolotl, cute"
	if text != expected {
		t.Errorf("ListingCopy() = %q, expected %q", text, expected)
	}
}

func TestDesignKey(t *testing.T) {
	if DesignKey("Cat Mom", " Retro ") != DesignKey("cat mom", "retro") {
		t.Error("keys should ignore case and surrounding space")
	}
	if DesignKey("cat", "mom retro") == DesignKey("cat mom", "retro") {
		t.Error("niche and title must not run together")
	}
}

func TestNewSaveDesignRequest(t *testing.T) {
	idea := DesignIdea{Title: "Axo", Product: "mug", DemandScore: 8}
	req := NewSaveDesignRequest("axolotl", "Balanced", idea, "https://img")
	if req.ProductType != "mug" || req.StylePreference != "Balanced" || req.MockupURL != "https://img" {
		t.Errorf("request = %+v", req)
	}
	if req.DemandScore == nil || *req.DemandScore != 8 {
		t.Errorf("demand score = %v", req.DemandScore)
	}
	if NewSaveDesignRequest("n", "", DesignIdea{}, "").DemandScore != nil {
		t.Error("missing demand score should be omitted")
	}
}

func TestVaultStats_Removed(t *testing.T) {
	stats := VaultStats{Total: 2, ByStatus: map[string]int{"draft": 1, "ready": 1}}
	got := stats.Removed(DesignReady)
	if got.Total != 1 || got.ByStatus["ready"] != 0 || got.ByStatus["draft"] != 1 {
		t.Errorf("Removed() = %+v", got)
	}
	if stats.ByStatus["ready"] != 1 {
		t.Error("Removed must not mutate the receiver")
	}
	if (VaultStats{}).Removed(DesignDraft).Total != 0 {
		t.Error("total must not go negative")
	}
}

func TestVaultStats_Moved(t *testing.T) {
	stats := VaultStats{Total: 1, ByStatus: map[string]int{"draft": 1}}
	got := stats.Moved(DesignDraft, DesignReady)
	if got.ByStatus["draft"] != 0 || got.ByStatus["ready"] != 1 || got.Total != 1 {
		t.Errorf("Moved() = %+v", got)
	}
}

func TestSavedDesign_VisibleTags(t *testing.T) {
	d := SavedDesign{ListingTags: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}}
	if len(d.VisibleTags()) != MaxListingTags {
		t.Errorf("expected %d tags, got %d", MaxListingTags, len(d.VisibleTags()))
	}
}
