package view

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/novraux/novraux-desk/internal/api"
	"github.com/novraux/novraux-desk/internal/fakebackend"
	"github.com/novraux/novraux-desk/internal/model"
)

func newTestExplorer(t *testing.T) (*NicheExplorer, *fakebackend.Server) {
	t.Helper()
	fx := fakebackend.DefaultFixtures()
	fx.Niches["ghost town"] = model.NicheValidation{Success: false, Keyword: "ghost town"}
	fx.Niches["quiet niche"] = model.NicheValidation{Success: false, Message: "Scraper blocked, try later"}
	client, backend := newBackend(t, fx)
	return NewNicheExplorer(client, "Vintage"), backend
}

// analyzed searches retro camping and returns its first design idea
func analyzed(t *testing.T, e *NicheExplorer) model.DesignIdea {
	t.Helper()
	ctx := context.Background()
	if err := e.Search(ctx, "retro camping"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if err := e.Analyze(ctx); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	designs := e.Analysis().Data.AllDesigns()
	if len(designs) != 2 {
		t.Fatalf("designs = %d, expected 2", len(designs))
	}
	return designs[0]
}

func TestSearch(t *testing.T) {
	e, backend := newTestExplorer(t)

	if err := e.Search(context.Background(), "  "); err != nil {
		t.Errorf("Search(blank) error = %v", err)
	}
	if n := len(backend.Requests()); n != 0 {
		t.Errorf("blank search sent %d requests", n)
	}

	if err := e.Search(context.Background(), " retro camping "); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	snap := e.Validation()
	if snap.Data.ListingCount != 42 || snap.Err != nil {
		t.Errorf("Validation() = %+v, expected 42 listings", snap)
	}
	if e.Keyword() != "retro camping" {
		t.Errorf("Keyword() = %q, expected %q", e.Keyword(), "retro camping")
	}
}

func TestSearchFailures(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		expected string
	}{
		{"backend says no data", "ghost town", "No data found for this niche."},
		{"backend message", "quiet niche", "Scraper blocked, try later"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestExplorer(t)
			err := e.Search(context.Background(), tt.keyword)
			var appErr *AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("Search() error = %v, expected AppError", err)
			}
			if appErr.Message != tt.expected {
				t.Errorf("Message = %q, expected %q", appErr.Message, tt.expected)
			}
			if e.Validation().Err != err {
				t.Errorf("Validation().Err = %v, expected %v", e.Validation().Err, err)
			}
		})
	}

	t.Run("not found", func(t *testing.T) {
		e, _ := newTestExplorer(t)
		err := e.Search(context.Background(), "zebra knitting")
		var apiErr *api.Error
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
			t.Fatalf("Search() error = %v, expected 404", err)
		}
		if apiErr.Detail != "No listings found for zebra knitting" {
			t.Errorf("Detail = %q", apiErr.Detail)
		}
	})
}

func TestActivateConsumesSeed(t *testing.T) {
	e, backend := newTestExplorer(t)
	nav := NewNavigator(PageTrends)
	ctx := context.Background()

	if _, ok, _ := e.Activate(ctx, nav); ok {
		t.Error("Activate() without a seed should do nothing")
	}

	nav.NavigateWithSeed(PageExplorer, "retro camping")
	seed, ok, err := e.Activate(ctx, nav)
	if !ok || err != nil || seed != "retro camping" {
		t.Fatalf("Activate() = %q, %v, %v", seed, ok, err)
	}
	if _, ok, _ := e.Activate(ctx, nav); ok {
		t.Error("seed should be consumed once")
	}
	if got := backend.CountRequests("POST /research/explore"); got != 1 {
		t.Errorf("explore requests = %d, expected 1", got)
	}
}

func TestNewSearchDropsResults(t *testing.T) {
	e, _ := newTestExplorer(t)
	idea := analyzed(t, e)
	if err := e.Brief(context.Background(), idea); err != nil {
		t.Fatalf("Brief() error = %v", err)
	}
	if err := e.GapReport(context.Background(), "etsy"); err != nil {
		t.Fatalf("GapReport() error = %v", err)
	}

	_ = e.Search(context.Background(), "zebra knitting")

	if e.Analysis().Loaded || e.Gap().Loaded {
		t.Error("analysis and gap report should be cleared")
	}
	if e.Work(idea).Brief != nil {
		t.Error("design work should be cleared")
	}
}

func TestAnalyze(t *testing.T) {
	e, _ := newTestExplorer(t)
	idea := analyzed(t, e)

	if idea.Title != "Retro retro camping Club" || idea.DemandScore.Float() != 8 {
		t.Errorf("first idea = %+v", idea)
	}
	second := e.Analysis().Data.AllDesigns()[1]
	if second.DemandScore.Float() != 7 {
		t.Errorf("string demand score = %v, expected 7", second.DemandScore.Float())
	}
	if e.Analysis().Data.Details.Text("market_summary") == "" {
		t.Error("market summary should be kept in details")
	}
}

func TestDesignActions(t *testing.T) {
	e, _ := newTestExplorer(t)
	idea := analyzed(t, e)
	ctx := context.Background()

	if err := e.Brief(ctx, idea); err != nil {
		t.Fatalf("Brief() error = %v", err)
	}
	if err := e.Mockup(ctx, idea); err != nil {
		t.Fatalf("Mockup() error = %v", err)
	}
	if err := e.Variations(ctx, idea, 3); err != nil {
		t.Fatalf("Variations() error = %v", err)
	}

	w := e.Work(idea)
	if w.Brief == nil || w.Brief.Brief.Text("headline") != idea.Title {
		t.Errorf("Brief = %+v", w.Brief)
	}
	if w.Mockup == nil || w.Mockup.DisplayURL() != "https://mockups.example/Retro-retro-camping-Club.png" {
		t.Errorf("Mockup = %+v", w.Mockup)
	}
	if w.Variations == nil || len(w.Variations.Variations) != 3 {
		t.Fatalf("Variations = %+v", w.Variations)
	}
	if got := w.Variations.Variations[2].DisplayURL(); got != "https://mockups.example/fallback.png" {
		t.Errorf("failed variation url = %q, expected fallback", got)
	}
	if w.Busy != "" || w.Err != nil {
		t.Errorf("work = busy %q err %v, expected idle", w.Busy, w.Err)
	}
}

func TestSaveToVaultOnce(t *testing.T) {
	e, backend := newTestExplorer(t)
	idea := analyzed(t, e)
	ctx := context.Background()

	saved, err := e.SaveToVault(ctx, idea)
	if !saved || err != nil {
		t.Fatalf("SaveToVault() = %v, %v", saved, err)
	}
	saved, err = e.SaveToVault(ctx, idea)
	if saved || err != nil {
		t.Errorf("second SaveToVault() = %v, %v, expected false, nil", saved, err)
	}
	if got := backend.CountRequests("POST /vault"); got != 1 {
		t.Errorf("save requests = %d, expected 1", got)
	}
	if !e.IsSaved(idea) || e.Work(idea).SavedID != 3 {
		t.Errorf("SavedID = %d, expected 3", e.Work(idea).SavedID)
	}

	vault := backend.Vault()
	last := vault[len(vault)-1]
	if last.StylePreference != "Vintage" || last.Niche != "retro camping" {
		t.Errorf("saved design = %+v", last)
	}
}

// idlessSaves answers saves without a vault id
type idlessSaves struct {
	ResearchBackend
}

func (b idlessSaves) SaveDesign(ctx context.Context, req model.SaveDesignRequest) (model.SavedDesign, error) {
	d, err := b.ResearchBackend.SaveDesign(ctx, req)
	d.ID = 0
	return d, err
}

func TestSaveWithoutIDStillCountsAsSaved(t *testing.T) {
	client, backend := newBackend(t, fakebackend.DefaultFixtures())
	e := NewNicheExplorer(idlessSaves{client}, "Vintage")
	idea := analyzed(t, e)
	ctx := context.Background()

	if err := e.Listing(ctx, idea); err != nil {
		t.Fatalf("Listing() error = %v", err)
	}
	saved, err := e.SaveToVault(ctx, idea)
	if !saved || err != nil {
		t.Fatalf("SaveToVault() = %v, %v", saved, err)
	}
	if !e.IsSaved(idea) {
		t.Error("IsSaved() = false, expected true")
	}
	saved, err = e.SaveToVault(ctx, idea)
	if saved || err != nil {
		t.Errorf("second SaveToVault() = %v, %v, expected false, nil", saved, err)
	}
	if got := backend.CountRequests("POST /vault"); got != 1 {
		t.Errorf("save requests = %d, expected 1", got)
	}
	if got := backend.CountRequests("PATCH"); got != 0 {
		t.Errorf("listing patches = %d, expected 0 without an id", got)
	}
}

func TestListingAttachesToSavedDesign(t *testing.T) {
	e, backend := newTestExplorer(t)
	idea := analyzed(t, e)
	ctx := context.Background()

	if _, err := e.SaveToVault(ctx, idea); err != nil {
		t.Fatalf("SaveToVault() error = %v", err)
	}
	if err := e.Listing(ctx, idea); err != nil {
		t.Fatalf("Listing() error = %v", err)
	}
	if got := backend.CountRequests("PATCH /vault/3/listing"); got != 1 {
		t.Errorf("listing patches = %d, expected 1", got)
	}
	vault := backend.Vault()
	if got := vault[len(vault)-1].ListingTitle; got != idea.Title+" Shirt" {
		t.Errorf("ListingTitle = %q, expected %q", got, idea.Title+" Shirt")
	}
}

func TestSaveCarriesEarlierListing(t *testing.T) {
	e, backend := newTestExplorer(t)
	idea := analyzed(t, e)
	ctx := context.Background()

	if err := e.Listing(ctx, idea); err != nil {
		t.Fatalf("Listing() error = %v", err)
	}
	if got := backend.CountRequests("PATCH"); got != 0 {
		t.Errorf("unsaved listing sent %d patches", got)
	}
	if _, err := e.SaveToVault(ctx, idea); err != nil {
		t.Fatalf("SaveToVault() error = %v", err)
	}
	if got := backend.CountRequests("PATCH /vault/3/listing"); got != 1 {
		t.Errorf("listing patches = %d, expected 1", got)
	}
}

func TestSaveFailureCanRetry(t *testing.T) {
	e, backend := newTestExplorer(t)
	idea := analyzed(t, e)
	ctx := context.Background()

	backend.Fail("POST", "/vault", http.StatusInternalServerError)
	if saved, err := e.SaveToVault(ctx, idea); saved || err == nil {
		t.Fatalf("SaveToVault() = %v, %v, expected failure", saved, err)
	}
	if e.Work(idea).Err == nil {
		t.Error("work should carry the failure")
	}

	backend.Recover("POST", "/vault")
	if saved, err := e.SaveToVault(ctx, idea); !saved || err != nil {
		t.Errorf("retry SaveToVault() = %v, %v", saved, err)
	}
}
