package view

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/novraux/novraux-desk/internal/fakebackend"
	"github.com/novraux/novraux-desk/internal/model"
)

func newTestVault(t *testing.T) (*Vault, *fakebackend.Server) {
	t.Helper()
	client, backend := newBackend(t, fakebackend.DefaultFixtures())
	v := NewVault(client)
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	return v, backend
}

func designStatus(v *Vault, id int) model.DesignStatus {
	d, _ := v.find(id)
	return d.Status
}

func TestVaultRefresh(t *testing.T) {
	v, _ := newTestVault(t)
	data := v.Snapshot().Data

	if len(data.Designs) != 2 || data.Designs[0].ID != 2 {
		t.Errorf("designs = %+v, expected newest first", data.Designs)
	}
	if data.Stats.Total != 2 || data.Stats.ByStatus["draft"] != 1 || data.Stats.ByStatus["ready"] != 1 {
		t.Errorf("stats = %+v", data.Stats)
	}
}

func TestVaultRefreshIsAllOrNothing(t *testing.T) {
	v, backend := newTestVault(t)
	backend.Fail("GET", "/vault/stats", http.StatusInternalServerError)

	if err := v.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh() should fail when stats fail")
	}
	snap := v.Snapshot()
	if snap.Err == nil || len(snap.Data.Designs) != 2 {
		t.Errorf("Snapshot() = %+v, expected error with previous data kept", snap)
	}
}

func TestVaultSetFilter(t *testing.T) {
	v, backend := newTestVault(t)
	v.SetFilter(model.VaultFilter{Niche: "AXO", Status: model.DesignReady})
	if got := backend.CountRequests("GET /vault?niche=AXO"); got != 0 {
		t.Errorf("requests before Refresh = %d, expected 0", got)
	}
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if designs := v.Snapshot().Data.Designs; len(designs) != 1 || designs[0].ID != 2 {
		t.Errorf("designs = %+v, expected only design 2", designs)
	}
	if got := backend.CountRequests("GET /vault?niche=AXO&status=ready"); got != 1 {
		t.Errorf("filtered requests = %d, expected 1; got %v", got, backend.Requests())
	}
}

func TestCycleStatus(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	for _, expected := range []model.DesignStatus{model.DesignReady, model.DesignExported, model.DesignDraft} {
		got, err := v.CycleStatus(ctx, 1)
		if err != nil {
			t.Fatalf("CycleStatus() error = %v", err)
		}
		if got != expected || designStatus(v, 1) != expected {
			t.Errorf("CycleStatus() = %v, expected %v", got, expected)
		}
	}

	stats := v.Snapshot().Data.Stats
	if stats.ByStatus["draft"] != 1 || stats.ByStatus["ready"] != 1 || stats.ByStatus["exported"] != 0 {
		t.Errorf("ByStatus = %v after a full cycle", stats.ByStatus)
	}
}

func TestCycleStatusFailureLeavesState(t *testing.T) {
	v, backend := newTestVault(t)
	backend.Fail("PATCH", "/vault/1/status", http.StatusInternalServerError)

	got, err := v.CycleStatus(context.Background(), 1)
	if err == nil {
		t.Fatal("CycleStatus() should fail")
	}
	if got != model.DesignDraft || designStatus(v, 1) != model.DesignDraft {
		t.Errorf("status = %v, expected draft", designStatus(v, 1))
	}
	if v.Snapshot().Data.Stats.ByStatus["draft"] != 1 {
		t.Error("stats should be untouched")
	}
	if v.Pending(1) {
		t.Error("design 1 should not stay pending")
	}
}

func TestCycleStatusUnknownDesign(t *testing.T) {
	v, _ := newTestVault(t)
	if _, err := v.CycleStatus(context.Background(), 99); err == nil {
		t.Error("CycleStatus(99) should fail")
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		fail    bool
		designs int
		total   int
	}{
		{"success", false, 1, 1},
		{"backend failure", true, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, backend := newTestVault(t)
			if tt.fail {
				backend.Fail("DELETE", "/vault/2", http.StatusInternalServerError)
			}

			err := v.Delete(context.Background(), 2)
			if (err != nil) != tt.fail {
				t.Fatalf("Delete() error = %v, expected failure %v", err, tt.fail)
			}
			data := v.Snapshot().Data
			if len(data.Designs) != tt.designs {
				t.Errorf("designs = %d, expected %d", len(data.Designs), tt.designs)
			}
			if data.Stats.Total != tt.total {
				t.Errorf("Total = %d, expected %d", data.Stats.Total, tt.total)
			}
		})
	}
}

func TestVaultListingCopy(t *testing.T) {
	v, _ := newTestVault(t)

	text, err := v.ListingCopy(2)
	if err != nil {
		t.Fatalf("ListingCopy(2) error = %v", err)
	}
	if !strings.HasPrefix(text, "TITLE: Axolotl Squad Sticker") || !strings.HasSuffix(text, "TAGS: axolotl, sticker, kawaii") {
		t.Errorf("ListingCopy(2) = %q", text)
	}
	if _, err := v.ListingCopy(1); !errors.Is(err, ErrNoListing) {
		t.Errorf("ListingCopy(1) error = %v, expected ErrNoListing", err)
	}
}
