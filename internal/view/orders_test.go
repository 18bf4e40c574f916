package view

import (
	"context"
	"net/http"
	"testing"

	"github.com/novraux/novraux-desk/internal/fakebackend"
	"github.com/novraux/novraux-desk/internal/model"
)

func TestOrdersRefresh(t *testing.T) {
	client, backend := newBackend(t, fakebackend.DefaultFixtures())
	o := NewOrders(client, 50)

	if err := o.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	data := o.Snapshot().Data
	if len(data.Orders) != 3 || data.Orders[0].ID != 1 {
		t.Errorf("orders = %+v, expected newest first", data.Orders)
	}
	if data.Stats.OrderCount != 3 {
		t.Errorf("OrderCount = %d, expected 3", data.Stats.OrderCount)
	}
	if len(data.Stats.ByPlatform) == 0 || len(data.Stats.TopProducts) == 0 {
		t.Error("breakdowns should be derived from the orders")
	}
	if got := backend.CountRequests("GET /orders?limit=50"); got != 1 {
		t.Errorf("order requests = %d, expected 1", got)
	}
}

func TestOrderMargin(t *testing.T) {
	o := model.Order{Revenue: 40, PrintfulCost: 30, Profit: 10}
	if got := model.FormatPercent(o.MarginPercent()); got != "25.0%" {
		t.Errorf("margin = %s, expected 25.0%%", got)
	}
}

func TestOrdersRefreshFailure(t *testing.T) {
	client, backend := newBackend(t, fakebackend.DefaultFixtures())
	backend.Fail("GET", "/orders/stats", http.StatusBadGateway)
	o := NewOrders(client, 50)

	err := o.Refresh(context.Background())
	if err == nil || err.Error() != "Failed to fetch order stats" {
		t.Fatalf("Refresh() error = %v", err)
	}
	if snap := o.Snapshot(); snap.Loaded || len(snap.Data.Orders) != 0 {
		t.Errorf("Snapshot() = %+v, expected no data", snap)
	}
}

func TestOrdersSync(t *testing.T) {
	client, backend := newBackend(t, fakebackend.DefaultFixtures())
	o := NewOrders(client, 50)

	if err := o.Sync(context.Background()); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if o.Syncing() {
		t.Error("Syncing() should be false after Sync")
	}
	result, ok := o.LastSync()
	if !ok || result.Status != "success" {
		t.Errorf("LastSync() = %+v, %v", result, ok)
	}

	reqs := backend.Requests()
	if len(reqs) != 3 || reqs[0] != "POST /orders/sync" {
		t.Errorf("requests = %v, expected sync then reload", reqs)
	}
	if !o.Snapshot().Loaded {
		t.Error("orders should be reloaded after sync")
	}
}

func TestOrdersSyncFailure(t *testing.T) {
	client, backend := newBackend(t, fakebackend.DefaultFixtures())
	backend.Fail("POST", "/orders/sync", http.StatusInternalServerError)
	o := NewOrders(client, 50)

	if err := o.Sync(context.Background()); err == nil {
		t.Fatal("Sync() should fail")
	}
	if _, ok := o.LastSync(); ok {
		t.Error("failed sync should not be recorded")
	}
	if got := backend.CountRequests("GET /orders"); got != 0 {
		t.Errorf("reload requests = %d, expected 0", got)
	}
}
