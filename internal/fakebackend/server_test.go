package fakebackend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/novraux/novraux-desk/internal/model"
)

func serve(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

func TestVaultStats(t *testing.T) {
	s := New(DefaultFixtures())

	rec := serve(t, s, http.MethodGet, "/vault/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	var stats model.VaultStats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.Total != 2 {
		t.Errorf("Total = %d, expected 2", stats.Total)
	}
	if stats.ByStatus["draft"] != 1 || stats.ByStatus["ready"] != 1 {
		t.Errorf("ByStatus = %v, expected one draft and one ready", stats.ByStatus)
	}
}

func TestSaveAssignsNextID(t *testing.T) {
	s := New(DefaultFixtures())

	rec := serve(t, s, http.MethodPost, "/vault", `{"niche":"tea","title":"Tea Time"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, expected 201", rec.Code)
	}
	var saved model.SavedDesign
	if err := json.NewDecoder(rec.Body).Decode(&saved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if saved.ID != 3 {
		t.Errorf("ID = %d, expected 3", saved.ID)
	}
}

func TestListVaultNewestFirst(t *testing.T) {
	s := New(DefaultFixtures())

	rec := serve(t, s, http.MethodGet, "/vault", "")
	var designs []model.SavedDesign
	if err := json.NewDecoder(rec.Body).Decode(&designs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(designs) != 2 || designs[0].ID != 2 {
		t.Errorf("designs = %v, expected id 2 first", designs)
	}
}

func TestFailAndRecover(t *testing.T) {
	s := New(Fixtures{})
	s.Fail(http.MethodGet, "/orders/stats", http.StatusBadGateway)

	if rec := serve(t, s, http.MethodGet, "/orders/stats", ""); rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, expected 502", rec.Code)
	}
	s.Recover(http.MethodGet, "/orders/stats")
	if rec := serve(t, s, http.MethodGet, "/orders/stats", ""); rec.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200", rec.Code)
	}
	if n := s.CountRequests("GET /orders/stats"); n != 2 {
		t.Errorf("CountRequests() = %d, expected 2", n)
	}
}

func TestScrapeFrames(t *testing.T) {
	s := New(Fixtures{ScrapeFrames: FailingScrape("quota exceeded")})

	rec := serve(t, s, http.MethodGet, "/trends/scrape", "")
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q, expected text/event-stream", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "event: error\ndata: {\"status\":\"Error: quota exceeded\",\"progress\":100}\n\n") {
		t.Errorf("body = %q, expected error frame", body)
	}
}
