package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/novraux/novraux-desk/internal/fakebackend"
	"github.com/novraux/novraux-desk/internal/model"
)

func newTestClient(t *testing.T, fx fakebackend.Fixtures) (*Client, *fakebackend.Server) {
	t.Helper()
	backend := fakebackend.New(fx)
	srv := httptest.NewServer(backend.Routes())
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client()), backend
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{"empty uses default", "", DefaultBaseURL},
		{"trailing slash trimmed", "http://api.local:9000/", "http://api.local:9000"},
		{"kept as is", "http://api.local", "http://api.local"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.baseURL, nil)
			if c.BaseURL() != tt.expected {
				t.Errorf("BaseURL() = %q, expected %q", c.BaseURL(), tt.expected)
			}
		})
	}
}

func TestGetTrendsQuery(t *testing.T) {
	client, backend := newTestClient(t, fakebackend.DefaultFixtures())

	filter := model.TrendFilter{Score: model.ScoreAtLeast7, Source: "google", SafeOnly: true}
	trends, err := client.GetTrends(context.Background(), NewTrendParams(filter, 25))
	if err != nil {
		t.Fatalf("GetTrends() error = %v", err)
	}
	if len(trends) != 1 || trends[0].Keyword != "retro camping" {
		t.Errorf("GetTrends() = %v, expected only retro camping", trends)
	}

	reqs := backend.Requests()
	last := reqs[len(reqs)-1]
	for _, part := range []string{"min_score=7", "source=google", "ip_safe=true", "limit=25"} {
		if !strings.Contains(last, part) {
			t.Errorf("request %q missing %q", last, part)
		}
	}
}

func TestGetTrendsOmitsUnsetFilters(t *testing.T) {
	client, backend := newTestClient(t, fakebackend.DefaultFixtures())

	trends, err := client.GetTrends(context.Background(), TrendParams{})
	if err != nil {
		t.Fatalf("GetTrends() error = %v", err)
	}
	if len(trends) != 5 {
		t.Errorf("len(trends) = %d, expected 5", len(trends))
	}
	reqs := backend.Requests()
	if reqs[len(reqs)-1] != "GET /trends" {
		t.Errorf("request = %q, expected %q", reqs[len(reqs)-1], "GET /trends")
	}
}

func TestFailureUsesFixedMessage(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		call   func(c *Client) error
		msg    string
	}{
		{"trends", http.MethodGet, "/trends", func(c *Client) error {
			_, err := c.GetTrends(context.Background(), TrendParams{})
			return err
		}, MsgFetchTrends},
		{"orders", http.MethodGet, "/orders", func(c *Client) error {
			_, err := c.GetOrders(context.Background(), 0)
			return err
		}, MsgFetchOrders},
		{"sync", http.MethodPost, "/orders/sync", func(c *Client) error {
			_, err := c.SyncOrders(context.Background())
			return err
		}, MsgSyncOrders},
		{"vault stats", http.MethodGet, "/vault/stats", func(c *Client) error {
			_, err := c.VaultStats(context.Background())
			return err
		}, MsgFetchVaultStats},
		{"delete", http.MethodDelete, "/vault/1", func(c *Client) error {
			return c.DeleteDesign(context.Background(), 1)
		}, MsgDeleteDesign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, backend := newTestClient(t, fakebackend.DefaultFixtures())
			backend.Fail(tt.method, tt.path, http.StatusInternalServerError)

			err := tt.call(client)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.msg {
				t.Errorf("Error() = %q, expected %q", err.Error(), tt.msg)
			}
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %T is not *Error", err)
			}
			if apiErr.StatusCode != http.StatusInternalServerError {
				t.Errorf("StatusCode = %d, expected %d", apiErr.StatusCode, http.StatusInternalServerError)
			}
			if apiErr.Detail != "forced failure" {
				t.Errorf("Detail = %q, expected %q", apiErr.Detail, "forced failure")
			}
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := NewClient(srv.URL, srv.Client())
	srv.Close()

	_, err := client.GetCalendar(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != MsgFetchCalendar {
		t.Errorf("Error() = %q, expected %q", err.Error(), MsgFetchCalendar)
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		t.Errorf("StatusCode = %d, expected 0", apiErr.StatusCode)
	}
}

func TestExploreNiche(t *testing.T) {
	client, backend := newTestClient(t, fakebackend.DefaultFixtures())

	result, err := client.ExploreNiche(context.Background(), "retro camping")
	if err != nil {
		t.Fatalf("ExploreNiche() error = %v", err)
	}
	if result.ListingCount != 42 {
		t.Errorf("ListingCount = %d, expected 42", result.ListingCount)
	}
	if result.TopCompetitors[0].Price.String() != "$21.99" {
		t.Errorf("Price = %q, expected %q", result.TopCompetitors[0].Price, "$21.99")
	}
	if n := backend.CountRequests("POST /research/explore?keyword=retro+camping"); n != 1 {
		t.Errorf("explore requests = %d, expected 1", n)
	}

	_, err = client.ExploreNiche(context.Background(), "nothing here")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, expected *Error", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Detail != "No listings found for nothing here" {
		t.Errorf("got status %d detail %q", apiErr.StatusCode, apiErr.Detail)
	}
}

func TestAnalyzeNicheWithDesigns(t *testing.T) {
	client, _ := newTestClient(t, fakebackend.Fixtures{})

	result, err := client.AnalyzeNiche(context.Background(), AnalyzeParams{Niche: "camping", GenerateDesigns: true})
	if err != nil {
		t.Fatalf("AnalyzeNiche() error = %v", err)
	}
	designs := result.AllDesigns()
	if len(designs) != 2 {
		t.Fatalf("len(designs) = %d, expected 2", len(designs))
	}
	if designs[1].DemandScore.Float() != 7 {
		t.Errorf("DemandScore = %v, expected 7", designs[1].DemandScore.Float())
	}
	if result.Details.Text("market_summary") == "" {
		t.Error("market_summary should be kept in details")
	}
}

func TestDesignVariationsDefault(t *testing.T) {
	client, backend := newTestClient(t, fakebackend.Fixtures{})

	result, err := client.DesignVariations(context.Background(), VariationParams{Niche: "camping", DesignTitle: "Happy Glamper"})
	if err != nil {
		t.Fatalf("DesignVariations() error = %v", err)
	}
	if result.TotalGenerated != DefaultVariations {
		t.Errorf("TotalGenerated = %d, expected %d", result.TotalGenerated, DefaultVariations)
	}
	if backend.CountRequests("POST /research/design/variations?") != 1 {
		t.Error("expected one variations request")
	}
	reqs := backend.Requests()
	if !strings.Contains(reqs[len(reqs)-1], "num_variations=3") {
		t.Errorf("request %q should ask for 3 variations", reqs[len(reqs)-1])
	}
}

func TestVaultLifecycle(t *testing.T) {
	client, backend := newTestClient(t, fakebackend.Fixtures{})
	ctx := context.Background()

	idea := model.DesignIdea{Title: "Happy Glamper", Concept: "Van at dusk", Product: "t-shirt"}
	saved, err := client.SaveDesign(ctx, model.NewSaveDesignRequest("camping", "", idea, ""))
	if err != nil {
		t.Fatalf("SaveDesign() error = %v", err)
	}
	if saved.Status != model.DesignDraft || saved.StylePreference != "Balanced" {
		t.Errorf("saved = %+v, expected draft with Balanced style", saved)
	}

	updated, err := client.UpdateDesignStatus(ctx, saved.ID, model.DesignReady)
	if err != nil {
		t.Fatalf("UpdateDesignStatus() error = %v", err)
	}
	if updated.Status != model.DesignReady {
		t.Errorf("Status = %q, expected %q", updated.Status, model.DesignReady)
	}

	_, err = client.UpdateDesignStatus(ctx, saved.ID, model.DesignStatus("archived"))
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid status error = %v, expected 400", err)
	}

	listing := model.ListingUpdate{Title: "Happy Glamper Tee", Tags: []string{"camping"}}
	updated, err = client.UpdateDesignListing(ctx, saved.ID, listing)
	if err != nil {
		t.Fatalf("UpdateDesignListing() error = %v", err)
	}
	if !updated.HasListing() {
		t.Error("design should have a listing after update")
	}

	designs, err := client.ListVault(ctx, model.VaultFilter{Niche: "CAMP", Status: model.DesignReady})
	if err != nil {
		t.Fatalf("ListVault() error = %v", err)
	}
	if len(designs) != 1 {
		t.Errorf("len(designs) = %d, expected 1", len(designs))
	}

	if err := client.DeleteDesign(ctx, saved.ID); err != nil {
		t.Fatalf("DeleteDesign() error = %v", err)
	}
	if len(backend.Vault()) != 0 {
		t.Error("vault should be empty after delete")
	}

	err = client.DeleteDesign(ctx, saved.ID)
	if !errors.As(err, &apiErr) || apiErr.Detail != "Design not found" {
		t.Errorf("second delete error = %v, expected Design not found", err)
	}
}

func TestBulkSEO(t *testing.T) {
	client, _ := newTestClient(t, fakebackend.DefaultFixtures())
	ctx := context.Background()

	job, err := client.StartBulkSEO(ctx, model.BulkSEORequest{ProductIDs: []int64{1001, 1002}})
	if err != nil {
		t.Fatalf("StartBulkSEO() error = %v", err)
	}
	if len(job.JobID) != 8 {
		t.Errorf("JobID = %q, expected 8 characters", job.JobID)
	}

	results, err := client.GetBulkSEOResults(ctx, job.JobID)
	if err != nil {
		t.Fatalf("GetBulkSEOResults() error = %v", err)
	}
	previews := map[int64]model.SEOResult{}
	if n := results.MergePreviews(previews); n != 2 {
		t.Errorf("MergePreviews() = %d, expected 2", n)
	}
	if previews[1001].SEOTitle == "" {
		t.Error("preview for 1001 should have a title")
	}
}

func TestOpenScrape(t *testing.T) {
	fx := fakebackend.Fixtures{ScrapeFrames: fakebackend.SampleScrape(0)}
	client, _ := newTestClient(t, fx)

	reader, err := client.OpenScrape(context.Background())
	if err != nil {
		t.Fatalf("OpenScrape() error = %v", err)
	}
	defer reader.Close()

	var names []string
	for {
		ev, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		names = append(names, ev.Name)
	}
	if len(names) != 5 || names[4] != "complete" {
		t.Errorf("events = %v, expected 4 messages and complete", names)
	}
}

func TestOpenScrapeFailure(t *testing.T) {
	client, backend := newTestClient(t, fakebackend.Fixtures{})
	backend.Fail(http.MethodGet, "/trends/scrape", http.StatusServiceUnavailable)

	_, err := client.OpenScrape(context.Background())
	if err == nil || err.Error() != MsgOpenScrape {
		t.Errorf("OpenScrape() error = %v, expected %q", err, MsgOpenScrape)
	}
}
