package view

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/novraux/novraux-desk/internal/fakebackend"
)

func newTestSEO(t *testing.T, fx fakebackend.Fixtures) (*ShopifySEO, *fakebackend.Server) {
	t.Helper()
	client, backend := newBackend(t, fx)
	s := NewShopifySEO(client, 50, 10*time.Millisecond, false)
	t.Cleanup(s.Close)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	return s, backend
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		smart bool
		score float64
		model string
	}{
		{"fast model", false, 72, "fast"},
		{"smart model", true, 88, "smart"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, backend := newTestSEO(t, fakebackend.DefaultFixtures())
			s.SetSmartModel(tt.smart)

			if err := s.Generate(context.Background(), 1001); err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			preview, ok := s.Preview(1001)
			if !ok || preview.SEOScore == nil || *preview.SEOScore != tt.score || preview.ModelUsed != tt.model {
				t.Errorf("Preview() = %+v, expected score %v from %s", preview, tt.score, tt.model)
			}
			if s.Generating(1001) {
				t.Error("Generating() should be false after Generate")
			}
			if tt.smart && backend.CountRequests("POST /shopify/products/1001/generate-seo?use_smart_model=true") != 1 {
				t.Errorf("requests = %v", backend.Requests())
			}
		})
	}
}

func TestGenerateFailureBecomesPreviewError(t *testing.T) {
	s, backend := newTestSEO(t, fakebackend.DefaultFixtures())
	backend.Fail("POST", "/shopify/products/1002/generate-seo", http.StatusInternalServerError)

	if err := s.Generate(context.Background(), 1002); err == nil {
		t.Fatal("Generate() should fail")
	}
	preview, ok := s.Preview(1002)
	if !ok || preview.Error != "Failed to generate SEO" {
		t.Errorf("Preview() = %+v, expected error preview", preview)
	}
	if preview.Pushable() {
		t.Error("error preview should not be pushable")
	}
	if err := s.Push(context.Background(), 1002); !errors.Is(err, ErrNotPushable) {
		t.Errorf("Push() error = %v, expected ErrNotPushable", err)
	}
}

func TestPush(t *testing.T) {
	s, backend := newTestSEO(t, fakebackend.DefaultFixtures())
	ctx := context.Background()

	if err := s.Push(ctx, 1001); !errors.Is(err, ErrNotPushable) {
		t.Errorf("Push() before Generate error = %v, expected ErrNotPushable", err)
	}
	if err := s.Generate(ctx, 1001); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	backend.Fail("POST", "/shopify/products/push-seo", http.StatusBadGateway)
	if err := s.Push(ctx, 1001); err == nil {
		t.Fatal("Push() should fail")
	}
	if p, _ := s.Preview(1001); p.Pushed {
		t.Error("failed push should not mark the preview")
	}

	backend.Recover("POST", "/shopify/products/push-seo")
	if err := s.Push(ctx, 1001); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if p, _ := s.Preview(1001); !p.Pushed {
		t.Error("preview should be marked pushed")
	}
	if s.Pushing(1001) {
		t.Error("Pushing() should be false after Push")
	}
}

func TestStartBulk(t *testing.T) {
	fx := fakebackend.DefaultFixtures()
	fx.BulkDelay = 0
	s, backend := newTestSEO(t, fx)

	if err := s.StartBulk(context.Background()); err != nil {
		t.Fatalf("StartBulk() error = %v", err)
	}
	if b := s.Bulk(); b.Requested != 3 || b.JobID == "" {
		t.Errorf("Bulk() = %+v, expected 3 requested with a job id", b)
	}

	eventually(t, "bulk job done", func() bool { return !s.Bulk().Running })

	if b := s.Bulk(); b.Done != 3 || b.Err != "" {
		t.Errorf("Bulk() = %+v, expected 3 done", b)
	}
	for _, id := range []int64{1001, 1002, 1003} {
		if p, ok := s.Preview(id); !ok || !p.Pushable() {
			t.Errorf("Preview(%d) = %+v, expected bulk result", id, p)
		}
	}

	polls := backend.CountRequests("GET /shopify/bulk-seo/")
	time.Sleep(50 * time.Millisecond)
	if got := backend.CountRequests("GET /shopify/bulk-seo/"); got != polls {
		t.Errorf("polls after completion = %d, expected %d", got, polls)
	}
}

func TestStartBulkFailure(t *testing.T) {
	s, backend := newTestSEO(t, fakebackend.DefaultFixtures())
	backend.Fail("POST", "/shopify/products/bulk-seo", http.StatusInternalServerError)

	if err := s.StartBulk(context.Background()); err == nil {
		t.Fatal("StartBulk() should fail")
	}
	if b := s.Bulk(); b.Running || b.JobID != "" {
		t.Errorf("Bulk() = %+v, expected reset", b)
	}
}

func TestCloseStopsBulkPolling(t *testing.T) {
	fx := fakebackend.DefaultFixtures()
	fx.BulkDelay = time.Hour
	s, backend := newTestSEO(t, fx)

	if err := s.StartBulk(context.Background()); err != nil {
		t.Fatalf("StartBulk() error = %v", err)
	}
	eventually(t, "first poll", func() bool { return backend.CountRequests("GET /shopify/bulk-seo/") > 0 })

	s.Close()
	time.Sleep(30 * time.Millisecond)
	polls := backend.CountRequests("GET /shopify/bulk-seo/")
	time.Sleep(50 * time.Millisecond)
	if got := backend.CountRequests("GET /shopify/bulk-seo/"); got != polls {
		t.Errorf("polls after Close = %d, expected %d", got, polls)
	}
}
