package view

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/novraux/novraux-desk/internal/api"
	"github.com/novraux/novraux-desk/internal/fakebackend"
)

func newBackend(t *testing.T, fx fakebackend.Fixtures) (*api.Client, *fakebackend.Server) {
	t.Helper()
	backend := fakebackend.New(fx)
	srv := httptest.NewServer(backend.Routes())
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, srv.Client()), backend
}

func eventually(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
