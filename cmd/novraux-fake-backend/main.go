package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/novraux/novraux-desk/internal/fakebackend"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8000", "listen address")
	flag.Parse()

	backend := fakebackend.New(fakebackend.DefaultFixtures())

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Mount("/", backend.Routes())

	log.Printf("Fake backend listening on http://%s", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatalf("Fake backend stopped: %v", err)
	}
}
