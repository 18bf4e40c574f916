package fakebackend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/novraux/novraux-desk/internal/model"
)

// Frame is one scripted scrape event
type Frame struct {
	Event string
	Data  string
	Delay time.Duration
}

// Fixtures is the canned data the server answers with
type Fixtures struct {
	Trends     []model.Trend
	Products   []model.Product
	Orders     []model.Order
	OrderStats *model.OrderStats
	Calendar   []model.CalendarEvent
	Niches     map[string]model.NicheValidation
	Vault      []model.SavedDesign

	// ScrapeFrames are sent in order on every scrape request. With
	// HoldScrapeOpen the stream then stays open until the client leaves.
	ScrapeFrames   []Frame
	HoldScrapeOpen bool

	// BulkDelay is how long a bulk SEO job takes to report its results
	BulkDelay time.Duration
}

// Server is an in-memory backend
type Server struct {
	mu       sync.Mutex
	fx       Fixtures
	vault    []model.SavedDesign
	nextID   int
	bulkJobs map[string]bulkJob
	requests []string
	failures map[string]int
	synced   int
}

type bulkJob struct {
	started time.Time
	items   []model.BulkSEOItem
}

// New creates a server over fx
func New(fx Fixtures) *Server {
	s := &Server{
		fx:       fx,
		bulkJobs: make(map[string]bulkJob),
		failures: make(map[string]int),
		nextID:   1,
	}
	for _, d := range fx.Vault {
		s.vault = append(s.vault, d)
		if d.ID >= s.nextID {
			s.nextID = d.ID + 1
		}
	}
	return s
}

// Routes returns the chi router of the endpoint surface
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)

	r.Route("/trends", func(r chi.Router) {
		r.Get("/", s.listTrends)
		r.Get("/scrape", s.scrape)
		r.Get("/{id}", s.getTrend)
	})
	r.Route("/shopify", func(r chi.Router) {
		r.Get("/products", s.listProducts)
		r.Post("/products/{id}/generate-seo", s.generateSEO)
		r.Post("/products/push-seo", s.pushSEO)
		r.Post("/products/bulk-seo", s.startBulk)
		r.Get("/bulk-seo/{job}", s.bulkResults)
	})
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", s.listOrders)
		r.Get("/stats", s.orderStats)
		r.Post("/sync", s.syncOrders)
	})
	r.Route("/research", func(r chi.Router) {
		r.Post("/explore", s.explore)
		r.Get("/gap-analysis", s.gapAnalysis)
		r.Get("/calendar", s.calendar)
		r.Post("/niche/analyze", s.analyze)
		r.Post("/design/brief", s.brief)
		r.Post("/design/listing", s.listing)
		r.Post("/design/mockup", s.mockup)
		r.Post("/design/variations", s.variations)
	})
	r.Route("/vault", func(r chi.Router) {
		r.Get("/", s.listVault)
		r.Post("/", s.saveDesign)
		r.Get("/stats", s.vaultStats)
		r.Patch("/{id}/status", s.updateStatus)
		r.Patch("/{id}/listing", s.updateListing)
		r.Delete("/{id}", s.deleteDesign)
	})
	return r
}

// Fail makes every request to method+path answer with status
func (s *Server) Fail(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = status
}

// Recover removes a failure set with Fail
func (s *Server) Recover(method, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, method+" "+path)
}

// Requests returns "METHOD /path?query" of every request received
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// CountRequests counts received requests starting with prefix
func (s *Server) CountRequests(prefix string) int {
	n := 0
	for _, r := range s.Requests() {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

// Vault returns the stored designs
func (s *Server) Vault() []model.SavedDesign {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.SavedDesign(nil), s.vault...)
}

// record logs the request and applies configured failures
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")
		if path == "" {
			path = "/"
		}
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.RequestURI())
		status, failing := s.failures[r.Method+" "+path]
		s.mu.Unlock()

		if failing {
			writeError(w, status, "forced failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func intParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

// Trends

func (s *Server) listTrends(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	minScore, _ := strconv.ParseFloat(q.Get("min_score"), 64)
	limit := 50
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		limit = v
	}

	s.mu.Lock()
	trends := append([]model.Trend(nil), s.fx.Trends...)
	s.mu.Unlock()

	out := make([]model.Trend, 0, len(trends))
	for _, t := range trends {
		if minScore > 0 && (t.Score == nil || *t.Score < minScore) {
			continue
		}
		if src := q.Get("source"); src != "" && t.Source != src {
			continue
		}
		if safe := q.Get("ip_safe"); safe != "" {
			want := safe == "true"
			if t.IPSafe == nil || *t.IPSafe != want {
				continue
			}
		}
		out = append(out, t)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getTrend(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.fx.Trends {
		if t.ID == id {
			writeJSON(w, http.StatusOK, t)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Trend not found")
}

func (s *Server) scrape(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	s.mu.Lock()
	frames := append([]Frame(nil), s.fx.ScrapeFrames...)
	hold := s.fx.HoldScrapeOpen
	s.mu.Unlock()

	for _, f := range frames {
		if f.Delay > 0 {
			select {
			case <-time.After(f.Delay):
			case <-r.Context().Done():
				return
			}
		}
		if f.Event != "" {
			fmt.Fprintf(w, "event: %s\n", f.Event)
		}
		fmt.Fprintf(w, "data: %s\n\n", f.Data)
		flusher.Flush()
	}
	if hold {
		<-r.Context().Done()
	}
}

// Shopify

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	s.mu.Lock()
	products := append([]model.Product(nil), s.fx.Products...)
	s.mu.Unlock()
	if len(products) > limit {
		products = products[:limit]
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (s *Server) product(id int64) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.fx.Products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func seoFor(p model.Product, smart bool) model.SEOResult {
	score := 72.0
	modelUsed := "fast"
	if smart {
		score = 88
		modelUsed = "smart"
	}
	return model.SEOResult{
		ProductID:          p.ID,
		Title:              p.Title,
		SEOTitle:           p.Title + " | Unique Gift",
		MetaDescription:    "Shop " + p.Title + ", printed on demand.",
		ProductDescription: "<p>" + p.Title + "</p>",
		Tags:               append(p.TagList(), "gift"),
		SEOScore:           &score,
		SEONotes:           "Added gift intent keyword.",
		ModelUsed:          modelUsed,
	}
}

func (s *Server) generateSEO(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	p, ok := s.product(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, seoFor(p, r.URL.Query().Get("use_smart_model") == "true"))
}

func (s *Server) pushSEO(w http.ResponseWriter, r *http.Request) {
	var req model.PushSEORequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	p, ok := s.product(req.ProductID)
	if !ok {
		writeError(w, http.StatusBadGateway, "Shopify push failed: product not found")
		return
	}
	writeJSON(w, http.StatusOK, model.PushSEOAck{Status: "pushed", ProductID: p.ID, Handle: p.Handle, Title: req.SEOTitle})
}

func (s *Server) startBulk(w http.ResponseWriter, r *http.Request) {
	var req model.BulkSEORequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	products := s.fx.Products
	s.mu.Unlock()

	wanted := map[int64]bool{}
	for _, id := range req.ProductIDs {
		wanted[id] = true
	}
	var items []model.BulkSEOItem
	for _, p := range products {
		if len(wanted) > 0 && !wanted[p.ID] {
			continue
		}
		items = append(items, model.BulkSEOItem{
			ProductID: p.ID,
			Title:     p.Title,
			Pushed:    req.AutoPush,
			SEO:       seoFor(p, req.UseSmartModel),
		})
	}

	jobID := uuid.NewString()[:8]
	s.mu.Lock()
	s.bulkJobs[jobID] = bulkJob{started: time.Now(), items: items}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, model.BulkSEOJob{JobID: jobID, Status: "started"})
}

func (s *Server) bulkResults(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job")
	s.mu.Lock()
	job, ok := s.bulkJobs[jobID]
	delay := s.fx.BulkDelay
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Job not found")
		return
	}

	// Results appear one product per elapsed delay.
	items := job.items
	if delay > 0 {
		done := int(time.Since(job.started) / delay)
		if done < len(items) {
			items = items[:done]
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"job_id": jobID, "count": len(items), "results": items})
}

// Orders

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	s.mu.Lock()
	orders := append([]model.Order(nil), s.fx.Orders...)
	s.mu.Unlock()
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt.Time) })
	if len(orders) > limit {
		orders = orders[:limit]
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) orderStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fx.OrderStats != nil {
		writeJSON(w, http.StatusOK, s.fx.OrderStats)
		return
	}
	full := model.SummarizeOrders(s.fx.Orders)
	writeJSON(w, http.StatusOK, model.OrderStats{
		TotalRevenue:     full.TotalRevenue,
		TotalProfit:      full.TotalProfit,
		OrderCount:       full.OrderCount,
		AvgMarginPercent: full.AvgMarginPercent,
	})
}

func (s *Server) syncOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.synced++
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, model.SyncResult{Status: "success", NewOrders: 0})
}

// Research

func (s *Server) explore(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))
	s.mu.Lock()
	result, ok := s.fx.Niches[strings.ToLower(keyword)]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "No listings found for "+keyword)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) gapAnalysis(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	keyword := q.Get("keyword")
	platform := q.Get("platform")
	if platform == "" {
		platform = "redbubble"
	}
	s.mu.Lock()
	result, ok := s.fx.Niches[strings.ToLower(keyword)]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusOK, model.GapAnalysis{
			Keyword: keyword,
			Report:  "No competitor data found. The market may be wide open or extremely niche.",
		})
		return
	}
	writeJSON(w, http.StatusOK, model.GapAnalysis{
		Keyword:      keyword,
		Platform:     platform,
		ListingCount: result.ListingCount,
		Report:       result.MarketGapReport,
		Competitors:  result.TopCompetitors,
	})
}

func (s *Server) calendar(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.fx.Calendar
	if events == nil {
		events = []model.CalendarEvent{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	niche := q.Get("niche")
	if niche == "" {
		writeError(w, http.StatusUnprocessableEntity, "niche is required")
		return
	}
	resp := map[string]any{
		"success":         true,
		"niche":           niche,
		"market_summary":  "Steady demand for " + niche + " gifts.",
		"target_audience": []string{"gift shoppers", niche + " fans"},
	}
	if q.Get("generate_designs") == "true" {
		resp["design_ideas"] = map[string]any{
			"success": true,
			"designs": []map[string]any{
				{"title": "Retro " + niche + " Club", "concept": "Retro badge", "design_text": niche + " club", "product": "t-shirt", "demand_score": 8, "elements": []string{"badge", "stars"}},
				{"title": "Certified " + niche + " Lover", "concept": "Stamp", "design_text": "certified", "product": "mug", "demand_score": "7"},
			},
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) brief(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"brief": map[string]any{
			"headline":      q.Get("design_title"),
			"style":         q.Get("style_preference"),
			"color_palette": []string{"#1B1B1B", "#F5C518"},
			"typography":    map[string]any{"primary": "Bebas Neue", "secondary": "Inter"},
		},
	})
}

func (s *Server) listing(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	title := q.Get("design_title")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"listing": map[string]any{
			"title":       title + " Shirt",
			"description": "A " + q.Get("niche") + " design: " + q.Get("design_text"),
			"tags":        []string{q.Get("niche"), "gift", "shirt"},
		},
	})
}

func (s *Server) mockup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, model.MockupResult{
		Success:  true,
		ImageURL: "https://mockups.example/" + strings.ReplaceAll(q.Get("design_title"), " ", "-") + ".png",
	})
}

func (s *Server) variations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	n, _ := strconv.Atoi(q.Get("num_variations"))
	types := []string{"t-shirt", "mug", "poster", "hoodie", "sticker"}
	if n <= 0 || n > len(types) {
		n = 3
	}
	var out []model.Variation
	for i := 0; i < n; i++ {
		v := model.Variation{ProductType: types[i], Success: true, ImageURL: "https://mockups.example/" + types[i] + ".png"}
		if types[i] == "poster" {
			v = model.Variation{ProductType: types[i], Error: "render timeout", FallbackURL: "https://mockups.example/fallback.png"}
		}
		out = append(out, v)
	}
	writeJSON(w, http.StatusOK, model.VariationsResult{Success: true, Variations: out, TotalGenerated: len(out)})
}

// Vault

func (s *Server) listVault(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	niche := strings.ToLower(q.Get("niche"))
	status := q.Get("status")
	style := q.Get("style")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.SavedDesign{}
	for i := len(s.vault) - 1; i >= 0; i-- {
		d := s.vault[i]
		if niche != "" && !strings.Contains(strings.ToLower(d.Niche), niche) {
			continue
		}
		if status != "" && string(d.Status) != status {
			continue
		}
		if style != "" && d.StylePreference != style {
			continue
		}
		out = append(out, d)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) vaultStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := model.VaultStats{Total: len(s.vault), ByStatus: map[string]int{}}
	niches := map[string]int{}
	for _, d := range s.vault {
		stats.ByStatus[string(d.Status)]++
		niches[d.Niche]++
	}
	for niche, count := range niches {
		stats.TopNiches = append(stats.TopNiches, model.NicheCount{Niche: niche, Count: count})
	}
	sort.Slice(stats.TopNiches, func(i, j int) bool {
		if stats.TopNiches[i].Count == stats.TopNiches[j].Count {
			return stats.TopNiches[i].Niche < stats.TopNiches[j].Niche
		}
		return stats.TopNiches[i].Count > stats.TopNiches[j].Count
	})
	if len(stats.TopNiches) > 5 {
		stats.TopNiches = stats.TopNiches[:5]
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) saveDesign(w http.ResponseWriter, r *http.Request) {
	var req model.SaveDesignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if req.Niche == "" || req.Title == "" {
		writeError(w, http.StatusUnprocessableEntity, "niche and title are required")
		return
	}
	style := req.StylePreference
	if style == "" {
		style = "Balanced"
	}

	now := model.Timestamp{Time: time.Now().UTC()}
	s.mu.Lock()
	d := model.SavedDesign{
		ID:              s.nextID,
		Niche:           req.Niche,
		Title:           req.Title,
		Concept:         req.Concept,
		DesignText:      req.DesignText,
		ProductType:     req.ProductType,
		StylePreference: style,
		DemandScore:     req.DemandScore,
		Elements:        req.Elements,
		MockupURL:       req.MockupURL,
		Status:          model.DesignDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.nextID++
	s.vault = append(s.vault, d)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, d)
}

// withDesign runs fn on the stored design with the path id
func (s *Server) withDesign(w http.ResponseWriter, r *http.Request, fn func(d *model.SavedDesign)) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vault {
		if s.vault[i].ID == id {
			fn(&s.vault[i])
			s.vault[i].UpdatedAt = model.Timestamp{Time: time.Now().UTC()}
			writeJSON(w, http.StatusOK, s.vault[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "Design not found")
}

func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status model.DesignStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if !body.Status.Valid() {
		writeError(w, http.StatusBadRequest, "status must be draft | ready | exported")
		return
	}
	s.withDesign(w, r, func(d *model.SavedDesign) { d.Status = body.Status })
}

func (s *Server) updateListing(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title       *string  `json:"listing_title"`
		Description *string  `json:"listing_description"`
		Tags        []string `json:"listing_tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.withDesign(w, r, func(d *model.SavedDesign) {
		if body.Title != nil {
			d.ListingTitle = *body.Title
		}
		if body.Description != nil {
			d.ListingDescription = *body.Description
		}
		if body.Tags != nil {
			d.ListingTags = body.Tags
		}
	})
}

func (s *Server) deleteDesign(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.vault {
		if d.ID == id {
			s.vault = append(s.vault[:i], s.vault[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Design not found")
}
