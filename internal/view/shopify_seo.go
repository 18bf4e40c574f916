package view

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/novraux/novraux-desk/internal/model"
)

// ErrNotPushable is returned when pushing a product without a usable preview
var ErrNotPushable = errors.New("generate SEO for this product first")

// BulkState is the progress of the bulk SEO job
type BulkState struct {
	JobID     string
	Running   bool
	Requested int
	Done      int
	Err       string
}

// ShopifySEO is the state of the Shopify SEO page
type ShopifySEO struct {
	backend      SEOBackend
	limit        int
	pollInterval time.Duration
	products     *Resource[[]model.Product]

	mu         sync.Mutex
	smart      bool
	previews   map[int64]model.SEOResult
	generating map[int64]bool
	pushing    map[int64]bool
	bulk       BulkState
	stopPoll   context.CancelFunc
	closed     bool
	onChange   func()
}

// NewShopifySEO creates the SEO page state
func NewShopifySEO(backend SEOBackend, limit int, pollInterval time.Duration, smart bool) *ShopifySEO {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	s := &ShopifySEO{
		backend:      backend,
		limit:        limit,
		pollInterval: pollInterval,
		products:     NewResource[[]model.Product](),
		smart:        smart,
		previews:     make(map[int64]model.SEOResult),
		generating:   make(map[int64]bool),
		pushing:      make(map[int64]bool),
	}
	s.products.SetChangeCallback(func(Snapshot[[]model.Product]) { s.changed() })
	return s
}

// SetChangeCallback sets the callback run on any state change
func (s *ShopifySEO) SetChangeCallback(callback func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = callback
}

func (s *ShopifySEO) changed() {
	s.mu.Lock()
	onChange := s.onChange
	s.mu.Unlock()
	if onChange != nil {
		onChange()
	}
}

// Refresh loads the store products
func (s *ShopifySEO) Refresh(ctx context.Context) error {
	return s.products.Load(ctx, func(ctx context.Context) ([]model.Product, error) {
		return s.backend.GetShopifyProducts(ctx, s.limit)
	})
}

// Snapshot returns the product list state
func (s *ShopifySEO) Snapshot() Snapshot[[]model.Product] {
	return s.products.Snapshot()
}

// SmartModel reports whether generation uses the smart model
func (s *ShopifySEO) SmartModel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.smart
}

// SetSmartModel selects the model used by later generations
func (s *ShopifySEO) SetSmartModel(smart bool) {
	s.mu.Lock()
	s.smart = smart
	s.mu.Unlock()
	s.changed()
}

// Preview returns the generated SEO of a product
func (s *ShopifySEO) Preview(productID int64) (model.SEOResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.previews[productID]
	return p, ok
}

// Generating reports whether SEO generation for a product is in flight
func (s *ShopifySEO) Generating(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generating[productID]
}

// Pushing reports whether a push for a product is in flight
func (s *ShopifySEO) Pushing(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pushing[productID]
}

// Generate creates the SEO preview of a product. A failure becomes the
// preview's error so it shows next to the product.
func (s *ShopifySEO) Generate(ctx context.Context, productID int64) error {
	s.mu.Lock()
	if s.generating[productID] {
		s.mu.Unlock()
		return nil
	}
	s.generating[productID] = true
	smart := s.smart
	s.mu.Unlock()
	s.changed()

	result, err := s.backend.GenerateProductSEO(ctx, productID, smart)
	if err != nil {
		result = model.SEOResult{ProductID: productID, Error: err.Error()}
	}
	result.ProductID = productID

	s.mu.Lock()
	delete(s.generating, productID)
	s.previews[productID] = result
	s.mu.Unlock()
	s.changed()
	return err
}

// Push sends the preview of a product to the store
func (s *ShopifySEO) Push(ctx context.Context, productID int64) error {
	s.mu.Lock()
	preview, ok := s.previews[productID]
	if !ok || !preview.Pushable() {
		s.mu.Unlock()
		return ErrNotPushable
	}
	if s.pushing[productID] {
		s.mu.Unlock()
		return nil
	}
	s.pushing[productID] = true
	s.mu.Unlock()
	s.changed()

	_, err := s.backend.PushSEO(ctx, model.NewPushSEORequest(preview))

	s.mu.Lock()
	delete(s.pushing, productID)
	if err == nil {
		if p, ok := s.previews[productID]; ok {
			p.Pushed = true
			s.previews[productID] = p
		}
	}
	s.mu.Unlock()
	s.changed()
	return err
}

// Bulk returns the bulk job progress
func (s *ShopifySEO) Bulk() BulkState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bulk
}

// StartBulk starts SEO generation for every product and polls its results
// until each loaded product has one.
func (s *ShopifySEO) StartBulk(ctx context.Context) error {
	s.mu.Lock()
	if s.bulk.Running || s.closed {
		s.mu.Unlock()
		return nil
	}
	s.bulk = BulkState{Running: true, Requested: len(s.products.Snapshot().Data)}
	smart := s.smart
	s.mu.Unlock()
	s.changed()

	job, err := s.backend.StartBulkSEO(ctx, model.BulkSEORequest{UseSmartModel: smart})
	if err != nil {
		s.mu.Lock()
		s.bulk = BulkState{}
		s.mu.Unlock()
		s.changed()
		return err
	}

	pollCtx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		cancel()
		return nil
	}
	s.bulk.JobID = job.JobID
	s.stopPoll = cancel
	s.mu.Unlock()
	s.changed()

	go s.poll(pollCtx, job.JobID)
	return nil
}

// poll merges bulk results into the previews. Poll failures are logged and
// the next tick tries again.
func (s *ShopifySEO) poll(ctx context.Context, jobID string) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		results, err := s.backend.GetBulkSEOResults(ctx, jobID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Bulk SEO poll for job %s failed: %v", jobID, err)
			continue
		}

		s.mu.Lock()
		if s.bulk.JobID != jobID {
			s.mu.Unlock()
			return
		}
		s.bulk.Done = results.MergePreviews(s.previews)
		if jobErr := results.JobError(); jobErr != "" {
			s.bulk.Err = jobErr
			s.bulk.Running = false
		} else if s.bulk.Done >= s.bulk.Requested {
			s.bulk.Running = false
		}
		finished := !s.bulk.Running
		var stop context.CancelFunc
		if finished {
			stop, s.stopPoll = s.stopPoll, nil
		}
		s.mu.Unlock()
		s.changed()

		if finished {
			if stop != nil {
				stop()
			}
			return
		}
	}
}

// Close stops the bulk poller
func (s *ShopifySEO) Close() {
	s.mu.Lock()
	s.closed = true
	stop := s.stopPoll
	s.stopPoll = nil
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
}
