package view

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/novraux/novraux-desk/internal/model"
)

// OrdersData is one load of the orders page
type OrdersData struct {
	Orders []model.Order
	Stats  model.OrderStats
}

// Orders is the state of the Orders page
type Orders struct {
	backend OrdersBackend
	limit   int
	data    *Resource[OrdersData]

	mu       sync.Mutex
	syncing  bool
	lastSync *model.SyncResult
	onChange func()
}

// NewOrders creates the orders page state
func NewOrders(backend OrdersBackend, limit int) *Orders {
	o := &Orders{
		backend: backend,
		limit:   limit,
		data:    NewResource[OrdersData](),
	}
	o.data.SetChangeCallback(func(Snapshot[OrdersData]) { o.changed() })
	return o
}

// SetChangeCallback sets the callback run on any state change
func (o *Orders) SetChangeCallback(callback func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onChange = callback
}

func (o *Orders) changed() {
	o.mu.Lock()
	onChange := o.onChange
	o.mu.Unlock()
	if onChange != nil {
		onChange()
	}
}

// Snapshot returns the loaded orders and stats. Breakdowns the backend
// left out are derived from the orders.
func (o *Orders) Snapshot() Snapshot[OrdersData] {
	snap := o.data.Snapshot()
	snap.Data.Stats = snap.Data.Stats.WithBreakdowns(snap.Data.Orders)
	return snap
}

// Refresh loads orders and stats in parallel
func (o *Orders) Refresh(ctx context.Context) error {
	return o.data.Load(ctx, func(ctx context.Context) (OrdersData, error) {
		var data OrdersData
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			orders, err := o.backend.GetOrders(gctx, o.limit)
			data.Orders = orders
			return err
		})
		g.Go(func() error {
			stats, err := o.backend.GetOrderStats(gctx)
			data.Stats = stats
			return err
		})
		if err := g.Wait(); err != nil {
			return OrdersData{}, err
		}
		return data, nil
	})
}

// Syncing reports whether a sync is in flight
func (o *Orders) Syncing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.syncing
}

// LastSync returns the acknowledgement of the last successful sync
func (o *Orders) LastSync() (model.SyncResult, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.lastSync == nil {
		return model.SyncResult{}, false
	}
	return *o.lastSync, true
}

// Sync asks the backend to pull new orders, then reloads. A second call
// while syncing does nothing.
func (o *Orders) Sync(ctx context.Context) error {
	o.mu.Lock()
	if o.syncing {
		o.mu.Unlock()
		return nil
	}
	o.syncing = true
	o.mu.Unlock()
	o.changed()

	defer func() {
		o.mu.Lock()
		o.syncing = false
		o.mu.Unlock()
		o.changed()
	}()

	result, err := o.backend.SyncOrders(ctx)
	if err != nil {
		return err
	}
	o.mu.Lock()
	o.lastSync = &result
	o.mu.Unlock()
	return o.Refresh(ctx)
}
