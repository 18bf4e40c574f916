package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/novraux/novraux-desk/internal/model"
)

// ErrNoListing is returned when copying a design that has no listing copy
var ErrNoListing = errors.New("no listing copy yet, generate it from Niche Explorer")

// VaultData is one load of the vault page
type VaultData struct {
	Designs []model.SavedDesign
	Stats   model.VaultStats
}

// Vault is the state of the Design Vault page
type Vault struct {
	backend VaultBackend
	data    *Resource[VaultData]

	mu       sync.Mutex
	filter   model.VaultFilter
	expanded map[int]bool
	pending  map[int]bool
	onChange func()
}

// NewVault creates the vault page state
func NewVault(backend VaultBackend) *Vault {
	v := &Vault{
		backend:  backend,
		data:     NewResource[VaultData](),
		expanded: make(map[int]bool),
		pending:  make(map[int]bool),
	}
	v.data.SetChangeCallback(func(Snapshot[VaultData]) { v.changed() })
	return v
}

// SetChangeCallback sets the callback run on any state change
func (v *Vault) SetChangeCallback(callback func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onChange = callback
}

func (v *Vault) changed() {
	v.mu.Lock()
	onChange := v.onChange
	v.mu.Unlock()
	if onChange != nil {
		onChange()
	}
}

// Snapshot returns the loaded designs and stats
func (v *Vault) Snapshot() Snapshot[VaultData] {
	return v.data.Snapshot()
}

// Filter returns the current filter
func (v *Vault) Filter() model.VaultFilter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// SetFilter stores the filter. The list follows it on the next Refresh.
func (v *Vault) SetFilter(filter model.VaultFilter) {
	v.mu.Lock()
	v.filter = filter
	v.mu.Unlock()
}

// Refresh loads designs and stats in parallel. Either both are applied or
// the error is.
func (v *Vault) Refresh(ctx context.Context) error {
	return v.data.Load(ctx, func(ctx context.Context) (VaultData, error) {
		filter := v.Filter()
		var data VaultData
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			designs, err := v.backend.ListVault(gctx, filter)
			data.Designs = designs
			return err
		})
		g.Go(func() error {
			stats, err := v.backend.VaultStats(gctx)
			data.Stats = stats
			return err
		})
		if err := g.Wait(); err != nil {
			return VaultData{}, err
		}
		return data, nil
	})
}

// begin marks design id as busy; false when it already is
func (v *Vault) begin(id int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.pending[id] {
		return false
	}
	v.pending[id] = true
	return true
}

func (v *Vault) end(id int) {
	v.mu.Lock()
	delete(v.pending, id)
	v.mu.Unlock()
}

// Pending reports whether an action on design id is in flight
func (v *Vault) Pending(id int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pending[id]
}

func (v *Vault) find(id int) (model.SavedDesign, bool) {
	for _, d := range v.data.Snapshot().Data.Designs {
		if d.ID == id {
			return d, true
		}
	}
	return model.SavedDesign{}, false
}

// CycleStatus moves design id to its next status. Local state changes only
// after the backend accepted the change.
func (v *Vault) CycleStatus(ctx context.Context, id int) (model.DesignStatus, error) {
	design, ok := v.find(id)
	if !ok {
		return "", fmt.Errorf("design %d is not loaded", id)
	}
	if !v.begin(id) {
		return design.Status, nil
	}
	defer v.end(id)

	updated, err := v.backend.UpdateDesignStatus(ctx, id, design.Status.Next())
	if err != nil {
		return design.Status, err
	}
	v.data.Update(func(data VaultData) VaultData {
		designs := make([]model.SavedDesign, len(data.Designs))
		for i, d := range data.Designs {
			if d.ID == id {
				from := d.Status
				d.Status = updated.Status
				data.Stats = data.Stats.Moved(from, updated.Status)
			}
			designs[i] = d
		}
		data.Designs = designs
		return data
	})
	return updated.Status, nil
}

// Delete removes design id. Local state changes only after the backend
// confirmed the deletion.
func (v *Vault) Delete(ctx context.Context, id int) error {
	if !v.begin(id) {
		return nil
	}
	defer v.end(id)

	if err := v.backend.DeleteDesign(ctx, id); err != nil {
		return err
	}
	v.mu.Lock()
	delete(v.expanded, id)
	v.mu.Unlock()
	v.data.Update(func(data VaultData) VaultData {
		designs := make([]model.SavedDesign, 0, len(data.Designs))
		for _, d := range data.Designs {
			if d.ID == id {
				data.Stats = data.Stats.Removed(d.Status)
				continue
			}
			designs = append(designs, d)
		}
		data.Designs = designs
		return data
	})
	return nil
}

// ToggleExpanded flips the listing panel of design id
func (v *Vault) ToggleExpanded(id int) bool {
	v.mu.Lock()
	v.expanded[id] = !v.expanded[id]
	open := v.expanded[id]
	v.mu.Unlock()
	v.changed()
	return open
}

// Expanded reports whether the listing panel of design id is open
func (v *Vault) Expanded(id int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.expanded[id]
}

// ListingCopy returns the clipboard text of design id's listing
func (v *Vault) ListingCopy(id int) (string, error) {
	design, ok := v.find(id)
	if !ok {
		return "", fmt.Errorf("design %d is not loaded", id)
	}
	text, ok := design.ListingCopy()
	if !ok {
		return "", ErrNoListing
	}
	return text, nil
}
