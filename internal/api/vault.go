package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/novraux/novraux-desk/internal/model"
)

// ListVault lists saved designs matching the filter
func (c *Client) ListVault(ctx context.Context, f model.VaultFilter) ([]model.SavedDesign, error) {
	q := url.Values{}
	setIf(q, "niche", f.Niche)
	setIf(q, "status", string(f.Status))
	setIf(q, "style", f.Style)
	var designs []model.SavedDesign
	if err := c.do(ctx, MsgFetchVault, http.MethodGet, "/vault", q, nil, &designs); err != nil {
		return nil, err
	}
	return designs, nil
}

// VaultStats fetches vault totals
func (c *Client) VaultStats(ctx context.Context) (model.VaultStats, error) {
	var stats model.VaultStats
	err := c.do(ctx, MsgFetchVaultStats, http.MethodGet, "/vault/stats", nil, nil, &stats)
	return stats, err
}

// SaveDesign stores a design in the vault
func (c *Client) SaveDesign(ctx context.Context, req model.SaveDesignRequest) (model.SavedDesign, error) {
	var saved model.SavedDesign
	err := c.do(ctx, MsgSaveDesign, http.MethodPost, "/vault", nil, req, &saved)
	return saved, err
}

// UpdateDesignStatus moves a saved design to status
func (c *Client) UpdateDesignStatus(ctx context.Context, id int, status model.DesignStatus) (model.SavedDesign, error) {
	var saved model.SavedDesign
	body := struct {
		Status model.DesignStatus `json:"status"`
	}{Status: status}
	err := c.do(ctx, MsgUpdateStatus, http.MethodPatch, fmt.Sprintf("/vault/%d/status", id), nil, body, &saved)
	return saved, err
}

// UpdateDesignListing attaches listing copy to a saved design
func (c *Client) UpdateDesignListing(ctx context.Context, id int, update model.ListingUpdate) (model.SavedDesign, error) {
	var saved model.SavedDesign
	err := c.do(ctx, MsgUpdateListing, http.MethodPatch, fmt.Sprintf("/vault/%d/listing", id), nil, update, &saved)
	return saved, err
}

// DeleteDesign removes a design from the vault
func (c *Client) DeleteDesign(ctx context.Context, id int) error {
	return c.do(ctx, MsgDeleteDesign, http.MethodDelete, fmt.Sprintf("/vault/%d", id), nil, nil, nil)
}
