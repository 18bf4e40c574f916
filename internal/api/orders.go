package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/novraux/novraux-desk/internal/model"
)

// DefaultOrderLimit is the page size of the orders table
const DefaultOrderLimit = 50

// GetOrders lists the most recent orders
func (c *Client) GetOrders(ctx context.Context, limit int) ([]model.Order, error) {
	if limit <= 0 {
		limit = DefaultOrderLimit
	}
	var orders []model.Order
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.do(ctx, MsgFetchOrders, http.MethodGet, "/orders", q, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderStats fetches aggregate order figures
func (c *Client) GetOrderStats(ctx context.Context) (model.OrderStats, error) {
	var stats model.OrderStats
	err := c.do(ctx, MsgFetchOrderStats, http.MethodGet, "/orders/stats", nil, nil, &stats)
	return stats, err
}

// SyncOrders asks the backend to pull new orders from the storefronts
func (c *Client) SyncOrders(ctx context.Context) (model.SyncResult, error) {
	var result model.SyncResult
	err := c.do(ctx, MsgSyncOrders, http.MethodPost, "/orders/sync", nil, nil, &result)
	return result, err
}
