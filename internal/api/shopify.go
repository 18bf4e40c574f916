package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/novraux/novraux-desk/internal/model"
)

// DefaultProductLimit is the product page size of the SEO page
const DefaultProductLimit = 50

// GetShopifyProducts lists store products
func (c *Client) GetShopifyProducts(ctx context.Context, limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = DefaultProductLimit
	}
	var resp struct {
		Products []model.Product `json:"products"`
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.do(ctx, MsgFetchProducts, http.MethodGet, "/shopify/products", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// GenerateProductSEO generates an SEO preview for one product
func (c *Client) GenerateProductSEO(ctx context.Context, productID int64, useSmartModel bool) (model.SEOResult, error) {
	var result model.SEOResult
	q := url.Values{"use_smart_model": {strconv.FormatBool(useSmartModel)}}
	path := fmt.Sprintf("/shopify/products/%d/generate-seo", productID)
	err := c.do(ctx, MsgGenerateSEO, http.MethodPost, path, q, nil, &result)
	return result, err
}

// PushSEO writes reviewed SEO copy to the store
func (c *Client) PushSEO(ctx context.Context, req model.PushSEORequest) (model.PushSEOAck, error) {
	var ack model.PushSEOAck
	err := c.do(ctx, MsgPushSEO, http.MethodPost, "/shopify/products/push-seo", nil, req, &ack)
	return ack, err
}

// StartBulkSEO starts a background SEO job
func (c *Client) StartBulkSEO(ctx context.Context, req model.BulkSEORequest) (model.BulkSEOJob, error) {
	var job model.BulkSEOJob
	err := c.do(ctx, MsgStartBulkSEO, http.MethodPost, "/shopify/products/bulk-seo", nil, req, &job)
	return job, err
}

// GetBulkSEOResults polls a bulk SEO job
func (c *Client) GetBulkSEOResults(ctx context.Context, jobID string) (model.BulkSEOResults, error) {
	var results model.BulkSEOResults
	path := "/shopify/bulk-seo/" + url.PathEscape(jobID)
	err := c.do(ctx, MsgFetchBulkSEO, http.MethodGet, path, nil, nil, &results)
	return results, err
}
