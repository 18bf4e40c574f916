package api

import (
	"context"

	"github.com/novraux/novraux-desk/internal/model"
	"github.com/novraux/novraux-desk/internal/stream"
)

// Backend defines every operation the dashboard performs against the backend.
type Backend interface {
	GetTrends(ctx context.Context, params TrendParams) ([]model.Trend, error)
	GetTrend(ctx context.Context, id int) (model.Trend, error)
	OpenScrape(ctx context.Context) (stream.Reader, error)

	GetShopifyProducts(ctx context.Context, limit int) ([]model.Product, error)
	GenerateProductSEO(ctx context.Context, productID int64, useSmartModel bool) (model.SEOResult, error)
	PushSEO(ctx context.Context, req model.PushSEORequest) (model.PushSEOAck, error)
	StartBulkSEO(ctx context.Context, req model.BulkSEORequest) (model.BulkSEOJob, error)
	GetBulkSEOResults(ctx context.Context, jobID string) (model.BulkSEOResults, error)

	GetOrders(ctx context.Context, limit int) ([]model.Order, error)
	GetOrderStats(ctx context.Context) (model.OrderStats, error)
	SyncOrders(ctx context.Context) (model.SyncResult, error)

	ExploreNiche(ctx context.Context, keyword string) (model.NicheValidation, error)
	GapAnalysis(ctx context.Context, keyword, platform string) (model.GapAnalysis, error)
	GetCalendar(ctx context.Context) ([]model.CalendarEvent, error)
	AnalyzeNiche(ctx context.Context, p AnalyzeParams) (model.NicheAnalysis, error)
	DesignBrief(ctx context.Context, p BriefParams) (model.BriefResult, error)
	ListingCopy(ctx context.Context, p ListingParams) (model.ListingResult, error)
	DesignMockup(ctx context.Context, p MockupParams) (model.MockupResult, error)
	DesignVariations(ctx context.Context, p VariationParams) (model.VariationsResult, error)

	ListVault(ctx context.Context, f model.VaultFilter) ([]model.SavedDesign, error)
	VaultStats(ctx context.Context) (model.VaultStats, error)
	SaveDesign(ctx context.Context, req model.SaveDesignRequest) (model.SavedDesign, error)
	UpdateDesignStatus(ctx context.Context, id int, status model.DesignStatus) (model.SavedDesign, error)
	UpdateDesignListing(ctx context.Context, id int, update model.ListingUpdate) (model.SavedDesign, error)
	DeleteDesign(ctx context.Context, id int) error
}

var _ Backend = (*Client)(nil)
