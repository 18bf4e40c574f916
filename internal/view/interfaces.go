package view

import (
	"context"

	"github.com/novraux/novraux-desk/internal/api"
	"github.com/novraux/novraux-desk/internal/model"
)

// TrendBackend lists trends
type TrendBackend interface {
	GetTrends(ctx context.Context, params api.TrendParams) ([]model.Trend, error)
}

// ResearchBackend serves the niche explorer
type ResearchBackend interface {
	ExploreNiche(ctx context.Context, keyword string) (model.NicheValidation, error)
	GapAnalysis(ctx context.Context, keyword, platform string) (model.GapAnalysis, error)
	AnalyzeNiche(ctx context.Context, p api.AnalyzeParams) (model.NicheAnalysis, error)
	DesignBrief(ctx context.Context, p api.BriefParams) (model.BriefResult, error)
	ListingCopy(ctx context.Context, p api.ListingParams) (model.ListingResult, error)
	DesignMockup(ctx context.Context, p api.MockupParams) (model.MockupResult, error)
	DesignVariations(ctx context.Context, p api.VariationParams) (model.VariationsResult, error)
	SaveDesign(ctx context.Context, req model.SaveDesignRequest) (model.SavedDesign, error)
	UpdateDesignListing(ctx context.Context, id int, update model.ListingUpdate) (model.SavedDesign, error)
}

// VaultBackend serves the design vault
type VaultBackend interface {
	ListVault(ctx context.Context, f model.VaultFilter) ([]model.SavedDesign, error)
	VaultStats(ctx context.Context) (model.VaultStats, error)
	UpdateDesignStatus(ctx context.Context, id int, status model.DesignStatus) (model.SavedDesign, error)
	DeleteDesign(ctx context.Context, id int) error
}

// OrdersBackend serves the orders page
type OrdersBackend interface {
	GetOrders(ctx context.Context, limit int) ([]model.Order, error)
	GetOrderStats(ctx context.Context) (model.OrderStats, error)
	SyncOrders(ctx context.Context) (model.SyncResult, error)
}

// SEOBackend serves the Shopify SEO page
type SEOBackend interface {
	GetShopifyProducts(ctx context.Context, limit int) ([]model.Product, error)
	GenerateProductSEO(ctx context.Context, productID int64, useSmartModel bool) (model.SEOResult, error)
	PushSEO(ctx context.Context, req model.PushSEORequest) (model.PushSEOAck, error)
	StartBulkSEO(ctx context.Context, req model.BulkSEORequest) (model.BulkSEOJob, error)
	GetBulkSEOResults(ctx context.Context, jobID string) (model.BulkSEOResults, error)
}

// CalendarBackend lists calendar events
type CalendarBackend interface {
	GetCalendar(ctx context.Context) ([]model.CalendarEvent, error)
}

var (
	_ TrendBackend    = (*api.Client)(nil)
	_ ResearchBackend = (*api.Client)(nil)
	_ VaultBackend    = (*api.Client)(nil)
	_ OrdersBackend   = (*api.Client)(nil)
	_ SEOBackend      = (*api.Client)(nil)
	_ CalendarBackend = (*api.Client)(nil)
)
