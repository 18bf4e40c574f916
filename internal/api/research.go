package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/novraux/novraux-desk/internal/model"
)

// DefaultVariations is how many product variations are requested
const DefaultVariations = 3

// AnalyzeParams are the inputs of a POD niche analysis
type AnalyzeParams struct {
	Niche           string
	GenerateDesigns bool
	StylePreference string
}

// BriefParams describe the design a brief is generated for
type BriefParams struct {
	Niche           string
	DesignTitle     string
	DesignConcept   string
	StylePreference string
}

// ListingParams describe the design listing copy is generated for
type ListingParams struct {
	Niche       string
	DesignTitle string
	DesignText  string
}

// MockupParams describe the design a mockup is rendered for
type MockupParams struct {
	Niche           string
	DesignTitle     string
	DesignConcept   string
	DesignText      string
	ProductType     string
	StylePreference string
}

// VariationParams describe the design variations are rendered for
type VariationParams struct {
	Niche           string
	DesignTitle     string
	DesignConcept   string
	NumVariations   int
	StylePreference string
}

// setIf adds key=value when value is not empty
func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// ExploreNiche validates a keyword across marketplaces
func (c *Client) ExploreNiche(ctx context.Context, keyword string) (model.NicheValidation, error) {
	var result model.NicheValidation
	q := url.Values{"keyword": {keyword}}
	err := c.do(ctx, MsgExploreNiche, http.MethodPost, "/research/explore", q, nil, &result)
	return result, err
}

// GapAnalysis fetches the competitor gap report of one platform
func (c *Client) GapAnalysis(ctx context.Context, keyword, platform string) (model.GapAnalysis, error) {
	var result model.GapAnalysis
	q := url.Values{"keyword": {keyword}}
	setIf(q, "platform", platform)
	err := c.do(ctx, MsgGapAnalysis, http.MethodGet, "/research/gap-analysis", q, nil, &result)
	return result, err
}

// GetCalendar lists the seasonal calendar events
func (c *Client) GetCalendar(ctx context.Context) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	if err := c.do(ctx, MsgFetchCalendar, http.MethodGet, "/research/calendar", nil, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// AnalyzeNiche runs the POD analysis, optionally with design ideas
func (c *Client) AnalyzeNiche(ctx context.Context, p AnalyzeParams) (model.NicheAnalysis, error) {
	var result model.NicheAnalysis
	q := url.Values{
		"niche":            {p.Niche},
		"generate_designs": {strconv.FormatBool(p.GenerateDesigns)},
	}
	setIf(q, "style_preference", p.StylePreference)
	err := c.do(ctx, MsgAnalyzeNiche, http.MethodPost, "/research/niche/analyze", q, nil, &result)
	return result, err
}

// DesignBrief generates a designer brief
func (c *Client) DesignBrief(ctx context.Context, p BriefParams) (model.BriefResult, error) {
	var result model.BriefResult
	q := url.Values{"niche": {p.Niche}, "design_title": {p.DesignTitle}}
	setIf(q, "design_concept", p.DesignConcept)
	setIf(q, "style_preference", p.StylePreference)
	err := c.do(ctx, MsgDesignBrief, http.MethodPost, "/research/design/brief", q, nil, &result)
	return result, err
}

// ListingCopy generates marketplace listing copy
func (c *Client) ListingCopy(ctx context.Context, p ListingParams) (model.ListingResult, error) {
	var result model.ListingResult
	q := url.Values{"niche": {p.Niche}, "design_title": {p.DesignTitle}}
	setIf(q, "design_text", p.DesignText)
	err := c.do(ctx, MsgListingCopy, http.MethodPost, "/research/design/listing", q, nil, &result)
	return result, err
}

// DesignMockup renders a mockup image
func (c *Client) DesignMockup(ctx context.Context, p MockupParams) (model.MockupResult, error) {
	var result model.MockupResult
	q := url.Values{"niche": {p.Niche}, "design_title": {p.DesignTitle}}
	setIf(q, "design_concept", p.DesignConcept)
	setIf(q, "design_text", p.DesignText)
	setIf(q, "product_type", p.ProductType)
	setIf(q, "style_preference", p.StylePreference)
	err := c.do(ctx, MsgMockup, http.MethodPost, "/research/design/mockup", q, nil, &result)
	return result, err
}

// DesignVariations renders the design on several product types
func (c *Client) DesignVariations(ctx context.Context, p VariationParams) (model.VariationsResult, error) {
	if p.NumVariations <= 0 {
		p.NumVariations = DefaultVariations
	}
	var result model.VariationsResult
	q := url.Values{
		"niche":          {p.Niche},
		"design_title":   {p.DesignTitle},
		"num_variations": {strconv.Itoa(p.NumVariations)},
	}
	setIf(q, "design_concept", p.DesignConcept)
	setIf(q, "style_preference", p.StylePreference)
	err := c.do(ctx, MsgVariations, http.MethodPost, "/research/design/variations", q, nil, &result)
	return result, err
}
