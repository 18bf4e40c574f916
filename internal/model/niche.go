package model

import (
	"encoding/json"
	"strings"
)

// Opportunity score thresholds of a niche validation
const (
	HighOpportunityScore     = 70
	ModerateOpportunityScore = 40
)

// PriceStats summarizes competitor prices for a niche
type PriceStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	Median float64 `json:"median"`
}

// PlatformCounts counts competitor listings per marketplace
type PlatformCounts struct {
	Etsy      int `json:"etsy"`
	Redbubble int `json:"redbubble"`
}

// Competitor is one marketplace listing found for a niche
type Competitor struct {
	Title    string `json:"title"`
	Price    Text   `json:"price"`
	URL      string `json:"url"`
	Platform string `json:"platform"`
}

// NicheValidation is the market validation result for a keyword
type NicheValidation struct {
	Success          bool           `json:"success"`
	Message          string         `json:"message,omitempty"`
	Keyword          string         `json:"keyword"`
	ListingCount     int            `json:"listing_count"`
	PriceStats       PriceStats     `json:"price_stats"`
	MarketGapReport  string         `json:"market_gap_report"`
	OpportunityScore float64        `json:"opportunity_score"`
	Platforms        PlatformCounts `json:"platforms"`
	TopCompetitors   []Competitor   `json:"top_competitors"`
}

// Verdict returns the headline label for the opportunity score
func (n NicheValidation) Verdict() string {
	switch {
	case n.OpportunityScore > HighOpportunityScore:
		return "High Opportunity"
	case n.OpportunityScore > ModerateOpportunityScore:
		return "Moderate Potential"
	default:
		return "Risky / Saturated"
	}
}

// ReportLines splits the gap report into non-empty lines
func (n NicheValidation) ReportLines() []string {
	var out []string
	for _, line := range strings.Split(n.MarketGapReport, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// DesignIdea is one generated design concept for a niche
type DesignIdea struct {
	Title       string   `json:"title"`
	Concept     string   `json:"concept"`
	DesignText  string   `json:"design_text"`
	Elements    []string `json:"elements"`
	Product     string   `json:"product"`
	DemandScore Number   `json:"demand_score"`
	Style       string   `json:"style,omitempty"`
}

// DesignIdeas is the design generator block nested in an analysis
type DesignIdeas struct {
	Success bool         `json:"success"`
	Designs []DesignIdea `json:"designs"`
	Error   string       `json:"error,omitempty"`
}

// NicheAnalysis is the POD analysis of a niche. Fields beyond the known
// ones are kept in Details for display.
type NicheAnalysis struct {
	Success     bool         `json:"success"`
	Error       string       `json:"error,omitempty"`
	Niche       string       `json:"niche"`
	Designs     []DesignIdea `json:"designs,omitempty"`
	DesignIdeas *DesignIdeas `json:"design_ideas,omitempty"`
	Details     Payload      `json:"-"`
}

var analysisKnownFields = []string{"success", "error", "niche", "designs", "design_ideas"}

// UnmarshalJSON decodes the known fields and keeps the rest in order
func (a *NicheAnalysis) UnmarshalJSON(b []byte) error {
	type plain NicheAnalysis
	var known plain
	if err := json.Unmarshal(b, &known); err != nil {
		return err
	}
	var all Payload
	if err := all.UnmarshalJSON(b); err != nil {
		return err
	}
	*a = NicheAnalysis(known)
	a.Details = all.Without(analysisKnownFields...)
	return nil
}

// AllDesigns returns the design ideas wherever the backend nested them
func (a NicheAnalysis) AllDesigns() []DesignIdea {
	if len(a.Designs) > 0 {
		return a.Designs
	}
	if a.DesignIdeas != nil {
		return a.DesignIdeas.Designs
	}
	return nil
}

// ErrorMessage returns the application-level failure reported by the backend
func (a NicheAnalysis) ErrorMessage() string {
	if a.Error != "" {
		return a.Error
	}
	if a.DesignIdeas != nil && !a.DesignIdeas.Success {
		return a.DesignIdeas.Error
	}
	return ""
}

// BriefResult wraps a generated design brief
type BriefResult struct {
	Success bool    `json:"success"`
	Brief   Payload `json:"brief"`
	Error   string  `json:"error,omitempty"`
}

// ListingResult wraps generated marketplace listing copy
type ListingResult struct {
	Success bool    `json:"success"`
	Listing Payload `json:"listing"`
	Error   string  `json:"error,omitempty"`
}

// ListingUpdate extracts the vault listing fields from generated copy
func (r ListingResult) ListingUpdate() ListingUpdate {
	return ListingUpdate{
		Title:       r.Listing.Text("title", "product_title", "listing_title", "seo_title"),
		Description: r.Listing.Text("description", "full_description", "product_description"),
		Tags:        r.Listing.List("tags", "seo_tags", "keywords"),
	}
}

// MockupResult is a generated product mockup
type MockupResult struct {
	Success     bool   `json:"success"`
	ImageURL    string `json:"image_url"`
	FallbackURL string `json:"fallback_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

// DisplayURL returns the image to show, falling back when generation failed
func (m MockupResult) DisplayURL() string {
	if m.ImageURL != "" {
		return m.ImageURL
	}
	return m.FallbackURL
}

// Variation is a mockup of one design on one product type
type Variation struct {
	ProductType string `json:"product_type"`
	ImageURL    string `json:"image_url"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	FallbackURL string `json:"fallback_url,omitempty"`
}

// DisplayURL returns the image to show for the variation
func (v Variation) DisplayURL() string {
	if v.ImageURL != "" {
		return v.ImageURL
	}
	return v.FallbackURL
}

// VariationsResult is the response of the variations generator
type VariationsResult struct {
	Success        bool        `json:"success"`
	Variations     []Variation `json:"variations"`
	TotalGenerated int         `json:"total_generated"`
	Error          string      `json:"error,omitempty"`
}

// GapAnalysis is the single-platform competitor gap report
type GapAnalysis struct {
	Keyword      string       `json:"keyword"`
	Platform     string       `json:"platform"`
	ListingCount int          `json:"listing_count"`
	Report       string       `json:"report"`
	Competitors  []Competitor `json:"competitors"`
}
